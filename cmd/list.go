package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/rhr/internal/games"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the problem types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
		for _, g := range games.All() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", g.ID(), g.Name(), g.Description())
		}
		return tw.Flush()
	},
}
