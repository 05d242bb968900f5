package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/rhr/internal/games"
	"github.com/abhisek/rhr/internal/statecodec"
)

var newCmd = &cobra.Command{
	Use:   "new <problem-type>",
	Short: "Print a random problem state as JSON",
	Long: "Print a random problem state as JSON. The output can be edited and fed\n" +
		"back to the answer and diagram commands. Use --seed for a repeatable state.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		g, err := games.Lookup(args[0])
		if err != nil {
			return err
		}

		out, err := statecodec.EncodeIndent(g.NewState(cfg.Rand()))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	},
}
