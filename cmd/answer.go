package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/rhr/internal/direction"
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Print the answer for a problem state",
	Long: "Print the answer for a problem state. With --choice, grade that choice\n" +
		"instead and exit non-zero when it is wrong.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("state")
		g, st, err := readState(cmd, path)
		if err != nil {
			return err
		}
		answer, err := g.Answer(st)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		choice, _ := cmd.Flags().GetString("choice")
		if choice == "" {
			fmt.Fprintf(out, "%s %s (%s)\n", answer.Glyph(), answer.Label(), answer)
			return nil
		}

		picked, err := direction.Parse(choice)
		if err != nil {
			return err
		}
		if picked != answer {
			fmt.Fprintln(out, "incorrect")
			return fmt.Errorf("%s is not the answer", picked)
		}
		fmt.Fprintln(out, "correct")
		return nil
	},
}

func init() {
	answerCmd.Flags().String("state", "", "State file written by rhr new, or - for stdin")
	answerCmd.Flags().String("choice", "", "Direction to grade, e.g. into-page")
}
