package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/rhr/internal/diagram"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Render the diagram for a problem state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("state")
		g, st, err := readState(cmd, path)
		if err != nil {
			return err
		}
		geo, err := g.Geometry(st)
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if dst, _ := cmd.Flags().GetString("output"); dst != "" && dst != "-" {
			f, err := os.Create(dst)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "svg":
			return diagram.WriteSVG(out, geo)
		case "png":
			scale, _ := cmd.Flags().GetFloat64("scale")
			return diagram.WritePNG(out, geo, scale)
		case "text":
			_, err = fmt.Fprintln(out, diagram.Text(geo))
			return err
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(geo)
		default:
			return fmt.Errorf("unknown format %q (want svg, png, text or json)", format)
		}
	},
}

func init() {
	diagramCmd.Flags().String("state", "", "State file written by rhr new, or - for stdin")
	diagramCmd.Flags().String("format", "text", "Output format: svg, png, text or json")
	diagramCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	diagramCmd.Flags().Float64("scale", diagram.DefaultScale, "Pixels per diagram unit for png")
}
