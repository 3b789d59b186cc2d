package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
	"github.com/iic-jku/klayout-pin-tool/pkg/viz"
)

// graphCommand creates the "graph" command rendering a table's structure.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output  string
		related bool
	)

	cmd := &cobra.Command{
		Use:   "graph <tech>",
		Short: "Render a technology's group structure as DOT or SVG",
		Long: `Render a technology's pin-entry → group → layer structure.

The output format follows the file extension: .svg renders with
Graphviz, anything else (or stdout) gets plain DOT.

Examples:
  pintool graph sg13g2                 # DOT to stdout
  pintool graph sg13g2 -o sg13g2.svg   # rendered SVG
  pintool graph sg13g2 --related       # include related-layer groups`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateTechName(args[0]); err != nil {
				return err
			}
			tbl, err := c.lookupTable(args[0])
			if err != nil {
				return err
			}

			dot := viz.ToDOT(tbl, viz.Options{Related: related})

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), dot)
				return nil
			}

			data := []byte(dot)
			if strings.HasSuffix(strings.ToLower(output), ".svg") {
				prog := newProgress(c.Logger)
				data, err = viz.RenderSVG(dot)
				if err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printSuccess("Wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg, stdout if empty)")
	cmd.Flags().BoolVar(&related, "related", false, "include related-layer groups")
	return cmd
}
