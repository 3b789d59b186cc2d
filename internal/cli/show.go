package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
	"github.com/iic-jku/klayout-pin-tool/pkg/pdk"
)

// showCommand creates the "show" command dumping one technology's table.
func (c *CLI) showCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <tech>",
		Short: "Show one technology's layer groups and pin entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateTechName(args[0]); err != nil {
				return err
			}
			tbl, err := c.lookupTable(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return pdk.WriteTable(tbl, cmd.OutOrStdout())
			}

			fmt.Println(StyleTitle.Render(tbl.String()))
			fmt.Println()

			pins := newTable("Layer", "Pin Boxes On", "Labels On", "Related")
			for _, info := range tbl.PinInfos {
				pins.Row(
					info.ShortLayerName,
					strings.Join(tbl.LayersOfGroups(info.PinLayers), ", "),
					strings.Join(tbl.LayersOfGroups(info.LabelLayers), ", "),
					strings.Join(tbl.LayersOfGroups(info.RelatedLayers), ", "),
				)
			}
			fmt.Println(pins.Render())

			groups := newTable("Group", "Layers")
			for _, g := range tbl.Groups {
				groups.Row(g.Name, strings.Join(g.Layers, ", "))
			}
			fmt.Println(groups.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the table in its file format")
	return cmd
}
