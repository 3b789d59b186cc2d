package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
)

// resolveCommand creates the "resolve" command, answering the same query
// the layout-editor plugin asks on every click.
func (c *CLI) resolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <tech> <layer>",
		Short: "Resolve a layer to its pin placement rule",
		Long: `Resolve a selected layer to the pin-layer entry governing it.

The layer may be a short name ("Metal1") or any concrete layer a pin
entry relates to ("Metal1.drawing"). A miss is a normal outcome: it
means the technology has no pin rule for that layer and the editor
would prompt for a manual choice.

Examples:
  pintool resolve sg13g2 Metal1
  pintool resolve sg13g2 Metal3.drawing`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			techName, layer := args[0], args[1]
			if err := errors.ValidateTechName(techName); err != nil {
				return err
			}
			if err := errors.ValidateLayerName(layer); err != nil {
				return err
			}

			tbl, err := c.lookupTable(techName)
			if err != nil {
				return err
			}

			info, ok := tbl.Resolve(layer)
			if !ok {
				printInfo("No pin rule for layer %s in %s", StyleHighlight.Render(layer), techName)
				printDetail("The editor would ask for a manual layer selection here")
				return nil
			}

			printSuccess("%s resolves to %s", layer, StyleHighlight.Render(info.ShortLayerName))
			printDetail("pin boxes on: %s", strings.Join(tbl.LayersOfGroups(info.PinLayers), ", "))
			printDetail("labels on:    %s", strings.Join(tbl.LayersOfGroups(info.LabelLayers), ", "))
			if related := tbl.LayersOfGroups(info.RelatedLayers); len(related) > 0 {
				printDetail("related:      %s", strings.Join(related, ", "))
			}
			return nil
		},
	}
}
