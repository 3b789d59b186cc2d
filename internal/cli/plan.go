package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
	"github.com/iic-jku/klayout-pin-tool/pkg/placement"
	"github.com/iic-jku/klayout-pin-tool/pkg/prefs"
)

// planOpts holds the command-line flags for the plan command.
type planOpts struct {
	x, y   float64 // click point, µm
	width  float64 // pin box width, µm
	height float64 // pin box height, µm
	label  string  // label text
	layers string  // comma-separated available layers, empty = assume all
}

// planCommand creates the "plan" command, the dry-run twin of the click
// handler in the editor plugin: resolve, expand, and print what would be
// inserted where.
func (c *CLI) planCommand() *cobra.Command {
	var opts planOpts

	cmd := &cobra.Command{
		Use:   "plan <tech> <layer>",
		Short: "Plan the insertions for placing one pin",
		Long: `Plan the box and label insertions for placing one pin.

Prints the complete placement plan as JSON. With --layers, the plan is
checked against that layer list the way the editor checks its loaded
layout: one missing target layer aborts the whole plan.

Examples:
  pintool plan sg13g2 Metal1 --at-x 10 --at-y 20 --label VDD
  pintool plan sg13g2 Metal1 --layers Metal1.pin,Metal1.text`,
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
				return errors.New(errors.ErrCodeLayerNotFound, "no pin rule for layer %q in %s", layer, techName)
			}

			var available placement.LayerSet = placement.AllLayers{}
			if opts.layers != "" {
				available = placement.NewStringSet(strings.Split(opts.layers, ",")...)
			}

			p, err := placement.New(tbl, info,
				placement.Point{X: opts.x, Y: opts.y},
				c.placementOptions(opts),
				available)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "    ")
			return enc.Encode(p)
		},
	}

	cmd.Flags().Float64Var(&opts.x, "at-x", 0, "pin center x (µm)")
	cmd.Flags().Float64Var(&opts.y, "at-y", 0, "pin center y (µm)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "pin box width (µm, default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "pin box height (µm, default from config)")
	cmd.Flags().StringVar(&opts.label, "label", "", "label text (default from config)")
	cmd.Flags().StringVar(&opts.layers, "layers", "", "comma-separated layers present in the layout (empty = all)")
	return cmd
}

// placementOptions merges flags over the persisted preferences, so the CLI
// behaves like the editor dock: explicit input wins, saved values fill in.
func (c *CLI) placementOptions(opts planOpts) placement.Options {
	merged := placement.Options{Label: opts.label, Width: opts.width, Height: opts.height}

	path, err := prefs.Path()
	if err != nil {
		return merged
	}
	saved, err := prefs.Load(path)
	if err != nil {
		c.Logger.Warnf("Ignoring preferences: %v", err)
		return merged
	}

	if merged.Label == "" {
		merged.Label = saved.PinLabel
	}
	if merged.Width <= 0 {
		merged.Width = saved.Width
	}
	if merged.Height <= 0 {
		merged.Height = saved.Height
	}
	return merged
}
