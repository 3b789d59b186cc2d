package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
	"github.com/iic-jku/klayout-pin-tool/pkg/prefs"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage saved pin preferences",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configSetCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the preference file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := prefs.Path()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved pin preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := prefs.Path()
			if err != nil {
				return err
			}
			p, err := prefs.Load(path)
			if err != nil {
				printWarning("%s, showing defaults", errors.UserMessage(err))
			}

			t := newTable("Key", "Value")
			t.Row("pin_label", p.PinLabel)
			t.Row("width", fmt.Sprintf("%g µm", p.Width))
			t.Row("height", fmt.Sprintf("%g µm", p.Height))
			if p.ShortLayerName != "" {
				t.Row("short_layer_name", p.ShortLayerName)
			}
			fmt.Println(t.Render())
			printDetail("File: %s", path)
			return nil
		},
	}
}

// configSetCommand creates the "config set" subcommand.
func (c *CLI) configSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one preference (pin_label, width, height, short_layer_name)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			path, err := prefs.Path()
			if err != nil {
				return err
			}
			p, err := prefs.Load(path)
			if err != nil {
				printWarning("%s, starting from defaults", errors.UserMessage(err))
			}

			switch key {
			case "pin_label":
				p.PinLabel = value
			case "short_layer_name":
				p.ShortLayerName = value
			case "width", "height":
				v, err := strconv.ParseFloat(value, 64)
				if err != nil || v <= 0 {
					return errors.New(errors.ErrCodeInvalidInput, "%s must be a positive number, got %q", key, value)
				}
				if key == "width" {
					p.Width = v
				} else {
					p.Height = v
				}
			default:
				return errors.New(errors.ErrCodeInvalidInput, "unknown preference %q", key)
			}

			if err := prefs.Save(p, path); err != nil {
				return err
			}
			printSuccess("Set %s = %s", key, value)
			return nil
		},
	}
}
