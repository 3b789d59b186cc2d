package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
	"github.com/iic-jku/klayout-pin-tool/pkg/pdk"
)

// initCommand creates the "init" command writing the starter table.
func (c *CLI) initCommand() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter PDK table for the IHP sg13g2 technology",
		Long: `Write a starter PDK table for the IHP sg13g2 open-source PDK.

The file lands in the default table directory (or at --output) and is
meant to be copied and edited for other technologies: adjust tech_name,
the layer groups, and the pin entries, and drop the file anywhere on
the search path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := pdk.SG13G2()

			path := output
			if path == "" {
				dir, err := defaultPDKDir()
				if err != nil {
					return err
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
				path = filepath.Join(dir, "ihp-sg13g2"+pdk.TableFileExt)
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
				}
			}

			if err := pdk.WriteTableFile(tbl, path); err != nil {
				return err
			}

			printSuccess("Wrote %s", path)
			printDetail("%s", tbl)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <pdk dir>/ihp-sg13g2.json)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
