package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
)

// listCommand creates the "list" command showing discovered technologies.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List technologies with a PDK table",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := c.loadRegistry()

			for _, d := range reg.Diagnostics() {
				printWarning("Skipped %s: %s", d.Path, errors.UserMessage(d.Err))
			}

			if reg.Len() == 0 {
				printInfo("No PDK tables found")
				printDetail("Searched: %s", strings.Join(c.searchPaths(), ", "))
				printDetail("Use 'pintool init' to create a starter table")
				return nil
			}

			t := newTable("Technology", "Groups", "Pin Layers", "Source")
			for _, name := range reg.TechNames() {
				tbl, _ := reg.Lookup(name)
				src, _ := reg.Source(name)
				t.Row(name, fmt.Sprint(len(tbl.Groups)), fmt.Sprint(len(tbl.PinInfos)), src)
			}
			fmt.Println(t.Render())
			return nil
		},
	}
}

// noTablesError explains an empty registry.
func noTablesError(searchPaths []string) error {
	return errors.New(errors.ErrCodeTechNotFound,
		"no PDK tables found (searched: %s)", strings.Join(searchPaths, ", "))
}

// unknownTechError lists what is available when a technology misses.
func unknownTechError(techName string, available []string) error {
	return errors.New(errors.ErrCodeTechNotFound,
		"no PDK table for technology %q (available: %s)", techName, strings.Join(available, ", "))
}
