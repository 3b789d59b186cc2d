package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
	"github.com/iic-jku/klayout-pin-tool/pkg/pdk"
)

// validateCommand creates the "validate" command checking table files.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate PDK table files",
		Long: `Validate PDK table files.

Without arguments, every table file on the search path is checked the
way the registry loads them: broken files are reported and skipped,
and the command still succeeds. Naming files explicitly turns a
failure in any of them into a non-zero exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return c.validateFiles(args)
			}
			return c.validateSearchPath()
		},
	}
}

func (c *CLI) validateFiles(paths []string) error {
	failed := 0
	for _, path := range paths {
		t, err := pdk.ReadTableFile(path)
		if err != nil {
			printError("%s: %s", path, errors.UserMessage(err))
			failed++
			continue
		}
		printSuccess("%s: %s", path, t)
	}

	if failed > 0 {
		return errors.New(errors.ErrCodeMalformedTableFile, "%d of %d files failed validation", failed, len(paths))
	}
	return nil
}

func (c *CLI) validateSearchPath() error {
	prog := newProgress(c.Logger)
	reg := c.loadRegistry()
	prog.done(fmt.Sprintf("Checked search path, %d tables loadable", reg.Len()))

	for _, name := range reg.TechNames() {
		tbl, _ := reg.Lookup(name)
		src, _ := reg.Source(name)
		printSuccess("%s: %s", src, tbl)
	}
	for _, d := range reg.Diagnostics() {
		printError("%s: %s", d.Path, errors.UserMessage(d.Err))
	}

	if reg.Len() == 0 && len(reg.Diagnostics()) == 0 {
		printInfo("No table files found on the search path")
	}
	return nil
}
