// Package cli implements the pintool command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iic-jku/klayout-pin-tool/pkg/buildinfo"
	"github.com/iic-jku/klayout-pin-tool/pkg/pdk"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pintool"

	// pdkPathEnv holds extra table directories, separated like $PATH.
	pdkPathEnv = "PINTOOL_PDK_PATH"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// pdkDirs are the --pdk-dir flag values, consulted before the
	// environment and default locations.
	pdkDirs []string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pintool",
		Short:        "Pintool resolves and places pins from PDK layer tables",
		Long:         `Pintool works with per-technology PDK tables that map a selected layer to the layers a pin box and its label belong on. It lists and validates the tables, resolves layers the way the layout editor plugin does, and plans pin placements.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringArrayVar(&c.pdkDirs, "pdk-dir", nil, "additional directory with PDK table files (repeatable)")

	// Register all subcommands
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Registry Loading
// =============================================================================

// loadRegistry scans the effective search paths and reports skipped files
// through the CLI logger.
func (c *CLI) loadRegistry() *pdk.Registry {
	paths := c.searchPaths()
	c.Logger.Debugf("Scanning for PDK tables in %s", strings.Join(paths, ", "))

	return pdk.Load(pdk.LoadOptions{
		SearchPaths: paths,
		Logger: func(msg string, args ...any) {
			c.Logger.Warnf(msg, args...)
		},
	})
}

// lookupTable loads the registry and resolves one technology, with a
// friendly error listing what is available on a miss.
func (c *CLI) lookupTable(techName string) (*pdk.Table, error) {
	reg := c.loadRegistry()
	if t, ok := reg.Lookup(techName); ok {
		return t, nil
	}

	if reg.Len() == 0 {
		return nil, noTablesError(c.searchPaths())
	}
	return nil, unknownTechError(techName, reg.TechNames())
}

// searchPaths assembles the table directories: --pdk-dir flags, then
// $PINTOOL_PDK_PATH entries, then the per-user default directory.
// Duplicate technology declarations across all of them resolve by
// lexicographic file path, last one wins.
func (c *CLI) searchPaths() []string {
	var paths []string
	paths = append(paths, c.pdkDirs...)

	if env := os.Getenv(pdkPathEnv); env != "" {
		for _, p := range filepath.SplitList(env) {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}

	if dir, err := defaultPDKDir(); err == nil {
		paths = append(paths, dir)
	}

	return paths
}

// defaultPDKDir is the per-user table directory, e.g. ~/.config/pintool/pdks.
func defaultPDKDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "pdks"), nil
}
