// Package prefs persists the user's pin options between sessions.
//
// The host editor remembers the last label text, box size, and selected
// short layer name so the dock comes back up the way the user left it.
// Preferences live in a small TOML file under the user config directory
// (e.g. ~/.config/pintool/config.toml); a missing file means defaults.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
	"github.com/iic-jku/klayout-pin-tool/pkg/placement"
)

// appName names the config subdirectory.
const appName = "pintool"

// Prefs are the persisted pin options. Width and height are micrometers.
type Prefs struct {
	ShortLayerName string  `toml:"short_layer_name,omitempty"` // last selected layer, empty if none
	PinLabel       string  `toml:"pin_label"`
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
}

// Default returns the out-of-the-box preferences.
func Default() Prefs {
	return Prefs{
		PinLabel: placement.DefaultLabel,
		Width:    placement.DefaultWidth,
		Height:   placement.DefaultHeight,
	}
}

// Options converts the preferences into placement options.
func (p Prefs) Options() placement.Options {
	return placement.Options{Label: p.PinLabel, Width: p.Width, Height: p.Height}
}

// Path returns the preference file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// Load reads the preference file at path. A missing file yields defaults;
// an unparseable file is reported with the MALFORMED_CONFIG code so the
// caller can warn and fall back rather than die.
func Load(path string) (Prefs, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, errors.Wrap(errors.ErrCodeMalformedConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeMalformedConfig, err, "parse %s", path)
	}
	return p, nil
}

// Save writes the preferences to path, creating parent directories.
func Save(p Prefs, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(p)
}
