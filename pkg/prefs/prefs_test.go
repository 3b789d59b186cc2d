package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", p, Default())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	want := Prefs{
		ShortLayerName: "Metal2",
		PinLabel:       "VSS",
		Width:          0.5,
		Height:         0.25,
	}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != want {
		t.Errorf("round-trip = %+v, want %+v", got, want)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("pin_label = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err == nil {
		t.Fatal("Load() on malformed file succeeded")
	}
	if !errors.Is(err, errors.ErrCodeMalformedConfig) {
		t.Errorf("error code = %v, want MALFORMED_CONFIG", errors.GetCode(err))
	}
	// Caller still gets something usable.
	if p != Default() {
		t.Errorf("fallback = %+v, want defaults", p)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := Default().Options()
	if opts.Label != "pin_name" || opts.Width != 0.13 || opts.Height != 0.13 {
		t.Errorf("Options() = %+v", opts)
	}
}
