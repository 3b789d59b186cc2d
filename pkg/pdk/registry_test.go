package pdk

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// writeTableJSON writes a minimal valid table file declaring tech with a
// single marker group so tests can tell tables apart.
func writeTableJSON(t *testing.T, dir, filename, tech, marker string) string {
	t.Helper()
	content := fmt.Sprintf(`{
    "tech_name": %q,
    "layer_group_definitions": [
        {"name": %q, "layers": []}
    ],
    "pin_layer_infos": []
}`, tech, marker)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeTableJSON(t, dir, "a.json", "techA", "ga")
	writeTableJSON(t, dir, "b.json", "techB", "gb")

	reg := Load(LoadOptions{SearchPaths: []string{dir}})

	if got := reg.TechNames(); !slices.Equal(got, []string{"techA", "techB"}) {
		t.Fatalf("TechNames() = %v, want [techA techB]", got)
	}

	tbl, ok := reg.Lookup("techA")
	if !ok || tbl.TechName != "techA" {
		t.Errorf("Lookup(techA) = %v, %v", tbl, ok)
	}
	if src, ok := reg.Source("techA"); !ok || filepath.Base(src) != "a.json" {
		t.Errorf("Source(techA) = %q, %v", src, ok)
	}
	if len(reg.Diagnostics()) != 0 {
		t.Errorf("Diagnostics() = %v, want none", reg.Diagnostics())
	}
}

func TestLoadSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeTableJSON(t, dir, "good.json", "techA", "g")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	var logged []string
	reg := Load(LoadOptions{
		SearchPaths: []string{dir},
		Logger: func(msg string, args ...any) {
			logged = append(logged, fmt.Sprintf(msg, args...))
		},
	})

	if got := reg.TechNames(); !slices.Equal(got, []string{"techA"}) {
		t.Fatalf("TechNames() = %v, want [techA]", got)
	}

	diags := reg.Diagnostics()
	if len(diags) != 1 || diags[0].Path != bad {
		t.Fatalf("Diagnostics() = %v, want one entry for %s", diags, bad)
	}
	if len(logged) != 1 || !strings.Contains(logged[0], "bad.json") {
		t.Errorf("logged = %v, want one warning naming bad.json", logged)
	}
}

// When two files declare the same technology, the lexicographically later
// path must win, silently.
func TestLoadDuplicateTechLastWins(t *testing.T) {
	dir := t.TempDir()
	writeTableJSON(t, dir, "a.json", "x", "fromA")
	writeTableJSON(t, dir, "z.json", "x", "fromZ")

	reg := Load(LoadOptions{SearchPaths: []string{dir}})

	tbl, ok := reg.Lookup("x")
	if !ok {
		t.Fatal("Lookup(x) missed")
	}
	if tbl.Groups[0].Name != "fromZ" {
		t.Errorf("Lookup(x) came from %q, want the later file z.json", tbl.Groups[0].Name)
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
	if len(reg.Diagnostics()) != 0 {
		t.Errorf("duplicate tech raised diagnostics: %v", reg.Diagnostics())
	}
}

func TestLoadAcrossDirectories(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	writeTableJSON(t, dir1, "a.json", "techA", "g")
	writeTableJSON(t, dir2, "b.json", "techB", "g")

	// Duplicate search path entries must not double-load anything.
	reg := Load(LoadOptions{SearchPaths: []string{dir1, dir2, dir1}})

	if got := reg.TechNames(); !slices.Equal(got, []string{"techA", "techB"}) {
		t.Errorf("TechNames() = %v, want [techA techB]", got)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	reg := Load(LoadOptions{SearchPaths: []string{"/no/such/dir"}})

	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
	if len(reg.Diagnostics()) != 0 {
		t.Errorf("missing dir raised diagnostics: %v", reg.Diagnostics())
	}
	if _, ok := reg.Lookup("anything"); ok {
		t.Error("Lookup on empty registry returned a table")
	}
}

func TestLoadIgnoresNonTableFiles(t *testing.T) {
	dir := t.TempDir()
	writeTableJSON(t, dir, "a.json", "techA", "g")
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	reg := Load(LoadOptions{SearchPaths: []string{dir}})

	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
	if len(reg.Diagnostics()) != 0 {
		t.Errorf("Diagnostics() = %v, want none", reg.Diagnostics())
	}
}
