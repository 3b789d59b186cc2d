package pdk

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Diagnostic records one table file the registry could not load.
type Diagnostic struct {
	Path string // Offending file
	Err  error  // Why it was skipped
}

// LoadOptions configures registry construction.
type LoadOptions struct {
	// SearchPaths are the directories scanned for table files.
	// Missing or unreadable directories contribute no files.
	SearchPaths []string

	// Logger receives a warning per skipped file. Nil disables logging;
	// skipped files are still recorded as diagnostics either way.
	Logger func(msg string, args ...any)
}

// Registry indexes all loaded tables by technology name. It owns the
// tables; consumers get read-only references via Lookup. A registry is
// immutable after Load and safe for concurrent readers.
type Registry struct {
	tables      map[string]*Table
	sources     map[string]string // tech name -> file it was loaded from
	diagnostics []Diagnostic
}

// Load scans the search paths for table files and builds a registry.
//
// Paths are deduplicated and processed in lexicographic order, so when two
// files declare the same tech_name the lexicographically later path wins,
// deterministically and without raising an error (the duplicate may be an
// intended override). A file that fails to parse is logged, recorded as a
// diagnostic, and skipped; it never aborts the rest of the load. Zero
// loadable files yield an empty registry, not an error.
func Load(opts LoadOptions) *Registry {
	reg := &Registry{
		tables:  make(map[string]*Table),
		sources: make(map[string]string),
	}

	for _, path := range discoverFiles(opts.SearchPaths) {
		t, err := ReadTableFile(path)
		if err != nil {
			if opts.Logger != nil {
				opts.Logger("Skipping table file %s: %v", path, err)
			}
			reg.diagnostics = append(reg.diagnostics, Diagnostic{Path: path, Err: err})
			continue
		}
		reg.tables[t.TechName] = t
		reg.sources[t.TechName] = path
	}

	return reg
}

// discoverFiles enumerates table files across the given directories,
// deduplicated and sorted lexicographically by full path.
func discoverFiles(dirs []string) []string {
	seen := make(map[string]bool)
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // missing dir is an empty file list, not an error
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), TableFileExt) {
				continue
			}
			seen[filepath.Join(dir, e.Name())] = true
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	slices.Sort(files)
	return files
}

// Lookup returns the table for the given technology name.
// A miss is an ordinary answer: there simply is no rule table for that
// technology, and callers present that as a normal state.
func (r *Registry) Lookup(techName string) (*Table, bool) {
	t, ok := r.tables[techName]
	return t, ok
}

// Source returns the file path a technology's table was loaded from.
func (r *Registry) Source(techName string) (string, bool) {
	p, ok := r.sources[techName]
	return p, ok
}

// TechNames returns the loaded technology names in sorted order.
func (r *Registry) TechNames() []string {
	names := make([]string, 0, len(r.tables))
	for n := range r.tables {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of loaded tables.
func (r *Registry) Len() int { return len(r.tables) }

// Diagnostics returns the load failures recorded while building the
// registry, in discovery order.
func (r *Registry) Diagnostics() []Diagnostic {
	return slices.Clone(r.diagnostics)
}
