package pdk

import (
	"fmt"
	"slices"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
)

// LayerGroup is a named alias for a set of concrete drawing layers.
// Membership is what matters to consumers; the stored order is only kept
// for round-trip fidelity with the file on disk.
type LayerGroup struct {
	Name   string   `json:"name"`
	Layers []string `json:"layers"`
}

// PinLayerInfo ties a short layer identity (e.g. "Metal1") to three group
// references: the layers that count as the same logical layer for selection
// (RelatedLayers), the layers a pin box is drawn on (PinLayers), and the
// layers the label text is drawn on (LabelLayers).
type PinLayerInfo struct {
	ShortLayerName string   `json:"short_layer_name"`
	RelatedLayers  []string `json:"related_layers"`
	PinLayers      []string `json:"pin_layers"`
	LabelLayers    []string `json:"label_layers"`
}

// Table is one technology's pin-layer rule table. It is loaded wholesale
// from a JSON file and never mutated afterwards.
type Table struct {
	TechName string         `json:"tech_name"`
	Groups   []LayerGroup   `json:"layer_group_definitions"`
	PinInfos []PinLayerInfo `json:"pin_layer_infos"`
}

// GroupsByName returns the table's groups whose name appears in names,
// in the table's stored order. Unknown names are silently ignored; names
// is treated as a set, so duplicates have no effect.
func (t *Table) GroupsByName(names []string) []LayerGroup {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var out []LayerGroup
	for _, g := range t.Groups {
		if want[g.Name] {
			out = append(out, g)
		}
	}
	return out
}

// LayersOfGroups expands the named groups and returns the deduplicated
// union of their layers, sorted for deterministic output. Callers must not
// attach meaning to the order. Unknown names expand to nothing.
func (t *Table) LayersOfGroups(names []string) []string {
	seen := make(map[string]bool)
	for _, g := range t.GroupsByName(names) {
		for _, l := range g.Layers {
			seen[l] = true
		}
	}

	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Resolve finds the pin-layer entry governing the given concrete layer.
//
// An exact short-name match over all entries wins first, so "Metal1" hits
// the Metal1 entry without any group expansion. Otherwise each entry's
// related, pin, and label groups are expanded in stored order and the first
// entry containing the layer is returned. The union is computed lazily per
// query; tables hold tens of entries, so there is nothing worth caching.
//
// A miss returns (nil, false) and means "no known pin rule for this layer",
// which callers surface as a prompt, not a failure.
func (t *Table) Resolve(layer string) (*PinLayerInfo, bool) {
	for i := range t.PinInfos {
		if t.PinInfos[i].ShortLayerName == layer {
			return &t.PinInfos[i], true
		}
	}

	for i := range t.PinInfos {
		info := &t.PinInfos[i]
		names := make([]string, 0, len(info.RelatedLayers)+len(info.PinLayers)+len(info.LabelLayers))
		names = append(names, info.RelatedLayers...)
		names = append(names, info.PinLayers...)
		names = append(names, info.LabelLayers...)
		if slices.Contains(t.LayersOfGroups(names), layer) {
			return info, true
		}
	}

	return nil, false
}

// AllLayers returns every concrete layer mentioned by any group in the
// table, deduplicated and sorted.
func (t *Table) AllLayers() []string {
	seen := make(map[string]bool)
	for _, g := range t.Groups {
		for _, l := range g.Layers {
			seen[l] = true
		}
	}

	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Validate checks the structural invariants the file format promises:
// a non-empty technology name, named groups with non-null layer lists,
// unique group names, and unique, non-empty short layer names. Group
// references inside pin entries are deliberately not checked; unknown
// group names are legal and expand to nothing.
func (t *Table) Validate() error {
	if t.TechName == "" {
		return errors.New(errors.ErrCodeInvalidTable, "missing tech_name")
	}

	groupNames := make(map[string]bool, len(t.Groups))
	for i, g := range t.Groups {
		if g.Name == "" {
			return errors.New(errors.ErrCodeInvalidTable, "layer_group_definitions[%d]: missing name", i)
		}
		if groupNames[g.Name] {
			return errors.New(errors.ErrCodeInvalidTable, "duplicate layer group %q", g.Name)
		}
		groupNames[g.Name] = true
		if g.Layers == nil {
			return errors.New(errors.ErrCodeInvalidTable, "layer group %q: layers must not be null", g.Name)
		}
	}

	shortNames := make(map[string]bool, len(t.PinInfos))
	for i, info := range t.PinInfos {
		if info.ShortLayerName == "" {
			return errors.New(errors.ErrCodeInvalidTable, "pin_layer_infos[%d]: missing short_layer_name", i)
		}
		if shortNames[info.ShortLayerName] {
			return errors.New(errors.ErrCodeInvalidTable, "duplicate pin layer entry %q", info.ShortLayerName)
		}
		shortNames[info.ShortLayerName] = true
		for _, f := range []struct {
			field string
			list  []string
		}{
			{"related_layers", info.RelatedLayers},
			{"pin_layers", info.PinLayers},
			{"label_layers", info.LabelLayers},
		} {
			if f.list == nil {
				return errors.New(errors.ErrCodeInvalidTable, "pin layer entry %q: %s must not be null", info.ShortLayerName, f.field)
			}
		}
	}

	return nil
}

// String returns a short human-readable summary, e.g. "sg13g2 (27 groups, 11 pin layers)".
func (t *Table) String() string {
	return fmt.Sprintf("%s (%d groups, %d pin layers)", t.TechName, len(t.Groups), len(t.PinInfos))
}
