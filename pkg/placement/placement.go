// Package placement turns a resolved pin-layer entry into the concrete set
// of box and label insertions the host editor must perform for one click.
//
// The package is pure planning: it expands the entry's pin and label groups
// against a table, checks every target layer against the layers the host
// currently has loaded, and either returns a complete [Plan] or fails as a
// whole. The host applies a plan inside a single edit transaction, so a
// partial pin (box on Metal1.pin but no label on Metal1.text) can never
// reach the layout.
package placement

import (
	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
	"github.com/iic-jku/klayout-pin-tool/pkg/pdk"
)

// Defaults for pin options, in micrometers.
const (
	DefaultLabel  = "pin_name"
	DefaultWidth  = 0.13
	DefaultHeight = 0.13
)

// Point is a location in the layout, in micrometers.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Box is an axis-aligned rectangle in micrometers.
type Box struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
}

// BoxAround returns the w×h box centered on p.
func BoxAround(p Point, w, h float64) Box {
	return Box{
		Left:   p.X - w/2,
		Bottom: p.Y - h/2,
		Right:  p.X + w/2,
		Top:    p.Y + h/2,
	}
}

// Options carries the user-facing pin parameters.
// Zero values fall back to [DefaultLabel], [DefaultWidth], [DefaultHeight].
type Options struct {
	Label  string
	Width  float64
	Height float64
}

func (o Options) withDefaults() Options {
	if o.Label == "" {
		o.Label = DefaultLabel
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// LayerSet answers whether the host currently has a concrete layer loaded.
// The host's layer list is the authority here; a table may reference layers
// the open layout does not carry.
type LayerSet interface {
	Contains(layer string) bool
}

// StringSet is a LayerSet over a fixed list of layer names.
type StringSet map[string]bool

// NewStringSet builds a StringSet from layer names.
func NewStringSet(layers ...string) StringSet {
	s := make(StringSet, len(layers))
	for _, l := range layers {
		s[l] = true
	}
	return s
}

// Contains reports whether the layer is in the set.
func (s StringSet) Contains(layer string) bool { return s[layer] }

// AllLayers is a LayerSet that contains everything. Useful when planning
// against a table alone, without a live host layer list.
type AllLayers struct{}

// Contains always reports true.
func (AllLayers) Contains(string) bool { return true }

// BoxPlacement is one rectangle to insert on one layer.
type BoxPlacement struct {
	Layer string `json:"layer"`
	Box   Box    `json:"box"`
}

// LabelPlacement is one text label to insert on one layer.
type LabelPlacement struct {
	Layer string `json:"layer"`
	Text  string `json:"text"`
	At    Point  `json:"at"`
}

// Plan is the complete set of insertions for a single pin click.
type Plan struct {
	Tech           string           `json:"tech"`
	ShortLayerName string           `json:"short_layer_name"`
	Boxes          []BoxPlacement   `json:"boxes"`
	Labels         []LabelPlacement `json:"labels"`
}

// Plan computes the placements for putting a pin at the given point.
//
// The entry's pin groups receive a box centered on at, sized per opts; the
// label groups receive the label text anchored at the same point. If any
// target layer is not in available, the whole plan fails with a
// LAYER_NOT_FOUND error naming that layer. No partial plan is ever
// returned, mirroring the all-or-nothing edit transaction on the host side.
func New(t *pdk.Table, info *pdk.PinLayerInfo, at Point, opts Options, available LayerSet) (*Plan, error) {
	if info == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no pin layer entry given")
	}
	opts = opts.withDefaults()

	pinLayers := t.LayersOfGroups(info.PinLayers)
	labelLayers := t.LayersOfGroups(info.LabelLayers)
	for _, l := range pinLayers {
		if !available.Contains(l) {
			return nil, errors.New(errors.ErrCodeLayerNotFound, "layer %q is not present in the current layout", l)
		}
	}
	for _, l := range labelLayers {
		if !available.Contains(l) {
			return nil, errors.New(errors.ErrCodeLayerNotFound, "layer %q is not present in the current layout", l)
		}
	}

	plan := &Plan{
		Tech:           t.TechName,
		ShortLayerName: info.ShortLayerName,
	}
	box := BoxAround(at, opts.Width, opts.Height)
	for _, l := range pinLayers {
		plan.Boxes = append(plan.Boxes, BoxPlacement{Layer: l, Box: box})
	}
	for _, l := range labelLayers {
		plan.Labels = append(plan.Labels, LabelPlacement{Layer: l, Text: opts.Label, At: at})
	}

	return plan, nil
}
