// Package viz renders a technology's layer-group structure as a diagram.
//
// Tables are small but their indirection (pin entry → groups → concrete
// layers) is easy to get wrong when hand-editing the JSON; a picture of
// which entry fans out to which layers makes review much faster. The
// package emits Graphviz DOT and can render it to SVG in-process.
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/iic-jku/klayout-pin-tool/pkg/pdk"
)

// Options configures diagram generation.
type Options struct {
	// Related includes the related-layer groups. They dominate the picture
	// for big tables, so they are off by default.
	Related bool
}

// ToDOT converts a table to Graphviz DOT. Pin entries are boxes, groups
// are ellipses, concrete layers are plain text; edges follow the
// resolution path entry → group → layer. Render with [RenderSVG].
func ToDOT(t *pdk.Table, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pdk {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12];\n")
	fmt.Fprintf(&buf, "  label=%q;\n", t.TechName)
	buf.WriteString("\n")

	groupRefs := make(map[string]bool)
	for _, info := range t.PinInfos {
		fmt.Fprintf(&buf, "  %q [shape=box, style=\"rounded,filled\", fillcolor=lightblue];\n", "pin:"+info.ShortLayerName)
		for _, set := range groupSets(info, opts) {
			for _, g := range set {
				groupRefs[g] = true
				fmt.Fprintf(&buf, "  %q -> %q;\n", "pin:"+info.ShortLayerName, "group:"+g)
			}
		}
	}

	buf.WriteString("\n")
	for _, g := range t.Groups {
		if !groupRefs[g.Name] {
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse];\n", "group:"+g.Name, g.Name)
		for _, l := range g.Layers {
			fmt.Fprintf(&buf, "  %q [label=%q, shape=plaintext];\n", "layer:"+l, l)
			fmt.Fprintf(&buf, "  %q -> %q;\n", "group:"+g.Name, "layer:"+l)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func groupSets(info pdk.PinLayerInfo, opts Options) [][]string {
	sets := [][]string{info.PinLayers, info.LabelLayers}
	if opts.Related {
		sets = append(sets, info.RelatedLayers)
	}
	return sets
}

// RenderSVG renders a DOT diagram to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
