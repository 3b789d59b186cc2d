package pdk_test

import (
	"fmt"

	"github.com/iic-jku/klayout-pin-tool/pkg/pdk"
)

func ExampleTable_Resolve() {
	tbl := &pdk.Table{
		TechName: "demo",
		Groups: []pdk.LayerGroup{
			{Name: "Metal1.PinLayers", Layers: []string{"Metal1.pin"}},
			{Name: "Metal1.LabelLayers", Layers: []string{"Metal1.text"}},
			{Name: "Metal1.RelatedLayers", Layers: []string{"Metal1.drawing", "Metal1.pin", "Metal1.text"}},
		},
		PinInfos: []pdk.PinLayerInfo{
			{
				ShortLayerName: "Metal1",
				RelatedLayers:  []string{"Metal1.RelatedLayers"},
				PinLayers:      []string{"Metal1.PinLayers"},
				LabelLayers:    []string{"Metal1.LabelLayers"},
			},
		},
	}

	// The user clicked with Metal1 selected in the editor.
	info, ok := tbl.Resolve("Metal1")
	fmt.Println("resolved:", ok)
	fmt.Println("pin boxes on:", tbl.LayersOfGroups(info.PinLayers))
	fmt.Println("labels on:", tbl.LayersOfGroups(info.LabelLayers))

	// Selecting any related drawing layer finds the same entry.
	byDrawing, _ := tbl.Resolve("Metal1.drawing")
	fmt.Println("via drawing layer:", byDrawing.ShortLayerName)
	// Output:
	// resolved: true
	// pin boxes on: [Metal1.pin]
	// labels on: [Metal1.text]
	// via drawing layer: Metal1
}

func ExampleLoad() {
	reg := pdk.Load(pdk.LoadOptions{SearchPaths: []string{"/etc/pintool/pdks"}})

	if _, ok := reg.Lookup("sg13g2"); !ok {
		fmt.Println("no rule table for this technology")
	}
	// Output:
	// no rule table for this technology
}
