package pdk

import "fmt"

// SG13G2 returns a ready-made table for the IHP sg13g2 open-source PDK.
// It is the starter table written by "pintool init" and doubles as a
// realistic fixture; edit the written file to adjust it to a local setup.
func SG13G2() *Table {
	metalLayers := func(name string) []string {
		return []string{name + ".drawing", name + ".pin", name + ".text", name + ".label"}
	}

	groups := []LayerGroup{
		{Name: "nBuLay.PinLayers", Layers: []string{"nBuLay.pin"}},
		{Name: "nBuLay.LabelLayers", Layers: []string{"nBuLay.label"}},
		{Name: "nBuLay.RelatedLayers", Layers: []string{
			"nBuLay.pin", "nBuLay.drawing", "nBuLay.label",
			"nBuLay.net", "nBuLay.boundary", "nBuLay.block"}},

		{Name: "NWell.PinLayers", Layers: []string{"NWell.pin"}},
		{Name: "NWell.LabelLayers", Layers: []string{"NWell.label"}},
		{Name: "NWell.RelatedLayers", Layers: []string{
			"NWell.pin", "NWell.drawing", "NWell.label",
			"NWell.net", "NWell.boundary"}},

		{Name: "GatPoly.PinLayers", Layers: []string{"GatPoly.pin"}},
		{Name: "GatPoly.LabelLayers", Layers: []string{"GatPoly.label"}},
		{Name: "GatPoly.RelatedLayers", Layers: []string{
			"GatPoly.pin", "GatPoly.drawing", "GatPoly.label",
			"GatPoly.net", "GatPoly.boundary", "GatPoly.nofill"}},
	}

	// Metal1 additionally carries the diff-probe layer.
	groups = append(groups,
		LayerGroup{Name: "Metal1.PinLayers", Layers: []string{"Metal1.pin"}},
		LayerGroup{Name: "Metal1.LabelLayers", Layers: []string{"Metal1.text"}},
		LayerGroup{Name: "Metal1.RelatedLayers", Layers: append(metalLayers("Metal1"), "Metal1.diffprb")},
	)
	for i := 2; i <= 5; i++ {
		name := fmt.Sprintf("Metal%d", i)
		groups = append(groups,
			LayerGroup{Name: name + ".PinLayers", Layers: []string{name + ".pin"}},
			LayerGroup{Name: name + ".LabelLayers", Layers: []string{name + ".text"}},
			LayerGroup{Name: name + ".RelatedLayers", Layers: metalLayers(name)},
		)
	}
	for i := 1; i <= 2; i++ {
		name := fmt.Sprintf("TopMetal%d", i)
		groups = append(groups,
			LayerGroup{Name: name + ".PinLayers", Layers: []string{name + ".pin"}},
			LayerGroup{Name: name + ".LabelLayers", Layers: []string{name + ".text"}},
			LayerGroup{Name: name + ".RelatedLayers", Layers: metalLayers(name)},
		)
	}
	groups = append(groups,
		LayerGroup{Name: "IND.PinLayers", Layers: []string{"IND.pin"}},
		LayerGroup{Name: "IND.LabelLayers", Layers: []string{"IND.text"}},
		LayerGroup{Name: "IND.RelatedLayers", Layers: []string{"IND.pin", "IND.drawing", "IND.text"}},
	)

	shortNames := []string{
		"nBuLay", "NWell", "GatPoly",
		"Metal1", "Metal2", "Metal3", "Metal4", "Metal5",
		"TopMetal1", "TopMetal2", "IND",
	}
	infos := make([]PinLayerInfo, 0, len(shortNames))
	for _, n := range shortNames {
		infos = append(infos, PinLayerInfo{
			ShortLayerName: n,
			RelatedLayers:  []string{n + ".RelatedLayers"},
			PinLayers:      []string{n + ".PinLayers"},
			LabelLayers:    []string{n + ".LabelLayers"},
		})
	}

	return &Table{
		TechName: "sg13g2",
		Groups:   groups,
		PinInfos: infos,
	}
}
