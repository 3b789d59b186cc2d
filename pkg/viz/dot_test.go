package viz

import (
	"strings"
	"testing"

	"github.com/iic-jku/klayout-pin-tool/pkg/pdk"
)

func testTable() *pdk.Table {
	return &pdk.Table{
		TechName: "demo",
		Groups: []pdk.LayerGroup{
			{Name: "M1.PinLayers", Layers: []string{"Metal1.pin"}},
			{Name: "M1.LabelLayers", Layers: []string{"Metal1.text"}},
			{Name: "M1.RelatedLayers", Layers: []string{"Metal1.drawing"}},
		},
		PinInfos: []pdk.PinLayerInfo{
			{
				ShortLayerName: "Metal1",
				RelatedLayers:  []string{"M1.RelatedLayers"},
				PinLayers:      []string{"M1.PinLayers"},
				LabelLayers:    []string{"M1.LabelLayers"},
			},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testTable(), Options{})

	for _, want := range []string{
		"digraph pdk {",
		`label="demo"`,
		`"pin:Metal1"`,
		`"pin:Metal1" -> "group:M1.PinLayers"`,
		`"group:M1.PinLayers" -> "layer:Metal1.pin"`,
		`"group:M1.LabelLayers" -> "layer:Metal1.text"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}

	// Related groups stay out of the picture unless asked for.
	if strings.Contains(dot, "M1.RelatedLayers") {
		t.Error("related groups rendered without Options.Related")
	}
}

func TestToDOTRelated(t *testing.T) {
	dot := ToDOT(testTable(), Options{Related: true})

	if !strings.Contains(dot, `"group:M1.RelatedLayers" -> "layer:Metal1.drawing"`) {
		t.Errorf("related groups missing with Options.Related:\n%s", dot)
	}
}

func TestToDOTSkipsUnreferencedGroups(t *testing.T) {
	tbl := testTable()
	tbl.Groups = append(tbl.Groups, pdk.LayerGroup{Name: "Orphan", Layers: []string{"x"}})

	if dot := ToDOT(tbl, Options{}); strings.Contains(dot, "Orphan") {
		t.Error("unreferenced group rendered")
	}
}
