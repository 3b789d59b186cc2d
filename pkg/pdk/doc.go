// Package pdk provides the per-technology pin-layer resolution model.
//
// Each fabrication technology ships a table that declares named layer groups
// (aliases for sets of concrete drawing layers) and pin-layer entries that tie
// a short, human-facing layer identity to the groups a pin box and its label
// must be drawn on.
//
// # Core Types
//
//   - [Table]: one technology's full rule table, immutable after load
//   - [LayerGroup]: a named alias for a set of concrete layer names
//   - [PinLayerInfo]: short name plus related/pin/label group references
//   - [Registry]: all tables discovered on disk, indexed by technology name
//
// # Resolution
//
// The central query is [Table.Resolve]: given the layer the user has selected
// in the host editor, find the entry that governs pin placement on it. An
// exact short-name match always wins; otherwise the entry whose expanded
// related, pin, or label groups contain the layer is returned. A miss is an
// ordinary answer, not an error; the surrounding tool prompts the user.
//
// # File Format
//
// Tables are hand-maintained JSON files, one per technology:
//
//	{
//	    "tech_name": "sg13g2",
//	    "layer_group_definitions": [
//	        {"name": "Metal1.PinLayers", "layers": ["Metal1.pin"]}
//	    ],
//	    "pin_layer_infos": [
//	        {
//	            "short_layer_name": "Metal1",
//	            "related_layers": ["Metal1.RelatedLayers"],
//	            "pin_layers": ["Metal1.PinLayers"],
//	            "label_layers": ["Metal1.LabelLayers"]
//	        }
//	    ]
//	}
//
// Field names are part of the external contract and round-trip exactly.
//
// # Concurrency
//
// Tables and registries are read-only after construction and safe for any
// number of concurrent readers. Hot reload means building a fresh [Registry]
// with [Load] and swapping the pointer; tables are never mutated in place.
package pdk
