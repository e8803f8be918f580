// Package board defines the persisted dashboard document and its codecs.
//
// This package sits at the serialization boundary: [Board] is the canonical
// wire format shared by JSON files, API responses, and stored documents. The
// embedded components use the fixed frontend interchange shape from
// [github.com/gridpush/gridpush/pkg/grid].
//
// # Serialization
//
// Boards use a flat JSON document:
//
//	{
//	  "id": "2f1f6c58-...",
//	  "name": "ops overview",
//	  "components": [
//	    {"componentId": "cpu", "componentType": "chart", "x": 0, "y": 0, "width": 6, "height": 2}
//	  ]
//	}
//
// Use [MarshalBoard]/[UnmarshalBoard] for in-memory data and
// [ReadBoardFile]/[WriteBoardFile] for files. Decoding rejects boards with
// empty or duplicate component IDs.
//
// # Legacy Format
//
// Early dashboards stored rows of bare components with no geometry.
// [ParseLegacyRows] and [FromLegacyRows] convert that format onto the grid:
// one legacy row per grid row, widths split evenly with the remainder going
// to the leading components. The conversion is arithmetic only; run
// the validator on the result before trusting it.
package board
