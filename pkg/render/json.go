package render

import (
	"encoding/json"

	"github.com/gridpush/gridpush/pkg/board"
)

type jsonOutput struct {
	BoardID  string      `json:"boardId,omitempty"`
	Name     string      `json:"name,omitempty"`
	Columns  int         `json:"columns"`
	Rows     int         `json:"rows"`
	CellSize int         `json:"cellSize"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Blocks   []jsonBlock `json:"blocks"`
}

type jsonBlock struct {
	ID     string `json:"componentId"`
	Type   string `json:"componentType,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Fill   string `json:"fill"`
}

// JSON exports the resolved render geometry as a pretty-printed document:
// the frame dimensions in rows and pixels plus every component with its cell
// rectangle and assigned fill. Frontends that draw boards themselves consume
// this instead of the SVG.
func JSON(b *board.Board, opts Options) ([]byte, error) {
	opts.setDefaults()
	f := frameFor(b, opts)

	components := sortedComponents(b.Components)
	blocks := make([]jsonBlock, 0, len(components))
	for _, c := range components {
		blocks = append(blocks, jsonBlock{
			ID:     c.ID,
			Type:   c.Type,
			X:      c.X,
			Y:      c.Y,
			Width:  c.Width,
			Height: c.Height,
			Fill:   FillForType(c.Type),
		})
	}

	out := jsonOutput{
		BoardID:  b.ID,
		Name:     b.Name,
		Columns:  f.Columns,
		Rows:     f.Rows,
		CellSize: f.CellSize,
		Width:    f.Width(),
		Height:   f.Height(),
		Blocks:   blocks,
	}
	return json.MarshalIndent(out, "", "  ")
}
