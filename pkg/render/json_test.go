package render

import (
	"encoding/json"
	"testing"

	"github.com/gridpush/gridpush/pkg/board"
)

func TestJSONGeometry(t *testing.T) {
	data, err := JSON(testBoard(), Options{})
	if err != nil {
		t.Fatalf("JSON() = %v", err)
	}

	var out struct {
		BoardID  string `json:"boardId"`
		Columns  int    `json:"columns"`
		Rows     int    `json:"rows"`
		CellSize int    `json:"cellSize"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
		Blocks   []struct {
			ID     string `json:"componentId"`
			Type   string `json:"componentType"`
			X      int    `json:"x"`
			Y      int    `json:"y"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
			Fill   string `json:"fill"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if out.BoardID != "dash-1" {
		t.Errorf("boardId = %q, want dash-1", out.BoardID)
	}
	if out.Columns != 12 || out.Rows != 8 || out.CellSize != DefaultCellSize {
		t.Errorf("frame = %d cols x %d rows at %dpx, want 12x8 at %d",
			out.Columns, out.Rows, out.CellSize, DefaultCellSize)
	}
	if out.Width != 480 || out.Height != 320 {
		t.Errorf("pixel frame = %dx%d, want 480x320", out.Width, out.Height)
	}

	if len(out.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(out.Blocks))
	}
	// Blocks are sorted by component ID.
	if out.Blocks[0].ID != "cpu" || out.Blocks[1].ID != "logs" || out.Blocks[2].ID != "mem" {
		t.Errorf("block order = %s, %s, %s; want cpu, logs, mem",
			out.Blocks[0].ID, out.Blocks[1].ID, out.Blocks[2].ID)
	}

	cpu := out.Blocks[0]
	if cpu.X != 0 || cpu.Y != 0 || cpu.Width != 6 || cpu.Height != 2 {
		t.Errorf("cpu rect = (%d,%d) %dx%d, want (0,0) 6x2", cpu.X, cpu.Y, cpu.Width, cpu.Height)
	}
	if cpu.Fill != FillForType("chart") {
		t.Errorf("cpu fill = %q, want %q", cpu.Fill, FillForType("chart"))
	}
}

func TestJSONEmptyBoard(t *testing.T) {
	data, err := JSON(&board.Board{ID: "empty"}, Options{})
	if err != nil {
		t.Fatalf("JSON() = %v", err)
	}

	var out struct {
		Rows   int               `json:"rows"`
		Blocks []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Rows != DefaultMinRows {
		t.Errorf("rows = %d, want %d", out.Rows, DefaultMinRows)
	}
	if len(out.Blocks) != 0 {
		t.Errorf("blocks = %d, want 0", len(out.Blocks))
	}
}
