package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/grid"
)

// keyMsg builds the message for a single key, named as tea.KeyMsg.String()
// reports it.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds key presses through Update and returns the resulting model.
func press(t *testing.T, m editorModel, keys ...string) editorModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(editorModel)
		if !ok {
			t.Fatalf("Update returned %T, want editorModel", next)
		}
	}
	return m
}

// editorFixture builds an editor over an in-memory board with saving stubbed
// out, so no test touches the filesystem.
func editorFixture(components ...grid.Component) editorModel {
	b := board.New("editor-test")
	b.Components = components
	m := newEditorModel(b, "test.board.json")
	m.save = func(*board.Board) error { return nil }
	return m
}

func TestEditorSelectCycles(t *testing.T) {
	m := editorFixture(
		grid.Component{ID: "cpu", Type: "chart", X: 0, Y: 0, Width: 2, Height: 2},
		grid.Component{ID: "mem", Type: "chart", X: 2, Y: 0, Width: 2, Height: 2},
	)

	if m.selected != 0 {
		t.Fatalf("initial selection = %d, want 0", m.selected)
	}

	m = press(t, m, "tab")
	if m.selected != 1 {
		t.Errorf("after tab: selected = %d, want 1", m.selected)
	}

	m = press(t, m, "tab")
	if m.selected != 0 {
		t.Errorf("after second tab: selected = %d, want 0 (wrapped)", m.selected)
	}

	m = press(t, m, "shift+tab")
	if m.selected != 1 {
		t.Errorf("after shift+tab: selected = %d, want 1 (wrapped back)", m.selected)
	}
}

func TestEditorEmptyBoardKeysAreSafe(t *testing.T) {
	m := editorFixture()

	if m.selected != -1 {
		t.Fatalf("selected = %d, want -1 for empty board", m.selected)
	}

	// Nothing selected, so movement, resize, and delete keys must all be
	// no-ops rather than panics.
	m = press(t, m, "tab", "down", "left", "+", "-", "<", ">", "[", "]", "d")

	if m.selected != -1 {
		t.Errorf("selected = %d, want -1", m.selected)
	}
	if m.dirty {
		t.Error("board marked dirty by no-op keys")
	}
}

func TestEditorMoveKeys(t *testing.T) {
	m := editorFixture(
		grid.Component{ID: "cpu", Type: "chart", X: 0, Y: 0, Width: 2, Height: 2},
		grid.Component{ID: "mem", Type: "chart", X: 2, Y: 0, Width: 2, Height: 2},
	)

	m = press(t, m, "j")

	cpu := component(t, m.board, "cpu")
	if cpu.X != 0 || cpu.Y != 1 {
		t.Errorf("cpu at (%d,%d), want (0,1)", cpu.X, cpu.Y)
	}
	if !m.dirty {
		t.Error("move did not mark the board dirty")
	}

	// Arrow keys and vi keys are interchangeable.
	m = press(t, m, "up")
	cpu = component(t, m.board, "cpu")
	if cpu.Y != 0 {
		t.Errorf("cpu.Y = %d, want 0 after up", cpu.Y)
	}
}

func TestEditorMoveClampsAtEdges(t *testing.T) {
	m := editorFixture(
		grid.Component{ID: "cpu", Type: "chart", X: 0, Y: 0, Width: 2, Height: 2},
	)

	// Already at the top-left corner: both keys clamp to the current cell
	// and skip the engine call entirely.
	m = press(t, m, "k", "h")

	cpu := component(t, m.board, "cpu")
	if cpu.X != 0 || cpu.Y != 0 {
		t.Errorf("cpu at (%d,%d), want (0,0)", cpu.X, cpu.Y)
	}
	if m.dirty {
		t.Error("clamped move marked the board dirty")
	}
}

func TestEditorResizeWidthPushesNeighbor(t *testing.T) {
	m := editorFixture(
		grid.Component{ID: "cpu", Type: "chart", X: 0, Y: 0, Width: 2, Height: 2},
		grid.Component{ID: "mem", Type: "chart", X: 2, Y: 0, Width: 2, Height: 2},
	)

	m = press(t, m, "+")

	cpu := component(t, m.board, "cpu")
	mem := component(t, m.board, "mem")
	if cpu.Width != 3 {
		t.Errorf("cpu.Width = %d, want 3", cpu.Width)
	}
	if mem.X != 3 {
		t.Errorf("mem.X = %d, want 3 (pushed right)", mem.X)
	}
	if !m.dirty {
		t.Error("resize did not mark the board dirty")
	}
}

func TestEditorRejectionKeepsBoard(t *testing.T) {
	m := editorFixture(
		grid.Component{ID: "a", Type: "chart", X: 0, Y: 0, Width: 6, Height: 2},
		grid.Component{ID: "b", Type: "table", X: 6, Y: 0, Width: 6, Height: 1},
	)

	// Growing a to width 7 would push b past the right wall. The editor
	// surfaces the rejection in the status line and keeps the board as-is.
	m = press(t, m, "+")

	a := component(t, m.board, "a")
	b := component(t, m.board, "b")
	if a.Width != 6 {
		t.Errorf("a.Width = %d, want 6 (unchanged)", a.Width)
	}
	if b.X != 6 {
		t.Errorf("b.X = %d, want 6 (unchanged)", b.X)
	}
	if m.dirty {
		t.Error("rejected edit marked the board dirty")
	}
	if !m.statusErr || !strings.Contains(m.status, "rejected") {
		t.Errorf("status = %q (err=%v), want a rejection message", m.status, m.statusErr)
	}
}

func TestEditorSaveKey(t *testing.T) {
	m := editorFixture(
		grid.Component{ID: "cpu", Type: "chart", X: 0, Y: 0, Width: 2, Height: 2},
	)
	var saved int
	m.save = func(*board.Board) error {
		saved++
		return nil
	}

	m = press(t, m, "j", "w")

	if saved != 1 {
		t.Errorf("save called %d times, want 1", saved)
	}
	if m.dirty {
		t.Error("dirty flag still set after save")
	}
	if m.statusErr || !strings.Contains(m.status, "saved") {
		t.Errorf("status = %q (err=%v), want a saved message", m.status, m.statusErr)
	}
}

func TestEditorAddAndDelete(t *testing.T) {
	m := editorFixture(
		grid.Component{ID: "cpu", Type: "chart", X: 0, Y: 0, Width: 2, Height: 2},
		grid.Component{ID: "mem", Type: "chart", X: 2, Y: 0, Width: 2, Height: 2},
	)

	m = press(t, m, "a")
	if len(m.board.Components) != 3 {
		t.Fatalf("got %d components after add, want 3", len(m.board.Components))
	}
	if m.selected != 2 {
		t.Errorf("selected = %d, want 2 (the new component)", m.selected)
	}
	added := m.board.Components[2]
	if added.X != 0 || added.Y != 2 {
		t.Errorf("new component at (%d,%d), want (0,2)", added.X, added.Y)
	}

	m = press(t, m, "d")
	if len(m.board.Components) != 2 {
		t.Fatalf("got %d components after delete, want 2", len(m.board.Components))
	}
	if m.selected != 1 {
		t.Errorf("selected = %d, want 1 after deleting the last entry", m.selected)
	}
}

func TestEditorViewShowsBoard(t *testing.T) {
	m := editorFixture(
		grid.Component{ID: "cpu", Type: "chart", X: 0, Y: 0, Width: 4, Height: 2},
		grid.Component{ID: "mem", Type: "table", X: 4, Y: 0, Width: 4, Height: 2},
	)

	view := m.View()

	for _, want := range []string{"editor-test", "cpu", "mem", "tab select"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEditorQuitKeys(t *testing.T) {
	m := editorFixture()

	for _, k := range []string{"q", "esc", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("key %q returned no command, want quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q returned %T, want tea.QuitMsg", k, cmd())
		}
	}
}
