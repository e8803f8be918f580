package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/grid"
	"github.com/gridpush/gridpush/pkg/render"
)

// Editor layout constants.
const (
	// editorCellWidth is the number of terminal columns drawn per grid cell.
	// One terminal row is drawn per grid row.
	editorCellWidth = 5

	// editorNewWidth and editorNewHeight size components created with "a".
	editorNewWidth  = 2
	editorNewHeight = 2
)

// Editor styles
var (
	editorLabelColor = lipgloss.Color("235") // near-black, readable on the pastel fills
	editorEmptyCell  = StyleDim.Render("  ·  ")
)

// =============================================================================
// editorModel - Full-screen board editor
// =============================================================================

// editorModel is the bubbletea model for the interactive board editor. Key
// presses drive the layout engine directly, so the editor obeys the same
// push and rejection rules as every other surface; a rejected edit shows up
// in the status line and leaves the board unchanged.
type editorModel struct {
	board    *board.Board
	engine   *grid.Engine
	path     string
	selected int // index into board.Components, -1 when the board is empty
	dirty    bool

	status    string
	statusErr bool

	// save writes the board out; swapped in tests.
	save func(*board.Board) error
}

// newEditorModel creates an editor for the board loaded from path.
func newEditorModel(b *board.Board, path string) editorModel {
	m := editorModel{
		board:    b,
		engine:   grid.New(b.Config()),
		path:     path,
		selected: -1,
		save:     func(b *board.Board) error { return board.WriteBoardFile(b, path) },
	}
	if len(b.Components) > 0 {
		m.selected = 0
	}
	return m
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m = m.selectNext(1)
	case "shift+tab":
		m = m.selectNext(-1)
	case "left", "h":
		m = m.moveSelected(-1, 0)
	case "right", "l":
		m = m.moveSelected(1, 0)
	case "up", "k":
		m = m.moveSelected(0, -1)
	case "down", "j":
		m = m.moveSelected(0, 1)
	case "+", "=":
		m = m.resizeSelectedWidth(1)
	case "-":
		m = m.resizeSelectedWidth(-1)
	case ">":
		m = m.resizeSelectedHeight(1)
	case "<":
		m = m.resizeSelectedHeight(-1)
	case "[":
		m = m.resizeSelectedLeft(-1)
	case "]":
		m = m.resizeSelectedLeft(1)
	case "a":
		m = m.addComponent()
	case "d":
		m = m.deleteSelected()
	case "w":
		m = m.saveBoard()
	}
	return m, nil
}

// =============================================================================
// Edits
// =============================================================================

// selectNext cycles the selection by delta, wrapping around.
func (m editorModel) selectNext(delta int) editorModel {
	n := len(m.board.Components)
	if n == 0 {
		m.selected = -1
		return m
	}
	m.selected = ((m.selected+delta)%n + n) % n
	m.status = ""
	return m
}

func (m editorModel) moveSelected(dx, dy int) editorModel {
	if m.selected < 0 {
		return m
	}
	comp := m.board.Components[m.selected]

	x := comp.X + dx
	if x < 0 {
		x = 0
	}
	if limit := m.engine.Columns() - comp.Width; x > limit {
		x = limit
	}
	y := comp.Y + dy
	if y < 0 {
		y = 0
	}
	if x == comp.X && y == comp.Y {
		return m
	}

	layout, err := m.engine.Move(m.board.Components, comp.ID, x, y)
	return m.commit(layout, err, "move")
}

func (m editorModel) resizeSelectedWidth(delta int) editorModel {
	if m.selected < 0 {
		return m
	}
	comp := m.board.Components[m.selected]
	layout, err := m.engine.ResizeWidth(m.board.Components, comp.ID, comp.Width+delta)
	return m.commit(layout, err, "resize")
}

func (m editorModel) resizeSelectedHeight(delta int) editorModel {
	if m.selected < 0 {
		return m
	}
	comp := m.board.Components[m.selected]
	layout, err := m.engine.ResizeHeight(m.board.Components, comp.ID, comp.Height+delta)
	return m.commit(layout, err, "resize")
}

func (m editorModel) resizeSelectedLeft(delta int) editorModel {
	if m.selected < 0 {
		return m
	}
	comp := m.board.Components[m.selected]
	layout, err := m.engine.ResizeLeft(m.board.Components, comp.ID, comp.X+delta)
	return m.commit(layout, err, "resize")
}

func (m editorModel) addComponent() editorModel {
	comp := grid.Component{
		ID:     uuid.NewString()[:8],
		Width:  editorNewWidth,
		Height: editorNewHeight,
	}
	layout, err := m.engine.Add(m.board.Components, comp)
	m = m.commit(layout, err, "add")
	if err == nil {
		m.selected = len(m.board.Components) - 1
	}
	return m
}

func (m editorModel) deleteSelected() editorModel {
	if m.selected < 0 {
		return m
	}
	id := m.board.Components[m.selected].ID
	m.board.Components = m.engine.Remove(m.board.Components, id)
	m.dirty = true
	m.status, m.statusErr = "deleted "+id, false
	if m.selected >= len(m.board.Components) {
		m.selected = len(m.board.Components) - 1
	}
	return m
}

func (m editorModel) saveBoard() editorModel {
	m.board.Touch()
	if err := m.save(m.board); err != nil {
		m.status, m.statusErr = fmt.Sprintf("save failed: %v", err), true
		return m
	}
	m.dirty = false
	m.status, m.statusErr = "saved "+m.path, false
	return m
}

// commit installs the engine result, or surfaces the rejection in the status
// line with the board unchanged.
func (m editorModel) commit(layout []grid.Component, err error, action string) editorModel {
	if err != nil {
		m.status, m.statusErr = fmt.Sprintf("%s rejected: %v", action, err), true
		return m
	}
	m.board.Components = layout
	m.dirty = true
	m.status, m.statusErr = "", false
	return m
}

// =============================================================================
// View
// =============================================================================

func (m editorModel) View() string {
	var b strings.Builder

	title := m.board.Name
	if title == "" {
		title = m.board.ID
	}
	b.WriteString(StyleTitle.Render("Board: " + title))
	if m.dirty {
		b.WriteString(StyleWarning.Render(" *"))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.path))
	b.WriteString("\n\n")

	cols := m.engine.Columns()
	for y := 0; y < m.gridRows(); y++ {
		for x := 0; x < cols; {
			idx := m.occupantAt(x, y)
			if idx < 0 {
				b.WriteString(editorEmptyCell)
				x++
				continue
			}
			comp := m.board.Components[idx]
			b.WriteString(m.renderRun(comp, idx == m.selected, x, y))
			x = comp.Right()
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.selected >= 0 {
		comp := m.board.Components[m.selected]
		b.WriteString(StyleHighlight.Render(comp.ID))
		if comp.Type != "" {
			b.WriteString(StyleDim.Render(" (" + comp.Type + ")"))
		}
		b.WriteString(" " + StyleValue.Render(describePlacement(comp)))
		b.WriteString("\n")
	}
	if m.status != "" {
		if m.statusErr {
			b.WriteString(StyleError.Render(m.status))
		} else {
			b.WriteString(StyleSuccess.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render("tab select · arrows move · +/- width · </> height · [/] left edge · a add · d delete · w save · q quit"))

	return b.String()
}

// renderRun draws the cells of comp on grid row y, from column x to the
// component's right edge. The top row carries the ID label.
func (m editorModel) renderRun(comp grid.Component, selected bool, x, y int) string {
	width := (comp.Right() - x) * editorCellWidth
	text := strings.Repeat(" ", width)
	if y == comp.Y && width > 2 {
		label := comp.ID
		if len(label) > width-2 {
			label = label[:width-2]
		}
		text = " " + label + strings.Repeat(" ", width-1-len(label))
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(render.FillForType(comp.Type))).
		Foreground(editorLabelColor)
	if selected {
		style = style.Bold(true).Reverse(true)
	}
	return style.Render(text)
}

// gridRows returns how many grid rows to draw: the render floor, or one row
// past the deepest component so there is always room to move down.
func (m editorModel) gridRows() int {
	rows := render.DefaultMinRows
	for _, comp := range m.board.Components {
		if comp.Bottom()+1 > rows {
			rows = comp.Bottom() + 1
		}
	}
	return rows
}

// occupantAt returns the index of the component covering cell (x, y), or -1.
func (m editorModel) occupantAt(x, y int) int {
	for i, comp := range m.board.Components {
		if x >= comp.X && x < comp.Right() && y >= comp.Y && y < comp.Bottom() {
			return i
		}
	}
	return -1
}
