package grid

// searchSlack is how many rows past the lowest occupied row the free-cell
// search scans before giving up. It leaves room to place below all existing
// content without scanning an unbounded grid.
const searchSlack = 10

// FindPlacement returns the first legal position for a w x h component in
// column x, scanning rows downward from y. The column is locked: the search
// never moves horizontally. Rows before 0 are skipped, and the scan stops at
// maxOccupiedRow + h + searchSlack. The component with excludeID is ignored
// during collision checks, which lets a component search past its own current
// position.
//
// The boolean result is false when the shape cannot legally exist in column x
// at all (x outside the grid, w or h below 1, or h above the height cap) or
// when every candidate row within the bound is blocked.
func (e *Engine) FindPlacement(layout []Component, x, y, w, h int, excludeID string) (int, int, bool) {
	if w < 1 || h < 1 || x < 0 || x+w > e.columns || h > e.maxHeight {
		return 0, 0, false
	}
	limit := maxOccupiedRow(layout) + h + searchSlack
	for row := y; row <= limit; row++ {
		if row < 0 {
			continue
		}
		probe := Component{X: x, Y: row, Width: w, Height: h}
		if e.fits(layout, probe, excludeID) {
			return x, row, true
		}
	}
	return 0, 0, false
}

// fits reports whether probe overlaps no component in layout other than the
// one with excludeID.
func (e *Engine) fits(layout []Component, probe Component, excludeID string) bool {
	for i := range layout {
		if layout[i].ID == excludeID {
			continue
		}
		if Overlaps(layout[i], probe) {
			return false
		}
	}
	return true
}
