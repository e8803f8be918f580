package grid

import (
	"cmp"
	"slices"
)

// ResizeHeight sets the height of the component with the given ID, clamped to
// [1, MaxComponentHeight]. Shrinking applies directly and leaves a hole.
// Growing pushes overlapped components downward in a recursive wave; the grid
// has no bottom edge, so on a known ID the operation always succeeds.
//
// ResizeHeight rejects only with [ErrComponentNotFound] for an unknown ID.
func (e *Engine) ResizeHeight(layout []Component, id string, height int) ([]Component, error) {
	idx := indexOf(layout, id)
	if idx < 0 {
		return layout, ErrComponentNotFound
	}
	height = clamp(height, 1, e.maxHeight)
	oldBottom := layout[idx].Bottom()
	work := cloneLayout(layout)
	work[idx].Height = height
	if height <= layout[idx].Height {
		return work, nil
	}
	if e.fits(work, work[idx], id) {
		return work, nil
	}
	pushed := map[string]bool{id: true}
	pushBelow(work, idx, oldBottom, work[idx].Bottom(), pushed)
	return work, nil
}

// pushBelow moves components out of the band a source component grew into,
// then recurses from each moved component so the wave propagates downward.
// The source's bottom edge moved from oldBottom to newBottom. Candidates are
// components sharing a column with the source that the wave has not touched
// yet, visited top to bottom:
//
//   - top edge inside [oldBottom, newBottom): snapped down to newBottom
//   - top edge at or below newBottom: shifted down by the growth delta
//   - straddling oldBottom: snapped down to newBottom
//   - entirely above the band: untouched
//
// Each component moves at most once per wave, which keeps the recursion
// finite.
func pushBelow(work []Component, srcIdx, oldBottom, newBottom int, pushed map[string]bool) {
	delta := newBottom - oldBottom
	src := work[srcIdx]
	for _, mi := range belowOrder(work) {
		m := &work[mi]
		if pushed[m.ID] || !HorizontallyOverlaps(src, *m) {
			continue
		}
		prevBottom := m.Bottom()
		switch {
		case m.Y >= oldBottom && m.Y < newBottom:
			m.Y = newBottom
		case m.Y >= newBottom:
			m.Y += delta
		case m.Y < newBottom && prevBottom > oldBottom:
			m.Y = newBottom
		default:
			continue
		}
		pushed[m.ID] = true
		pushBelow(work, mi, prevBottom, m.Bottom(), pushed)
	}
}

// belowOrder returns layout indices sorted top to bottom: ascending y, then
// x, then ID.
func belowOrder(work []Component) []int {
	order := make([]int, len(work))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		ca, cb := work[a], work[b]
		return cmp.Or(cmp.Compare(ca.Y, cb.Y), cmp.Compare(ca.X, cb.X), cmp.Compare(ca.ID, cb.ID))
	})
	return order
}
