package grid

import (
	"cmp"
	"slices"
)

// pushDir selects which wall a horizontal cascade shoves components toward.
type pushDir int

const (
	pushRight pushDir = iota
	pushLeft
)

// ResizeWidth sets the width of the component with the given ID, clamped to
// [1, Columns], and resolves collisions by pushing overlapped components
// rightward in a domino cascade. The resized component itself never moves.
//
// ResizeWidth rejects with [ErrComponentNotFound] for an unknown ID and with
// [ErrOutOfBounds] when the settled cascade leaves any right edge past the
// last column. Rejection returns the input layout unchanged; there is no
// partial push.
func (e *Engine) ResizeWidth(layout []Component, id string, width int) ([]Component, error) {
	idx := indexOf(layout, id)
	if idx < 0 {
		return layout, ErrComponentNotFound
	}
	work := cloneLayout(layout)
	work[idx].Width = clamp(width, 1, e.columns)
	if err := e.cascade(work, id, pushRight); err != nil {
		return layout, err
	}
	return work, nil
}

// ResizeLeft moves the left edge of the component with the given ID to column
// x, keeping its right edge fixed. The new edge is clamped to [0, right-1] so
// the width stays at least 1. Collisions resolve by pushing overlapped
// components leftward, mirroring [Engine.ResizeWidth].
//
// ResizeLeft rejects with [ErrComponentNotFound] for an unknown ID and with
// [ErrOutOfBounds] when the settled cascade leaves any component past column
// 0. Rejection returns the input layout unchanged.
func (e *Engine) ResizeLeft(layout []Component, id string, x int) ([]Component, error) {
	idx := indexOf(layout, id)
	if idx < 0 {
		return layout, ErrComponentNotFound
	}
	right := layout[idx].Right()
	x = clamp(x, 0, right-1)
	work := cloneLayout(layout)
	work[idx].X = x
	work[idx].Width = right - x
	if err := e.cascade(work, id, pushLeft); err != nil {
		return layout, err
	}
	return work, nil
}

// cascade resolves horizontal overlaps around the resized component in place.
// Components already pushed act as pushers: anything they overlap is shoved
// flush against them in the push direction and joins the pushed set, until a
// full pass moves nothing. Pushers are processed in scan order, so the
// outcome is deterministic. The root component is pinned and never moves.
//
// After the layout settles, cascade rejects when any component crossed the
// wall it was pushed toward. The check is unconditional: an over-wide resize
// that overlapped nothing still rejects here.
func (e *Engine) cascade(work []Component, rootID string, dir pushDir) error {
	pushed := map[string]bool{rootID: true}
	// Every push strictly advances the moved component toward the wall, so
	// the loop settles well under this cap. Hitting it means a logic error,
	// and rejecting beats looping forever.
	limit := len(work)*(len(work)+1)*e.columns + 1
	for pass := 0; ; pass++ {
		if pass > limit {
			return ErrOutOfBounds
		}
		moved := false
		for _, pi := range scanOrder(work, dir) {
			if !pushed[work[pi].ID] {
				continue
			}
			for mi := range work {
				if mi == pi || work[mi].ID == rootID {
					continue
				}
				if !Overlaps(work[pi], work[mi]) {
					continue
				}
				if dir == pushRight {
					work[mi].X = work[pi].Right()
				} else {
					work[mi].X = work[pi].X - work[mi].Width
				}
				pushed[work[mi].ID] = true
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	for i := range work {
		if dir == pushRight && work[i].Right() > e.columns {
			return ErrOutOfBounds
		}
		if dir == pushLeft && work[i].X < 0 {
			return ErrOutOfBounds
		}
	}
	return nil
}

// scanOrder returns layout indices sorted in the direction of travel:
// ascending x when pushing right, descending when pushing left, with y and
// then ID breaking ties.
func scanOrder(work []Component, dir pushDir) []int {
	order := make([]int, len(work))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		ca, cb := work[a], work[b]
		x := cmp.Compare(ca.X, cb.X)
		if dir == pushLeft {
			x = -x
		}
		return cmp.Or(x, cmp.Compare(ca.Y, cb.Y), cmp.Compare(ca.ID, cb.ID))
	})
	return order
}
