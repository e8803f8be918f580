package grid

import "fmt"

// ViolationKind classifies validator findings.
type ViolationKind string

const (
	// ViolationOverlap marks a pair of components whose rectangles intersect.
	ViolationOverlap ViolationKind = "overlap"
	// ViolationOutOfBounds marks a component extending past a side of the grid.
	ViolationOutOfBounds ViolationKind = "out_of_bounds"
	// ViolationInvalidDimensions marks a negative row or an illegal size.
	ViolationInvalidDimensions ViolationKind = "invalid_dimensions"
)

// Violation describes one legality failure found by [Engine.Validate].
type Violation struct {
	Kind         ViolationKind `json:"kind"`
	Message      string        `json:"message"`
	ComponentIDs []string      `json:"affectedIds"`
}

// Validate checks every component against the grid bounds and every pair for
// overlap, reporting all findings. It reads the geometry directly and shares
// no logic with the mutating operations, so it can be pointed at layouts from
// any source, including hand-edited or migrated ones. A legal layout yields
// no violations.
//
// One component can appear in several violations: an oversized component
// hanging past the grid edge reports both out_of_bounds and
// invalid_dimensions, and each overlapping pair reports separately.
func (e *Engine) Validate(layout []Component) []Violation {
	var out []Violation
	for i := range layout {
		for j := i + 1; j < len(layout); j++ {
			if Overlaps(layout[i], layout[j]) {
				out = append(out, Violation{
					Kind:         ViolationOverlap,
					Message:      fmt.Sprintf("components %q and %q overlap", layout[i].ID, layout[j].ID),
					ComponentIDs: []string{layout[i].ID, layout[j].ID},
				})
			}
		}
	}
	for _, c := range layout {
		if c.X < 0 || c.Right() > e.columns {
			out = append(out, Violation{
				Kind:         ViolationOutOfBounds,
				Message:      fmt.Sprintf("component %q spans columns %d to %d on a %d-column grid", c.ID, c.X, c.Right(), e.columns),
				ComponentIDs: []string{c.ID},
			})
		}
		if c.Y < 0 || c.Width < 1 || c.Height < 1 || c.Height > e.maxHeight {
			out = append(out, Violation{
				Kind:         ViolationInvalidDimensions,
				Message:      fmt.Sprintf("component %q has size %dx%d at row %d", c.ID, c.Width, c.Height, c.Y),
				ComponentIDs: []string{c.ID},
			})
		}
	}
	return out
}
