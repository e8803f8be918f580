package grid

import "errors"

var (
	// ErrInvalidComponentID is returned by [Engine.Add] when the component ID
	// is empty. All components must have non-empty identifiers.
	ErrInvalidComponentID = errors.New("component ID must not be empty")

	// ErrDuplicateComponentID is returned by [Engine.Add] when a component
	// with the same ID already exists in the layout. Component IDs must be
	// unique within a layout.
	ErrDuplicateComponentID = errors.New("duplicate component ID")

	// ErrComponentNotFound is returned by operations that target an existing
	// component when no component with the given ID is in the layout.
	ErrComponentNotFound = errors.New("component not found")

	// ErrNoPlacement is returned by [Engine.Add] and [Engine.Move] when the
	// column-locked downward search finds no free cell within its bound.
	ErrNoPlacement = errors.New("no free cell in requested column")

	// ErrOutOfBounds is returned by [Engine.ResizeWidth] and
	// [Engine.ResizeLeft] when the horizontal cascade would leave any
	// component outside the grid. The layout is returned unchanged.
	ErrOutOfBounds = errors.New("push would move components outside the grid")
)

const (
	// DefaultColumns is the grid width used when [Config.Columns] is unset.
	DefaultColumns = 12

	// DefaultMaxComponentHeight is the height cap in cells used when
	// [Config.MaxComponentHeight] is unset. The grid itself has no bottom
	// edge; only individual components are capped.
	DefaultMaxComponentHeight = 20
)

// Component is one rectangular element of a layout. Positions and sizes are
// in grid cells. The JSON field names are the interchange format shared with
// dashboard frontends and stored boards.
type Component struct {
	ID     string `json:"componentId" bson:"component_id"`
	Type   string `json:"componentType" bson:"component_type"`
	X      int    `json:"x" bson:"x"`
	Y      int    `json:"y" bson:"y"`
	Width  int    `json:"width" bson:"width"`
	Height int    `json:"height" bson:"height"`
}

// Right returns the exclusive right edge, c.X + c.Width.
func (c Component) Right() int { return c.X + c.Width }

// Bottom returns the exclusive bottom edge, c.Y + c.Height.
func (c Component) Bottom() int { return c.Y + c.Height }

// Config carries the grid dimensions an [Engine] enforces. Zero or negative
// fields fall back to [DefaultColumns] and [DefaultMaxComponentHeight].
type Config struct {
	Columns            int
	MaxComponentHeight int
}

func (c Config) withDefaults() Config {
	if c.Columns < 1 {
		c.Columns = DefaultColumns
	}
	if c.MaxComponentHeight < 1 {
		c.MaxComponentHeight = DefaultMaxComponentHeight
	}
	return c
}

// Engine applies layout operations for one grid configuration. Engines are
// stateless: every operation takes the layout as an argument and returns a
// new one, leaving the input untouched. A single Engine is safe for
// concurrent use as long as callers do not mutate a shared layout slice.
type Engine struct {
	columns   int
	maxHeight int
}

// New creates an engine for the given configuration, applying defaults for
// unset fields.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{columns: cfg.Columns, maxHeight: cfg.MaxComponentHeight}
}

// Columns returns the grid width in cells.
func (e *Engine) Columns() int { return e.columns }

// MaxComponentHeight returns the per-component height cap in cells.
func (e *Engine) MaxComponentHeight() int { return e.maxHeight }

// cloneLayout copies a layout so operations can work on scratch state without
// touching the caller's slice.
func cloneLayout(layout []Component) []Component {
	out := make([]Component, len(layout))
	copy(out, layout)
	return out
}

// indexOf returns the position of the component with the given ID, or -1.
func indexOf(layout []Component, id string) int {
	for i := range layout {
		if layout[i].ID == id {
			return i
		}
	}
	return -1
}

// maxOccupiedRow returns the exclusive bottom edge of the lowest component,
// or 0 for an empty layout.
func maxOccupiedRow(layout []Component) int {
	row := 0
	for i := range layout {
		if b := layout[i].Bottom(); b > row {
			row = b
		}
	}
	return row
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
