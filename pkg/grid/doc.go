// Package grid implements the dashboard layout engine: a fixed-width,
// vertically unbounded grid of rectangular components with collision
// resolution by domino pushing.
//
// # Overview
//
// A layout is a flat slice of [Component] values. Each component occupies the
// half-open cell rectangle [x, x+width) x [y, y+height) on a grid that is
// [Config.Columns] cells wide and grows downward without limit. Components
// that merely touch edges do not overlap.
//
// # Basic Usage
//
// Create an engine with [New] and apply operations to a layout slice:
//
//	e := grid.New(grid.Config{})
//	layout, err := e.Add(nil, grid.Component{ID: "cpu", Type: "chart", Width: 6, Height: 2})
//	layout, err = e.ResizeWidth(layout, "cpu", 8)
//
// Operations are pure functions: the input slice is never modified. Success
// returns a freshly built slice; rejection returns the input unchanged along
// with a sentinel error, so a failed call leaves the caller's layout exactly
// as it was.
//
// # Collision Response
//
// Width and left-edge changes resolve collisions by shoving overlapped
// components horizontally, flush against the component that hit them, and
// repeating until the layout settles. The cascade is rejected as a whole when
// anything would end up outside the grid. Height growth pushes components
// below downward in a recursive wave; the grid has no bottom edge, so height
// changes never reject. [Engine.Add] and [Engine.Move] do not push at all:
// they search for a free cell in the requested column, scanning downward.
//
// # Validation
//
// [Engine.Validate] reports overlap, bounds, and dimension violations. It is
// implemented against the raw geometry, independent of the operations, and
// can be pointed at any layout regardless of origin.
//
// # Concurrency
//
// Engines are stateless and safe for concurrent use. Layout slices are owned
// by the caller: concurrent operations on distinct layouts are fine, while
// mutations of the same layout must be serialized by the caller.
package grid
