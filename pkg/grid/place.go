package grid

// Add places c into the layout and returns the extended layout. The width and
// height are clamped to the grid limits, then the free-cell search runs from
// the requested position downward in the requested column.
//
// Add rejects with [ErrInvalidComponentID] for an empty ID,
// [ErrDuplicateComponentID] when the ID is already taken, and
// [ErrNoPlacement] when no free cell exists within the search bound. On
// rejection the input layout is returned unchanged.
func (e *Engine) Add(layout []Component, c Component) ([]Component, error) {
	if c.ID == "" {
		return layout, ErrInvalidComponentID
	}
	if indexOf(layout, c.ID) >= 0 {
		return layout, ErrDuplicateComponentID
	}
	c.Width = clamp(c.Width, 1, e.columns)
	c.Height = clamp(c.Height, 1, e.maxHeight)
	x, y, ok := e.FindPlacement(layout, c.X, c.Y, c.Width, c.Height, "")
	if !ok {
		return layout, ErrNoPlacement
	}
	c.X, c.Y = x, y
	return append(cloneLayout(layout), c), nil
}

// Remove returns the layout without the component with the given ID. Removing
// an unknown ID is a no-op, so Remove never fails. Nothing else moves; any
// hole left behind stays open.
func (e *Engine) Remove(layout []Component, id string) []Component {
	out := make([]Component, 0, len(layout))
	for _, c := range layout {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Move repositions the component with the given ID via the free-cell search,
// starting at (x, y). The component keeps its size and is excluded from
// collision checks, so moving within its own footprint works. The requested
// column is locked; only the row may differ from the request.
//
// Move rejects with [ErrComponentNotFound] for an unknown ID and
// [ErrNoPlacement] when the column has no free cell within the search bound.
func (e *Engine) Move(layout []Component, id string, x, y int) ([]Component, error) {
	idx := indexOf(layout, id)
	if idx < 0 {
		return layout, ErrComponentNotFound
	}
	nx, ny, ok := e.FindPlacement(layout, x, y, layout[idx].Width, layout[idx].Height, id)
	if !ok {
		return layout, ErrNoPlacement
	}
	out := cloneLayout(layout)
	out[idx].X, out[idx].Y = nx, ny
	return out, nil
}
