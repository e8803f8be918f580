package grid

// Overlaps reports whether the cell rectangles of a and b intersect.
// Rectangles are half-open, so components that only share an edge do not
// overlap.
func Overlaps(a, b Component) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}

// HorizontallyOverlaps reports whether a and b occupy at least one common
// column, regardless of their rows.
func HorizontallyOverlaps(a, b Component) bool {
	return a.X < b.Right() && b.X < a.Right()
}

// VerticallyOverlaps reports whether a and b occupy at least one common row,
// regardless of their columns.
func VerticallyOverlaps(a, b Component) bool {
	return a.Y < b.Bottom() && b.Y < a.Bottom()
}
