package grid

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Component
		want bool
	}{
		{
			name: "identical rectangles",
			a:    Component{X: 0, Y: 0, Width: 2, Height: 2},
			b:    Component{X: 0, Y: 0, Width: 2, Height: 2},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Component{X: 0, Y: 0, Width: 4, Height: 2},
			b:    Component{X: 2, Y: 1, Width: 4, Height: 2},
			want: true,
		},
		{
			name: "contained",
			a:    Component{X: 0, Y: 0, Width: 6, Height: 6},
			b:    Component{X: 2, Y: 2, Width: 1, Height: 1},
			want: true,
		},
		{
			name: "touching vertical edges",
			a:    Component{X: 0, Y: 0, Width: 2, Height: 2},
			b:    Component{X: 2, Y: 0, Width: 2, Height: 2},
			want: false,
		},
		{
			name: "touching horizontal edges",
			a:    Component{X: 0, Y: 0, Width: 2, Height: 2},
			b:    Component{X: 0, Y: 2, Width: 2, Height: 2},
			want: false,
		},
		{
			name: "touching corners",
			a:    Component{X: 0, Y: 0, Width: 2, Height: 2},
			b:    Component{X: 2, Y: 2, Width: 2, Height: 2},
			want: false,
		},
		{
			name: "same columns different rows",
			a:    Component{X: 0, Y: 0, Width: 2, Height: 1},
			b:    Component{X: 0, Y: 5, Width: 2, Height: 1},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestHorizontallyOverlaps(t *testing.T) {
	a := Component{X: 0, Y: 0, Width: 4, Height: 1}

	tests := []struct {
		name string
		b    Component
		want bool
	}{
		{"shared columns far below", Component{X: 2, Y: 100, Width: 4, Height: 1}, true},
		{"flush to the right", Component{X: 4, Y: 0, Width: 2, Height: 1}, false},
		{"disjoint columns", Component{X: 6, Y: 0, Width: 2, Height: 1}, false},
		{"single shared column", Component{X: 3, Y: 50, Width: 1, Height: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HorizontallyOverlaps(a, tt.b); got != tt.want {
				t.Errorf("HorizontallyOverlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerticallyOverlaps(t *testing.T) {
	a := Component{X: 0, Y: 0, Width: 1, Height: 3}

	tests := []struct {
		name string
		b    Component
		want bool
	}{
		{"shared rows far right", Component{X: 100, Y: 1, Width: 1, Height: 1}, true},
		{"flush below", Component{X: 0, Y: 3, Width: 1, Height: 2}, false},
		{"disjoint rows", Component{X: 0, Y: 10, Width: 1, Height: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerticallyOverlaps(a, tt.b); got != tt.want {
				t.Errorf("VerticallyOverlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEdges(t *testing.T) {
	c := Component{X: 3, Y: 5, Width: 4, Height: 2}
	if got := c.Right(); got != 7 {
		t.Errorf("Right() = %d, want 7", got)
	}
	if got := c.Bottom(); got != 7 {
		t.Errorf("Bottom() = %d, want 7", got)
	}
}
