package grid

import (
	"math/rand"
	"slices"
	"strconv"
	"testing"
)

func TestValidateEmptyLayout(t *testing.T) {
	e := New(Config{})
	if v := e.Validate(nil); v != nil {
		t.Errorf("Validate(nil) = %v, want none", v)
	}
}

func TestValidateLegalLayout(t *testing.T) {
	e := New(Config{})
	layout := []Component{
		{ID: "a", X: 0, Y: 0, Width: 6, Height: 2},
		{ID: "b", X: 6, Y: 0, Width: 6, Height: 2},
		{ID: "c", X: 0, Y: 2, Width: 12, Height: 1},
	}
	if v := e.Validate(layout); v != nil {
		t.Errorf("Validate() = %v, want none", v)
	}
}

func TestValidateOverlap(t *testing.T) {
	e := New(Config{})
	layout := []Component{
		{ID: "a", X: 0, Y: 0, Width: 4, Height: 2},
		{ID: "b", X: 2, Y: 1, Width: 4, Height: 2},
	}

	v := e.Validate(layout)
	if len(v) != 1 {
		t.Fatalf("len(violations) = %d, want 1: %v", len(v), v)
	}
	if v[0].Kind != ViolationOverlap {
		t.Errorf("kind = %q, want %q", v[0].Kind, ViolationOverlap)
	}
	if !slices.Equal(v[0].ComponentIDs, []string{"a", "b"}) {
		t.Errorf("affected IDs = %v, want [a b]", v[0].ComponentIDs)
	}
}

func TestValidateOutOfBounds(t *testing.T) {
	e := New(Config{})

	tests := []struct {
		name string
		c    Component
	}{
		{"past the right edge", Component{ID: "a", X: 10, Y: 0, Width: 4, Height: 1}},
		{"negative column", Component{ID: "a", X: -1, Y: 0, Width: 2, Height: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := e.Validate([]Component{tt.c})
			if len(v) != 1 {
				t.Fatalf("len(violations) = %d, want 1: %v", len(v), v)
			}
			if v[0].Kind != ViolationOutOfBounds {
				t.Errorf("kind = %q, want %q", v[0].Kind, ViolationOutOfBounds)
			}
		})
	}
}

func TestValidateInvalidDimensions(t *testing.T) {
	e := New(Config{}) // max height 20

	tests := []struct {
		name string
		c    Component
	}{
		{"negative row", Component{ID: "a", X: 0, Y: -1, Width: 2, Height: 1}},
		{"zero width", Component{ID: "a", X: 0, Y: 0, Width: 0, Height: 1}},
		{"zero height", Component{ID: "a", X: 0, Y: 0, Width: 2, Height: 0}},
		{"height above cap", Component{ID: "a", X: 0, Y: 0, Width: 2, Height: 21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := e.Validate([]Component{tt.c})
			if len(v) == 0 {
				t.Fatal("Validate() found nothing")
			}
			found := false
			for _, violation := range v {
				if violation.Kind == ViolationInvalidDimensions {
					found = true
				}
			}
			if !found {
				t.Errorf("no %q violation in %v", ViolationInvalidDimensions, v)
			}
		})
	}
}

func TestValidateMultipleViolationsPerComponent(t *testing.T) {
	e := New(Config{})
	// Hangs past the edge and is taller than the cap: two findings for one
	// component.
	layout := []Component{{ID: "a", X: 10, Y: 0, Width: 4, Height: 99}}

	v := e.Validate(layout)
	if len(v) != 2 {
		t.Fatalf("len(violations) = %d, want 2: %v", len(v), v)
	}
}

// TestOperationsPreserveLegality drives the engine with a deterministic
// pseudo-random operation mix and checks the validator after every accepted
// operation. The two sides are implemented independently, so agreement here
// covers both.
func TestOperationsPreserveLegality(t *testing.T) {
	e := New(Config{})
	r := rand.New(rand.NewSource(42))
	var layout []Component

	randomID := func() string { return "c" + strconv.Itoa(r.Intn(10)) }

	for i := 0; i < 400; i++ {
		var (
			next []Component
			err  error
		)
		switch r.Intn(6) {
		case 0:
			next, err = e.Add(layout, Component{
				ID:     randomID(),
				Type:   "chart",
				X:      r.Intn(14) - 1,
				Y:      r.Intn(8),
				Width:  r.Intn(8),
				Height: r.Intn(6),
			})
		case 1:
			next, err = e.Remove(layout, randomID()), nil
		case 2:
			next, err = e.Move(layout, randomID(), r.Intn(12), r.Intn(10))
		case 3:
			next, err = e.ResizeWidth(layout, randomID(), r.Intn(14))
		case 4:
			next, err = e.ResizeLeft(layout, randomID(), r.Intn(14)-1)
		case 5:
			next, err = e.ResizeHeight(layout, randomID(), r.Intn(24))
		}
		if err != nil {
			// Rejection must leave the layout unchanged.
			if !slices.Equal(next, layout) {
				t.Fatalf("step %d: rejection changed the layout", i)
			}
			continue
		}
		if v := e.Validate(next); v != nil {
			t.Fatalf("step %d left violations: %v\nlayout: %v", i, v, next)
		}
		layout = next
	}
}
