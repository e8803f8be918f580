package ops

import (
	"context"
	"slices"
	"testing"

	"github.com/gridpush/gridpush/pkg/errors"
	"github.com/gridpush/gridpush/pkg/grid"
)

func newTestRunner() *Runner {
	return NewRunner(grid.New(grid.Config{}), nil)
}

func TestRunnerApplyAdd(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()

	next, err := r.Apply(ctx, "b1", nil, Op{
		Kind:        KindAdd,
		ComponentID: "cpu",
		Width:       6,
		Height:      2,
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(next) != 1 {
		t.Fatalf("expected 1 component, got %d", len(next))
	}
	if next[0].X != 0 || next[0].Y != 0 {
		t.Errorf("component placed at (%d,%d), want (0,0)", next[0].X, next[0].Y)
	}
}

func TestRunnerApplyRemove(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()
	layout := []grid.Component{
		{ID: "a", X: 0, Y: 0, Width: 6, Height: 2},
		{ID: "b", X: 6, Y: 0, Width: 6, Height: 2},
	}

	next, err := r.Apply(ctx, "b1", layout, Op{Kind: KindRemove, ComponentID: "a"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(next) != 1 || next[0].ID != "b" {
		t.Errorf("remove left %v", next)
	}

	// Removing an unknown ID succeeds and changes nothing
	next, err = r.Apply(ctx, "b1", layout, Op{Kind: KindRemove, ComponentID: "ghost"})
	if err != nil {
		t.Fatalf("remove of unknown ID should succeed: %v", err)
	}
	if len(next) != 2 {
		t.Errorf("unknown remove should keep both components, got %d", len(next))
	}
}

func TestRunnerApplyMove(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()
	layout := []grid.Component{
		{ID: "a", X: 0, Y: 0, Width: 4, Height: 2},
	}

	next, err := r.Apply(ctx, "b1", layout, Op{Kind: KindMove, ComponentID: "a", X: 8, Y: 0})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if next[0].X != 8 || next[0].Y != 0 {
		t.Errorf("moved to (%d,%d), want (8,0)", next[0].X, next[0].Y)
	}
}

func TestRunnerApplyResizeWidthCascade(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()
	layout := []grid.Component{
		{ID: "a", X: 0, Y: 0, Width: 2, Height: 1},
		{ID: "b", X: 2, Y: 0, Width: 2, Height: 1},
		{ID: "c", X: 4, Y: 0, Width: 2, Height: 1},
	}

	next, err := r.Apply(ctx, "b1", layout, Op{Kind: KindResizeWidth, ComponentID: "a", Width: 4})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	byID := make(map[string]grid.Component)
	for _, c := range next {
		byID[c.ID] = c
	}
	if byID["a"].Width != 4 {
		t.Errorf("a width = %d, want 4", byID["a"].Width)
	}
	if byID["b"].X != 4 {
		t.Errorf("b pushed to x=%d, want 4", byID["b"].X)
	}
	if byID["c"].X != 6 {
		t.Errorf("c pushed to x=%d, want 6", byID["c"].X)
	}
}

func TestRunnerRejectionCodes(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()
	layout := []grid.Component{
		{ID: "a", X: 0, Y: 0, Width: 6, Height: 1},
		{ID: "b", X: 6, Y: 0, Width: 6, Height: 1},
	}

	tests := []struct {
		name string
		op   Op
		code errors.Code
	}{
		{"duplicateAdd", Op{Kind: KindAdd, ComponentID: "a", Width: 2, Height: 1}, errors.ErrCodeRejectedDuplicate},
		{"noPlacement", Op{Kind: KindAdd, ComponentID: "wide", X: 10, Width: 4, Height: 1}, errors.ErrCodeRejectedNoPlacement},
		{"pushOverflow", Op{Kind: KindResizeWidth, ComponentID: "a", Width: 8}, errors.ErrCodeRejectedOutOfBounds},
		{"unknownComponent", Op{Kind: KindMove, ComponentID: "ghost", X: 0, Y: 0}, errors.ErrCodeComponentNotFound},
		{"unknownKind", Op{Kind: "teleport", ComponentID: "a"}, errors.ErrCodeInvalidOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Apply(ctx, "b1", layout, tt.op)
			if err == nil {
				t.Fatal("expected rejection")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("got code %q, want %q (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestRunnerApplyPreservesInput(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()
	layout := []grid.Component{
		{ID: "a", X: 0, Y: 0, Width: 6, Height: 1},
		{ID: "b", X: 6, Y: 0, Width: 6, Height: 1},
	}
	snapshot := slices.Clone(layout)

	// Rejected op leaves the input untouched
	if _, err := r.Apply(ctx, "b1", layout, Op{Kind: KindResizeWidth, ComponentID: "a", Width: 8}); err == nil {
		t.Fatal("expected rejection")
	}
	if !slices.Equal(layout, snapshot) {
		t.Error("rejected op modified the input layout")
	}

	// Accepted op also leaves the input untouched
	if _, err := r.Apply(ctx, "b1", layout, Op{Kind: KindResizeWidth, ComponentID: "a", Width: 4}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !slices.Equal(layout, snapshot) {
		t.Error("accepted op modified the input layout")
	}
}

func TestRunnerApplyAll(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()

	batch := []Op{
		{Kind: KindAdd, ComponentID: "cpu", ComponentType: "chart", Width: 6, Height: 2},
		{Kind: KindAdd, ComponentID: "mem", ComponentType: "chart", X: 6, Width: 6, Height: 2},
		{Kind: KindAdd, ComponentID: "logs", ComponentType: "table", Width: 12, Height: 3},
		{Kind: KindResizeHeight, ComponentID: "cpu", Height: 3},
	}

	result, err := r.ApplyAll(ctx, "b1", nil, batch)
	if err != nil {
		t.Fatalf("ApplyAll failed: %v", err)
	}
	if result.Applied != 4 {
		t.Errorf("Applied = %d, want 4", result.Applied)
	}
	if len(result.Layout) != 3 {
		t.Errorf("layout has %d components, want 3", len(result.Layout))
	}
	if violations := r.Engine.Validate(result.Layout); violations != nil {
		t.Errorf("batch produced invalid layout: %v", violations)
	}
}

func TestRunnerApplyAllStopsAtRejection(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()

	batch := []Op{
		{Kind: KindAdd, ComponentID: "a", Width: 6, Height: 1},
		{Kind: KindAdd, ComponentID: "b", X: 6, Width: 6, Height: 1},
		{Kind: KindResizeWidth, ComponentID: "a", Width: 10}, // pushes b past the edge
		{Kind: KindAdd, ComponentID: "never", Width: 2, Height: 1},
	}

	result, err := r.ApplyAll(ctx, "b1", nil, batch)
	if err == nil {
		t.Fatal("expected batch rejection")
	}
	if result.Applied != 2 {
		t.Errorf("Applied = %d, want 2", result.Applied)
	}
	if len(result.Layout) != 2 {
		t.Errorf("layout should hold the last committed state, got %d components", len(result.Layout))
	}
	if !errors.Is(err, errors.ErrCodeRejectedOutOfBounds) {
		t.Errorf("error should keep the rejection code: %v", err)
	}
}

func TestRunnerValidate(t *testing.T) {
	r := newTestRunner()
	ctx := context.Background()

	legal := []grid.Component{
		{ID: "a", X: 0, Y: 0, Width: 6, Height: 2},
		{ID: "b", X: 6, Y: 0, Width: 6, Height: 2},
	}
	if v := r.Validate(ctx, "b1", legal); v != nil {
		t.Errorf("legal layout reported violations: %v", v)
	}

	overlapping := []grid.Component{
		{ID: "a", X: 0, Y: 0, Width: 6, Height: 2},
		{ID: "b", X: 4, Y: 0, Width: 6, Height: 2},
	}
	if v := r.Validate(ctx, "b1", overlapping); len(v) == 0 {
		t.Error("overlap not reported")
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil)
	if r.Engine == nil {
		t.Fatal("nil engine should default")
	}
	if r.Engine.Columns() != grid.DefaultColumns {
		t.Errorf("default engine columns = %d, want %d", r.Engine.Columns(), grid.DefaultColumns)
	}
	if r.Logger == nil {
		t.Fatal("nil logger should default")
	}

	// The default runner is usable
	next, err := r.Apply(context.Background(), "b1", nil, Op{Kind: KindAdd, ComponentID: "x", Width: 2, Height: 1})
	if err != nil || len(next) != 1 {
		t.Errorf("default runner Apply = %v, %v", next, err)
	}
}
