// Package ops provides the layout operation layer shared by CLI and API.
//
// This package wraps the pure [grid.Engine] with the concerns both entry
// points need: operation envelopes that serialize to JSON, validation of
// those envelopes, dispatch to the engine, structured logging, hooks, and
// mapping of engine rejections onto coded errors.
//
// # Architecture
//
// An [Op] describes a single layout mutation (add, remove, move, or one of
// the resize variants). A [Runner] applies ops to a layout:
//
//  1. Validate the envelope (known kind, well-formed component ID)
//  2. Dispatch to the engine, which either commits or rejects atomically
//  3. Translate engine sentinels into coded errors for the surface layers
//
// The engine itself stays value-semantic: a rejected op leaves the input
// layout untouched, and the Runner preserves that contract.
//
// # Usage
//
// Create a Runner and apply operations:
//
//	runner := ops.NewRunner(grid.New(board.Config()), logger)
//	next, err := runner.Apply(ctx, board.ID, board.Components, ops.Op{
//	    Kind:        ops.KindResizeWidth,
//	    ComponentID: "chart-1",
//	    Width:       8,
//	})
//	if err != nil {
//	    // rejected; board.Components is unchanged
//	}
//	board.Components = next
//
// Apply a batch:
//
//	result, err := runner.ApplyAll(ctx, board.ID, board.Components, batch)
package ops

import (
	"fmt"
	"time"

	"github.com/gridpush/gridpush/pkg/errors"
	"github.com/gridpush/gridpush/pkg/grid"
)

// =============================================================================
// Operation Kinds
// =============================================================================

// Operation kind constants.
const (
	KindAdd          = "add"
	KindRemove       = "remove"
	KindMove         = "move"
	KindResizeWidth  = "resize_width"
	KindResizeLeft   = "resize_left"
	KindResizeHeight = "resize_height"
)

// ValidKinds is the set of supported operation kinds.
var ValidKinds = map[string]bool{
	KindAdd:          true,
	KindRemove:       true,
	KindMove:         true,
	KindResizeWidth:  true,
	KindResizeLeft:   true,
	KindResizeHeight: true,
}

// =============================================================================
// Operation Envelope
// =============================================================================

// Op describes a single layout mutation.
// This struct supports JSON serialization for API requests and ops files.
// Fields beyond Kind and ComponentID are read per kind:
//
//   - add: ComponentType, X, Y, Width, Height (the requested placement)
//   - remove: nothing
//   - move: X, Y (the requested anchor)
//   - resize_width: Width (the new width, left edge fixed)
//   - resize_left: X (the new left edge, right edge fixed)
//   - resize_height: Height (the new height, top edge fixed)
type Op struct {
	Kind          string `json:"kind"`
	ComponentID   string `json:"componentId"`
	ComponentType string `json:"componentType,omitempty"`
	X             int    `json:"x"`
	Y             int    `json:"y"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
}

// Validate checks the envelope before dispatch.
// Geometry is not checked here; the engine clamps dimensions and rejects
// impossible placements itself.
func (op Op) Validate() error {
	if !ValidKinds[op.Kind] {
		return errors.New(errors.ErrCodeInvalidOperation,
			"invalid operation kind: %q (must be one of: add, remove, move, resize_width, resize_left, resize_height)", op.Kind)
	}
	if err := errors.ValidateComponentID(op.ComponentID); err != nil {
		return err
	}
	if op.ComponentType != "" {
		if err := errors.ValidateComponentType(op.ComponentType); err != nil {
			return err
		}
	}
	return nil
}

// Component builds the component an add operation asks for.
func (op Op) Component() grid.Component {
	return grid.Component{
		ID:     op.ComponentID,
		Type:   op.ComponentType,
		X:      op.X,
		Y:      op.Y,
		Width:  op.Width,
		Height: op.Height,
	}
}

// String returns a short description for logs and error messages.
func (op Op) String() string {
	return fmt.Sprintf("%s %s", op.Kind, op.ComponentID)
}

// =============================================================================
// Batch Result
// =============================================================================

// Result contains the outcome of a batch application.
type Result struct {
	// Layout is the layout after the last applied operation. When an
	// operation was rejected, this is the layout as of the last commit,
	// letting callers choose between partial and all-or-nothing semantics.
	Layout []grid.Component

	// Applied is the number of operations applied.
	Applied int

	// Duration is the total time spent applying the batch.
	Duration time.Duration
}
