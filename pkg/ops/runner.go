package ops

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gridpush/gridpush/pkg/errors"
	"github.com/gridpush/gridpush/pkg/grid"
	"github.com/gridpush/gridpush/pkg/observability"
)

// Runner applies operations to layouts.
// Both CLI and API use this to avoid duplicating dispatch and error
// translation logic.
//
// The Runner is stateless except for the engine and logger - it doesn't
// store layouts. Multiple goroutines can safely use the same Runner on
// different layouts.
type Runner struct {
	Engine *grid.Engine
	Logger *log.Logger
}

// NewRunner creates a runner with the given engine.
// If engine is nil, an engine with default dimensions is used.
// If logger is nil, logging is discarded.
func NewRunner(engine *grid.Engine, logger *log.Logger) *Runner {
	if engine == nil {
		engine = grid.New(grid.Config{})
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Engine: engine,
		Logger: logger,
	}
}

// Apply validates op and applies it to layout, returning the new layout.
// The input layout is never modified. On rejection the returned error
// carries a code from the errors package and the input remains the valid
// state to keep.
func (r *Runner) Apply(ctx context.Context, boardID string, layout []grid.Component, op Op) ([]grid.Component, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}

	observability.Engine().OnOperationStart(ctx, op.Kind, boardID)
	start := time.Now()

	next, err := r.dispatch(layout, op)
	duration := time.Since(start)
	observability.Engine().OnOperationComplete(ctx, op.Kind, boardID, len(next), duration, err)

	if err != nil {
		r.Logger.Debug("operation rejected",
			"board", boardID,
			"op", op.String(),
			"err", err)
		return nil, translate(op, err)
	}

	r.Logger.Debug("operation applied",
		"board", boardID,
		"op", op.String(),
		"components", len(next),
		"duration", duration)

	// The engine guarantees legal results for legal inputs. A violation
	// here means an engine defect, so it is logged loudly but the result
	// is still returned.
	if violations := r.Engine.Validate(next); len(violations) > 0 {
		r.Logger.Error("layout invalid after operation",
			"board", boardID,
			"op", op.String(),
			"violations", len(violations))
	}

	return next, nil
}

// ApplyAll applies ops in order, stopping at the first rejection.
// The returned Result always holds the layout as of the last successful
// operation along with how many were applied. A non-nil error describes
// the rejected operation and its index; callers wanting all-or-nothing
// semantics discard the Result on error.
func (r *Runner) ApplyAll(ctx context.Context, boardID string, layout []grid.Component, batch []Op) (Result, error) {
	start := time.Now()
	current := layout

	for i, op := range batch {
		next, err := r.Apply(ctx, boardID, current, op)
		if err != nil {
			return Result{
				Layout:   current,
				Applied:  i,
				Duration: time.Since(start),
			}, errors.Wrap(errors.GetCode(err), err, "operation %d of %d (%s)", i+1, len(batch), op.String())
		}
		current = next
	}

	r.Logger.Info("applied operations",
		"board", boardID,
		"count", len(batch),
		"duration", time.Since(start))

	return Result{
		Layout:   current,
		Applied:  len(batch),
		Duration: time.Since(start),
	}, nil
}

// Validate runs the layout validator and reports findings through hooks.
func (r *Runner) Validate(ctx context.Context, boardID string, layout []grid.Component) []grid.Violation {
	violations := r.Engine.Validate(layout)
	observability.Engine().OnValidation(ctx, boardID, len(violations))

	if len(violations) > 0 {
		r.Logger.Debug("validation found violations",
			"board", boardID,
			"count", len(violations))
	}
	return violations
}

// dispatch routes an operation to the engine.
func (r *Runner) dispatch(layout []grid.Component, op Op) ([]grid.Component, error) {
	switch op.Kind {
	case KindAdd:
		return r.Engine.Add(layout, op.Component())
	case KindRemove:
		return r.Engine.Remove(layout, op.ComponentID), nil
	case KindMove:
		return r.Engine.Move(layout, op.ComponentID, op.X, op.Y)
	case KindResizeWidth:
		return r.Engine.ResizeWidth(layout, op.ComponentID, op.Width)
	case KindResizeLeft:
		return r.Engine.ResizeLeft(layout, op.ComponentID, op.X)
	case KindResizeHeight:
		return r.Engine.ResizeHeight(layout, op.ComponentID, op.Height)
	default:
		return nil, errors.New(errors.ErrCodeInvalidOperation, "invalid operation kind: %q", op.Kind)
	}
}

// translate maps engine sentinels onto coded errors for the surface layers.
func translate(op Op, err error) error {
	switch {
	case stderrors.Is(err, grid.ErrNoPlacement):
		return errors.Wrap(errors.ErrCodeRejectedNoPlacement, err, "%s", op.String())
	case stderrors.Is(err, grid.ErrOutOfBounds):
		return errors.Wrap(errors.ErrCodeRejectedOutOfBounds, err, "%s", op.String())
	case stderrors.Is(err, grid.ErrDuplicateComponentID):
		return errors.Wrap(errors.ErrCodeRejectedDuplicate, err, "%s", op.String())
	case stderrors.Is(err, grid.ErrComponentNotFound):
		return errors.Wrap(errors.ErrCodeComponentNotFound, err, "%s", op.String())
	case stderrors.Is(err, grid.ErrInvalidComponentID):
		return errors.Wrap(errors.ErrCodeInvalidComponent, err, "%s", op.String())
	default:
		return errors.Wrap(errors.ErrCodeInternal, err, "%s", op.String())
	}
}
