// Package cli implements the gridpush command-line interface.
//
// This package provides commands for creating board documents, applying
// layout operations to them, validating and rendering layouts, migrating
// legacy row documents, and running the HTTP API server. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - init: Create a new board document
//   - add/remove/move/resize: Apply a single layout operation to a board
//   - apply: Apply a batch of operations from an ops file
//   - validate: Check a board layout for overlaps and bounds violations
//   - render: Generate SVG, PNG, DOT, or JSON output
//   - migrate: Convert a legacy row document into a board
//   - edit: Edit a board in a full-screen terminal editor
//   - serve: Run the HTTP API server
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/gridpush/gridpush/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger: timestamps down to hundredths of a
// second, filtered at level, writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress clocks one long-running step and reports how long it took:
//
//	prog := newProgress(logger)
//	... work ...
//	prog.done("Applied 12 operations")  // "Applied 12 operations (1.23s)"
//
// Sequential use only; done is not synchronized.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, rounded to milliseconds.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey keeps this package's context keys from colliding with other
// packages'.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to the context for loggerFromContext to find.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger carried by ctx, falling back to
// log.Default() so command code never holds a nil logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
