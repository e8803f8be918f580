// Package pkg provides the core libraries for Gridpush dashboard layout.
//
// # Overview
//
// Gridpush manages dashboard layouts on a fixed-width grid: components
// occupy rectangles of whole cells, columns are bounded, rows grow downward
// without limit. Edits never fail on collision; overlapped neighbors are
// pushed out of the way, and the push cascades until the layout settles or
// hits the right wall. The pkg directory is organized into three main areas:
//
//  1. Layout engine ([grid], [ops]) - pure placement rules and the operation
//     layer that drives them
//  2. Documents ([board], [store], [cache]) - the persisted board model and
//     its storage and caching backends
//  3. Delivery ([render], [api], [config]) - visual output and the HTTP
//     server
//
// # Architecture
//
// The typical data flow through Gridpush:
//
//	Board document (JSON file or store)
//	         ↓
//	    [ops] package (decode and validate operations)
//	         ↓
//	    [grid] package (placement, cascading push, validation)
//	         ↓
//	    [render] package (SVG/PNG/DOT/JSON output)
//
// # Quick Start
//
// Apply an operation to a layout and render the result:
//
//	import (
//	    "context"
//	    "github.com/gridpush/gridpush/pkg/board"
//	    "github.com/gridpush/gridpush/pkg/grid"
//	    "github.com/gridpush/gridpush/pkg/render"
//	)
//
//	// 1. Build an engine
//	engine := grid.New(grid.Config{Columns: 12})
//
//	// 2. Place components; the input slice is never mutated
//	layout, _ := engine.Add(nil, grid.Component{ID: "cpu", Type: "chart", Width: 4, Height: 2})
//	layout, _ = engine.ResizeWidth(layout, "cpu", 6)
//
//	// 3. Render to SVG
//	b := board.New("demo")
//	b.Components = layout
//	svg, _ := render.Render(context.Background(), b, render.Options{Format: "svg"})
//
// # Main Packages
//
// [grid] - The layout engine. Pure value semantics: every operation takes a
// layout slice and returns a new one, so a rejected edit leaves the caller's
// layout untouched. Covers add, remove, move, the three resize edges, the
// column-locked free-cell search, and the independent validator.
//
// [ops] - The operation layer. Decodes JSON operations, checks them against
// [ops.ValidKinds], dispatches to the engine, and translates engine
// sentinels into coded errors shared by CLI and API.
//
// [board] - The persisted dashboard document: grid dimensions plus
// components plus timestamps, with JSON file helpers and the legacy
// row-format migration.
//
// [store] - Board persistence behind a small Store interface. Memory
// backend for tests, file backend for the CLI, MongoDB backend for the
// server.
//
// [cache] - Render cache behind a Cache interface with file and Redis
// backends, content-hash keys, and TTLs per artifact class.
//
// [render] - Board visualizations: SVG directly, DOT graph descriptions,
// PNG rasterized from DOT, JSON for programmatic consumers.
//
// [api] - The HTTP server: chi router, per-board locking, coded error
// responses, cached render endpoint.
//
// [config] - TOML configuration with defaults for every key, bridging into
// grid, store, and cache options.
//
// [errors] - Coded errors shared across surfaces, so a cascade rejection
// looks the same from the CLI, the API, and the logs.
//
// [observability] - Log hook registry used to fan events out to metrics.
//
// [httputil] - Client for fetching remote documents, used when migrating
// legacy exports by URL: file-backed response cache, retry with backoff.
//
// # Common Workflows
//
// Load a board file and validate it:
//
//	b, _ := board.ReadBoardFile("board.json")
//	engine := grid.New(b.Config())
//	violations := engine.Validate(b.Components)
//
// Apply a batch atomically (all ops land or none do):
//
//	runner := ops.NewRunner(engine, logger)
//	result, err := runner.ApplyAll(ctx, b.Components, batch)
//
// Migrate a legacy row-format file:
//
//	rows, _ := board.ReadLegacyFile("legacy.json")
//	components, _ := board.FromLegacyRows(rows, engine.Columns())
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/grid/...     # Specific package
//	go test -run Example       # Examples only
//
// [grid]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/grid
// [ops]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/ops
// [ops.ValidKinds]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/ops#ValidKinds
// [board]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/board
// [store]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/store
// [cache]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/cache
// [render]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/render
// [api]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/api
// [config]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/config
// [errors]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/errors
// [observability]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/observability
// [httputil]: https://pkg.go.dev/github.com/gridpush/gridpush/pkg/httputil
package pkg
