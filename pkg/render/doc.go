// Package render turns board layouts into visual artifacts.
//
// # Overview
//
// A board is a grid of rectangular components; rendering maps that cell
// geometry onto pixels. The package produces four formats:
//
//   - SVG: a hand-built document, one rect plus label per component
//   - DOT: a Graphviz graph with position-pinned box nodes (neato)
//   - PNG: the DOT graph rasterized through go-graphviz
//   - JSON: the resolved geometry as a data document
//
// # Usage
//
// Configure via [Options] and dispatch through [Render]:
//
//	opts := render.Options{Format: render.FormatSVG, ShowGrid: true}
//	out, err := render.Render(ctx, b, opts)
//
// Or call a format renderer directly:
//
//	svg := render.SVG(b, render.Options{})
//	dot := render.DOT(b, render.Options{})
//
// All renderers are deterministic: the same board and options always produce
// the same bytes, which is what makes cached artifacts safe to reuse. Callers
// that cache should key entries with [Options.KeyOpts] plus a content hash of
// the board.
//
// # Geometry
//
// One grid cell maps to CellSize x CellSize pixels. The frame is exactly as
// wide as the board's column count and as tall as the lowest component
// bottom, with MinRows guaranteeing sparse boards still render a visible
// canvas. Component fills are chosen per type from a fixed palette, so the
// same component type looks the same across boards.
package render
