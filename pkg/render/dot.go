package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/errors"
	"github.com/gridpush/gridpush/pkg/grid"
)

// pointsPerInch converts pixel coordinates (treated as points) to the inch
// units Graphviz uses for node dimensions.
const pointsPerInch = 72.0

// DOT converts a board to Graphviz DOT format. Nodes are boxes pinned to
// their grid positions, so the neato engine reproduces the dashboard
// geometry instead of computing a layout of its own. The resulting string
// can be rasterized with [PNG] or fed to any Graphviz toolchain.
func DOT(b *board.Board, opts Options) string {
	opts.setDefaults()
	f := frameFor(b, opts)

	var buf bytes.Buffer
	buf.WriteString("graph board {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=box, style=\"filled\", fontname=\"Helvetica\"];\n")
	buf.WriteString("\n")

	for _, c := range sortedComponents(b.Components) {
		fmt.Fprintf(&buf, "  %q [%s];\n", c.ID, strings.Join(nodeAttrs(f, c), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(f frame, c grid.Component) []string {
	// Graphviz positions nodes by center, in points, with y growing upward.
	// Grid y grows downward, hence the negation.
	cx := (float64(c.X) + float64(c.Width)/2) * float64(f.CellSize)
	cy := -(float64(c.Y) + float64(c.Height)/2) * float64(f.CellSize)
	w := float64(c.Width*f.CellSize) / pointsPerInch
	h := float64(c.Height*f.CellSize) / pointsPerInch

	return []string{
		fmt.Sprintf("label=%q", c.ID),
		fmt.Sprintf(`pos="%.1f,%.1f!"`, cx, cy),
		fmt.Sprintf("width=%.3f", w),
		fmt.Sprintf("height=%.3f", h),
		"fixedsize=true",
		fmt.Sprintf("fillcolor=%q", FillForType(c.Type)),
	}
}

// PNG renders the board as a PNG image by rasterizing the DOT graph through
// Graphviz.
func PNG(ctx context.Context, b *board.Board, opts Options) ([]byte, error) {
	opts.setDefaults()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(DOT(b, opts)))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render PNG")
	}
	return buf.Bytes(), nil
}
