package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"hash/fnv"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/grid"
)

const (
	backgroundColor = "#ffffff"
	gridLineColor   = "#e5e7eb"
	textColor       = "#1f2937"

	// blockInset shrinks each rect by a few pixels per side so neighboring
	// components read as separate blocks instead of one solid slab.
	blockInset  = 3.0
	blockCorner = 4
	untypedFill = "#d3d8de"
)

// palette is the Tableau 10 categorical palette. Fills are assigned by type
// hash so one component type keeps its color across boards and renders.
var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// FillForType returns the deterministic fill color for a component type.
// Untyped components get a neutral grey.
func FillForType(componentType string) string {
	if componentType == "" {
		return untypedFill
	}
	h := fnv.New32a()
	h.Write([]byte(componentType))
	return palette[h.Sum32()%uint32(len(palette))]
}

// SVG renders the board as a standalone SVG document. Components are drawn
// in ID order so the output is byte-for-byte deterministic.
func SVG(b *board.Board, opts Options) []byte {
	opts.setDefaults()
	f := frameFor(b, opts)
	components := sortedComponents(b.Components)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		f.Width(), f.Height(), f.Width(), f.Height())
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", backgroundColor)

	if opts.ShowGrid {
		renderGridLines(&buf, f)
	}
	for _, c := range components {
		renderBlock(&buf, f, c)
	}
	for _, c := range components {
		renderLabel(&buf, f, c)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGridLines(buf *bytes.Buffer, f frame) {
	fmt.Fprintf(buf, `  <g stroke="%s" stroke-width="1">`+"\n", gridLineColor)
	for col := 0; col <= f.Columns; col++ {
		x := col * f.CellSize
		fmt.Fprintf(buf, `    <line x1="%d" y1="0" x2="%d" y2="%d"/>`+"\n", x, x, f.Height())
	}
	for row := 0; row <= f.Rows; row++ {
		y := row * f.CellSize
		fmt.Fprintf(buf, `    <line x1="0" y1="%d" x2="%d" y2="%d"/>`+"\n", y, f.Width(), y)
	}
	buf.WriteString("  </g>\n")
}

func renderBlock(buf *bytes.Buffer, f frame, c grid.Component) {
	x := float64(c.X*f.CellSize) + blockInset
	y := float64(c.Y*f.CellSize) + blockInset
	w := float64(c.Width*f.CellSize) - 2*blockInset
	h := float64(c.Height*f.CellSize) - 2*blockInset

	tooltip := c.ID
	if c.Type != "" {
		tooltip += " / " + c.Type
	}

	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%d" fill="%s">`,
		x, y, w, h, blockCorner, FillForType(c.Type))
	fmt.Fprintf(buf, `<title>%s</title>`, escapeXML(tooltip))
	buf.WriteString("</rect>\n")
}

func renderLabel(buf *bytes.Buffer, f frame, c grid.Component) {
	availW := float64(c.Width*f.CellSize) - 2*blockInset
	availH := float64(c.Height*f.CellSize) - 2*blockInset
	cx := float64(c.X*f.CellSize) + float64(c.Width*f.CellSize)/2
	cy := float64(c.Y*f.CellSize) + float64(c.Height*f.CellSize)/2

	size := fontSizeFor(availW, availH, len(c.ID))
	label := truncateLabel(c.ID, availW, size)

	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" font-family="Helvetica, Arial, sans-serif" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		cx, cy, size, textColor, escapeXML(label))
}

const (
	fontHeightRatio = 0.6
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 8.0
	fontSizeMax     = 24.0
)

func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

func truncateLabel(label string, availWidth, fontSize float64) string {
	maxChars := int((availWidth * fontWidthRatio) / (fontSize * fontCharWidth))
	if maxChars < 3 {
		maxChars = 3
	}
	if len(label) <= maxChars {
		return label
	}
	return label[:maxChars-2] + ".."
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
