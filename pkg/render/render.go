package render

import (
	"cmp"
	"context"
	"slices"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/cache"
	"github.com/gridpush/gridpush/pkg/errors"
	"github.com/gridpush/gridpush/pkg/grid"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Config
// =============================================================================

const (
	// DefaultCellSize is the pixel edge length of one grid cell.
	DefaultCellSize = 40

	// DefaultMinRows is the minimum frame height in rows. Sparse or empty
	// boards still render a canvas this tall.
	DefaultMinRows = 8
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// DefaultFormat is the output format used when [Options.Format] is unset.
const DefaultFormat = FormatSVG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, dot, json)", format)
	}
	return nil
}

// =============================================================================
// Options - Render Configuration
// =============================================================================

// Options contains all configuration for rendering a board. The zero value
// is usable; [Options.ValidateAndSetDefaults] fills in defaults.
type Options struct {
	// Format selects the output format: svg, png, dot, or json.
	Format string `json:"format,omitempty"`

	// CellSize is the pixel edge length of one grid cell.
	CellSize int `json:"cellSize,omitempty"`

	// MinRows is the minimum frame height in rows.
	MinRows int `json:"minRows,omitempty"`

	// ShowGrid draws the cell grid behind the components (SVG only).
	ShowGrid bool `json:"showGrid,omitempty"`
}

// ValidateAndSetDefaults applies defaults and checks the format.
func (o *Options) ValidateAndSetDefaults() error {
	o.setDefaults()
	return ValidateFormat(o.Format)
}

func (o *Options) setDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.MinRows <= 0 {
		o.MinRows = DefaultMinRows
	}
}

// KeyOpts returns the cache key options for these render options. Every
// field that changes the artifact bytes is included.
func (o Options) KeyOpts() cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Format:   o.Format,
		CellSize: o.CellSize,
		MinRows:  o.MinRows,
		ShowGrid: o.ShowGrid,
	}
}

// =============================================================================
// Dispatch
// =============================================================================

// Render renders the board in the format named by opts. The context is only
// consulted by the PNG rasterizer; SVG, DOT, and JSON are pure in-memory
// transforms.
func Render(ctx context.Context, b *board.Board, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	switch opts.Format {
	case FormatSVG:
		return SVG(b, opts), nil
	case FormatDOT:
		return []byte(DOT(b, opts)), nil
	case FormatPNG:
		return PNG(ctx, b, opts)
	case FormatJSON:
		return JSON(b, opts)
	default:
		return nil, ValidateFormat(opts.Format)
	}
}

// =============================================================================
// Shared Geometry Helpers
// =============================================================================

// frame holds the resolved pixel geometry all renderers share.
type frame struct {
	Columns  int
	Rows     int
	CellSize int
}

func (f frame) Width() int  { return f.Columns * f.CellSize }
func (f frame) Height() int { return f.Rows * f.CellSize }

func frameFor(b *board.Board, opts Options) frame {
	rows := opts.MinRows
	for _, c := range b.Components {
		if c.Bottom() > rows {
			rows = c.Bottom()
		}
	}
	return frame{
		Columns:  grid.New(b.Config()).Columns(),
		Rows:     rows,
		CellSize: opts.CellSize,
	}
}

// sortedComponents returns the components ordered by ID so output bytes are
// deterministic regardless of layout history.
func sortedComponents(components []grid.Component) []grid.Component {
	out := slices.Clone(components)
	slices.SortFunc(out, func(a, b grid.Component) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
