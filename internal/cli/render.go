package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/cache"
	"github.com/gridpush/gridpush/pkg/render"
)

// renderCommand creates the render command for generating board images.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := render.Options{}

	cmd := &cobra.Command{
		Use:   "render [board.json]",
		Short: "Render a board to SVG, PNG, DOT, or JSON",
		Long: `Render a board to SVG, PNG, DOT, or JSON.

Output is deterministic for a given board and options, so rendered
artifacts are cached under the user cache directory, keyed by a content
hash of the board document. Rendering the same unchanged board twice hits
the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: board path with the format extension)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "output format: svg (default), png, dot, json")
	cmd.Flags().IntVar(&opts.CellSize, "cell-size", 0, fmt.Sprintf("pixels per grid cell (default %d)", render.DefaultCellSize))
	cmd.Flags().IntVar(&opts.MinRows, "min-rows", 0, fmt.Sprintf("minimum rows to draw (default %d)", render.DefaultMinRows))
	cmd.Flags().BoolVar(&opts.ShowGrid, "grid", false, "draw grid lines")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// runRender loads the board, renders it (through the cache), and writes the
// artifact to the output path.
func (c *CLI) runRender(ctx context.Context, input string, opts render.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	b, err := board.ReadBoardFile(input)
	if err != nil {
		return err
	}

	ca := newCache(noCache)
	defer ca.Close()

	doc, err := board.MarshalBoard(b)
	if err != nil {
		return err
	}
	key := cache.NewDefaultKeyer().RenderKey(cache.Hash(doc), opts.KeyOpts())

	data, cacheHit, err := ca.Get(ctx, key)
	if err != nil {
		logger.Debugf("Cache read failed, rendering fresh: %v", err)
		data, cacheHit = nil, false
	}

	if !cacheHit {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.Format))
		spinner.Start()

		data, err = render.Render(ctx, b, opts)
		if err != nil {
			spinner.StopWithError("Render failed")
			return fmt.Errorf("render: %w", err)
		}
		spinner.Stop()

		if err := ca.Set(ctx, key, data, cache.TTLRender); err != nil {
			logger.Warnf("Cache write failed: %v", err)
		}
	}

	out := outputPath(output, input, opts.Format)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", out, err)
	}

	printSuccess("Rendered %s", opts.Format)
	printFile(out)
	printStats(len(b.Components), cacheHit)
	return nil
}
