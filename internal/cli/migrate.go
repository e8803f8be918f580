package cli

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/grid"
	"github.com/gridpush/gridpush/pkg/httputil"
)

// Remote legacy documents are cached for a day; exports rarely change and
// --refresh forces a re-download when they do.
const legacyCacheTTL = 24 * time.Hour

// migrateCommand creates the migrate command for converting legacy row documents.
func (c *CLI) migrateCommand() *cobra.Command {
	var (
		output  string
		name    string
		columns int
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "migrate [legacy.json | url]",
		Short: "Convert a legacy row document into a board",
		Long: `Convert a legacy row document into a board.

The legacy format is a JSON array of rows, each row an array of components
with componentId and componentType. Each row's components share the row's
width equally (left to right, remainder columns going to the leftmost
components) and get a height of one row.

The source is a local file or an http(s) URL. Remote documents are cached
under the user cache directory; pass --refresh to force a re-download.

Examples:
  gridpush migrate legacy.json
  gridpush migrate legacy.json -o board.json --columns 16
  gridpush migrate https://dashboards.example.com/exports/ops.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMigrate(cmd.Context(), args[0], output, name, columns, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output board file (default: <input>.board.json)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "board name (default: input file name)")
	cmd.Flags().IntVar(&columns, "columns", 0, fmt.Sprintf("grid width in columns (default %d)", grid.DefaultColumns))
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the HTTP document cache")

	return cmd
}

func (c *CLI) runMigrate(ctx context.Context, input, output, name string, columns int, refresh bool) error {
	logger := loggerFromContext(ctx)

	rows, stem, err := c.loadLegacyRows(ctx, input, refresh)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d legacy rows", len(rows))

	engine := grid.New(grid.Config{Columns: columns})
	components := board.FromLegacyRows(rows, engine.Columns())

	if name == "" {
		name = filepath.Base(stem)
	}

	b := board.New(name)
	b.Columns = engine.Columns()
	b.Components = components

	out := output
	if out == "" {
		out = stem + ".board.json"
	}
	if err := board.WriteBoardFile(b, out); err != nil {
		return err
	}

	printSuccess("Migrated %d rows into %d components", len(rows), len(components))
	printFile(out)

	// The conversion performs no legality checks; a row holding more
	// components than the grid has columns yields zero-width components.
	// The validator catches that here.
	if violations := engine.Validate(components); len(violations) > 0 {
		for _, v := range violations {
			printViolation(v)
		}
		return fmt.Errorf("migrated layout has %d violations", len(violations))
	}

	printNewline()
	printNextStep("Render it", "gridpush render "+out)
	return nil
}

// loadLegacyRows reads a legacy row document from a local file or an http(s)
// URL. The returned stem is the source without its extension and seeds the
// default board name and output path.
func (c *CLI) loadLegacyRows(ctx context.Context, input string, refresh bool) ([][]board.LegacyComponent, string, error) {
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		rows, err := c.fetchLegacyRows(ctx, input, refresh)
		if err != nil {
			return nil, "", err
		}
		stem := strings.TrimSuffix(path.Base(u.Path), path.Ext(u.Path))
		if stem == "" || stem == "." || stem == "/" {
			stem = u.Hostname()
		}
		return rows, stem, nil
	}

	rows, err := board.ReadLegacyFile(input)
	if err != nil {
		return nil, "", err
	}
	return rows, strings.TrimSuffix(input, filepath.Ext(input)), nil
}

// fetchLegacyRows downloads a remote legacy document, going through the
// shared HTTP cache unless refresh is set.
func (c *CLI) fetchLegacyRows(ctx context.Context, rawURL string, refresh bool) ([][]board.LegacyComponent, error) {
	cache, err := httputil.NewCache("", legacyCacheTTL)
	if err != nil {
		return nil, err
	}
	client := httputil.NewClient(cache.Namespace("legacy:"), nil)

	spinner := newSpinnerWithContext(ctx, "Fetching legacy document...")
	spinner.Start()
	var rows [][]board.LegacyComponent
	err = client.Cached(ctx, rawURL, refresh, &rows, func() error {
		return client.Get(ctx, rawURL, &rows)
	})
	spinner.Stop()
	if spinner.Cancelled() {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	return rows, nil
}
