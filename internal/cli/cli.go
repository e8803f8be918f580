package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/buildinfo"
	"github.com/gridpush/gridpush/pkg/cache"
	"github.com/gridpush/gridpush/pkg/grid"
	"github.com/gridpush/gridpush/pkg/ops"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gridpush"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridpush",
		Short:        "Gridpush manages dashboard grid layouts",
		Long:         `Gridpush places, moves, and resizes components on a fixed-width dashboard grid, cascading collisions downward or sideways so nothing ever overlaps.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.initCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.migrateCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates an operation runner sized for the given board.
func (c *CLI) newRunner(b *board.Board) *ops.Runner {
	return ops.NewRunner(grid.New(b.Config()), c.Logger)
}

// applyToFile reads the board at path, applies op through the runner, and
// writes the board back. On rejection nothing is written and the file keeps
// its previous content.
func (c *CLI) applyToFile(ctx context.Context, path string, op ops.Op) (*board.Board, error) {
	b, err := board.ReadBoardFile(path)
	if err != nil {
		return nil, err
	}

	layout, err := c.newRunner(b).Apply(ctx, b.ID, b.Components, op)
	if err != nil {
		return nil, err
	}

	b.Components = layout
	b.Touch()
	if err := board.WriteBoardFile(b, path); err != nil {
		return nil, err
	}
	return b, nil
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache opens the render cache for CLI use, or a null cache when caching
// is disabled or the cache directory is unavailable.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/gridpush/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// outputPath derives an output file path from an explicit output flag, or
// falls back to the input path with its extension swapped for ext.
func outputPath(output, input, ext string) string {
	if output != "" {
		return output
	}
	base := input[:len(input)-len(filepath.Ext(input))]
	return base + "." + ext
}

// =============================================================================
// Lookup Helpers
// =============================================================================

// findComponent returns the component with the given ID, reporting whether it
// exists. Commands use it to show the final position the engine chose.
func findComponent(b *board.Board, id string) (grid.Component, bool) {
	for _, comp := range b.Components {
		if comp.ID == id {
			return comp, true
		}
	}
	return grid.Component{}, false
}

// describePlacement formats a component's position and size for output.
func describePlacement(comp grid.Component) string {
	return fmt.Sprintf("(%d,%d) %dx%d", comp.X, comp.Y, comp.Width, comp.Height)
}
