package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/errors"
	"github.com/gridpush/gridpush/pkg/grid"
)

// initCommand creates the init command for creating a new board document.
func (c *CLI) initCommand() *cobra.Command {
	var (
		name      string
		columns   int
		maxHeight int
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "init [board.json]",
		Short: "Create a new empty board document",
		Long: `Create a new empty board document.

The board gets a fresh UUID and the grid dimensions given by --columns and
--max-height (engine defaults when omitted). The name defaults to the file
name without its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInit(args[0], name, columns, maxHeight, force)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "board name (default: file name)")
	cmd.Flags().IntVar(&columns, "columns", 0, fmt.Sprintf("grid width in columns (default %d)", grid.DefaultColumns))
	cmd.Flags().IntVar(&maxHeight, "max-height", 0, fmt.Sprintf("maximum component height in rows (default %d)", grid.DefaultMaxComponentHeight))
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

// runInit builds the board and writes it, refusing to clobber an existing
// file unless forced.
func (c *CLI) runInit(path, name string, columns, maxHeight int, force bool) error {
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if err := errors.ValidateBoardName(name); err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	b := board.New(name)
	b.Columns = columns
	b.MaxComponentHeight = maxHeight

	if err := board.WriteBoardFile(b, path); err != nil {
		return err
	}

	cfg := grid.New(b.Config())
	printSuccess("Created board %q", b.Name)
	printFile(path)
	printKeyValue("Columns", fmt.Sprintf("%d", cfg.Columns()))
	printKeyValue("Max height", fmt.Sprintf("%d", cfg.MaxComponentHeight()))
	printNewline()
	printNextStep("Add a component", "gridpush add "+path+" --type chart --width 4 --height 2")
	return nil
}
