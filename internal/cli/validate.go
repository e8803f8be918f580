package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/grid"
)

// validateCommand creates the validate command for checking a board layout.
func (c *CLI) validateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [board.json]",
		Short: "Check a board layout for violations",
		Long: `Check a board layout for violations.

The validator reports overlapping components, components crossing the grid
boundaries, and components with non-positive dimensions. A board produced
only by accepted operations never has violations; this command exists for
documents edited by hand or produced elsewhere.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args[0])
		},
	}

	return cmd
}

func (c *CLI) runValidate(ctx context.Context, path string) error {
	b, err := board.ReadBoardFile(path)
	if err != nil {
		return err
	}

	violations := c.newRunner(b).Validate(ctx, b.ID, b.Components)
	if len(violations) == 0 {
		printSuccess("Layout OK")
		printDetail("%d components, %d columns", len(b.Components), grid.New(b.Config()).Columns())
		return nil
	}

	for _, v := range violations {
		printViolation(v)
	}
	return fmt.Errorf("%d violations", len(violations))
}
