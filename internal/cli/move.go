package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/ops"
)

// moveCommand creates the move command for repositioning a component.
func (c *CLI) moveCommand() *cobra.Command {
	var op ops.Op

	cmd := &cobra.Command{
		Use:   "move [board.json]",
		Short: "Move a component to a new position",
		Long: `Move a component to a new position.

The requested column is kept exactly; if the requested cell is occupied the
free-cell search scans downward in that column for the first row where the
component fits. The move is rejected when no such row exists within the
search bound.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op.Kind = ops.KindMove
			return c.runMove(cmd.Context(), args[0], op)
		},
	}

	cmd.Flags().StringVar(&op.ComponentID, "id", "", "component ID to move")
	cmd.Flags().IntVarP(&op.X, "x", "x", 0, "target column")
	cmd.Flags().IntVarP(&op.Y, "y", "y", 0, "target row")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func (c *CLI) runMove(ctx context.Context, path string, op ops.Op) error {
	b, err := c.applyToFile(ctx, path, op)
	if err != nil {
		return fmt.Errorf("move component: %w", err)
	}

	comp, _ := findComponent(b, op.ComponentID)
	printSuccess("Moved %s to %s", comp.ID, describePlacement(comp))
	printFile(path)
	return nil
}
