package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/ops"
)

// addCommand creates the add command for placing a new component.
func (c *CLI) addCommand() *cobra.Command {
	var op ops.Op

	cmd := &cobra.Command{
		Use:   "add [board.json]",
		Short: "Add a component to a board",
		Long: `Add a component to a board.

The component is placed by the free-cell search: the requested column is
kept, and the first free row at or below the requested one is used. Width
and height are clamped to the grid limits. Without --id a fresh UUID is
assigned.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if op.ComponentID == "" {
				op.ComponentID = uuid.NewString()
			}
			op.Kind = ops.KindAdd
			return c.runAdd(cmd.Context(), args[0], op)
		},
	}

	cmd.Flags().StringVar(&op.ComponentID, "id", "", "component ID (default: generated UUID)")
	cmd.Flags().StringVarP(&op.ComponentType, "type", "t", "", "component type, e.g. chart or table")
	cmd.Flags().IntVarP(&op.X, "x", "x", 0, "column to place in")
	cmd.Flags().IntVarP(&op.Y, "y", "y", 0, "row to start the downward search from")
	cmd.Flags().IntVar(&op.Width, "width", 2, "width in columns")
	cmd.Flags().IntVar(&op.Height, "height", 2, "height in rows")

	return cmd
}

// runAdd applies the add operation and reports the position the engine chose,
// which can differ from the request when the cell was occupied.
func (c *CLI) runAdd(ctx context.Context, path string, op ops.Op) error {
	b, err := c.applyToFile(ctx, path, op)
	if err != nil {
		return fmt.Errorf("add component: %w", err)
	}

	comp, _ := findComponent(b, op.ComponentID)
	printSuccess("Added %s at %s", comp.ID, describePlacement(comp))
	printFile(path)
	return nil
}
