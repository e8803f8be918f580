package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/ops"
)

// resizeCommand creates the resize command. Exactly one of --width, --left,
// or --height selects which edge moves.
func (c *CLI) resizeCommand() *cobra.Command {
	var (
		id     string
		width  int
		left   int
		height int
	)

	cmd := &cobra.Command{
		Use:   "resize [board.json]",
		Short: "Resize a component",
		Long: `Resize a component.

Exactly one dimension flag must be given:

  --width N    set the width; the left edge stays, components in the way are
               pushed right and the resize is rejected if the cascade would
               cross the right boundary
  --left N     set the left edge; the right edge stays, components in the way
               are pushed left and the resize is rejected at column 0
  --height N   set the height; components below are pushed down, which never
               fails on an unbounded grid`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := resizeOp(cmd, id, width, left, height)
			if err != nil {
				return err
			}
			return c.runResize(cmd.Context(), args[0], op)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "component ID to resize")
	cmd.Flags().IntVar(&width, "width", 0, "new width in columns")
	cmd.Flags().IntVar(&left, "left", 0, "new left edge column")
	cmd.Flags().IntVar(&height, "height", 0, "new height in rows")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

// resizeOp maps the dimension flags onto an operation, enforcing that
// exactly one was given.
func resizeOp(cmd *cobra.Command, id string, width, left, height int) (ops.Op, error) {
	op := ops.Op{ComponentID: id}

	changed := 0
	if cmd.Flags().Changed("width") {
		changed++
		op.Kind = ops.KindResizeWidth
		op.Width = width
	}
	if cmd.Flags().Changed("left") {
		changed++
		op.Kind = ops.KindResizeLeft
		op.X = left
	}
	if cmd.Flags().Changed("height") {
		changed++
		op.Kind = ops.KindResizeHeight
		op.Height = height
	}

	if changed != 1 {
		return ops.Op{}, fmt.Errorf("exactly one of --width, --left, or --height must be given")
	}
	return op, nil
}

func (c *CLI) runResize(ctx context.Context, path string, op ops.Op) error {
	b, err := c.applyToFile(ctx, path, op)
	if err != nil {
		return fmt.Errorf("resize component: %w", err)
	}

	comp, _ := findComponent(b, op.ComponentID)
	printSuccess("Resized %s to %s", comp.ID, describePlacement(comp))
	printFile(path)
	return nil
}
