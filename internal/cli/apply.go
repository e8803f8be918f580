package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/ops"
)

// applyCommand creates the apply command for running an ops file against a board.
func (c *CLI) applyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [board.json] [ops.json]",
		Short: "Apply a batch of operations to a board",
		Long: `Apply a batch of operations to a board.

The ops file is a JSON array of operations, each with a kind (add, remove,
move, resize_width, resize_left, resize_height), a componentId, and the
fields that kind reads. The batch stops at the first rejected operation; in
that case the board file is left untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApply(cmd.Context(), args[0], args[1])
		},
	}

	return cmd
}

func (c *CLI) runApply(ctx context.Context, boardPath, opsPath string) error {
	logger := loggerFromContext(ctx)

	b, err := board.ReadBoardFile(boardPath)
	if err != nil {
		return err
	}
	batch, err := ops.ReadOpsFile(opsPath)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d operations from %s", len(batch), opsPath)

	prog := newProgress(logger)
	res, err := c.newRunner(b).ApplyAll(ctx, b.ID, b.Components, batch)
	if err != nil {
		return fmt.Errorf("apply %s: %w", opsPath, err)
	}
	prog.done(fmt.Sprintf("Applied %d operations", res.Applied))

	b.Components = res.Layout
	b.Touch()
	if err := board.WriteBoardFile(b, boardPath); err != nil {
		return err
	}

	printSuccess("Applied %d operations", res.Applied)
	printFile(boardPath)
	printDetail("%d components", len(b.Components))
	return nil
}
