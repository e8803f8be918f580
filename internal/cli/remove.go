package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/ops"
)

// removeCommand creates the remove command for deleting a component.
func (c *CLI) removeCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "remove [board.json]",
		Short: "Remove a component from a board",
		Long: `Remove a component from a board.

Nothing else moves: the hole left behind stays open until another operation
claims it. Removing an ID that is not on the board is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRemove(cmd.Context(), args[0], id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "component ID to remove")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func (c *CLI) runRemove(ctx context.Context, path, id string) error {
	before, err := board.ReadBoardFile(path)
	if err != nil {
		return err
	}
	_, existed := findComponent(before, id)

	if _, err := c.applyToFile(ctx, path, ops.Op{Kind: ops.KindRemove, ComponentID: id}); err != nil {
		return fmt.Errorf("remove component: %w", err)
	}

	if existed {
		printSuccess("Removed %s", id)
	} else {
		printInfo("Component %q was not on the board", id)
	}
	printFile(path)
	return nil
}
