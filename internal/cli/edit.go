package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/pkg/board"
)

// editCommand creates the edit command for the interactive board editor.
func (c *CLI) editCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [board.json]",
		Short: "Edit a board in a full-screen terminal editor",
		Long: `Edit a board in a full-screen terminal editor.

Every edit goes through the layout engine, so components push each other
the same way they do under apply or the API, and impossible edits are
rejected in place.

Keys:
  tab / shift+tab   select the next / previous component
  arrows or hjkl    move the selected component one cell
  + / -             widen / narrow by one column
  > / <             grow / shrink by one row
  [ / ]             move the left edge (right edge stays)
  a                 add a component at the first free cell
  d                 delete the selected component
  w                 save to the board file
  q / esc           quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(args[0])
		},
	}

	return cmd
}

func (c *CLI) runEdit(path string) error {
	b, err := board.ReadBoardFile(path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newEditorModel(b, path), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	if m, ok := final.(editorModel); ok && m.dirty {
		printWarning("Unsaved changes discarded")
	}
	return nil
}
