package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts through cobra.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Generate a shell completion script",
		Long: `Generate a completion script for your shell.

Load it once for the current session:

  source <(gridpush completion bash)
  gridpush completion fish | source
  gridpush completion powershell | Out-String | Invoke-Expression

Or install it permanently:

  gridpush completion bash > /etc/bash_completion.d/gridpush
  gridpush completion zsh  > "${fpath[1]}/_gridpush"
  gridpush completion fish > ~/.config/fish/completions/gridpush.fish

Zsh needs completion enabled first: add "autoload -U compinit; compinit"
to ~/.zshrc and start a new shell.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			default:
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}
}
