package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gridpush/gridpush/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	wireVerbose(c, root)

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			// 128+SIGINT, the shell convention for interrupted commands
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// wireVerbose adds the global --verbose flag. Cobra parses flags only once
// a command runs, so the log level is raised in a pre-run hook wrapped
// around the one RootCommand installed.
func wireVerbose(c *cli.CLI, root *cobra.Command) {
	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")

	pre := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if pre != nil {
			return pre(cmd, args)
		}
		return nil
	}
}
