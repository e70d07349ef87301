package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/tuskcmd/internal/service/command"
	"github.com/sandevgo/tuskcmd/internal/transport/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <command> [args...]",
	Short: "Run a single command as the console and exit",
	Example: `  tusk run help
  tusk run calc add 1 2
  tusk -e dev run log level debug`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := context.WithCancel(cmd.Context())
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		a, err := newApp(ctx, stop)
		if err != nil {
			return err
		}

		console := cli.NewConsole(cmd.OutOrStdout())
		line := strings.Join(args, " ")
		if outcome := cli.Execute(ctx, a.registry, console, line); outcome != command.OutcomeHandled {
			return fmt.Errorf("command not handled: %s", outcome)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
