package main

import (
	"context"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/command"
	"github.com/sandevgo/tuskcmd/internal/transport/cli"
	"github.com/spf13/cobra"
)

var showPermissions bool

var commandsCmd = &cobra.Command{
	Use:          "commands",
	Short:        "List the commands available in the current environment",
	SilenceUsage: true,
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
		groups := command.ForEnvironment(a.registry.Descriptors(), a.registry.Environment())
		f := command.NewResponseFormatter()
		console.SendMessage(f.Combine(
			f.Info(core.TuskName+" commands ("+a.registry.Environment().String()+")"),
			command.DetailedHelp(groups, console, showPermissions),
		))
		return nil
	},
}

func init() {
	commandsCmd.Flags().BoolVarP(&showPermissions, "permissions", "p", false, "show the permission each command requires")
	rootCmd.AddCommand(commandsCmd)
}
