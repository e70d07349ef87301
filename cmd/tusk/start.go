package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/pkg/log"
	"github.com/sandevgo/tuskcmd/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the console and bot transports",
	Long:  `Registers the built-in commands and starts every enabled transport (console, Telegram).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Str("version", core.TuskVersion).Msg("starting " + core.TuskName)

		services, err := NewServices(ctx, stop)
		if err != nil {
			logger.Error().Err(err).Msg("failed to initialize services")
			return err
		}

		srv.StartServices(ctx, stop, services)

		// Wait for shutdown signal or /stop
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg(core.TuskName + " has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
