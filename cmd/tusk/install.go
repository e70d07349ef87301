package main

import (
	"github.com/joho/godotenv"
	"github.com/sandevgo/tuskcmd/internal/config"
	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/installer"
	"github.com/sandevgo/tuskcmd/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Create the runtime directory and its .env file",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		runtimePath := config.GetRuntimePath()
		state, err := installer.RunWizard(runtimePath)
		if err != nil {
			return err
		}

		// Load the newly created .env file so the values are validated right away
		envPath := state.App.GetEnvFilePath()
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}
		if _, err := config.ParseAppConfig(); err != nil {
			logger.Warn().Err(err).Msg("saved configuration does not parse")
		}

		logger.Info().Msgf("initialized runtime directory at: %s", runtimePath)
		logger.Info().Msg("Installation complete! You can now run 'tusk start' or 'tusk run help'. " +
			core.TuskName + " " + core.TuskVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
