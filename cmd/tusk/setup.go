package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/tuskcmd/internal/config"
	"github.com/sandevgo/tuskcmd/internal/service/command"
	"github.com/sandevgo/tuskcmd/internal/service/command/builtin"
	"github.com/sandevgo/tuskcmd/internal/service/state"
	"github.com/sandevgo/tuskcmd/internal/transport/cli"
	"github.com/sandevgo/tuskcmd/internal/transport/telegram"
	"github.com/sandevgo/tuskcmd/pkg/log"
	"github.com/sandevgo/tuskcmd/pkg/srv"
)

// app holds the wiring shared by every subcommand.
type app struct {
	cfg      *config.AppConfig
	state    *state.GlobalState
	registry *command.Registry
	menu     *telegram.MenuRegistrant
}

// newApp loads the configuration and registers the built-in commands.
// stop is called when a command asks the process to stop.
func newApp(ctx context.Context, stop context.CancelFunc) (*app, error) {
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("failed to init env: %w", err)
	}

	cfg, err := config.ParseAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to parse App config: %w", err)
	}

	env := cfg.ResolveEnvironment(ctx, environment)
	st := state.NewGlobalState(env, stop)
	menu := telegram.NewMenuRegistrant()

	registry := command.NewRegistry(
		command.WithEnvironment(env),
		command.WithStrictArity(cfg.IsStrictArity()),
		command.WithRegistrant(command.Registrants{
			command.NewLogRegistrant(ctx),
			menu,
		}),
	)
	if err := builtin.Register(ctx, registry, st); err != nil {
		return nil, fmt.Errorf("failed to register built-in commands: %w", err)
	}

	log.FromCtx(ctx).Debug().Str("environment", env.String()).Msg("command registry ready")

	return &app{
		cfg:      cfg,
		state:    st,
		registry: registry,
		menu:     menu,
	}, nil
}

func NewServices(ctx context.Context, stop context.CancelFunc) ([]srv.Service, error) {
	a, err := newApp(ctx, stop)
	if err != nil {
		return nil, err
	}
	return a.transports(ctx)
}

func (a *app) transports(ctx context.Context) ([]srv.Service, error) {
	var services []srv.Service

	// Telegram Bot
	if a.cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, a.registry, a.menu)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	// Console
	if a.cfg.IsCLISelected() {
		rl, err := cli.NewReadLine(a.registry, a.cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	if len(services) == 0 {
		return nil, errors.New("no transport enabled, set TUSK_ENABLE_CLI or TUSK_ENABLE_TELEGRAM")
	}
	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
