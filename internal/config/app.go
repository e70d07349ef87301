package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/tuskcmd/internal/environment"
	"github.com/sandevgo/tuskcmd/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"TUSK_RUNTIME_PATH" envDefault:".tuskcmd"`
	// Deployment environment the command variants are matched against.
	Environment string `env:"TUSK_ENVIRONMENT" envDefault:"prod"`

	// Transport Flags
	EnableTelegram bool `env:"TUSK_ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"TUSK_ENABLE_CLI" envDefault:"true"`

	// Reject tokens beyond a command's declared parameters instead of dropping them.
	StrictArity bool `env:"TUSK_STRICT_ARITY" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(c.RuntimePath) {
		if home, err := os.UserHomeDir(); err == nil {
			c.RuntimePath = filepath.Join(home, c.RuntimePath)
		}
	}
	return c, nil
}

// ResolveEnvironment returns the active environment flag. override wins
// over the configured value; an invalid name falls back to PROD.
func (c AppConfig) ResolveEnvironment(ctx context.Context, override string) environment.Flag {
	name := c.Environment
	if override != "" {
		name = override
	}

	flag, err := environment.Parse(name)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("environment", name).
			Msgf("invalid environment flag, using %s", environment.Default)
		return environment.Default
	}
	return flag
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetEnvFilePath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) IsCLISelected() bool {
	return c.EnableCLI
}

func (c AppConfig) IsStrictArity() bool {
	return c.StrictArity
}
