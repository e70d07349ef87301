package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/tuskcmd/pkg/log"
)

type TelegramConfig struct {
	Token   string `env:"TUSK_TELEGRAM_TOKEN,required,notEmpty"`
	OwnerID int64  `env:"TUSK_TELEGRAM_OWNER_ID,required"`
	// Users other than the owner allowed to talk to the bot.
	AllowedUsers []int64 `env:"TUSK_TELEGRAM_ALLOWED_USERS" envSeparator:","`
	// Permission nodes granted to allowed users. The owner holds every node.
	UserPermissions []string `env:"TUSK_TELEGRAM_USER_PERMISSIONS" envSeparator:"," envDefault:"tusk.help"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

func (c TelegramConfig) GetTelegramToken() string {
	return c.Token
}

func (c TelegramConfig) GetTelegramOwnerID() int64 {
	return c.OwnerID
}

func (c TelegramConfig) GetAllowedUsers() []int64 {
	return c.AllowedUsers
}

func (c TelegramConfig) GetUserPermissions() []string {
	return c.UserPermissions
}
