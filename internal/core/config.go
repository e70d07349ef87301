package core

import (
	"context"
	"time"

	"github.com/sandevgo/tuskcmd/internal/environment"
)

type AppConfig interface {
	GetRuntimePath() string
	GetEnvFilePath() string
	GetHistoryPath() string
	IsTelegramSelected() bool
	IsCLISelected() bool
	IsStrictArity() bool
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramOwnerID() int64
	GetAllowedUsers() []int64
	GetUserPermissions() []string
}

// RuntimeState is the mutable process state exposed to built-in commands.
type RuntimeState interface {
	Environment() environment.Flag
	SetLogLevel(ctx context.Context, level string) error
	LogLevel() string
	Uptime() time.Duration
	Stop(ctx context.Context)
}
