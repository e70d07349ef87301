package installer

import (
	"github.com/sandevgo/tuskcmd/internal/config"
)

// InstallState is the configuration collected by the wizard.
type InstallState struct {
	App      config.AppConfig
	Telegram config.TelegramConfig
}

func NewInstallState(runtimePath string) *InstallState {
	return &InstallState{
		App: config.AppConfig{
			RuntimePath: runtimePath,
			Environment: "prod",
			EnableCLI:   true,
		},
		Telegram: config.TelegramConfig{
			UserPermissions: []string{"tusk.help"},
		},
	}
}
