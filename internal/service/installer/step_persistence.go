package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/tuskcmd/pkg/env"
)

// SaveEnv writes the collected configuration to the .env file in the
// runtime directory and returns its path. An existing file is never
// overwritten.
func SaveEnv(state *InstallState) (string, error) {
	path := state.App.GetRuntimePath()
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := state.App.GetEnvFilePath()
	if _, err := os.Stat(envPath); err == nil {
		return "", fmt.Errorf(".env file already exists at %s", envPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	content, err := env.MarshalEnv(&state.App)
	if err != nil {
		return "", err
	}
	if state.App.EnableTelegram {
		tg, err := env.MarshalEnv(&state.Telegram)
		if err != nil {
			return "", err
		}
		content += tg
	}

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		return "", err
	}
	return filepath.Clean(envPath), nil
}

// SaveEnvStep writes the collected configuration to .env file
type SaveEnvStep struct {
	err   error
	path  string
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}
	if s.err != nil {
		return s, nil
	}

	// Fast enough to run inside Update.
	s.path, s.err = SaveEnv(state)
	if s.err != nil {
		return s, nil
	}

	s.saved = true
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved to " + s.path + "\n"
	}
	return "Saving configuration...\n"
}
