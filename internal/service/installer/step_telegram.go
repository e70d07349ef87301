package installer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputStep collects one line of text and hands it to apply. An error
// from apply keeps the step open and is shown below the input.
type InputStep struct {
	prompt string
	input  textinput.Model
	apply  func(value string, state *InstallState) error
	skip   func(state *InstallState) bool
	err    error
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = placeholder
	return ti
}

func telegramDisabled(state *InstallState) bool {
	return !state.App.EnableTelegram
}

func NewTelegramTokenStep() Step {
	ti := newInput("123456789:ABCDEF...")
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &InputStep{
		prompt: "Enter your Telegram Bot Token:",
		input:  ti,
		skip:   telegramDisabled,
		apply: func(value string, state *InstallState) error {
			value = strings.TrimSpace(value)
			if value == "" {
				return errors.New("the token is required")
			}
			state.Telegram.Token = value
			return nil
		},
	}
}

func NewTelegramOwnerStep() Step {
	return &InputStep{
		prompt: "Enter your Telegram User ID (Owner):",
		input:  newInput("123456789"),
		skip:   telegramDisabled,
		apply: func(value string, state *InstallState) error {
			id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			if err != nil || id <= 0 {
				return errors.New("the owner id must be a positive number")
			}
			state.Telegram.OwnerID = id
			return nil
		},
	}
}

func NewTelegramUsersStep() Step {
	return &InputStep{
		prompt: "Other Telegram User IDs allowed to send commands (comma separated, optional):",
		input:  newInput("111,222"),
		skip:   telegramDisabled,
		apply: func(value string, state *InstallState) error {
			ids, err := parseIDs(value)
			if err != nil {
				return err
			}
			state.Telegram.AllowedUsers = ids
			return nil
		},
	}
}

func parseIDs(value string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.New("'" + part + "' is not a user id")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *InputStep) Skip(state *InstallState) bool {
	return s.skip != nil && s.skip(state)
}

func (s *InputStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *InputStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		if s.err = s.apply(s.input.Value(), state); s.err != nil {
			return s, nil
		}
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *InputStep) View(state *InstallState) string {
	view := s.prompt + "\n\n" + s.input.View() + "\n\n"
	if s.err != nil {
		view += errorStyle.Render(s.err.Error()) + "\n\n"
	}
	return view + "(press enter to confirm)\n"
}
