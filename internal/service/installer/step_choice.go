package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type choice struct {
	title string
	desc  string
	apply func(state *InstallState)
}

// ChoiceStep asks the user to pick one of a fixed set of options.
type ChoiceStep struct {
	prompt  string
	choices []choice
	cursor  int
}

func NewEnvironmentStep() Step {
	env := func(name string) func(*InstallState) {
		return func(s *InstallState) { s.App.Environment = name }
	}
	return &ChoiceStep{
		prompt: "Select the environment this instance runs in:",
		choices: []choice{
			{title: "PROD", desc: "production commands only", apply: env("prod")},
			{title: "RELEASE", desc: "release candidates", apply: env("release")},
			{title: "DEV", desc: "development commands enabled", apply: env("dev")},
			{title: "LOCAL", desc: "everything, for your own machine", apply: env("local")},
		},
	}
}

func NewChannelStep() Step {
	channels := func(cli, telegram bool) func(*InstallState) {
		return func(s *InstallState) {
			s.App.EnableCLI = cli
			s.App.EnableTelegram = telegram
		}
	}
	return &ChoiceStep{
		prompt: "Select where commands come from:",
		choices: []choice{
			{title: "Console", desc: "interactive prompt in this terminal", apply: channels(true, false)},
			{title: "Telegram", desc: "bot commands from allowed users", apply: channels(false, true)},
			{title: "Console + Telegram", desc: "both at once", apply: channels(true, true)},
		},
	}
}

func (s *ChoiceStep) Init() tea.Cmd {
	return nil
}

func (s *ChoiceStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			s.choices[s.cursor].apply(state)
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChoiceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString(s.prompt + "\n\n")
	for i, c := range s.choices {
		line := fmt.Sprintf("%-20s %s", c.title, descStyle.Render(c.desc))
		if s.cursor == i {
			b.WriteString(selStyle.Render("❯ "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
