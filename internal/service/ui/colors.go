package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (cyan) reads well on light and dark terminals.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (green) for usage lines and arguments.
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (gray) keeps descriptions quieter than commands.
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (yellow) for flags and permission nodes.
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// ErrorStyle ANSI 1 (red) for routing failures on the console.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// Prompt renders the console prompt for the given environment name.
func Prompt(env string) string {
	return PromptStyle.Render("tusk") + DescStyle.Render("("+env+")") + PromptStyle.Render(" › ")
}
