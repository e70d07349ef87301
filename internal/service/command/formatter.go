package command

import (
	"fmt"
	"strings"
)

// ResponseFormatter renders the markdown snippets sent back to invokers.
type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("⚙️ **%s**\n", title)
}

func (f *ResponseFormatter) Success(message string) string {
	return fmt.Sprintf("✅ **%s**\n", message)
}

func (f *ResponseFormatter) Denied(message string) string {
	return fmt.Sprintf("⛔ %s", message)
}

func (f *ResponseFormatter) Failure(message string) string {
	return fmt.Sprintf("❌ %s", message)
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("**%s**  ›  `%s`\n", label, value)
}

func (f *ResponseFormatter) Usage(command string) string {
	return fmt.Sprintf("**Usage**: `%s`\n", command)
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("› %s\n", item))
	}
	return sb.String()
}

// Separator is a thematic break. The blank line before it keeps markdown
// from reading the previous line as a heading.
func (f *ResponseFormatter) Separator() string {
	return "\n---\n\n"
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}
