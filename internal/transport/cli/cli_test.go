package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *command.Registry {
	t.Helper()
	r := command.NewRegistry()
	require.NoError(t, r.RegisterAll(context.Background(),
		command.New("ping").Handle(func(_ context.Context, inv core.Invoker, _ command.Args) error {
			inv.SendMessage("**pong**")
			return nil
		}).Build(),
		command.New("home set").Permission("home.set").Invokers(core.KindConsole).
			Handle(func(_ context.Context, inv core.Invoker, _ command.Args) error {
				inv.SendMessage("home set")
				return nil
			}).Build(),
	))
	return r
}

func TestConsole_Invoker(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out)

	assert.Equal(t, core.KindConsole, c.Kind())
	assert.True(t, c.HasPermission(core.PermissionAdmin))
	assert.True(t, c.HasPermission("anything.at.all"))
	assert.Same(t, c, c.Native())

	c.SendMessage("**Usage**: `/ping`")
	assert.Contains(t, out.String(), "Usage")
	assert.Contains(t, out.String(), "/ping")
	assert.NotContains(t, out.String(), "**")
}

func TestExecute(t *testing.T) {
	r := testRegistry(t)
	ctx := context.Background()

	tests := []struct {
		line    string
		outcome command.Outcome
		output  string
	}{
		{line: "/ping", outcome: command.OutcomeHandled, output: "pong"},
		{line: "ping extra", outcome: command.OutcomeHandled, output: "pong"},
		{line: "home set", outcome: command.OutcomeHandled, output: "home set"},
		{line: "/warp", outcome: command.OutcomeUnknownCommand, output: command.UnknownCommandMessage("warp")},
		{line: "home list", outcome: command.OutcomeNoMatch, output: command.UnknownSubcommandMessage},
		{line: "   ", outcome: command.OutcomeNoMatch, output: ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var out bytes.Buffer
			outcome := Execute(ctx, r, NewConsole(&out), tt.line)

			assert.Equal(t, tt.outcome, outcome)
			assert.Contains(t, out.String(), tt.output)
		})
	}
}

func TestNewCompleter(t *testing.T) {
	c := newCompleter(testRegistry(t))

	var names []string
	for _, child := range c.GetChildren() {
		names = append(names, string(child.GetName()))
	}
	assert.Equal(t, []string{"/home ", "/ping "}, names)
}
