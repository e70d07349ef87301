package builtin

import (
	"context"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/command"
)

type HelpCommand struct {
	registry  *command.Registry
	formatter *command.ResponseFormatter
}

func (c *HelpCommand) groups() []command.Group {
	return command.ForEnvironment(c.registry.Descriptors(), c.registry.Environment())
}

func (c *HelpCommand) List(_ context.Context, inv core.Invoker, _ command.Args) error {
	list := command.SimpleHelp(c.groups(), inv)
	if list == "" {
		inv.SendMessage(c.formatter.Info("No commands available"))
		return nil
	}

	inv.SendMessage(c.formatter.Combine(c.formatter.Info("Available Commands"), list))
	return nil
}

func (c *HelpCommand) All(_ context.Context, inv core.Invoker, _ command.Args) error {
	inv.SendMessage(c.formatter.Combine(
		c.formatter.Info("Commands"),
		command.DetailedHelp(c.groups(), inv, true),
	))
	return nil
}
