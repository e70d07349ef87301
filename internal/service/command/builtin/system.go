package builtin

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/command"
)

// named is implemented by invokers that know a display name.
type named interface {
	Name() string
}

type SystemCommand struct {
	state     core.RuntimeState
	formatter *command.ResponseFormatter
}

func (c *SystemCommand) WhoAmI(_ context.Context, inv core.Invoker, _ command.Args) error {
	sections := []string{c.formatter.Info("Who am I")}
	if n, ok := inv.(named); ok {
		sections = append(sections, c.formatter.Label("Name", n.Name()))
	}
	sections = append(sections,
		c.formatter.Label("Kind", inv.Kind().String()),
		c.formatter.Label("Admin", fmt.Sprint(inv.HasPermission(core.PermissionAdmin))),
	)

	inv.SendMessage(c.formatter.Combine(sections...))
	return nil
}

func (c *SystemCommand) ShowLogLevel(_ context.Context, inv core.Invoker, _ command.Args) error {
	inv.SendMessage(c.formatter.Combine(
		c.formatter.Label("Log level", c.state.LogLevel()),
		c.formatter.Usage("/log level <trace|debug|info|warn|error>"),
	))
	return nil
}

func (c *SystemCommand) SetLogLevel(ctx context.Context, inv core.Invoker, args command.Args) error {
	level := command.Get[zerolog.Level](args, 0)
	if err := c.state.SetLogLevel(ctx, level.String()); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}

	inv.SendMessage(c.formatter.Success(fmt.Sprintf("Log level changed to: `%s`", c.state.LogLevel())))
	return nil
}

func (c *SystemCommand) Env(_ context.Context, inv core.Invoker, _ command.Args) error {
	inv.SendMessage(c.formatter.Combine(
		c.formatter.Info(core.TuskName+" "+core.TuskVersion),
		c.formatter.Label("Environment", c.state.Environment().String()),
		c.formatter.Label("Log level", c.state.LogLevel()),
		c.formatter.Label("Repository", core.TuskRepositoryURL),
	))
	return nil
}

func (c *SystemCommand) Uptime(_ context.Context, inv core.Invoker, _ command.Args) error {
	inv.SendMessage(c.formatter.Label("Uptime", c.state.Uptime().String()))
	return nil
}

func (c *SystemCommand) Stop(ctx context.Context, inv core.Invoker, _ command.Args) error {
	inv.SendMessage(c.formatter.Success("Stopping " + core.TuskName))
	c.state.Stop(ctx)
	return nil
}
