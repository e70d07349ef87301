// Package builtin holds the commands every tusk process ships with.
package builtin

import (
	"context"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/environment"
	"github.com/sandevgo/tuskcmd/internal/service/command"
	"github.com/sandevgo/tuskcmd/pkg/log"
	"go.uber.org/multierr"
)

// ParamLevel is a log level such as "debug" or "warn".
const ParamLevel command.ParamType = "level"

// RegisterTypes adds the parameter types used by the built-in commands.
func RegisterTypes(c *command.Coercer) error {
	return c.Register(ParamLevel, func(s string) (any, error) {
		return log.ParseLevel(s)
	})
}

// NewDescriptors is the registration table of the built-in commands.
func NewDescriptors(registry *command.Registry, state core.RuntimeState) []command.Descriptor {
	help := &HelpCommand{registry: registry, formatter: command.NewResponseFormatter()}
	system := &SystemCommand{state: state, formatter: command.NewResponseFormatter()}
	calc := &CalcCommand{formatter: command.NewResponseFormatter()}

	return []command.Descriptor{
		command.New("help").
			Describe("List the commands you can use").
			Usage("/help").
			Handle(help.List).
			Build(),
		command.New("help all").
			Describe("Describe every command in detail").
			Usage("/help all").
			Permission(core.PermissionHelpAll).
			Handle(help.All).
			Build(),
		command.New("whoami").
			Describe("Show who the bot thinks you are").
			Usage("/whoami").
			Handle(system.WhoAmI).
			Build(),
		command.New("echo").
			Alias("say").
			Describe("Repeat the given text").
			Usage("/echo <text>").
			Params(command.ParamRaw).
			Handle(Echo).
			Build(),
		calc.descriptor("add", "Add two numbers", calc.Add),
		calc.descriptor("sub", "Subtract the second number from the first", calc.Sub),
		calc.descriptor("mul", "Multiply two numbers", calc.Mul),
		calc.descriptor("div", "Divide the first number by the second", calc.Div),
		command.New("log").
			Describe("Show the current log level").
			Usage("/log").
			Permission(core.PermissionAdmin).
			Environments(environment.Local|environment.Dev).
			Handle(system.ShowLogLevel).
			Build(),
		command.New("log level").
			Describe("Change the log level").
			Usage("/log level <trace|debug|info|warn|error>").
			Permission(core.PermissionAdmin).
			Environments(environment.Local|environment.Dev).
			Params(ParamLevel).
			Strict().
			Handle(system.SetLogLevel).
			Build(),
		command.New("env").
			Describe("Show the runtime environment").
			Usage("/env").
			Permission(core.PermissionAdmin).
			Handle(system.Env).
			Build(),
		command.New("uptime").
			Describe("Show how long the process has been running").
			Usage("/uptime").
			Handle(system.Uptime).
			Build(),
		command.New("stop").
			Describe("Stop every running service").
			Usage("/stop").
			Permission(core.PermissionAdmin).
			Invokers(core.KindConsole).
			Handle(system.Stop).
			Build(),
	}
}

// Register adds the built-in parameter types and commands to registry.
func Register(ctx context.Context, registry *command.Registry, state core.RuntimeState) error {
	err := RegisterTypes(registry.Coercer())
	return multierr.Append(err, registry.RegisterAll(ctx, NewDescriptors(registry, state)...))
}
