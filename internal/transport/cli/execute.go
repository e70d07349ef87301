package cli

import (
	"context"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/command"
)

// Execute parses line and routes it through registry. Routing failures
// are reported to inv; empty lines are ignored.
func Execute(ctx context.Context, registry *command.Registry, inv core.Invoker, line string) command.Outcome {
	base, args, ok := command.ParseLine(line)
	if !ok {
		return command.OutcomeNoMatch
	}

	outcome := registry.Run(ctx, inv, base, args)
	switch outcome {
	case command.OutcomeUnknownCommand:
		inv.SendMessage(command.UnknownCommandMessage(base))
	case command.OutcomeNoMatch:
		inv.SendMessage(command.UnknownSubcommandMessage)
	}
	return outcome
}
