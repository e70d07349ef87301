package command

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/pkg/log"
)

const (
	NoPermissionMessage = "Sorry, but you do not have the required permission to execute this command."
	UserOnlyMessage     = "This command can only be executed by a user."
	wrongKindMessage    = "This command can not be invoked by someone of your type (%s)."
	failureMessage      = "An error occurred while executing the %s command."

	UnknownSubcommandMessage = "Unknown subcommand. Try /help"
	unknownCommandMessage    = "Unknown command: /%s. Try /help"
)

// UnknownCommandMessage is what transports reply for an unregistered base.
func UnknownCommandMessage(base string) string {
	return fmt.Sprintf(unknownCommandMessage, base)
}

// InvocationError is a failure that surfaced from a handler body.
type InvocationError struct {
	Command string
	Cause   error
	// Stack is set when the handler panicked.
	Stack []byte
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoking %q: %v", e.Command, e.Cause)
}

func (e *InvocationError) Unwrap() error {
	return e.Cause
}

// Engine runs the permission, invoker and invocation gates for a matched
// descriptor. It never lets a handler failure escape.
type Engine struct {
	formatter *ResponseFormatter
}

func NewEngine() *Engine {
	return &Engine{formatter: NewResponseFormatter()}
}

func (e *Engine) Invoke(ctx context.Context, inv core.Invoker, d Descriptor, args Args) {
	if d.Permission != "" && !inv.HasPermission(d.Permission) {
		inv.SendMessage(e.formatter.Denied(NoPermissionMessage))
		return
	}

	if !d.Invokers.Accepts(inv.Kind()) {
		if d.Invokers == core.KindUser && !core.IsUser(inv) {
			inv.SendMessage(e.formatter.Denied(UserOnlyMessage))
		} else {
			inv.SendMessage(e.formatter.Denied(fmt.Sprintf(wrongKindMessage, inv.Kind())))
		}
		return
	}

	if err := e.call(ctx, inv, d, args); err != nil {
		event := log.FromCtx(ctx).Error().Err(err).
			Str("command", d.Command).
			Str("base", d.Base).
			Str("path", d.Path).
			Interface("args", args.Values())
		if err.Stack != nil {
			event = event.Bytes("stack", err.Stack)
		}
		event.Msg("an error occurred while invoking command")

		inv.SendMessage(e.formatter.Failure(fmt.Sprintf(failureMessage, d.Base)))
	}
}

func (e *Engine) call(ctx context.Context, inv core.Invoker, d Descriptor, args Args) (failure *InvocationError) {
	defer func() {
		if rec := recover(); rec != nil {
			failure = &InvocationError{
				Command: d.Command,
				Cause:   fmt.Errorf("panic: %v", rec),
				Stack:   debug.Stack(),
			}
		}
	}()

	if err := d.Handler(ctx, inv, args); err != nil {
		return &InvocationError{Command: d.Command, Cause: err}
	}
	return nil
}
