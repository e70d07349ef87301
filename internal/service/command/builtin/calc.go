package builtin

import (
	"context"
	"strconv"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/command"
)

type CalcCommand struct {
	formatter *command.ResponseFormatter
}

func (c *CalcCommand) descriptor(op, description string, fn func(a, b float64) (float64, bool)) command.Descriptor {
	return command.New("calc "+op).
		Describe(description).
		Usage("/calc " + op + " <a> <b>").
		Params(command.ParamFloat64, command.ParamFloat64).
		Handle(c.handle(fn)).
		Build()
}

func (c *CalcCommand) handle(fn func(a, b float64) (float64, bool)) command.Handler {
	return func(_ context.Context, inv core.Invoker, args command.Args) error {
		result, ok := fn(args.Float64(0), args.Float64(1))
		if !ok {
			inv.SendMessage(c.formatter.Failure("Division by zero."))
			return nil
		}
		inv.SendMessage(c.formatter.Label("Result", strconv.FormatFloat(result, 'f', -1, 64)))
		return nil
	}
}

func (c *CalcCommand) Add(a, b float64) (float64, bool) { return a + b, true }

func (c *CalcCommand) Sub(a, b float64) (float64, bool) { return a - b, true }

func (c *CalcCommand) Mul(a, b float64) (float64, bool) { return a * b, true }

func (c *CalcCommand) Div(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}
