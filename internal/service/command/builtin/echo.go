package builtin

import (
	"context"
	"strings"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/command"
)

func Echo(_ context.Context, inv core.Invoker, args command.Args) error {
	text := strings.TrimSpace(args.Text(0))
	if text == "" {
		inv.SendMessage(command.NewResponseFormatter().Usage("/echo <text>"))
		return nil
	}
	inv.SendMessage(text)
	return nil
}
