package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/command"
	"github.com/sandevgo/tuskcmd/internal/service/ui"
	"github.com/sandevgo/tuskcmd/pkg/log"
)

type ReadLine struct {
	registry *command.Registry
	console  *Console
	rl       *readline.Instance
}

func NewReadLine(registry *command.Registry, cfg core.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ui.Prompt(registry.Environment().String()),
		HistoryFile:     cfg.GetHistoryPath(),
		AutoComplete:    newCompleter(registry),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		registry: registry,
		console:  NewConsole(rl.Stdout()),
		rl:       rl,
	}, nil
}

// Start reads commands until exit, Ctrl+C on an empty line, EOF or ctx
// is done.
func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("console started. Type /help for commands, 'exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		Execute(ctx, r.registry, r.console, line)
	}
}

func (r *ReadLine) Shutdown(context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// newCompleter offers the base commands registered when the console starts.
func newCompleter(registry *command.Registry) *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, g := range registry.Descriptors() {
		var children []readline.PrefixCompleterInterface
		seen := make(map[string]bool)
		for _, d := range g.Descriptors {
			first, _, _ := strings.Cut(d.Path, " ")
			if first == "" || seen[first] {
				continue
			}
			seen[first] = true
			children = append(children, readline.PcItem(first))
		}
		items = append(items, readline.PcItem("/"+g.Base, children...))
	}
	return readline.NewPrefixCompleter(items...)
}
