package command

import (
	"context"

	"github.com/sandevgo/tuskcmd/pkg/log"
)

// Registrant is notified while commands are registered, typically to
// register them natively with a transport.
type Registrant interface {
	// BaseCommandRegistered is called once per distinct base command.
	BaseCommandRegistered(r *Registry, base string)
	// CommandRegistered is called for every registered name of a descriptor.
	CommandRegistered(r *Registry, d Descriptor)
}

// NopRegistrant ignores every notification. Embed it to implement only
// the callbacks you need.
type NopRegistrant struct{}

func (NopRegistrant) BaseCommandRegistered(*Registry, string) {}

func (NopRegistrant) CommandRegistered(*Registry, Descriptor) {}

// Registrants fans notifications out to several registrants, in order.
type Registrants []Registrant

func (rs Registrants) BaseCommandRegistered(r *Registry, base string) {
	for _, reg := range rs {
		reg.BaseCommandRegistered(r, base)
	}
}

func (rs Registrants) CommandRegistered(r *Registry, d Descriptor) {
	for _, reg := range rs {
		reg.CommandRegistered(r, d)
	}
}

// LogRegistrant writes registration events to the context logger.
type LogRegistrant struct {
	ctx context.Context
}

func NewLogRegistrant(ctx context.Context) *LogRegistrant {
	return &LogRegistrant{ctx: ctx}
}

func (l *LogRegistrant) BaseCommandRegistered(_ *Registry, base string) {
	log.FromCtx(l.ctx).Debug().Str("base", base).Msg("base command registered")
}

func (l *LogRegistrant) CommandRegistered(_ *Registry, d Descriptor) {
	log.FromCtx(l.ctx).Debug().
		Str("base", d.Base).
		Str("path", d.Path).
		Str("command", d.Command).
		Msg("command registered")
}
