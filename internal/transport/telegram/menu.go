package telegram

import (
	"regexp"
	"sort"
	"sync"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/command"
	tele "gopkg.in/telebot.v3"
)

const maxMenuDescriptionLen = 256

var menuCommandName = regexp.MustCompile(`^[a-z0-9_]{1,32}$`)

// MenuRegistrant collects the base commands users can run so the bot can
// publish them as its native command menu.
type MenuRegistrant struct {
	command.NopRegistrant

	mu       sync.Mutex
	commands map[string]string
}

func NewMenuRegistrant() *MenuRegistrant {
	return &MenuRegistrant{commands: make(map[string]string)}
}

func (m *MenuRegistrant) CommandRegistered(r *command.Registry, d command.Descriptor) {
	if !d.Invokers.Accepts(core.KindUser) || !d.Environments.Has(r.Environment()) {
		return
	}
	if !menuCommandName.MatchString(d.Base) {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	desc, exists := m.commands[d.Base]
	if !exists || desc == "" || d.Path == "" {
		desc = d.Description
	}
	m.commands[d.Base] = desc
}

// Commands returns the collected menu, sorted by command.
func (m *MenuRegistrant) Commands() []tele.Command {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]tele.Command, 0, len(m.commands))
	for base, desc := range m.commands {
		if desc == "" {
			desc = "/" + base
		}
		if len(desc) > maxMenuDescriptionLen {
			desc = desc[:maxMenuDescriptionLen]
		}
		out = append(out, tele.Command{Text: base, Description: desc})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Text < out[j].Text
	})
	return out
}
