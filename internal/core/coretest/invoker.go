// Package coretest provides an in-memory invoker for tests.
package coretest

import (
	"strings"
	"sync"

	"github.com/sandevgo/tuskcmd/internal/core"
)

// Invoker records every message it receives.
type Invoker struct {
	mu          sync.Mutex
	kind        core.InvokerKind
	permissions map[string]bool
	messages    []string
	native      any
}

func NewInvoker(kind core.InvokerKind, permissions ...string) *Invoker {
	inv := &Invoker{
		kind:        kind,
		permissions: make(map[string]bool),
	}
	for _, p := range permissions {
		inv.permissions[p] = true
	}
	inv.native = inv
	return inv
}

// NewConsole returns a console invoker holding every permission.
func NewConsole() *Invoker {
	return NewInvoker(core.KindConsole, core.PermissionWildcard)
}

// NewUser returns a user invoker with the given permissions.
func NewUser(permissions ...string) *Invoker {
	return NewInvoker(core.KindUser, permissions...)
}

func (i *Invoker) SendMessage(text string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.messages = append(i.messages, text)
}

func (i *Invoker) HasPermission(node string) bool {
	return i.permissions[core.PermissionWildcard] || i.permissions[node]
}

func (i *Invoker) Kind() core.InvokerKind {
	return i.kind
}

func (i *Invoker) Native() any {
	return i.native
}

func (i *Invoker) Messages() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]string, len(i.messages))
	copy(out, i.messages)
	return out
}

// Last returns the most recent message or an empty string.
func (i *Invoker) Last() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	if len(i.messages) == 0 {
		return ""
	}
	return i.messages[len(i.messages)-1]
}

// Output joins every message with newlines.
func (i *Invoker) Output() string {
	return strings.Join(i.Messages(), "\n")
}

func (i *Invoker) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.messages = nil
}
