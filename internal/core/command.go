package core

import "strings"

// InvokerKind discriminates the entities that can issue a command.
type InvokerKind uint8

const (
	KindConsole InvokerKind = 1 << iota
	KindUser
	KindSystem
)

// AnyInvoker accepts every kind of invoker.
const AnyInvoker InvokerKind = KindConsole | KindUser | KindSystem

func (k InvokerKind) String() string {
	switch k {
	case KindConsole:
		return "console"
	case KindUser:
		return "user"
	case KindSystem:
		return "system"
	}

	var names []string
	for _, kind := range []InvokerKind{KindConsole, KindUser, KindSystem} {
		if k&kind != 0 {
			names = append(names, kind.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Accepts reports whether the set k contains the invoker kind other.
// An empty set accepts every kind.
func (k InvokerKind) Accepts(other InvokerKind) bool {
	if k == 0 {
		return true
	}
	return k&other == other
}

// Invoker is the capability handed to the router by a transport.
type Invoker interface {
	// SendMessage delivers a markdown message to the invoker.
	SendMessage(text string)
	HasPermission(node string) bool
	Kind() InvokerKind
	// Native returns the transport specific value behind the invoker
	// (a *tele.User, the console, ...).
	Native() any
}

// IsUser reports whether the invoker is a remote, player-like user.
func IsUser(inv Invoker) bool {
	return inv.Kind() == KindUser
}
