package command

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/environment"
)

// Handler is the callable bound to a descriptor. A returned error or a
// panic is contained by the Engine and never reaches the transport.
type Handler func(ctx context.Context, inv core.Invoker, args Args) error

const defaultUsage = "/<command>"

// Descriptor binds one command string to a handler and its metadata.
// Registered descriptors are copies and never change afterwards.
type Descriptor struct {
	// Command is the full primary command, e.g. "home set default".
	Command string
	Aliases []string

	// Base and Path are filled in by the registry for every registered name.
	Base string
	Path string

	Description string
	Usage       string
	Permission  string

	Environments environment.Flag
	Params       []ParamType
	Invokers     core.InvokerKind
	// Strict turns tokens beyond the declared parameters into an ArityError.
	Strict bool

	Handler Handler
}

func (d Descriptor) String() string {
	return fmt.Sprintf("Descriptor{command=%q,path=%q,params=%v}", d.Command, d.Path, d.Params)
}

// Names returns the primary command followed by its aliases.
func (d Descriptor) Names() []string {
	return append([]string{d.Command}, d.Aliases...)
}

func (d Descriptor) clone() Descriptor {
	d.Aliases = slices.Clone(d.Aliases)
	d.Params = slices.Clone(d.Params)
	return d
}

func (d Descriptor) validate() error {
	if strings.TrimSpace(d.Command) == "" {
		return &ConfigurationError{Reason: "command is empty"}
	}
	if d.Handler == nil {
		return &ConfigurationError{Reason: fmt.Sprintf("command %q has no handler", d.Command)}
	}
	for _, alias := range d.Aliases {
		if strings.TrimSpace(alias) == "" {
			return &ConfigurationError{Reason: fmt.Sprintf("command %q has an empty alias", d.Command)}
		}
	}
	if len(d.Params) > 1 && slices.Contains(d.Params, ParamRaw) {
		return &ConfigurationError{Type: ParamRaw, Reason: fmt.Sprintf("command %q: raw must be the only parameter", d.Command)}
	}
	return nil
}

// splitCommand separates the base command from the subcommand path.
func splitCommand(command string) (base, path string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

// Builder assembles a Descriptor at a registration call site.
type Builder struct {
	d Descriptor
}

func New(command string) *Builder {
	return &Builder{d: Descriptor{
		Command:      command,
		Usage:        defaultUsage,
		Environments: environment.All,
		Invokers:     core.AnyInvoker,
	}}
}

func (b *Builder) Alias(aliases ...string) *Builder {
	b.d.Aliases = append(b.d.Aliases, aliases...)
	return b
}

func (b *Builder) Describe(description string) *Builder {
	b.d.Description = description
	return b
}

func (b *Builder) Usage(usage string) *Builder {
	b.d.Usage = usage
	return b
}

func (b *Builder) Permission(node string) *Builder {
	b.d.Permission = node
	return b
}

func (b *Builder) Environments(mask environment.Flag) *Builder {
	b.d.Environments = mask
	return b
}

func (b *Builder) Params(types ...ParamType) *Builder {
	b.d.Params = append(b.d.Params, types...)
	return b
}

func (b *Builder) Invokers(kinds core.InvokerKind) *Builder {
	b.d.Invokers = kinds
	return b
}

func (b *Builder) Strict() *Builder {
	b.d.Strict = true
	return b
}

func (b *Builder) Handle(h Handler) *Builder {
	b.d.Handler = h
	return b
}

func (b *Builder) Build() Descriptor {
	return b.d.clone()
}
