package command

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/environment"
	"github.com/sandevgo/tuskcmd/pkg/log"
	"go.uber.org/multierr"
)

// Outcome describes how far a dispatch got.
type Outcome int

const (
	// OutcomeUnknownCommand means no command is registered under the base.
	OutcomeUnknownCommand Outcome = iota
	// OutcomeNoMatch means the base is known but no subcommand matched.
	OutcomeNoMatch
	// OutcomeRejected means a subcommand matched but its arguments were
	// invalid; the invoker already received the usage message.
	OutcomeRejected
	// OutcomeHandled means the engine ran, whatever happened inside it.
	OutcomeHandled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnknownCommand:
		return "unknown_command"
	case OutcomeNoMatch:
		return "no_match"
	case OutcomeRejected:
		return "rejected"
	case OutcomeHandled:
		return "handled"
	}
	return "invalid"
}

// Group is the read-only view of every descriptor under one base command.
type Group struct {
	Base        string
	Descriptors []Descriptor
}

type Option func(*Registry)

// WithEnvironment sets the active environment. It defaults to PROD.
func WithEnvironment(env environment.Flag) Option {
	return func(r *Registry) { r.environment = env }
}

func WithRegistrant(reg Registrant) Option {
	return func(r *Registry) { r.registrant = reg }
}

func WithCoercer(c *Coercer) Option {
	return func(r *Registry) { r.coercer = c }
}

// WithStrictArity makes every descriptor reject tokens beyond its declared parameters.
func WithStrictArity(strict bool) Option {
	return func(r *Registry) { r.strict = strict }
}

// Registry maps base commands to their subcommand index. Registration is
// expected to finish before the first dispatch; the lock only makes late
// registrations safe.
type Registry struct {
	mu     sync.RWMutex
	groups map[string]*SubcommandIndex

	coercer     *Coercer
	environment environment.Flag
	strict      bool
	registrant  Registrant
	engine      *Engine
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		groups:      make(map[string]*SubcommandIndex),
		coercer:     NewCoercer(),
		environment: environment.Default,
		registrant:  NopRegistrant{},
		engine:      NewEngine(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Environment() environment.Flag {
	return r.environment
}

func (r *Registry) Coercer() *Coercer {
	return r.coercer
}

// Register attaches d under its command and under each alias.
func (r *Registry) Register(ctx context.Context, d Descriptor) error {
	if err := d.validate(); err != nil {
		return err
	}

	d = d.clone()
	if d.Environments == 0 {
		d.Environments = environment.All
	}
	if d.Usage == "" {
		d.Usage = defaultUsage
	}

	logger := log.FromCtx(ctx)
	for _, t := range d.Params {
		if !r.coercer.Supports(t) {
			logger.Warn().Str("command", d.Command).Str("type", string(t)).
				Msg("parameter type has no parser yet")
		}
	}

	for _, name := range d.Names() {
		base, path := splitCommand(name)

		entry := d.clone()
		entry.Base, entry.Path = base, path

		r.mu.Lock()
		idx, exists := r.groups[base]
		if !exists {
			idx = NewSubcommandIndex(base)
			r.groups[base] = idx
		}
		if idx.Attach(path, entry) {
			logger.Debug().Str("base", base).Str("path", path).Msg("command overwritten")
		}
		r.mu.Unlock()

		// Notify without the lock so registrants may read the registry.
		if !exists {
			r.registrant.BaseCommandRegistered(r, base)
		}
		r.registrant.CommandRegistered(r, entry)
	}

	return nil
}

// RegisterAll registers every descriptor and returns the combined errors.
func (r *Registry) RegisterAll(ctx context.Context, ds ...Descriptor) error {
	var err error
	for _, d := range ds {
		err = multierr.Append(err, r.Register(ctx, d))
	}
	return err
}

// Has reports whether any command is registered under base.
func (r *Registry) Has(base string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.groups[base]
	return ok
}

// Match finds the descriptor for base and args without invoking it.
func (r *Registry) Match(ctx context.Context, base string, args []string) (*Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.groups[base]
	if !ok {
		return nil, nil
	}
	return idx.Match(ctx, r.matchOptions(), args)
}

func (r *Registry) matchOptions() matchOptions {
	return matchOptions{
		coercer:     r.coercer,
		environment: r.environment,
		strict:      r.strict,
	}
}

// Dispatch routes a command and reports whether it was handled.
func (r *Registry) Dispatch(ctx context.Context, inv core.Invoker, base string, args []string) bool {
	return r.Run(ctx, inv, base, args) == OutcomeHandled
}

// Run routes a command and reports the outcome. Failures inside the
// handler are contained by the engine and still count as handled.
func (r *Registry) Run(ctx context.Context, inv core.Invoker, base string, args []string) Outcome {
	if !r.Has(base) {
		return OutcomeUnknownCommand
	}

	logger := log.FromCtx(ctx).With().
		Str("invocation", uuid.NewString()).
		Str("invoker", inv.Kind().String()).
		Logger()
	ctx = logger.WithContext(ctx)

	m, err := r.Match(ctx, base, args)
	if err != nil {
		var ue UserError
		if errors.As(err, &ue) {
			logger.Debug().Err(err).Str("base", base).Strs("args", args).Msg("command rejected")
			inv.SendMessage(ue.DisplayMessage())
			return OutcomeRejected
		}
		logger.Error().Err(err).Str("base", base).Msg("failed to match command")
		return OutcomeNoMatch
	}
	if m == nil {
		logger.Debug().Str("base", base).Strs("args", args).Msg("no subcommand matched")
		return OutcomeNoMatch
	}

	r.engine.Invoke(ctx, inv, m.Descriptor, m.Args)
	return OutcomeHandled
}

// Descriptors returns a snapshot of all descriptors grouped by base command,
// sorted by base name.
func (r *Registry) Descriptors() []Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make([]Group, 0, len(r.groups))
	for base, idx := range r.groups {
		groups = append(groups, Group{Base: base, Descriptors: idx.Descriptors()})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Base < groups[j].Base
	})
	return groups
}

// ParseLine splits a command line into its base command and argument tokens.
// A leading '/' is optional.
func ParseLine(line string) (base string, args []string, ok bool) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}
