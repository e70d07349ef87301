package command

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/sandevgo/tuskcmd/internal/environment"
	"github.com/sandevgo/tuskcmd/pkg/log"
)

// Match is a descriptor selected for one dispatch with its bound arguments.
type Match struct {
	Descriptor Descriptor
	Args       Args
}

type indexEntry struct {
	path       string
	descriptor Descriptor
}

// SubcommandIndex holds the descriptors of one base command ordered by
// descending path length. Paths of equal length keep registration order.
type SubcommandIndex struct {
	base    string
	entries []indexEntry
}

func NewSubcommandIndex(base string) *SubcommandIndex {
	return &SubcommandIndex{base: base}
}

func (x *SubcommandIndex) Base() string {
	return x.base
}

func (x *SubcommandIndex) Len() int {
	return len(x.entries)
}

// Attach inserts d under path, replacing a descriptor already registered
// for the exact same path. It reports whether a replacement happened.
func (x *SubcommandIndex) Attach(path string, d Descriptor) bool {
	for i := range x.entries {
		if x.entries[i].path == path {
			x.entries[i].descriptor = d
			return true
		}
	}

	pos := slices.IndexFunc(x.entries, func(e indexEntry) bool {
		return len(e.path) < len(path)
	})
	if pos < 0 {
		pos = len(x.entries)
	}
	x.entries = slices.Insert(x.entries, pos, indexEntry{path: path, descriptor: d})
	return false
}

// Descriptors returns the attached descriptors, longest path first.
func (x *SubcommandIndex) Descriptors() []Descriptor {
	out := make([]Descriptor, len(x.entries))
	for i, e := range x.entries {
		out[i] = e.descriptor.clone()
	}
	return out
}

type matchOptions struct {
	coercer     *Coercer
	environment environment.Flag
	strict      bool
}

// Match selects the longest path that prefixes the joined tokens and is
// allowed in the active environment, then binds the remaining tokens.
// It returns nil, nil when nothing qualifies.
func (x *SubcommandIndex) Match(ctx context.Context, opts matchOptions, tokens []string) (*Match, error) {
	logger := log.FromCtx(ctx)
	probe := strings.Join(tokens, " ")

	for _, e := range x.entries {
		if !strings.HasPrefix(probe, e.path) {
			continue
		}
		if !e.descriptor.Environments.Has(opts.environment) {
			continue
		}

		rest := strings.TrimSpace(probe[len(e.path):])
		args, err := bind(opts, e.descriptor, rest)
		if err != nil {
			var ce *ConfigurationError
			if errors.As(err, &ce) {
				logger.Error().Err(err).
					Str("base", x.base).
					Str("path", e.path).
					Msg("skipping misconfigured command")
				continue
			}
			return nil, withDescriptorUsage(err, e.descriptor)
		}

		return &Match{Descriptor: e.descriptor.clone(), Args: args}, nil
	}

	return nil, nil
}

// bind converts the remainder into the descriptor's declared parameters.
func bind(opts matchOptions, d Descriptor, rest string) (Args, error) {
	var tokens []string
	if rest != "" {
		tokens = strings.Split(rest, " ")
	}

	switch {
	case len(d.Params) == 0:
		if (opts.strict || d.Strict) && len(tokens) > 0 {
			return Args{}, &ArityError{Want: 0, Got: len(tokens)}
		}
		return Args{}, nil
	case len(d.Params) == 1 && d.Params[0] == ParamRaw:
		return NewArgs(rest), nil
	case len(tokens) < len(d.Params):
		return Args{}, &ArityError{Want: len(d.Params), Got: len(tokens)}
	case len(tokens) > len(d.Params) && (opts.strict || d.Strict):
		return Args{}, &ArityError{Want: len(d.Params), Got: len(tokens)}
	}

	values := make([]any, len(d.Params))
	for i, t := range d.Params {
		v, err := opts.coercer.Parse(tokens[i], t)
		if err != nil {
			return Args{}, err
		}
		values[i] = v
	}
	return NewArgs(values...), nil
}

func withDescriptorUsage(err error, d Descriptor) error {
	var fe *ArgumentFormatError
	if errors.As(err, &fe) {
		cp := *fe
		cp.Usage = d.Usage
		return &cp
	}
	var ae *ArityError
	if errors.As(err, &ae) {
		cp := *ae
		cp.Usage = d.Usage
		return &cp
	}
	return err
}
