package command

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, core.Invoker, Args) error { return nil }

func descriptor(command string, params ...ParamType) Descriptor {
	return New(command).Params(params...).Handle(noop).Build()
}

func prodOptions() matchOptions {
	return matchOptions{coercer: NewCoercer(), environment: environment.Prod}
}

func paths(x *SubcommandIndex) []string {
	var out []string
	for _, d := range x.Descriptors() {
		out = append(out, d.Path)
	}
	return out
}

func TestSubcommandIndex_AttachOrdersByLength(t *testing.T) {
	x := NewSubcommandIndex("home")

	x.Attach("", descriptor("home"))
	x.Attach("set", descriptor("home set"))
	x.Attach("set default", descriptor("home set default"))
	x.Attach("del", descriptor("home del"))

	assert.Equal(t, []string{"set default", "set", "del", ""}, paths(x))
}

func TestSubcommandIndex_AttachOverwrites(t *testing.T) {
	x := NewSubcommandIndex("home")

	assert.False(t, x.Attach("set", New("home set").Describe("first").Handle(noop).Build()))
	assert.True(t, x.Attach("set", New("home set").Describe("second").Handle(noop).Build()))

	ds := x.Descriptors()
	require.Len(t, ds, 1)
	assert.Equal(t, "second", ds[0].Description)
}

func TestSubcommandIndex_Match(t *testing.T) {
	x := NewSubcommandIndex("home")
	x.Attach("", descriptor("home"))
	x.Attach("set", descriptor("home set"))
	x.Attach("set default", descriptor("home set default", ParamString))
	x.Attach("tp", descriptor("home tp", ParamString, ParamInt))
	x.Attach("say", descriptor("home say", ParamRaw))

	tests := []struct {
		name    string
		tokens  []string
		command string
		values  []any
	}{
		{name: "empty input matches base", tokens: nil, command: "home", values: []any{}},
		{name: "longest path wins", tokens: []string{"set", "default", "2"}, command: "home set default", values: []any{"2"}},
		{name: "shorter path", tokens: []string{"set"}, command: "home set", values: []any{}},
		{name: "zero params ignore remainder", tokens: []string{"set", "x", "y"}, command: "home set", values: []any{}},
		{name: "positional coercion", tokens: []string{"tp", "spawn", "3"}, command: "home tp", values: []any{"spawn", 3}},
		{name: "extra tokens dropped", tokens: []string{"tp", "spawn", "3", "extra"}, command: "home tp", values: []any{"spawn", 3}},
		{name: "raw remainder unsplit", tokens: []string{"say", "hello", "big", "world"}, command: "home say", values: []any{"hello big world"}},
		{name: "raw remainder empty", tokens: []string{"say"}, command: "home say", values: []any{""}},
		{name: "unknown subcommand falls to base", tokens: []string{"list"}, command: "home", values: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := x.Match(context.Background(), prodOptions(), tt.tokens)
			require.NoError(t, err)
			require.NotNil(t, m)
			assert.Equal(t, tt.command, m.Descriptor.Command)
			assert.Equal(t, tt.values, m.Args.Values())
		})
	}
}

func TestSubcommandIndex_MatchNone(t *testing.T) {
	x := NewSubcommandIndex("home")
	x.Attach("set", descriptor("home set"))

	m, err := x.Match(context.Background(), prodOptions(), []string{"list"})
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestSubcommandIndex_MatchArity(t *testing.T) {
	x := NewSubcommandIndex("home")
	x.Attach("tp", New("home tp").Params(ParamString, ParamInt).Usage("/home tp <name> <n>").Handle(noop).Build())

	_, err := x.Match(context.Background(), prodOptions(), []string{"tp", "spawn"})

	var ae *ArityError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 2, ae.Want)
	assert.Equal(t, 1, ae.Got)
	assert.Equal(t, "Not enough arguments provided.\n**Usage**: `/home tp <name> <n>`", ae.DisplayMessage())
}

func TestSubcommandIndex_MatchStrictArity(t *testing.T) {
	x := NewSubcommandIndex("home")
	x.Attach("tp", descriptor("home tp", ParamString))

	opts := prodOptions()
	opts.strict = true
	_, err := x.Match(context.Background(), opts, []string{"tp", "spawn", "extra"})

	var ae *ArityError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "Too many arguments provided.\n**Usage**: `/<command>`", ae.DisplayMessage())
}

func TestSubcommandIndex_MatchFormatErrorCarriesUsage(t *testing.T) {
	x := NewSubcommandIndex("home")
	x.Attach("tp", New("home tp").Params(ParamInt).Usage("/home tp <n>").Handle(noop).Build())

	_, err := x.Match(context.Background(), prodOptions(), []string{"tp", "far"})

	var fe *ArgumentFormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "'far' must be a whole number.\n**Usage**: `/home tp <n>`", fe.DisplayMessage())
}

func TestSubcommandIndex_MatchSkipsEnvironment(t *testing.T) {
	x := NewSubcommandIndex("home")
	x.Attach("set", descriptor("home set"))
	x.Attach("set default", New("home set default").
		Environments(environment.Local|environment.Dev).
		Params(ParamString).
		Handle(noop).
		Build())

	m, err := x.Match(context.Background(), prodOptions(), []string{"set", "default", "2"})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "home set", m.Descriptor.Command)

	opts := prodOptions()
	opts.environment = environment.Dev
	m, err = x.Match(context.Background(), opts, []string{"set", "default", "2"})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "home set default", m.Descriptor.Command)
}

func TestSubcommandIndex_MatchSkipsMisconfigured(t *testing.T) {
	x := NewSubcommandIndex("paint")
	x.Attach("wall", descriptor("paint wall", "color"))
	x.Attach("", descriptor("paint", ParamString, ParamString))

	m, err := x.Match(context.Background(), prodOptions(), []string{"wall", "red"})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "paint", m.Descriptor.Command)
	assert.Equal(t, []any{"wall", "red"}, m.Args.Values())
}

func TestSubcommandIndex_MatchAllMisconfigured(t *testing.T) {
	x := NewSubcommandIndex("paint")
	x.Attach("wall", descriptor("paint wall", "color"))

	m, err := x.Match(context.Background(), prodOptions(), []string{"wall", "red"})
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestSubcommandIndex_MatchSkipsPanickingParser(t *testing.T) {
	c := NewCoercer()
	require.NoError(t, c.Register("region", func(string) (any, error) {
		var m map[string]int
		m["x"] = 1
		return nil, nil
	}))
	opts := prodOptions()
	opts.coercer = c

	x := NewSubcommandIndex("home")
	x.Attach("", descriptor("home", ParamRaw))
	x.Attach("set", descriptor("home set", "region"))

	var m *Match
	var err error
	require.NotPanics(t, func() {
		m, err = x.Match(context.Background(), opts, []string{"set", "x"})
	})
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "home", m.Descriptor.Command)
	assert.Equal(t, []any{"set x"}, m.Args.Values())
}

var errBadColor = &ArgumentFormatError{Token: "?", Type: "color", Reason: "not a color"}

func TestSubcommandIndex_MatchLeavesParserErrorUntouched(t *testing.T) {
	c := NewCoercer()
	require.NoError(t, c.Register("color", func(string) (any, error) { return nil, errBadColor }))
	opts := prodOptions()
	opts.coercer = c

	x := NewSubcommandIndex("paint")
	x.Attach("wall", New("paint wall").Params("color").Usage("/paint wall <color>").Handle(noop).Build())
	x.Attach("door", New("paint door").Params("color").Usage("/paint door <color>").Handle(noop).Build())

	_, err := x.Match(context.Background(), opts, []string{"wall", "x"})
	var fe *ArgumentFormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "/paint wall <color>", fe.Usage)

	_, err = x.Match(context.Background(), opts, []string{"door", "x"})
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "/paint door <color>", fe.Usage)

	assert.Empty(t, errBadColor.Usage)
}
