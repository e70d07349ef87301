package command

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/core/coretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Gates(t *testing.T) {
	tests := []struct {
		name        string
		descriptor  *Builder
		invoker     *coretest.Invoker
		wantCalled  bool
		wantMessage string
	}{
		{
			name:       "no permission required",
			descriptor: New("ping"),
			invoker:    coretest.NewUser(),
			wantCalled: true,
		},
		{
			name:        "permission missing",
			descriptor:  New("home set").Permission("home.set"),
			invoker:     coretest.NewUser(),
			wantMessage: "⛔ " + NoPermissionMessage,
		},
		{
			name:       "permission held",
			descriptor: New("home set").Permission("home.set"),
			invoker:    coretest.NewUser("home.set"),
			wantCalled: true,
		},
		{
			name:        "user only command from console",
			descriptor:  New("home").Invokers(core.KindUser),
			invoker:     coretest.NewConsole(),
			wantMessage: "⛔ " + UserOnlyMessage,
		},
		{
			name:        "console only command from user",
			descriptor:  New("stop").Invokers(core.KindConsole),
			invoker:     coretest.NewUser(),
			wantMessage: "⛔ This command can not be invoked by someone of your type (user).",
		},
		{
			name:        "user or system command from console",
			descriptor:  New("sync").Invokers(core.KindUser | core.KindSystem),
			invoker:     coretest.NewConsole(),
			wantMessage: "⛔ This command can not be invoked by someone of your type (console).",
		},
		{
			name:        "permission gate runs first",
			descriptor:  New("stop").Permission("tusk.admin").Invokers(core.KindConsole),
			invoker:     coretest.NewUser(),
			wantMessage: "⛔ " + NoPermissionMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			d := tt.descriptor.Handle(func(_ context.Context, inv core.Invoker, _ Args) error {
				called = true
				assert.Same(t, tt.invoker, inv.Native())
				return nil
			}).Build()

			NewEngine().Invoke(context.Background(), tt.invoker, d, Args{})

			assert.Equal(t, tt.wantCalled, called)
			if tt.wantMessage == "" {
				assert.Empty(t, tt.invoker.Messages())
			} else {
				assert.Equal(t, []string{tt.wantMessage}, tt.invoker.Messages())
			}
		})
	}
}

func TestUnknownCommandMessage(t *testing.T) {
	assert.Equal(t, "Unknown command: /warp. Try /help", UnknownCommandMessage("warp"))
}

func TestRegistry_HandlerFailureIsContained(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	require.NoError(t, r.RegisterAll(ctx,
		New("boom").Handle(func(context.Context, core.Invoker, Args) error {
			return errors.New("disk on fire")
		}).Build(),
		New("panic").Handle(func(context.Context, core.Invoker, Args) error {
			var m map[string]int
			m["x"] = 1
			return nil
		}).Build(),
		New("badarg").Params(ParamString).Handle(func(_ context.Context, _ core.Invoker, args Args) error {
			_ = args.Int(0)
			return nil
		}).Build(),
		New("ping").Handle(func(_ context.Context, inv core.Invoker, _ Args) error {
			inv.SendMessage("pong")
			return nil
		}).Build(),
	))

	inv := coretest.NewUser()

	assert.True(t, r.Dispatch(ctx, inv, "boom", nil))
	assert.Equal(t, "❌ An error occurred while executing the boom command.", inv.Last())

	assert.NotPanics(t, func() {
		assert.True(t, r.Dispatch(ctx, inv, "panic", nil))
	})
	assert.Equal(t, "❌ An error occurred while executing the panic command.", inv.Last())

	assert.True(t, r.Dispatch(ctx, inv, "badarg", []string{"x"}))
	assert.Equal(t, "❌ An error occurred while executing the badarg command.", inv.Last())

	assert.True(t, r.Dispatch(ctx, inv, "ping", nil))
	assert.Equal(t, "pong", inv.Last())
}

func TestEngine_CallWrapsFailures(t *testing.T) {
	e := NewEngine()
	cause := errors.New("nope")

	failure := e.call(context.Background(), coretest.NewUser(), New("x").Handle(
		func(context.Context, core.Invoker, Args) error { return cause }).Build(), Args{})
	require.NotNil(t, failure)
	assert.ErrorIs(t, failure, cause)
	assert.Nil(t, failure.Stack)

	failure = e.call(context.Background(), coretest.NewUser(), New("y").Handle(
		func(context.Context, core.Invoker, Args) error { panic("kaboom") }).Build(), Args{})
	require.NotNil(t, failure)
	assert.Contains(t, failure.Error(), "kaboom")
	assert.NotEmpty(t, failure.Stack)
}
