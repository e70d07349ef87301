package state

import (
	"context"
	"testing"
	"time"

	"github.com/sandevgo/tuskcmd/internal/environment"
	"github.com/sandevgo/tuskcmd/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalState_SetLogLevel(t *testing.T) {
	prev := log.Level()
	t.Cleanup(func() { log.SetLevel(prev) })

	s := NewGlobalState(environment.Dev, nil)

	require.NoError(t, s.SetLogLevel(context.Background(), "WARN"))
	assert.Equal(t, "warn", s.LogLevel())
	assert.Error(t, s.SetLogLevel(context.Background(), "shouty"))
	assert.Equal(t, "warn", s.LogLevel())
	assert.Equal(t, environment.Dev, s.Environment())
}

func TestGlobalState_Uptime(t *testing.T) {
	s := NewGlobalState(environment.Prod, nil)
	start := s.started
	s.now = func() time.Time { return start.Add(90*time.Second + 300*time.Millisecond) }

	assert.Equal(t, 90*time.Second, s.Uptime())
}

func TestGlobalState_StopOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	s := NewGlobalState(environment.Prod, func() {
		calls++
		cancel()
	})

	s.Stop(context.Background())
	s.Stop(context.Background())

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
