package state

import (
	"context"
	"sync"
	"time"

	"github.com/sandevgo/tuskcmd/internal/environment"
	"github.com/sandevgo/tuskcmd/pkg/log"
)

type GlobalState struct {
	environment environment.Flag
	started     time.Time
	now         func() time.Time

	mu   sync.Mutex
	stop context.CancelFunc
}

// NewGlobalState captures the active environment and the func that stops
// the running services.
func NewGlobalState(env environment.Flag, stop context.CancelFunc) *GlobalState {
	return &GlobalState{
		environment: env,
		started:     time.Now(),
		now:         time.Now,
		stop:        stop,
	}
}

func (s *GlobalState) Environment() environment.Flag {
	return s.environment
}

func (s *GlobalState) SetLogLevel(ctx context.Context, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.FromCtx(ctx).Info().Str("level", lvl.String()).Msg("log level changed")
	return nil
}

func (s *GlobalState) LogLevel() string {
	return log.Level().String()
}

func (s *GlobalState) Uptime() time.Duration {
	return s.now().Sub(s.started).Truncate(time.Second)
}

// Stop cancels the service context once; later calls do nothing.
func (s *GlobalState) Stop(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop == nil {
		return
	}
	log.FromCtx(ctx).Info().Msg("stop requested")
	s.stop()
	s.stop = nil
}
