package srv

import (
	"context"
	"sync"

	"github.com/sandevgo/tuskcmd/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices runs every service in its own goroutine. Start blocks for
// the lifetime of a service, so the first one to return calls stop and
// brings the others down with it.
func StartServices(ctx context.Context, stop context.CancelFunc, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			defer stop()
			if err := service.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Msgf("%T failed", service)
			}
		}(service)
	}
}

// ShutdownServices waits for ctx to be done and shuts the services down in
// reverse start order.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()

	logger := log.FromCtx(ctx)
	shutdownCtx := logger.WithContext(context.Background())

	var wg sync.WaitGroup
	for i := len(services) - 1; i >= 0; i-- {
		wg.Add(1)
		go func(service Service) {
			defer wg.Done()
			if err := service.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msgf("%T failed to shutdown", service)
			}
		}(services[i])
	}
	wg.Wait()
}
