package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"yatra/internal/infra"
	"yatra/pkg/memcache"
)

const (
	visitorTTL    = 10 * time.Minute
	sweepInterval = time.Minute
)

var Module = fx.Provide(provideVisitorStore)

// provideVisitorStore builds the per-IP limiter store for plan generation and
// evicts idle clients in the background while the app runs.
func provideVisitorStore(lc fx.Lifecycle, cfg *infra.Config, logger *zap.Logger) memcache.VisitorStore {
	store := memcache.NewVisitors(cfg.PlanRatePerMinute, visitorTTL)
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if removed := store.Sweep(); removed > 0 {
							logger.Debug("evicted idle visitors", zap.Int("count", removed))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
	return store
}
