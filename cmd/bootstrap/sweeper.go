package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"booking-intake/internal/handler/middleware"
	"booking-intake/internal/infra/session"
	"booking-intake/internal/pkg/config"

	"go.uber.org/fx"
)

// idle rate limiter buckets are forgotten after this long
const limiterIdleTTL = time.Hour

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(
		StartSweeper,
	),
)

// StartSweeper periodically drops expired admin sessions and idle rate limiter buckets.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, sessions *session.MemoryStore, limiter *middleware.RateLimiter, logger *slog.Logger) {
	interval := cfg.Session.SweepInterval
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						expired := sessions.Sweep()
						idle := limiter.Prune(limiterIdleTTL)
						if expired > 0 || idle > 0 {
							logger.Debug("sweep finished", "expired_sessions", expired, "idle_limiters", idle)
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
