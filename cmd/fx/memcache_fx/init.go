package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	mem "vitatrack/pkg/memcache"
)

const sweepInterval = 5 * time.Minute

type stores struct {
	fx.Out

	ResetCodes mem.ResetTokenStore
	Revoked    mem.RevocationStore
}

var Module = fx.Provide(provideStores)

// Reset codes and revoked token ids live in separate maps so an email can
// never collide with a token id.
func provideStores(lc fx.Lifecycle, log *zap.Logger) stores {
	resetCodes := mem.NewTTLStore()
	revoked := mem.NewTTLStore()

	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-stop:
						return
					case <-ticker.C:
						n := resetCodes.Sweep() + revoked.Sweep()
						if n > 0 {
							log.Debug("swept expired cache entries", zap.Int("count", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			return nil
		},
	})

	return stores{ResetCodes: resetCodes, Revoked: revoked}
}
