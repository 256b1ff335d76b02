package kv

import (
	"context"

	"github.com/autogestion/dealership-backend/pkg/config"
	"github.com/autogestion/dealership-backend/pkg/logger"
	"github.com/autogestion/dealership-backend/pkg/metrics"
	"github.com/sethvargo/go-retry"
)

// Select picks the storage backend once at startup: the host-provided Redis
// store when it answers the probe, otherwise the local SQLite fallback. The
// choice is never revisited while the process runs.
func Select(ctx context.Context, cfg *config.Config, logg *logger.Logger, m *metrics.StoreMetrics) (*Store, error) {
	if cfg.Redis.Configured() {
		var backend *Redis
		backoff := retry.WithMaxRetries(cfg.Storage.ProbeAttempts, retry.NewFibonacci(cfg.Storage.ProbeBackoff))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			probe, probeErr := NewRedis(ctx, cfg.Redis)
			if probeErr != nil {
				return retry.RetryableError(probeErr)
			}
			backend = probe
			return nil
		})
		if err == nil {
			logg.Info(logg.WithField(ctx, "backend", backend.Name()), "storage backend selected")
			return NewStore(backend, logg, m), nil
		}
		logg.Warn(logg.WithField(ctx, "error", err.Error()), "host store unreachable, using local fallback")
	}

	backend, err := NewSQLite(ctx, cfg.Storage.FallbackPath)
	if err != nil {
		return nil, err
	}
	logg.Info(logg.WithFields(ctx, map[string]any{
		"backend": backend.Name(),
		"path":    cfg.Storage.FallbackPath,
	}), "storage backend selected")
	return NewStore(backend, logg, m), nil
}
