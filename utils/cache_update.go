package utils

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-storefront/cache"
	"go-storefront/models"
	"go-storefront/source"
)

// CatalogRefreshJob reloads the catalog on a fixed interval
type CatalogRefreshJob struct {
	loader   *source.Loader
	interval time.Duration
	logger   *zap.Logger
}

func NewCatalogRefreshJob(loader *source.Loader, interval time.Duration, logger *zap.Logger) *CatalogRefreshJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogRefreshJob{
		loader:   loader,
		interval: interval,
		logger:   logger,
	}
}

// Start runs the job in the background until ctx is cancelled. A non-positive
// interval disables it.
func (j *CatalogRefreshJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		return
	}
	go j.Run(ctx)
}

// Run blocks, reloading the catalog every interval until ctx is cancelled
func (j *CatalogRefreshJob) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := j.loader.Load(ctx); err != nil && ctx.Err() == nil {
				j.logger.Warn("scheduled catalog refresh failed", zap.Error(err))
			}
		}
	}
}

// CacheSync returns a load hook that stores every freshly loaded catalog in
// Redis and drops the query results computed from the previous one.
func CacheSync(store *cache.Store, logger *zap.Logger) func([]models.Product) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(products []models.Product) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := store.SaveCatalog(ctx, products); err != nil {
			logger.Warn("failed to update catalog cache", zap.Error(err))
			return
		}
		logger.Debug("catalog cache updated", zap.Int("products", len(products)))
	}
}

// CacheInvalidate returns a failure hook that drops cached query results and
// product details so nothing computed from the lost catalog is served.
func CacheInvalidate(store *cache.Store, logger *zap.Logger) func(error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(cause error) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := store.Invalidate(ctx); err != nil {
			logger.Warn("failed to invalidate catalog cache", zap.Error(err))
			return
		}
		logger.Debug("catalog cache invalidated", zap.NamedError("cause", cause))
	}
}
