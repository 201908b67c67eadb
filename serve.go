package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-storefront/cache"
	"go-storefront/handlers"
	"go-storefront/router"
	"go-storefront/source"
	"go-storefront/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog JSON API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, zapcore.DebugLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := newSource(cfg)
	loader := source.NewLoader(src, logger.Named("loader"))

	var store *cache.Store
	if cfg.Redis.Enabled {
		store, err = newStore(ctx, cfg)
		if err != nil {
			logger.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			defer store.Close()
			loader.OnLoad(utils.CacheSync(store, logger.Named("cache")))
			loader.OnFailure(utils.CacheInvalidate(store, logger.Named("cache")))
		}
	}

	// A failed first load is served as 503 until a refresh succeeds
	if err := loader.Load(ctx); err != nil {
		logger.Warn("initial catalog load failed", zap.Error(err))
	}
	utils.NewCatalogRefreshJob(loader, cfg.GetRefreshInterval(), logger.Named("refresh")).Start(ctx)

	h := handlers.NewHandler(loader, src, store, logger, handlers.Options{
		ItemsPerPage:    cfg.Catalog.ItemsPerPage,
		MaxItemsPerPage: 100,
		OfferPriceUSD:   cfg.Catalog.OfferPriceUSD,
		OfferMinRating:  cfg.Catalog.OfferMinRating,
		OfferDiscount:   cfg.Catalog.OfferDiscount,
		FeaturedCount:   cfg.Catalog.FeaturedCount,
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router.SetupRoutes(h, logger, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("server listening",
		zap.String("addr", cfg.Port),
		zap.Bool("offline", cfg.Source.Offline),
		zap.Bool("cache", store != nil))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
