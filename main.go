package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-storefront/cache"
	"go-storefront/config"
	"go-storefront/sample"
	"go-storefront/source"
)

var (
	configPath string
	verbose    bool
	offline    bool
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Product catalog storefront",
	Long: `storefront loads a product catalog from a FakeStore-compatible API and
serves search, filtering, sorting and pagination over it.

Run "storefront serve" for the JSON API, "storefront query" for a one-off
query or "storefront browse" for an interactive session.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "storefront.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "use the bundled sample catalog")

	rootCmd.AddCommand(serveCmd, queryCmd, browseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the global flags
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if offline {
		cfg.Source.Offline = true
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds a production logger at the configured level, never quieter than floor
func newLogger(cfg *config.Config, floor zapcore.Level) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if !verbose && level < floor {
		level = floor
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// newSource picks the product source named by the config
func newSource(cfg *config.Config) source.Catalog {
	if cfg.Source.Offline {
		return source.NewStatic(sample.Products())
	}
	return source.NewClient(cfg.Source.BaseURL, cfg.GetSourceTimeout())
}

func newStore(ctx context.Context, cfg *config.Config) (*cache.Store, error) {
	return cache.NewStore(ctx, cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.GetRedisTTL(),
	})
}
