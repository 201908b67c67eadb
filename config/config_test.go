package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 10*time.Second, cfg.GetSourceTimeout())
	assert.Equal(t, 5*time.Minute, cfg.GetRedisTTL())
	assert.Zero(t, cfg.GetRefreshInterval())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
port: ":9000"
source:
  base_url: http://localhost:3000
  timeout: 3s
redis:
  enabled: true
  addr: redis:6379
  ttl: 1m
catalog:
  items_per_page: 24
  refresh_interval: 15m
logging:
  level: debug
allowed_origins:
  - https://tienda.example
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Source.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.GetSourceTimeout())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.GetRedisTTL())
	assert.Equal(t, 24, cfg.Catalog.ItemsPerPage)
	assert.Equal(t, 15*time.Minute, cfg.GetRefreshInterval())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"https://tienda.example"}, cfg.AllowedOrigins)
	// untouched keys keep their defaults
	assert.Equal(t, 4.5, cfg.Catalog.OfferMinRating)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "port: [unclosed"},
		{"page size", "catalog:\n  items_per_page: 0"},
		{"log level", "logging:\n  level: loud"},
		{"base url", "source:\n  base_url: not-a-url"},
		{"duration", "source:\n  timeout: soon"},
		{"rating", "catalog:\n  offer_min_rating: 6"},
		{"redis without addr", "redis:\n  enabled: true\n  addr: \"\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("port number gets a colon", func(t *testing.T) {
		t.Setenv("STOREFRONT_PORT", "3001")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, ":3001", cfg.Port)
	})

	t.Run("redis address enables redis", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "cache:6379")
		t.Setenv("REDIS_PASSWORD", "secret")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "cache:6379", cfg.Redis.Addr)
		assert.Equal(t, "secret", cfg.Redis.Password)
	})

	t.Run("offline and source", func(t *testing.T) {
		t.Setenv("STOREFRONT_OFFLINE", "true")
		t.Setenv("STOREFRONT_SOURCE_URL", "http://mirror.local")
		t.Setenv("STOREFRONT_LOG_LEVEL", "warn")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.Source.Offline)
		assert.Equal(t, "http://mirror.local", cfg.Source.BaseURL)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("STOREFRONT_PORT", ":7000")
		cfg, err := Load(writeConfig(t, `port: ":9000"`))
		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.Port)
	})
}
