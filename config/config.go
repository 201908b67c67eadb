package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the storefront settings
type Config struct {
	Port    string        `yaml:"port" validate:"required"`
	Source  SourceConfig  `yaml:"source"`
	Redis   RedisConfig   `yaml:"redis"`
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
	// AllowedOrigins lists browser origins allowed by CORS; empty allows all
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type SourceConfig struct {
	BaseURL string `yaml:"base_url" validate:"required,url"`
	Timeout string `yaml:"timeout"`
	// Offline serves the bundled sample catalog instead of calling BaseURL
	Offline bool `yaml:"offline"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr" validate:"required_if=Enabled true"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0"`
	TTL      string `yaml:"ttl"`
}

type CatalogConfig struct {
	ItemsPerPage    int     `yaml:"items_per_page" validate:"gte=1,lte=100"`
	RefreshInterval string  `yaml:"refresh_interval"`
	OfferPriceUSD   float64 `yaml:"offer_price_usd" validate:"gte=0"`
	OfferMinRating  float64 `yaml:"offer_min_rating" validate:"gte=0,lte=5"`
	OfferDiscount   float64 `yaml:"offer_discount" validate:"gte=0,lte=100"`
	FeaturedCount   int     `yaml:"featured_count" validate:"gte=0"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Port: ":8080",
		Source: SourceConfig{
			BaseURL: "https://fakestoreapi.com",
			Timeout: "10s",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  "5m",
		},
		Catalog: CatalogConfig{
			ItemsPerPage:    12,
			RefreshInterval: "0s",
			OfferPriceUSD:   50,
			OfferMinRating:  4.5,
			OfferDiscount:   20,
			FeaturedCount:   4,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("STOREFRONT_PORT"); port != "" {
		if _, err := strconv.Atoi(port); err == nil {
			port = ":" + port
		}
		c.Port = port
	}
	if url := os.Getenv("STOREFRONT_SOURCE_URL"); url != "" {
		c.Source.BaseURL = url
	}
	if offline, err := strconv.ParseBool(os.Getenv("STOREFRONT_OFFLINE")); err == nil {
		c.Source.Offline = offline
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Addr = addr
		c.Redis.Enabled = true
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		c.Redis.Password = password
	}
	if level := os.Getenv("STOREFRONT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks field constraints and duration syntax
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for name, value := range map[string]string{
		"source.timeout":           c.Source.Timeout,
		"redis.ttl":                c.Redis.TTL,
		"catalog.refresh_interval": c.Catalog.RefreshInterval,
	} {
		if value == "" {
			continue
		}
		if d, err := time.ParseDuration(value); err != nil || d < 0 {
			return fmt.Errorf("invalid config: %s: bad duration %q", name, value)
		}
	}
	return nil
}

// GetSourceTimeout returns the product source request timeout
func (c *Config) GetSourceTimeout() time.Duration {
	return parseDuration(c.Source.Timeout, 10*time.Second)
}

// GetRedisTTL returns how long cached entries live
func (c *Config) GetRedisTTL() time.Duration {
	return parseDuration(c.Redis.TTL, 5*time.Minute)
}

// GetRefreshInterval returns the catalog reload interval; zero disables reloading
func (c *Config) GetRefreshInterval() time.Duration {
	return parseDuration(c.Catalog.RefreshInterval, 0)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
