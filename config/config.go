// Package config loads the storefront tunables from the environment.
// Every default matches a constant that was hardcoded in the original
// storefront.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	NATSURL string `env:"NATS_URL" envDefault:"nats://localhost:4222"`

	CartStorageKey string  `env:"CART_STORAGE_KEY" envDefault:"majikBloomCart"`
	TaxRate        float64 `env:"CART_TAX_RATE" envDefault:"0.08"`

	NotifyTTL  time.Duration `env:"NOTIFY_TTL" envDefault:"3s"`
	NotifyFade time.Duration `env:"NOTIFY_FADE" envDefault:"300ms"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
