package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server configuration, loaded from the environment at
// startup. The JWT secret is deliberately required with no default: a
// process without a signing secret must not serve traffic.
type Config struct {
	Port        int           `env:"PORT" envDefault:"3000"`
	StorageType string        `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string        `env:"REDIS_URL"`
	JWTSecret   string        `env:"PSYGUAGE_JWT_SECRET,required"`
	TokenTTL    time.Duration `env:"PSYGUAGE_TOKEN_TTL" envDefault:"168h"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("REDIS_URL is required when STORAGE_TYPE=redis")
	}
	return cfg, nil
}
