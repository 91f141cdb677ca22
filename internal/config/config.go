package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings. The database DSN and signing secret
// carry no defaults: the process refuses to start without them.
type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	DatabaseURL string        `env:"DATABASE_URL"`
	SecretKey   string        `env:"MICROBLOG_SECRET_KEY"`
	TokenTTL    time.Duration `env:"MICROBLOG_TOKEN_TTL" envDefault:"0"` // 0 disables expiry
	CORSOrigin  string        `env:"CORS_ORIGIN" envDefault:"*"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SecretKey == "" {
		return Config{}, fmt.Errorf("MICROBLOG_SECRET_KEY is required")
	}
	return cfg, nil
}
