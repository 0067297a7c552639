// Package config loads all process configuration from the environment.
// Everything downstream receives an explicit *Config (or a field of it);
// nothing else reads environment variables.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port    string `env:"PORT, default=8080"`
	BaseURL string `env:"BASE_URL, default=http://localhost:8080"`

	DatabaseURL string `env:"DATABASE_URL, required"`

	// JWTSecret signs both access and reset tokens. Rotating it
	// invalidates every outstanding token of either kind.
	JWTSecret      string        `env:"JWT_SECRET, required"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL, default=24h"`
	ResetTokenTTL  time.Duration `env:"RESET_TOKEN_TTL, default=10m"`

	WorkerCount int    `env:"WORKER_COUNT, default=1"`
	LogLevel    string `env:"LOG_LEVEL, default=info"`
	LogPretty   bool   `env:"LOG_PRETTY, default=false"`

	Redis RedisConfig
	SMTP  SMTPConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	UseTLS   bool   `env:"SMTP_TLS, default=true"`
	Sender   string `env:"MAIL_SENDER, default=noreply@localhost"`
}

// Load reads the configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
