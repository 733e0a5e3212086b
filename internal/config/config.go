package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config carries server and generator settings, loaded from the environment.
// Command-line flags override these on the individual commands.
type Config struct {
	Addr       string `env:"DOMINOSUM_ADDR" envDefault:":8080"`
	LogLevel   string `env:"DOMINOSUM_LOG_LEVEL" envDefault:"info"`
	GenRetries int    `env:"DOMINOSUM_GEN_RETRIES" envDefault:"100"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}

// SlogLevel maps the configured level string onto slog levels.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
