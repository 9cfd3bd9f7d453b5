// Package config loads runtime settings from the environment, with
// command-line flags taking precedence.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server needs at startup.
type Config struct {
	Addr         string `env:"MINDGYM_ADDR" envDefault:":8080"`
	PersistPath  string `env:"MINDGYM_PERSIST_PATH" envDefault:"./data"`
	LogLevel     string `env:"MINDGYM_LOG_LEVEL" envDefault:"info"`
	Storage      string `env:"MINDGYM_STORAGE" envDefault:"fs"` // fs|sqlite
	DBPath       string `env:"MINDGYM_DB_PATH" envDefault:"./data/mindgym.db"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL"`
}

// Load parses the environment, then lets flags override.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("mindgym-web", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.PersistPath, "persist-path", cfg.PersistPath, "save directory (fs storage)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: fs|sqlite")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SlogLevel maps the configured level string to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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
