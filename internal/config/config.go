// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const devSecret = "tastyhub-dev-secret-change-me"

// Config holds server settings.
type Config struct {
	Port          int
	DBDriver      string
	DBPath        string
	DatabaseURL   string
	JWTSecret     string
	TokenTTL      time.Duration
	LogLevel      string
	AllowedOrigin string
}

// Load reads a .env file from the working directory when present and then
// the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid PORT %q", getenv("PORT"))
	}

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", getenv("TOKEN_TTL"))
	}

	cfg := &Config{
		Port:          port,
		DBDriver:      get("DB_DRIVER", DriverSQLite),
		DBPath:        get("DB_PATH", "./data/tastyhub.db"),
		DatabaseURL:   getenv("DATABASE_URL"),
		JWTSecret:     get("JWT_SECRET", devSecret),
		TokenTTL:      ttl,
		LogLevel:      get("LOG_LEVEL", "info"),
		AllowedOrigin: get("ALLOWED_ORIGIN", "*"),
	}

	switch cfg.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.JWTSecret == devSecret {
		slog.Warn("JWT_SECRET not set, using development secret")
	}
	return cfg, nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
