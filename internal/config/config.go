// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"os"
)

// Config holds the read-only process configuration.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string
}

// Load reads configuration from the environment. DATABASE_URL is required.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:        env("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
