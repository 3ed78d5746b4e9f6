// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// UpstreamBaseURL is the external skip pricing provider
	// (scheme + host, no trailing slash).
	UpstreamBaseURL string

	// UpstreamTimeout bounds each provider request. Defaults to 15s.
	UpstreamTimeout time.Duration

	// DatabaseURL is the optional Postgres connection string. When empty the
	// server runs on the seeded in-memory store instead.
	DatabaseURL string
}

// Load reads configuration from environment variables and returns a Config.
// Every variable has a usable default, so Load only fails on malformed values.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		UpstreamBaseURL: strings.TrimSuffix(getEnv("UPSTREAM_BASE_URL", "https://app.wewantwaste.co.uk"), "/"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
	}

	timeout := getEnv("UPSTREAM_TIMEOUT", "15s")
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", timeout, err)
	}
	cfg.UpstreamTimeout = d

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
