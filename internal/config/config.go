// Package config loads the export daemon configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labelkit/labelkit/internal/template"
	"github.com/labelkit/labelkit/internal/units"
)

type Config struct {
	Port string

	// Export defaults
	DefaultTemplate string
	DefaultPage     string
	AutoTwoColumns  bool

	// Upload limits
	MaxBodyBytes int64

	// Server timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8070"),

		DefaultTemplate: envOr("DEFAULT_TEMPLATE", template.DefaultID),
		DefaultPage:     envOr("DEFAULT_PAGE", "A4"),
		AutoTwoColumns:  envBool("AUTO_TWO_COLUMNS", true),

		MaxBodyBytes: envInt64("MAX_BODY_BYTES", 4194304), // 4MB

		ReadTimeout:     envDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    envDuration("WRITE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 4194304
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 60 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	found := false
	for _, id := range template.IDs() {
		if strings.EqualFold(id, c.DefaultTemplate) {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("DEFAULT_TEMPLATE %q is not a known template", c.DefaultTemplate)
	}
	if _, ok := units.Lookup(c.DefaultPage); !ok {
		return fmt.Errorf("DEFAULT_PAGE %q is not a known page size", c.DefaultPage)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
