// Package config reads simple typed values from the environment.
// Parsing failures fall back to the default and log a warning rather
// than aborting startup.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the variable's value, or def when unset.
func GetEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetEnvInt parses the variable as an integer.
func GetEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		warnFallback(key, raw, strconv.Itoa(def), err)
		return def
	}
	return v
}

// GetEnvBool parses the variable with strconv.ParseBool semantics
// ("1", "t", "true", "0", "f", "false", case-insensitive first letter).
func GetEnvBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		warnFallback(key, raw, strconv.FormatBool(def), err)
		return def
	}
	return v
}

// GetEnvDuration parses the variable with time.ParseDuration, so
// values like "30s" or "1h30m".
func GetEnvDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		warnFallback(key, raw, def.String(), err)
		return def
	}
	return v
}

func warnFallback(key, raw, def string, err error) {
	slog.Warn("unparseable environment variable, using default",
		slog.String("key", key),
		slog.String("value", raw),
		slog.String("default", def),
		slog.String("error", err.Error()))
}
