// Package config loads worker configuration from the environment with a
// fail-open policy: a malformed or out-of-range value never stops startup,
// it falls back to the default and surfaces a warning for the log and the
// config metrics.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Result carries a loaded value together with the fallback outcome.
// Warning is non-empty exactly when Fallback is true.
type Result[T any] struct {
	Value    T
	Warning  string
	Fallback bool
}

func ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func fallback[T any](key, raw string, err error, def T) Result[T] {
	return Result[T]{
		Value:    def,
		Warning:  fmt.Sprintf("invalid %s=%q: %v, using default %v", key, raw, err, def),
		Fallback: true,
	}
}

// String reads an environment variable with no validation, returning the
// default when unset.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ValidatedString reads a string variable and runs it through validate.
// An unset variable returns the default silently; a value that fails
// validation returns the default with a warning.
func ValidatedString(key, def string, validate func(string) error) Result[string] {
	v := os.Getenv(key)
	if v == "" {
		return ok(def)
	}
	if validate != nil {
		if err := validate(v); err != nil {
			return fallback(key, v, err, def)
		}
	}
	return ok(v)
}

// Duration reads a Go duration string ("90s", "5m") and validates it.
func Duration(key string, def time.Duration, validate func(time.Duration) error) Result[time.Duration] {
	raw := os.Getenv(key)
	if raw == "" {
		return ok(def)
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback(key, raw, err, def)
	}
	if validate != nil {
		if err := validate(d); err != nil {
			return fallback(key, raw, err, def)
		}
	}
	return ok(d)
}

// Int reads an integer variable and validates it.
func Int(key string, def int, validate func(int) error) Result[int] {
	raw := os.Getenv(key)
	if raw == "" {
		return ok(def)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback(key, raw, fmt.Errorf("not an integer"), def)
	}
	if validate != nil {
		if err := validate(n); err != nil {
			return fallback(key, raw, err, def)
		}
	}
	return ok(n)
}

// Bool reads a boolean variable in strconv.ParseBool's accepted forms.
func Bool(key string, def bool) Result[bool] {
	raw := os.Getenv(key)
	if raw == "" {
		return ok(def)
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback(key, raw, fmt.Errorf("not a boolean"), def)
	}
	return ok(b)
}
