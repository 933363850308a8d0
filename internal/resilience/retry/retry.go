// Package retry re-runs operations that failed transiently, with
// exponential backoff and jitter. In the portal it mainly retries
// optimistic-concurrency conflicts on article transitions and flaky
// database connections.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"syscall"
	"time"

	"news-portal/internal/repository"
)

// Config shapes the backoff schedule.
type Config struct {
	// MaxAttempts counts the first try too: 3 means one try plus two
	// retries.
	MaxAttempts int

	// InitialDelay precedes the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the backoff growth.
	MaxDelay time.Duration

	// Multiplier grows the delay between attempts.
	Multiplier float64

	// JitterFraction (0..1) randomizes each delay upward by at most
	// that fraction, spreading out synchronized retries.
	JitterFraction float64
}

// DefaultConfig suits slow external calls.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   1 * time.Second,
		MaxDelay:       30 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// DBConfig retries fast, for transient connection drops where the pool
// usually recovers within a second.
func DBConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   100 * time.Millisecond,
		MaxDelay:       1 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

// ConflictConfig suits optimistic-concurrency conflicts on conditional
// article writes. A conflict means another transition won the race; the
// operation reloads the article and re-decides, so a single extra
// attempt is enough. A second conflict surfaces to the caller.
func ConflictConfig() Config {
	return Config{
		MaxAttempts:    2,
		InitialDelay:   50 * time.Millisecond,
		MaxDelay:       200 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.2,
	}
}

// WithBackoff runs fn until it succeeds, returns a non-retryable error,
// exhausts cfg.MaxAttempts, or ctx is cancelled while waiting.
func WithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	delay := cfg.InitialDelay

	var lastErr error
	for attempt := 1; ; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			if attempt > 1 {
				slog.Info("operation succeeded after retry",
					slog.Int("attempt", attempt))
			}
			return nil
		}

		if !IsRetryable(lastErr) || attempt == cfg.MaxAttempts {
			return lastErr
		}

		slog.Warn("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.MaxAttempts),
			slog.Duration("delay", delay),
			slog.Any("error", lastErr))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}

		delay = nextDelay(delay, cfg)
	}
}

// IsRetryable reports whether another attempt could plausibly succeed:
// version conflicts, network timeouts, and connection-level syscall
// errors qualify; cancelled contexts and domain errors do not.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, repository.ErrConflict):
		// The caller reloads the article and re-decides the transition.
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ENETUNREACH)
}

// nextDelay grows the delay geometrically, clamps it at MaxDelay, and
// stretches it by up to JitterFraction.
func nextDelay(current time.Duration, cfg Config) time.Duration {
	next := time.Duration(float64(current) * cfg.Multiplier)
	if next > cfg.MaxDelay {
		next = cfg.MaxDelay
	}

	jitter := cfg.JitterFraction
	if jitter <= 0 {
		return next
	}
	if jitter > 1.0 {
		jitter = 1.0
	}
	// #nosec G404 -- backoff jitter does not need crypto randomness.
	return next + time.Duration(rand.Float64()*float64(next)*jitter)
}
