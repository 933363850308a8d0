// Package circuitbreaker shields the portal's database calls behind
// sony/gobreaker so a failing postgres sheds load fast instead of
// stalling every request in the pool.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Config tunes when a breaker trips and how it probes recovery.
type Config struct {
	// Name shows up in logs when the breaker changes state.
	Name string

	// MaxRequests caps probe traffic while half-open.
	MaxRequests uint32

	// Interval resets the closed-state counters.
	Interval time.Duration

	// Timeout is how long an open breaker waits before probing.
	Timeout time.Duration

	// FailureThreshold is the failure ratio that trips the breaker,
	// e.g. 0.6 trips at 60% failures.
	FailureThreshold float64

	// MinRequests is the sample size required before the ratio counts.
	MinRequests uint32
}

// DefaultConfig returns conservative settings for an external call.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// CircuitBreaker wraps gobreaker with the portal's trip policy and
// state-change logging.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New builds a breaker from cfg. State transitions are logged at warn
// level so an open database breaker is visible without metrics.
func New(cfg Config) *CircuitBreaker {
	trip := func(counts gobreaker.Counts) bool {
		if counts.Requests < cfg.MinRequests {
			return false
		}
		ratio := float64(counts.TotalFailures) / float64(counts.Requests)
		return ratio >= cfg.FailureThreshold
	}

	return &CircuitBreaker{
		name: cfg.Name,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        cfg.Name,
			MaxRequests: cfg.MaxRequests,
			Interval:    cfg.Interval,
			Timeout:     cfg.Timeout,
			ReadyToTrip: trip,
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("circuit breaker state changed",
					slog.String("circuit", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()))
			},
		}),
	}
}

// Execute runs fn through the breaker; an open breaker returns
// gobreaker.ErrOpenState without calling fn.
func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	return cb.breaker.Execute(fn)
}

// State reports the breaker's current state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.breaker.State()
}

// Name returns the breaker's configured name.
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// IsOpen reports whether the breaker is currently rejecting calls.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.breaker.State() == gobreaker.StateOpen
}
