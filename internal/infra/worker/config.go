package worker

import (
	"fmt"
	"log/slog"
	"time"

	"news-portal/internal/pkg/config"
)

// WorkerConfig drives the stats worker, which refreshes the business
// gauges (articles per workflow status, total comments) from the database
// on a cron schedule.
type WorkerConfig struct {
	// CronSchedule is a five-field cron expression.
	CronSchedule string

	// Timezone is the IANA zone the schedule is evaluated in.
	Timezone string

	// StatsTimeout bounds a single refresh; the queries are cancelled
	// when it elapses.
	StatsTimeout time.Duration

	// HealthPort serves the worker's health endpoint. Privileged ports
	// are rejected.
	HealthPort int
}

// DefaultConfig returns the defaults: a five-minute cadence keeps the
// dashboards close to live without measurable database load, and 9091 is
// the conventional exporter port for the health endpoint.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		CronSchedule: "*/5 * * * *",
		Timezone:     "UTC",
		StatsTimeout: 1 * time.Minute,
		HealthPort:   9091,
	}
}

// Validate checks all fields and reports every violation at once.
func (c *WorkerConfig) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.StatsTimeout); err != nil {
		errs = append(errs, fmt.Errorf("stats timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv reads the worker configuration fail-open: a bad value
// logs a warning, bumps the config metrics, and falls back to its default
// instead of aborting startup.
//
// Environment variables:
//   - STATS_CRON_SCHEDULE: cron expression (default "*/5 * * * *")
//   - WORKER_TIMEZONE: IANA timezone (default "UTC")
//   - STATS_TIMEOUT: duration between 1s and 10m (default 1m)
//   - WORKER_HEALTH_PORT: port 1024-65535 (default 9091)
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) (*WorkerConfig, error) {
	cfg := DefaultConfig()
	anyFallback := false

	warn := func(field, warning string) {
		anyFallback = true
		metrics.RecordFallback(field)
		logger.Warn("configuration fallback applied",
			slog.String("field", field),
			slog.String("warning", warning))
	}

	schedule := config.ValidatedString("STATS_CRON_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule)
	cfg.CronSchedule = schedule.Value
	if schedule.Fallback {
		warn("cron_schedule", schedule.Warning)
	}

	tz := config.ValidatedString("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = tz.Value
	if tz.Fallback {
		warn("timezone", tz.Warning)
	}

	timeout := config.Duration("STATS_TIMEOUT", cfg.StatsTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, 1*time.Second, 10*time.Minute)
	})
	cfg.StatsTimeout = timeout.Value
	if timeout.Fallback {
		warn("stats_timeout", timeout.Warning)
	}

	port := config.Int("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	cfg.HealthPort = port.Value
	if port.Fallback {
		warn("health_port", port.Warning)
	}

	metrics.SetFallbackActive(anyFallback)
	metrics.RecordLoad()

	return &cfg, nil
}
