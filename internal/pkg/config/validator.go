package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ValidateCronSchedule checks a five-field cron expression with the same
// parser the stats worker schedules with, so anything accepted here will
// also schedule.
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("cron schedule cannot be empty")
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("cron schedule %q: %w", schedule, err)
	}
	return nil
}

// ValidateTimezone checks an IANA timezone name ("UTC", "Europe/Berlin").
// Fails when the system tzdata is missing even for correct names.
func ValidateTimezone(tz string) error {
	if tz == "" {
		return fmt.Errorf("timezone cannot be empty")
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("timezone %q: %w", tz, err)
	}
	return nil
}

// ValidateDuration checks that d lies in [min, max].
func ValidateDuration(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("bad range: min %v > max %v", min, max)
	}
	if d < min || d > max {
		return fmt.Errorf("duration %v outside allowed range [%v, %v]", d, min, max)
	}
	return nil
}

// ValidateIntRange checks that v lies in [min, max].
func ValidateIntRange(v, min, max int) error {
	if min > max {
		return fmt.Errorf("bad range: min %d > max %d", min, max)
	}
	if v < min || v > max {
		return fmt.Errorf("value %d outside allowed range [%d, %d]", v, min, max)
	}
	return nil
}

// ValidatePositiveDuration rejects zero and negative durations.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}
