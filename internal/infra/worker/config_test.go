package worker

import (
	"bytes"
	"log/slog"
	"testing"
	"time"
)

// globalTestMetrics is shared across tests because promauto metrics can
// only be registered once per process.
var globalTestMetrics = NewWorkerMetrics()

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	want := WorkerConfig{
		CronSchedule: "*/5 * * * *",
		Timezone:     "UTC",
		StatsTimeout: time.Minute,
		HealthPort:   9091,
	}
	if cfg != want {
		t.Errorf("DefaultConfig() = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestWorkerConfigValidate(t *testing.T) {
	mutate := func(f func(*WorkerConfig)) WorkerConfig {
		cfg := DefaultConfig()
		f(&cfg)
		return cfg
	}

	tests := []struct {
		name    string
		cfg     WorkerConfig
		wantErr bool
	}{
		{"all custom but valid", WorkerConfig{
			CronSchedule: "0 6 * * *", Timezone: "Asia/Tokyo",
			StatsTimeout: 30 * time.Second, HealthPort: 8080,
		}, false},
		{"bad cron expression", mutate(func(c *WorkerConfig) { c.CronSchedule = "not a cron expression" }), true},
		{"bad timezone", mutate(func(c *WorkerConfig) { c.Timezone = "Not/AZone" }), true},
		{"zero timeout", mutate(func(c *WorkerConfig) { c.StatsTimeout = 0 }), true},
		{"negative timeout", mutate(func(c *WorkerConfig) { c.StatsTimeout = -time.Minute }), true},
		{"privileged port", mutate(func(c *WorkerConfig) { c.HealthPort = 80 }), true},
		{"port below range", mutate(func(c *WorkerConfig) { c.HealthPort = 1023 }), true},
		{"port lower bound", mutate(func(c *WorkerConfig) { c.HealthPort = 1024 }), false},
		{"port upper bound", mutate(func(c *WorkerConfig) { c.HealthPort = 65535 }), false},
		{"port above range", mutate(func(c *WorkerConfig) { c.HealthPort = 65536 }), true},
		{"everything wrong", WorkerConfig{
			CronSchedule: "invalid", Timezone: "Nowhere/Nowhere",
			StatsTimeout: 0, HealthPort: 80,
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// loadWithEnv clears the worker env vars, applies the overrides, and
// runs the loader with a captured warning log.
func loadWithEnv(t *testing.T, overrides map[string]string) (*WorkerConfig, *bytes.Buffer) {
	t.Helper()
	for _, key := range []string{"STATS_CRON_SCHEDULE", "WORKER_TIMEZONE", "STATS_TIMEOUT", "WORKER_HEALTH_PORT"} {
		t.Setenv(key, "")
	}
	for key, value := range overrides {
		t.Setenv(key, value)
	}

	var buf bytes.Buffer
	cfg, err := LoadConfigFromEnv(slog.New(slog.NewJSONHandler(&buf, nil)), globalTestMetrics)
	if err != nil {
		t.Fatalf("LoadConfigFromEnv must fail open, got error: %v", err)
	}
	return cfg, &buf
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("valid overrides are taken", func(t *testing.T) {
		cfg, buf := loadWithEnv(t, map[string]string{
			"STATS_CRON_SCHEDULE": "0 6 * * *",
			"WORKER_TIMEZONE":     "UTC",
			"STATS_TIMEOUT":       "30s",
			"WORKER_HEALTH_PORT":  "8080",
		})

		if cfg.CronSchedule != "0 6 * * *" || cfg.StatsTimeout != 30*time.Second || cfg.HealthPort != 8080 {
			t.Errorf("loaded = %+v", *cfg)
		}
		if buf.Len() > 0 {
			t.Errorf("no warnings expected, got: %s", buf.String())
		}
	})

	t.Run("unset variables mean defaults, silently", func(t *testing.T) {
		cfg, buf := loadWithEnv(t, nil)

		if *cfg != DefaultConfig() {
			t.Errorf("loaded = %+v, want defaults", *cfg)
		}
		if buf.Len() > 0 {
			t.Errorf("missing variables are not fallbacks, got: %s", buf.String())
		}
	})

	invalid := []struct {
		name  string
		key   string
		value string
		check func(*WorkerConfig) bool
	}{
		{"bad cron schedule", "STATS_CRON_SCHEDULE", "invalid cron",
			func(c *WorkerConfig) bool { return c.CronSchedule == DefaultConfig().CronSchedule }},
		{"bad timezone", "WORKER_TIMEZONE", "Mars/OlympusMons",
			func(c *WorkerConfig) bool { return c.Timezone == DefaultConfig().Timezone }},
		{"timeout above ceiling", "STATS_TIMEOUT", "1h",
			func(c *WorkerConfig) bool { return c.StatsTimeout == DefaultConfig().StatsTimeout }},
		{"privileged health port", "WORKER_HEALTH_PORT", "80",
			func(c *WorkerConfig) bool { return c.HealthPort == DefaultConfig().HealthPort }},
	}
	for _, tt := range invalid {
		t.Run(tt.name+" falls back with warning", func(t *testing.T) {
			cfg, buf := loadWithEnv(t, map[string]string{tt.key: tt.value})

			if !tt.check(cfg) {
				t.Errorf("field did not fall back, loaded = %+v", *cfg)
			}
			if buf.Len() == 0 {
				t.Error("expected a fallback warning in the log")
			}
		})
	}

	t.Run("result validates even when every variable is junk", func(t *testing.T) {
		cfg, _ := loadWithEnv(t, map[string]string{
			"STATS_CRON_SCHEDULE": "nonsense",
			"WORKER_TIMEZONE":     "Nowhere/Nowhere",
			"STATS_TIMEOUT":       "-5m",
			"WORKER_HEALTH_PORT":  "99999",
		})

		if err := cfg.Validate(); err != nil {
			t.Errorf("loaded configuration failed validation: %v", err)
		}
	})
}
