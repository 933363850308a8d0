package worker

import (
	"news-portal/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics covers the stats worker: the embedded config metrics track
// fail-open configuration loading, the rest track cron job execution.
// promauto registers everything on the default registry at construction,
// so only one WorkerMetrics may exist per process.
type WorkerMetrics struct {
	*config.Metrics

	// CronJobRunsTotal counts runs by status label (started, success,
	// failure).
	CronJobRunsTotal *prometheus.CounterVec

	// CronJobDurationSeconds buckets cover the expected range of a stats
	// refresh: two aggregate queries, normally well under a second.
	CronJobDurationSeconds prometheus.Histogram

	CronJobGaugesRefreshedTotal prometheus.Counter

	// CronJobLastSuccessTimestamp lets an alert fire when the worker has
	// not refreshed the gauges for too long.
	CronJobLastSuccessTimestamp prometheus.Gauge
}

func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		Metrics: config.NewMetrics("worker"),

		CronJobRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_cron_job_runs_total",
			Help: "Stats refresh runs by status",
		}, []string{"status"}),

		CronJobDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_cron_job_duration_seconds",
			Help:    "Stats refresh duration in seconds",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 30, 60},
		}),

		CronJobGaugesRefreshedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_cron_job_gauges_refreshed_total",
			Help: "Business gauges refreshed across all runs",
		}),

		CronJobLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_cron_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful stats refresh",
		}),
	}
}

func (m *WorkerMetrics) RecordJobRun(status string) {
	m.CronJobRunsTotal.WithLabelValues(status).Inc()
}

func (m *WorkerMetrics) RecordJobDuration(seconds float64) {
	m.CronJobDurationSeconds.Observe(seconds)
}

func (m *WorkerMetrics) RecordGaugesRefreshed(count int) {
	m.CronJobGaugesRefreshedTotal.Add(float64(count))
}

func (m *WorkerMetrics) RecordLastSuccess() {
	m.CronJobLastSuccessTimestamp.SetToCurrentTime()
}
