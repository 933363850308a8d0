// Package slo tracks whether the portal's HTTP surface is meeting its
// service level objectives. The metrics middleware feeds it one
// observation per request; a periodic refresh recomputes the gauges
// from the observations in the current window.
package slo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Targets for the public read path. Availability counts everything that
// is not a 5xx; moderation writes share the same error budget.
const (
	AvailabilityTarget = 0.999
	LatencyP95Target   = 0.200
	LatencyP99Target   = 0.500
	ErrorRateTarget    = 0.001
)

// windowSize bounds the latency sample kept for quantile estimates.
const windowSize = 4096

var (
	availability = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_availability_ratio",
		Help: "Availability over the current window (0-1), target 0.999",
	})
	latencyP95 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_p95_seconds",
		Help: "p95 request latency over the current window, target 0.200",
	})
	latencyP99 = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_latency_p99_seconds",
		Help: "p99 request latency over the current window, target 0.500",
	})
	errorRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slo_error_rate_ratio",
		Help: "5xx ratio over the current window (0-1), target 0.001",
	})
)

var tracker struct {
	mu           sync.Mutex
	total        int64
	serverErrors int64
	durations    []float64
	next         int
	filled       bool
}

// Observe records one served request. Called by the HTTP metrics
// middleware for every request, so it only appends; the quantile work
// happens in Refresh.
func Observe(statusCode int, seconds float64) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()

	tracker.total++
	if statusCode >= 500 {
		tracker.serverErrors++
	}

	if tracker.durations == nil {
		tracker.durations = make([]float64, windowSize)
	}
	tracker.durations[tracker.next] = seconds
	tracker.next++
	if tracker.next == windowSize {
		tracker.next = 0
		tracker.filled = true
	}
}

// Refresh recomputes the SLO gauges from the observations made since
// the last call and resets the window.
func Refresh() {
	tracker.mu.Lock()
	total := tracker.total
	serverErrors := tracker.serverErrors
	sampleLen := tracker.next
	if tracker.filled {
		sampleLen = windowSize
	}
	sample := make([]float64, sampleLen)
	copy(sample, tracker.durations[:sampleLen])
	tracker.total = 0
	tracker.serverErrors = 0
	tracker.next = 0
	tracker.filled = false
	tracker.mu.Unlock()

	if total == 0 {
		return
	}

	ratio := float64(total-serverErrors) / float64(total)
	availability.Set(ratio)
	errorRate.Set(float64(serverErrors) / float64(total))

	if len(sample) > 0 {
		sort.Float64s(sample)
		latencyP95.Set(quantile(sample, 0.95))
		latencyP99.Set(quantile(sample, 0.99))
	}
}

// StartRefreshing refreshes the gauges every interval until ctx is
// cancelled. A final refresh runs on shutdown so the last partial
// window is not lost.
func StartRefreshing(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			Refresh()
		case <-ctx.Done():
			Refresh()
			return
		}
	}
}

// quantile expects sorted input.
func quantile(sorted []float64, q float64) float64 {
	idx := int(q * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
