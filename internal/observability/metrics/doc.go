// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, active connections)
//   - Editorial workflow metrics (transitions, denials, conflicts)
//   - Article and comment totals refreshed by the stats worker
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "news-portal/internal/observability/metrics"
//
//	func approve(...) {
//	    // ... decide and persist the transition ...
//	    metrics.RecordTransition("approve", "pending", metrics.OutcomeApplied)
//	}
package metrics
