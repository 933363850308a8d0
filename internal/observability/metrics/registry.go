// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	// Buckets are tuned for API response times so p95 and p99 stay accurate:
	// fast responses at 5-25ms, normal at 50-250ms, slow tails up to 10s.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// ActiveConnections tracks the number of active HTTP connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)
)

// Business metrics track the editorial workflow
var (
	// ArticlesByStatus tracks the number of articles per workflow status
	ArticlesByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "articles_by_status",
			Help: "Number of articles per workflow status",
		},
		[]string{"status"},
	)

	// CommentsTotal tracks the total number of comments in the database
	CommentsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "comments_total",
			Help: "Total number of comments in the database",
		},
	)

	// TransitionsTotal counts workflow transition attempts by event and outcome
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_transitions_total",
			Help: "Total number of article workflow transition attempts",
		},
		[]string{"event", "from", "outcome"},
	)

	// AuthzDenialsTotal counts authorization denials by action
	AuthzDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_denials_total",
			Help: "Total number of denied authorization checks",
		},
		[]string{"action"},
	)

	// SaveConflictsTotal counts optimistic-concurrency conflicts on
	// conditional article writes
	SaveConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_save_conflicts_total",
			Help: "Total number of conditional article writes rejected due to a stale status",
		},
	)

	// ArticleViewsTotal counts public article detail page views
	ArticleViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_views_total",
			Help: "Total number of public article page views",
		},
	)
)
