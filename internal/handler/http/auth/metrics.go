package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Authentication and authorization metrics. The role label carries the
// portal roles (user, author, admin) plus "anonymous" for
// unauthenticated requests.
var (
	authRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_requests_total",
		Help: "Authentication requests by role and result",
	}, []string{"role", "result"}) // result: success | failure

	authDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "auth_duration_seconds",
		Help:    "Token verification duration by role",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
	}, []string{"role"})

	authzCheckDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "authz_check_duration_seconds",
		Help:    "Role permission check duration",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
	})

	// Forbidden attempts are worth their own counter: a spike means
	// someone is poking at moderation or admin endpoints.
	forbiddenAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forbidden_attempts_total",
		Help: "Requests rejected by role checks, by role and method",
	}, []string{"role", "method"})
)

// RecordAuthRequest counts one authentication attempt.
func RecordAuthRequest(role, result string) {
	authRequestsTotal.WithLabelValues(role, result).Inc()
}

// RecordAuthDuration observes how long token verification took.
func RecordAuthDuration(role string, seconds float64) {
	authDuration.WithLabelValues(role).Observe(seconds)
}

// RecordAuthzCheckDuration observes one permission check.
func RecordAuthzCheckDuration(seconds float64) {
	authzCheckDuration.Observe(seconds)
}

// RecordForbiddenAttempt counts a request blocked by a role check.
func RecordForbiddenAttempt(role, method string) {
	forbiddenAttempts.WithLabelValues(role, method).Inc()
}
