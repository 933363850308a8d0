package http

import (
	"net/http"
	"strconv"
	"time"

	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/observability/metrics"
	"news-portal/internal/observability/slo"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Shared collectors live in the observability registry so the usecase
// layer and the stats worker record into the same series.
var (
	httpRequestsTotal   = metrics.HTTPRequestsTotal
	httpRequestDuration = metrics.HTTPRequestDuration
	activeConnections   = metrics.ActiveConnections
)

// Transport-level metrics owned by this package. Size buckets span 100B
// to 10GB logarithmically; an article body with inline media sits in the
// low megabytes.
var (
	httpRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_requests_in_flight",
		Help: "Requests currently being served",
	})

	httpRequestSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_size_bytes",
		Help:    "Request body size",
		Buckets: prometheus.ExponentialBuckets(100, 10, 8),
	}, []string{"method", "path"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_size_bytes",
		Help:    "Response body size",
		Buckets: prometheus.ExponentialBuckets(100, 10, 8),
	}, []string{"method", "path"})

	dbQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Repository query duration by operation",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	}, []string{"operation"})
)

// metricsWriter records the status and byte count of a response as it is
// written.
type metricsWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (mw *metricsWriter) WriteHeader(code int) {
	mw.status = code
	mw.ResponseWriter.WriteHeader(code)
}

func (mw *metricsWriter) Write(b []byte) (int, error) {
	n, err := mw.ResponseWriter.Write(b)
	mw.bytes += n
	return n, err
}

// MetricsMiddleware records request duration, size, and status metrics for
// every request, and feeds each observation to the SLO tracker. Paths are
// normalized (/articles/123 -> /articles/:id) to keep label cardinality
// bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()
		activeConnections.Inc()
		defer activeConnections.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		if r.ContentLength > 0 {
			httpRequestSize.WithLabelValues(r.Method, path).Observe(float64(r.ContentLength))
		}

		mw := &metricsWriter{ResponseWriter: w, status: http.StatusOK}

		start := time.Now()
		next.ServeHTTP(mw, r)
		duration := time.Since(start).Seconds()

		status := strconv.Itoa(mw.status)
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
		httpResponseSize.WithLabelValues(r.Method, path).Observe(float64(mw.bytes))

		slo.Observe(mw.status, duration)
	})
}

// MetricsHandler serves the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RecordDBQuery observes one repository query's duration under its
// operation label, e.g. "articles_select".
func RecordDBQuery(operation string, duration time.Duration) {
	dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
