package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts listing requests. The page_range label keeps
	// cardinality flat while still showing how deep readers paginate.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "article_listing_requests_total",
		Help: "Published-article listing requests",
	}, []string{"status", "page_range"})

	// DurationSeconds tracks listing duration per layer.
	DurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "article_listing_duration_seconds",
		Help:    "Published-article listing duration",
		Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
	}, []string{"operation"})

	// PublishedTotal mirrors the COUNT the listing ran, so dashboards
	// can chart catalogue growth without querying the database.
	PublishedTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "articles_published_total_count",
		Help: "Published articles visible in the public listing",
	})

	// ErrorsTotal counts listing failures by type (validation, database).
	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "article_listing_errors_total",
		Help: "Listing errors by type",
	}, []string{"type"})
)

// RecordRequest records one listing request.
func RecordRequest(statusCode, page int) {
	RequestsTotal.WithLabelValues(strconv.Itoa(statusCode), pageRange(page)).Inc()
}

// RecordDuration records how long one layer of the listing took.
func RecordDuration(operation string, seconds float64) {
	DurationSeconds.WithLabelValues(operation).Observe(seconds)
}

// UpdateTotalCount updates the published-article gauge.
func UpdateTotalCount(count int64) {
	PublishedTotal.Set(float64(count))
}

// RecordError records a listing failure. errorType is "validation" or
// "database".
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

func pageRange(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	}
	return "100+"
}
