package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func metricsRequest(handler http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestMetricsMiddleware_NormalizesPathLabels(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Eight distinct article IDs, three of them with query strings.
	for _, path := range []string{
		"/articles/1", "/articles/2", "/articles/123", "/articles/456",
		"/articles/789", "/articles/999?page=1", "/articles/1000?page=1&limit=10",
		"/articles/5678?sort=desc",
	} {
		metricsRequest(handler, http.MethodGet, path)
	}

	// All of them collapse into one series under /articles/:id.
	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/articles/:id", "200"))
	if got != 8 {
		t.Errorf("requests under /articles/:id = %v, want 8", got)
	}
	if series := testutil.CollectAndCount(httpRequestsTotal); series != 1 {
		t.Errorf("series = %d, want 1 after normalization", series)
	}
}

func TestMetricsMiddleware_SlugAndStaticPaths(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	metricsRequest(handler, http.MethodGet, "/articles/budget-vote-delayed")
	metricsRequest(handler, http.MethodGet, "/healthz")

	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/articles/:slug", "200")); got != 1 {
		t.Errorf("slug series = %v, want 1", got)
	}
	if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/healthz", "200")); got != 1 {
		t.Errorf("static series = %v, want 1", got)
	}
}

func TestMetricsMiddleware_StatusLabel(t *testing.T) {
	httpRequestsTotal.Reset()

	for _, status := range []int{
		http.StatusOK, http.StatusCreated, http.StatusBadRequest,
		http.StatusNotFound, http.StatusInternalServerError,
	} {
		handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		rec := metricsRequest(handler, http.MethodGet, "/articles/123")
		if rec.Code != status {
			t.Errorf("response status = %d, want %d", rec.Code, status)
		}
	}

	for _, label := range []string{"200", "201", "400", "404", "500"} {
		if got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/articles/:id", label)); got != 1 {
			t.Errorf("status %s count = %v, want 1", label, got)
		}
	}
}

func TestMetricsMiddleware_SizeHistograms(t *testing.T) {
	httpRequestSize.Reset()
	httpResponseSize.Reset()

	body := `{"title":"Budget vote delayed","content":"The council postponed"}`
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body)))

	if n := testutil.CollectAndCount(httpRequestSize); n != 1 {
		t.Errorf("request size series = %d, want 1", n)
	}
	if n := testutil.CollectAndCount(httpResponseSize); n != 1 {
		t.Errorf("response size series = %d, want 1", n)
	}
}

func TestMetricsWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	mw := &metricsWriter{ResponseWriter: rec, status: http.StatusOK}

	mw.WriteHeader(http.StatusCreated)
	n, err := mw.Write([]byte(`{"id":7}`))

	if err != nil || n != 8 {
		t.Errorf("Write() = (%d, %v)", n, err)
	}
	if mw.status != http.StatusCreated || mw.bytes != 8 {
		t.Errorf("recorded (%d, %d bytes), want (201, 8 bytes)", mw.status, mw.bytes)
	}
}

func TestMetricsHandler(t *testing.T) {
	rec := metricsRequest(MetricsHandler(), http.MethodGet, "/metrics")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("metrics endpoint returned an empty body")
	}
}

func TestRecordDBQuery(t *testing.T) {
	before := testutil.CollectAndCount(dbQueryDuration)
	RecordDBQuery("articles_select", 10*time.Millisecond)
	RecordDBQuery("articles_update", 30*time.Millisecond)
	after := testutil.CollectAndCount(dbQueryDuration)

	if after < before+2 {
		t.Errorf("series = %d, want at least %d", after, before+2)
	}
}
