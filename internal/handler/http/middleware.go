package http

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"news-portal/internal/handler/http/requestid"
	"news-portal/internal/handler/http/respond"
	"news-portal/internal/handler/http/responsewriter"

	"go.opentelemetry.io/otel/trace"
)

// Logging emits one structured line per request once the handler has
// finished, carrying the request ID and trace ID so a log line can be
// joined with its trace.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responsewriter.Wrap(w)
			next.ServeHTTP(rw, r)

			logger.LogAttrs(r.Context(), slog.LevelInfo, "request completed",
				slog.String("request_id", requestid.FromContext(r.Context())),
				slog.String("trace_id", trace.SpanFromContext(r.Context()).SpanContext().TraceID().String()),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.Int("status", rw.StatusCode()),
				slog.Int("bytes", rw.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.Header.Get("User-Agent")))
		})
	}
}

// Recover converts handler panics into 500 responses. The panic value
// and stack go to the log, never to the client.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("internal error"))
				logger.Error("panic recovered",
					slog.String("request_id", requestid.FromContext(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LimitRequestBody caps request bodies at maxBytes via MaxBytesReader,
// so oversized article submissions fail on read instead of buffering.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// visitor holds one client's request timestamps inside the sliding
// window.
type visitor struct {
	mu   sync.Mutex
	hits []time.Time
}

// RateLimiter enforces a per-IP sliding window limit. State lives in a
// sync.Map keyed by client IP; idle entries are swept every ten
// minutes.
type RateLimiter struct {
	visitors  sync.Map // map[string]*visitor
	limit     int
	window    time.Duration
	sweepMu   sync.Mutex
	lastSweep time.Time
}

// NewRateLimiter allows limit requests per window per client IP.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{limit: limit, window: window, lastSweep: time.Now()}
}

// Limit rejects over-budget requests with 429 before they reach the
// handler.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rl.maybeSweep()
		if rl.allow(clientIP(r)) {
			next.ServeHTTP(w, r)
			return
		}
		respond.SafeError(w, http.StatusTooManyRequests, fmt.Errorf("rate limit exceeded"))
	})
}

// allow prunes the visitor's expired hits, then admits the request if
// the window still has room.
func (rl *RateLimiter) allow(ip string) bool {
	val, _ := rl.visitors.LoadOrStore(ip, &visitor{hits: make([]time.Time, 0, rl.limit)})
	v := val.(*visitor)

	v.mu.Lock()
	defer v.mu.Unlock()

	now := time.Now()
	v.hits = pruneBefore(v.hits, now.Add(-rl.window))
	if len(v.hits) >= rl.limit {
		return false
	}
	v.hits = append(v.hits, now)
	return true
}

// maybeSweep drops visitors with no hits in the last two windows. Runs
// at most once per ten minutes so the sync.Map cannot grow unbounded
// under churning client IPs.
func (rl *RateLimiter) maybeSweep() {
	rl.sweepMu.Lock()
	defer rl.sweepMu.Unlock()

	if time.Since(rl.lastSweep) < 10*time.Minute {
		return
	}
	rl.lastSweep = time.Now()
	cutoff := time.Now().Add(-2 * rl.window)

	rl.visitors.Range(func(key, value interface{}) bool {
		v := value.(*visitor)
		v.mu.Lock()
		idle := len(pruneBefore(v.hits, cutoff)) == 0
		v.mu.Unlock()
		if idle {
			rl.visitors.Delete(key)
		}
		return true
	})
}

// pruneBefore drops timestamps at or before cutoff, reusing the slice's
// backing array.
func pruneBefore(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, ts := range hits {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}

// clientIP resolves the caller's address: first X-Forwarded-For hop,
// then X-Real-IP, then RemoteAddr. Unparseable header values are
// ignored rather than trusted.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(strings.TrimSpace(xri)); ip != nil {
			return ip.String()
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
