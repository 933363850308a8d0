// Package requestid tags every request with an ID so one request can be
// followed across log lines.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey keeps the request-ID context entry private to this package.
type contextKey string

const (
	// RequestIDKey is the context key under which the ID is stored.
	RequestIDKey contextKey = "request_id"
	// RequestIDHeader carries the ID on requests and responses.
	RequestIDHeader = "X-Request-ID"
)

// FromContext returns the request ID, or "" when the context has none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithRequestID stores id on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Middleware reuses the caller's X-Request-ID when present, otherwise
// generates a UUID. The ID is echoed on the response so clients can
// quote it in bug reports, and stored on the context for log lines.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
	})
}
