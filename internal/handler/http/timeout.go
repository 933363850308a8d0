package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout caps how long a request may run. When the deadline passes before
// the handler finishes, the client gets 504 and any late writes from the
// handler goroutine are discarded. The request context carries the deadline
// so repository queries are cancelled too.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()
			r = r.WithContext(ctx)

			gw := &guardedWriter{ResponseWriter: w}

			done := make(chan struct{})
			go func() {
				next.ServeHTTP(gw, r)
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				gw.mu.Lock()
				gw.abandoned = true
				if !gw.wrote {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusGatewayTimeout)
					_, _ = w.Write([]byte(`{"error":"request timed out"}`))
				}
				gw.mu.Unlock()
			}
		})
	}
}

// guardedWriter serializes writes between the handler goroutine and the
// timeout path. Once the timeout response has gone out the handler's
// writes are dropped.
type guardedWriter struct {
	http.ResponseWriter
	mu        sync.Mutex
	abandoned bool
	wrote     bool
}

func (g *guardedWriter) WriteHeader(statusCode int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.abandoned || g.wrote {
		return
	}
	g.wrote = true
	g.ResponseWriter.WriteHeader(statusCode)
}

func (g *guardedWriter) Write(data []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if !g.wrote {
		g.wrote = true
		g.ResponseWriter.WriteHeader(http.StatusOK)
	}
	return g.ResponseWriter.Write(data)
}
