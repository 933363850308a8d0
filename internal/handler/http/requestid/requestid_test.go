package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContextRoundTrip(t *testing.T) {
	t.Run("stored ID comes back", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-7f3a")
		assert.Equal(t, "req-7f3a", FromContext(ctx))
	})

	t.Run("empty without an ID", func(t *testing.T) {
		assert.Equal(t, "", FromContext(context.Background()))
	})

	t.Run("wrong value type ignored", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RequestIDKey, 12345)
		assert.Equal(t, "", FromContext(ctx))
	})
}

func capturingHandler(captured *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("keeps the client's ID", func(t *testing.T) {
		var captured string
		handler := Middleware(capturingHandler(&captured))

		req := httptest.NewRequest(http.MethodGet, "/articles", nil)
		req.Header.Set(RequestIDHeader, "client-supplied-id")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-supplied-id", captured)
		assert.Equal(t, "client-supplied-id", rec.Header().Get(RequestIDHeader))
	})

	t.Run("generates a UUID when the client sends none", func(t *testing.T) {
		var captured string
		handler := Middleware(capturingHandler(&captured))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

		_, err := uuid.Parse(captured)
		assert.NoError(t, err, "generated ID must be a UUID")
		assert.Equal(t, captured, rec.Header().Get(RequestIDHeader),
			"context and response header must carry the same ID")
	})

	t.Run("each request gets its own ID", func(t *testing.T) {
		var captured string
		handler := Middleware(capturingHandler(&captured))

		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/articles", nil))
			seen[captured] = true
		}
		assert.Len(t, seen, 10)
	})
}

func TestHeaderConstant(t *testing.T) {
	assert.Equal(t, "X-Request-ID", RequestIDHeader)
}
