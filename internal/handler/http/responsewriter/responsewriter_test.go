package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapDefaults(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 0, wrapped.BytesWritten())
}

func TestWriteHeader(t *testing.T) {
	t.Run("records the status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		wrapped := Wrap(rec)

		wrapped.WriteHeader(http.StatusConflict)

		assert.Equal(t, http.StatusConflict, wrapped.StatusCode())
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("second call ignored", func(t *testing.T) {
		wrapped := Wrap(httptest.NewRecorder())

		wrapped.WriteHeader(http.StatusCreated)
		wrapped.WriteHeader(http.StatusInternalServerError)

		assert.Equal(t, http.StatusCreated, wrapped.StatusCode())
	})
}

func TestWrite(t *testing.T) {
	t.Run("accumulates bytes across writes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		wrapped := Wrap(rec)

		_, err := wrapped.Write([]byte(`{"title":`))
		require.NoError(t, err)
		_, err = wrapped.Write([]byte(`"Budget vote delayed"}`))
		require.NoError(t, err)

		assert.Equal(t, len(`{"title":"Budget vote delayed"}`), wrapped.BytesWritten())
		assert.Equal(t, `{"title":"Budget vote delayed"}`, rec.Body.String())
	})

	t.Run("implicit 200 before first body byte", func(t *testing.T) {
		wrapped := Wrap(httptest.NewRecorder())

		_, err := wrapped.Write([]byte("ok"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, wrapped.StatusCode())
		// A later WriteHeader must not override the committed status.
		wrapped.WriteHeader(http.StatusNotFound)
		assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	})
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Equal(t, http.ResponseWriter(rec), Wrap(rec).Unwrap())
}

func TestMiddlewareVisibility(t *testing.T) {
	// The wrapper exists so middleware can observe what the handler did.
	var status, size int
	observe := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := Wrap(w)
			next.ServeHTTP(wrapped, r)
			status, size = wrapped.StatusCode(), wrapped.BytesWritten()
		})
	}

	handler := observe(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("article not found"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles/999", nil))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, len("article not found"), size)
	assert.Equal(t, "article not found", rec.Body.String())
}
