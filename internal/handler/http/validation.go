package http

import (
	"net/http"
)

// Request input ceilings. A bearer token is well under a kilobyte and no
// route nests deeper than a few segments, so anything near these limits is
// not a legitimate client.
const (
	maxAuthHeaderBytes = 8 << 10
	maxPathBytes       = 2 << 10
	maxBodyBytes       = 10 << 20
)

// InputValidation rejects oversized request surfaces before any routing or
// parsing happens, and caps the body via http.MaxBytesReader for the
// handlers downstream.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthHeaderBytes {
				writeJSONError(w, http.StatusBadRequest, "authorization header too large")
				return
			}

			if len(r.URL.Path) > maxPathBytes {
				writeJSONError(w, http.StatusRequestURITooLong, "URI too long")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
