// Package respond writes the portal's JSON responses. Error responses
// pass through a sanitizer so infrastructure failures never leak DSNs
// or query text to clients.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes v as a JSON body with the given status. A nil v writes
// only the status, for 204-style responses.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; all we can do is log.
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// safeMarkers are substrings that every client-facing domain error
// message contains. Validation, workflow, access, and conflict errors
// all phrase themselves with one of these, which is what lets SafeError
// tell them apart from leaked infrastructure errors.
var safeMarkers = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"cannot",
	"too long",
	"too short",
	"not permitted",
	"conflict",
	"unauthorized",
	"blocked",
	"expired",
}

// SafeError writes an error response, echoing the message only when it
// reads like a domain error. Anything else, and every 5xx regardless of
// message, becomes a generic "internal server error" with the real
// cause logged through the credential sanitizer.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if code < 500 && hasSafeMarker(msg) {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}

func hasSafeMarker(msg string) bool {
	lower := strings.ToLower(msg)
	for _, marker := range safeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
