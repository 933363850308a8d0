// Package responsewriter wraps http.ResponseWriter so the logging and
// metrics middleware can read the status code and body size after the
// handler returns.
package responsewriter

import "net/http"

// ResponseWriter records the status and byte count of a response as it
// is written.
type ResponseWriter struct {
	http.ResponseWriter
	status      int
	written     int
	headerFixed bool
}

// Wrap returns a recording wrapper around w. The status defaults to 200
// until WriteHeader runs, matching net/http's implicit behavior.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code; later calls are ignored,
// as the underlying writer would warn about them anyway.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.headerFixed {
		return
	}
	w.status = status
	w.headerFixed = true
	w.ResponseWriter.WriteHeader(status)
}

// Write forwards the body bytes and accumulates the written size.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.headerFixed {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

// StatusCode returns the response status as the client saw it.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten returns the total body bytes written so far.
func (w *ResponseWriter) BytesWritten() int { return w.written }

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
