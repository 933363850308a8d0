// Package observability holds the portal's logging, metrics, and tracing
// glue: slog construction and context propagation (logging), the shared
// Prometheus collectors the API and stats worker both record into
// (metrics, slo), and OpenTelemetry span handling for the HTTP surface
// (tracing).
package observability
