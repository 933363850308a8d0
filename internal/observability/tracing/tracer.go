// Package tracing wires OpenTelemetry spans into the portal's HTTP
// surface.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("news-portal")

// GetTracer returns the portal's tracer for creating spans outside the
// HTTP middleware, e.g. around workflow transitions or repository calls.
func GetTracer() trace.Tracer {
	return tracer
}
