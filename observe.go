package keyfile

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentation identifies this library to OpenTelemetry providers.
// Until an SDK is installed the global providers are no-ops.
const instrumentation = "github.com/rbaliyan/keyfile"

var (
	tracer = otel.Tracer(instrumentation)
	meter  = otel.Meter(instrumentation)

	resolveCounter, _ = meter.Int64Counter("keyfile.resolve",
		metric.WithDescription("Key files resolved, by matched format."))
)

// spanError records err on span and marks the span failed.
func spanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
