package singleton

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/sghaida/solo/singleton"

// defaultTracer follows the global OTel tracer provider, so a provider set
// after New still receives spans.
func defaultTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// startConstructSpan starts a root span for one lazy construction attempt.
// Construction has no caller context, so the span has no parent.
func startConstructSpan(tracer trace.Tracer, typeName, registryID string) trace.Span {
	_, span := tracer.Start(context.Background(), "singleton.construct",
		trace.WithAttributes(
			attribute.String("singleton.type", typeName),
			attribute.String("registry.id", registryID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	return span
}

// endSpanWithError completes a span, optionally recording an error.
func endSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
