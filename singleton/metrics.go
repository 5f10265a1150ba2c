package singleton

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records registry activity.
// Use NewOTelMetrics() for OpenTelemetry or NoopMetrics{} when disabled.
type Metrics interface {
	// RecordRegistration records a successful registration.
	RecordRegistration(ctx context.Context, typeName string, kind Kind)

	// RecordCreation records a lazy construction attempt and its outcome.
	RecordCreation(ctx context.Context, typeName string, elapsed time.Duration, err error)

	// RecordDisposal records a disposal that invoked a disposal capability.
	RecordDisposal(ctx context.Context, typeName string, err error)
}

// NoopMetrics is a Metrics that does nothing.
type NoopMetrics struct{}

var _ Metrics = NoopMetrics{}

// RecordRegistration does nothing.
func (NoopMetrics) RecordRegistration(context.Context, string, Kind) {}

// RecordCreation does nothing.
func (NoopMetrics) RecordCreation(context.Context, string, time.Duration, error) {}

// RecordDisposal does nothing.
func (NoopMetrics) RecordDisposal(context.Context, string, error) {}

// otelMetrics implements Metrics using OpenTelemetry.
type otelMetrics struct {
	registrations   metric.Int64Counter
	creations       metric.Int64Counter
	creationLatency metric.Float64Histogram
	creationErrors  metric.Int64Counter
	disposals       metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("github.com/sghaida/solo/singleton")

	registrations, err := meter.Int64Counter("singleton.registrations",
		metric.WithDescription("Number of singleton registrations"),
	)
	if err != nil {
		return nil, err
	}

	creations, err := meter.Int64Counter("singleton.creations",
		metric.WithDescription("Number of successful lazy constructions"),
	)
	if err != nil {
		return nil, err
	}

	creationLatency, err := meter.Float64Histogram("singleton.creation.latency_ms",
		metric.WithDescription("Lazy construction latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	creationErrors, err := meter.Int64Counter("singleton.creation.errors",
		metric.WithDescription("Number of failed lazy constructions"),
	)
	if err != nil {
		return nil, err
	}

	disposals, err := meter.Int64Counter("singleton.disposals",
		metric.WithDescription("Number of disposal capability invocations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		registrations:   registrations,
		creations:       creations,
		creationLatency: creationLatency,
		creationErrors:  creationErrors,
		disposals:       disposals,
	}, nil
}

// NewOTelMetrics returns a Metrics backed by the global OTel meter provider.
// If instrument creation fails it logs a warning and returns NoopMetrics.
//
// Configure the provider before calling:
//
//	otel.SetMeterProvider(provider)
func NewOTelMetrics() Metrics {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("singleton metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

func (m *otelMetrics) RecordRegistration(ctx context.Context, typeName string, kind Kind) {
	m.registrations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", typeName),
		attribute.String("kind", kind.String()),
	))
}

func (m *otelMetrics) RecordCreation(ctx context.Context, typeName string, elapsed time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("type", typeName))

	m.creationLatency.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	if err != nil {
		m.creationErrors.Add(ctx, 1, attrs)
		return
	}
	m.creations.Add(ctx, 1, attrs)
}

func (m *otelMetrics) RecordDisposal(ctx context.Context, typeName string, err error) {
	m.disposals.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", typeName),
		attribute.Bool("success", err == nil),
	))
}
