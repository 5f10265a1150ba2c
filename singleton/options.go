package singleton

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// config holds the settings applied by New.
type config struct {
	name    string
	logger  *slog.Logger
	metrics Metrics
	tracer  trace.Tracer
}

func defaultConfig() config {
	return config{
		logger:  slog.New(slog.DiscardHandler),
		metrics: NoopMetrics{},
		tracer:  defaultTracer(),
	}
}

// Option configures a Registry.
type Option func(*config)

// WithName attaches a human-readable name to the registry.
// It shows up in log records and snapshots.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the structured logger. Default: discard.
//
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder. Default: NoopMetrics.
//
// Example:
//
//	reg := singleton.New(singleton.WithMetrics(singleton.NewOTelMetrics()))
func WithMetrics(m Metrics) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracerProvider sets the provider used for lazy construction spans.
// Default: the global OTel tracer provider.
//
// A nil provider is ignored.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}
