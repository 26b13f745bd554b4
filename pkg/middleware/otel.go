package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/steer/pkg/steer"
)

// Default tracer name for steer applications.
const defaultTracerName = "steer"

// OTelConfig configures the OpenTelemetry observer.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "steer").
	TracerName string

	// Filter determines which transitions to trace.
	// Return true to trace the transition, false to skip.
	// If nil, all transitions are traced.
	Filter func(t steer.Transition) bool

	// AttributeExtractor extracts custom attributes per transition.
	AttributeExtractor func(t steer.Transition) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry observer.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTransitionFilter sets a filter function for transitions.
func WithTransitionFilter(filter func(t steer.Transition) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(t steer.Transition) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// OpenTelemetry creates an observer that records one span per settled
// transition, bounded by the transition's start and end timestamps.
//
// The span carries the transition type, status, and key counts. The
// tracer uses the global OpenTelemetry tracer provider; configure it in
// your main() before creating widgets:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	)
//	otel.SetTracerProvider(tp)
//
//	t := toggle.New(toggle.WithObserver(middleware.OpenTelemetry()))
func OpenTelemetry(opts ...OTelOption) steer.Observer {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Resolve tracer from global provider
	config.tracer = otel.Tracer(config.TracerName)

	return steer.ObserverFunc(func(t steer.Transition) {
		if config.Filter != nil && !config.Filter(t) {
			return
		}

		attrs := []attribute.KeyValue{
			attribute.String("steer.transition_type", t.Type),
			attribute.String("steer.status", t.Status()),
			attribute.Int("steer.keys_committed", len(t.Committed)),
			attribute.Int("steer.keys_notified", len(t.Notified)),
			attribute.Bool("steer.vetoed", t.Vetoed),
		}
		if config.AttributeExtractor != nil {
			attrs = append(attrs, config.AttributeExtractor(t)...)
		}

		// The transition already settled; the span is recorded
		// retroactively with explicit timestamps.
		_, span := config.tracer.Start(
			context.Background(),
			"steer."+t.Type,
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
			trace.WithTimestamp(t.Start),
		)
		span.SetStatus(codes.Ok, "")
		span.End(trace.WithTimestamp(t.End))
	})
}
