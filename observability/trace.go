package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span wraps a trace span with the few operations metro needs.
type Span struct {
	span  trace.Span
	onEnd func()
}

// StartOption customizes StartWith.
type StartOption func(*startConfig)

type startConfig struct {
	attrs   []attribute.KeyValue
	onStart func()
	onEnd   func()
}

// Attrs sets attributes on the new span.
func Attrs(kv ...attribute.KeyValue) StartOption {
	return func(c *startConfig) { c.attrs = append(c.attrs, kv...) }
}

// OnStart registers a callback run once the span has started.
func OnStart(fn func()) StartOption {
	return func(c *startConfig) { c.onStart = fn }
}

// OnEnd registers a callback run after the span ends.
func OnEnd(fn func()) StartOption {
	return func(c *startConfig) { c.onEnd = fn }
}

// Start begins a span. Without a configured tracer the span is a noop.
func Start(ctx context.Context, name string, kv ...attribute.KeyValue) (context.Context, *Span) {
	return StartWith(ctx, name, Attrs(kv...))
}

// StartWith begins a span with options.
func StartWith(ctx context.Context, name string, opts ...StartOption) (context.Context, *Span) {
	var cfg startConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(cfg.attrs...))
	if cfg.onStart != nil {
		cfg.onStart()
	}
	return ctx, &Span{span: span, onEnd: cfg.onEnd}
}

// End finishes the span.
func (s *Span) End() {
	s.span.End()
	if s.onEnd != nil {
		s.onEnd()
	}
}

// Error marks the span as failed. err may be nil.
func (s *Span) Error(err error, msg string) {
	if err != nil {
		s.span.RecordError(err)
	}
	s.span.SetStatus(codes.Error, msg)
}

// Event adds a named event to the span.
func (s *Span) Event(name string, kv ...attribute.KeyValue) {
	s.span.AddEvent(name, trace.WithAttributes(kv...))
}

// Set adds attributes to the span.
func (s *Span) Set(kv ...attribute.KeyValue) {
	s.span.SetAttributes(kv...)
}

// Str builds a string attribute.
func Str(key, value string) attribute.KeyValue { return attribute.String(key, value) }

// Num builds an integer attribute.
func Num(key string, value int) attribute.KeyValue { return attribute.Int(key, value) }

// From is the query's source station.
func From(station string) attribute.KeyValue { return attribute.String("metro.from", station) }

// To is the query's destination station.
func To(station string) attribute.KeyValue { return attribute.String("metro.to", station) }

// Metric is the cost model a query optimizes.
func Metric(name string) attribute.KeyValue { return attribute.String("metro.metric", name) }

// Cost is the cost of an answered query.
func Cost(v int) attribute.KeyValue { return attribute.Int("metro.cost", v) }

// Hops is the number of stations on an answered route.
func Hops(n int) attribute.KeyValue { return attribute.Int("metro.hops", n) }
