package metrics

import (
	"context"
	"sync"
	"time"
)

// Tracer abstracts span creation so the self-test engine can run with
// no-op tracing, in-memory recording, or an OpenTelemetry backend.
type Tracer interface {
	// StartSpan starts a span with the given name and returns a context
	// carrying it plus a function that ends the span. Pass a nil error
	// to the ender for success.
	StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, SpanEnder)
}

// SpanEnder ends a span; a non-nil error marks it failed.
type SpanEnder func(err error)

// SpanOption configures a span at start time.
type SpanOption func(*spanConfig)

type spanConfig struct {
	attributes map[string]interface{}
}

// WithSpanAttributes attaches attributes to the span.
func WithSpanAttributes(attrs map[string]interface{}) SpanOption {
	return func(c *spanConfig) { c.attributes = attrs }
}

// Span names emitted by the self-test engine.
const (
	SpanSelfTestRun = "fipskat.selftest.run"
	SpanSelfTestAlg = "fipskat.selftest.alg"
)

// NoOpTracer discards all spans. It is the default when tracing is not
// configured.
type NoOpTracer struct{}

// StartSpan returns the context unchanged and a no-op ender.
func (NoOpTracer) StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, SpanEnder) {
	return ctx, func(error) {}
}

// RecordedSpan is a completed span captured by SimpleTracer.
type RecordedSpan struct {
	Name       string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Attributes map[string]interface{}
	Err        error
}

// SimpleTracer records completed spans in memory. Used in tests.
type SimpleTracer struct {
	mu    sync.Mutex
	spans []RecordedSpan
}

// NewSimpleTracer creates an empty SimpleTracer.
func NewSimpleTracer() *SimpleTracer {
	return &SimpleTracer{}
}

// StartSpan starts a recording span.
func (t *SimpleTracer) StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, SpanEnder) {
	cfg := &spanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	span := RecordedSpan{
		Name:       name,
		StartTime:  time.Now(),
		Attributes: cfg.attributes,
	}
	return ctx, func(err error) {
		span.EndTime = time.Now()
		span.Duration = span.EndTime.Sub(span.StartTime)
		span.Err = err

		t.mu.Lock()
		t.spans = append(t.spans, span)
		t.mu.Unlock()
	}
}

// Spans returns a copy of all recorded spans.
func (t *SimpleTracer) Spans() []RecordedSpan {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]RecordedSpan, len(t.spans))
	copy(out, t.spans)
	return out
}

// Reset discards all recorded spans.
func (t *SimpleTracer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.spans = t.spans[:0]
}
