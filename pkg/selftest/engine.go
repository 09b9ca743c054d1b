package selftest

import (
	"context"

	"github.com/certivault/fipskat/pkg/metrics"
	"github.com/certivault/fipskat/pkg/provider"
)

// Engine runs the registered self-tests against one provider. An Engine
// is built for a single run sequence and is not safe for concurrent use.
type Engine struct {
	provider provider.Provider
	log      *metrics.Logger
	tracer   metrics.Tracer
	tests    []Test
	failure  error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *metrics.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithTracer sets the engine tracer.
func WithTracer(t metrics.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithTests replaces the default registry. Used by the negative tests and
// by callers gating a provider that registers a subset of algorithms.
func WithTests(tests []Test) Option {
	return func(e *Engine) { e.tests = tests }
}

// New creates an engine bound to p, running the default registry unless
// WithTests overrides it.
func New(p provider.Provider, opts ...Option) *Engine {
	e := &Engine{
		provider: p,
		log:      metrics.NewLogger(metrics.WithName("selftest")),
		tracer:   metrics.NoOpTracer{},
		tests:    DefaultTests(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the registry in order and reports whether every algorithm
// passed. The first failure stops the run and is retained for Failure;
// the caller decides what a failed gate means for the process.
func (e *Engine) Run(ctx context.Context) bool {
	e.failure = nil

	ctx, endRun := e.tracer.StartSpan(ctx, metrics.SpanSelfTestRun,
		metrics.WithSpanAttributes(map[string]interface{}{"algorithms": len(e.tests)}))
	e.log.Info("running self-tests", metrics.Fields{"algorithms": len(e.tests)})

	for i := range e.tests {
		t := &e.tests[i]
		if err := ctx.Err(); err != nil {
			e.failure = err
			e.log.Error("self-tests aborted", metrics.Fields{"alg": t.Alg, "error": err})
			endRun(err)
			return false
		}

		_, endAlg := e.tracer.StartSpan(ctx, metrics.SpanSelfTestAlg,
			metrics.WithSpanAttributes(map[string]interface{}{"alg": t.Alg}))
		err := t.Run(e, t)
		endAlg(err)

		if err != nil {
			e.failure = err
			e.log.Error("self-test failed", metrics.Fields{"alg": t.Alg, "error": err})
			endRun(err)
			return false
		}
		e.log.Debug("self-test passed", metrics.Fields{"alg": t.Alg})
	}

	e.log.Info("all self-tests passed")
	endRun(nil)
	return true
}

// Failure returns the error that stopped the last Run, or nil if it
// passed.
func (e *Engine) Failure() error {
	return e.failure
}

// RunAll gates p with the default registry and default observability.
func RunAll(ctx context.Context, p provider.Provider) bool {
	return New(p).Run(ctx)
}
