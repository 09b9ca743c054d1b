package selftest_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/certivault/fipskat/internal/constants"
	qerrors "github.com/certivault/fipskat/internal/errors"
	"github.com/certivault/fipskat/pkg/metrics"
	"github.com/certivault/fipskat/pkg/provider"
	"github.com/certivault/fipskat/pkg/selftest"
)

func newEngine(opts ...selftest.Option) *selftest.Engine {
	opts = append([]selftest.Option{selftest.WithLogger(metrics.NullLogger())}, opts...)
	return selftest.New(provider.NewSoftware(), opts...)
}

func TestRunAllPasses(t *testing.T) {
	e := newEngine()
	if !e.Run(context.Background()) {
		t.Fatalf("self-tests failed: %v", e.Failure())
	}
	if e.Failure() != nil {
		t.Errorf("Failure after a passing run: %v", e.Failure())
	}
}

func TestRunIsDeterministic(t *testing.T) {
	e := newEngine()
	for i := 0; i < 2; i++ {
		if !e.Run(context.Background()) {
			t.Fatalf("run %d failed: %v", i+1, e.Failure())
		}
	}
}

func TestFaultInjectionScopedToAlgorithm(t *testing.T) {
	selftest.SetFaultInjection(constants.AlgGCMAES)
	defer selftest.ClearFaultInjection()

	e := newEngine()
	if e.Run(context.Background()) {
		t.Fatal("run passed with an injected fault")
	}

	var stErr *qerrors.SelfTestError
	if !qerrors.As(e.Failure(), &stErr) {
		t.Fatalf("failure is not a SelfTestError: %v", e.Failure())
	}
	if stErr.Alg != constants.AlgGCMAES {
		t.Errorf("failure attributed to %q, want %q", stErr.Alg, constants.AlgGCMAES)
	}
	if !qerrors.Is(e.Failure(), qerrors.ErrResultMismatch) {
		t.Errorf("failure cause: got %v, want ErrResultMismatch", e.Failure())
	}

	// Clearing the fault restores a passing run with the same engine.
	selftest.ClearFaultInjection()
	if !e.Run(context.Background()) {
		t.Errorf("run failed after clearing the fault: %v", e.Failure())
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	var order []string
	record := func(result error) func(*selftest.Engine, *selftest.Test) error {
		return func(_ *selftest.Engine, tt *selftest.Test) error {
			order = append(order, tt.Alg)
			return result
		}
	}

	failure := qerrors.NewSelfTestError("second", "digest", qerrors.ErrResultMismatch)
	tests := []selftest.Test{
		{Alg: "first", Run: record(nil)},
		{Alg: "second", Run: record(failure)},
		{Alg: "third", Run: record(nil)},
	}

	e := newEngine(selftest.WithTests(tests))
	if e.Run(context.Background()) {
		t.Fatal("run passed despite a failing test")
	}
	if e.Failure() != failure {
		t.Errorf("Failure: got %v, want %v", e.Failure(), failure)
	}
	if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
		t.Errorf("execution order mismatch (-want +got):\n%s", diff)
	}
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newEngine()
	if e.Run(ctx) {
		t.Fatal("run passed with a cancelled context")
	}
	if !qerrors.Is(e.Failure(), context.Canceled) {
		t.Errorf("failure: got %v, want context.Canceled", e.Failure())
	}
}

func TestRunEmitsSpans(t *testing.T) {
	tracer := metrics.NewSimpleTracer()
	e := newEngine(selftest.WithTracer(tracer))
	if !e.Run(context.Background()) {
		t.Fatalf("self-tests failed: %v", e.Failure())
	}

	spans := tracer.Spans()
	want := len(selftest.DefaultTests()) + 1 // one per algorithm plus the run span
	if len(spans) != want {
		t.Fatalf("recorded %d spans, want %d", len(spans), want)
	}
	// Algorithm spans end before the enclosing run span.
	if spans[len(spans)-1].Name != metrics.SpanSelfTestRun {
		t.Errorf("last span: got %q, want %q", spans[len(spans)-1].Name, metrics.SpanSelfTestRun)
	}
	for _, span := range spans[:len(spans)-1] {
		if span.Name != metrics.SpanSelfTestAlg {
			t.Errorf("algorithm span name: got %q", span.Name)
		}
		if span.Err != nil {
			t.Errorf("span %v failed: %v", span.Attributes, span.Err)
		}
	}
}

func TestCorruptedVectorFailsAttributed(t *testing.T) {
	// Copy the registry and corrupt one expected digest byte; the run
	// must fail and name the corrupted algorithm.
	tests := selftest.DefaultTests()
	for i := range tests {
		if tests[i].Alg != constants.AlgSHA1 {
			continue
		}
		vec := *tests[i].Hash
		vec.Digest = append([]byte{}, vec.Digest...)
		vec.Digest[0] ^= 0xff
		tests[i].Hash = &vec
	}

	e := newEngine(selftest.WithTests(tests))
	if e.Run(context.Background()) {
		t.Fatal("run passed with a corrupted vector")
	}
	var stErr *qerrors.SelfTestError
	if !qerrors.As(e.Failure(), &stErr) || stErr.Alg != constants.AlgSHA1 {
		t.Errorf("failure not attributed to sha1: %v", e.Failure())
	}
}

func TestMalformedVectorRejected(t *testing.T) {
	// An AEAD vector whose ciphertext is not longer than its plaintext
	// has no tag; the driver must refuse it rather than panic.
	tests := selftest.DefaultTests()
	for i := range tests {
		if tests[i].Alg != constants.AlgGCMAES {
			continue
		}
		vec := *tests[i].AEAD
		vec.Ciphertext = vec.Ciphertext[:len(vec.Plaintext)]
		tests[i].AEAD = &vec
	}

	e := newEngine(selftest.WithTests(tests))
	if e.Run(context.Background()) {
		t.Fatal("run passed with a malformed vector")
	}
	if !qerrors.Is(e.Failure(), qerrors.ErrVectorMalformed) {
		t.Errorf("failure: got %v, want ErrVectorMalformed", e.Failure())
	}
}

// asyncProvider wraps the software provider and marks hash instances as
// asynchronous, which the validator must reject.
type asyncProvider struct {
	provider.Provider
}

type asyncHash struct {
	provider.Hash
}

func (h asyncHash) Metadata() provider.Metadata {
	md := h.Hash.Metadata()
	md.Async = true
	return md
}

func (p asyncProvider) NewHash(alg string) (provider.Hash, error) {
	h, err := p.Provider.NewHash(alg)
	if err != nil {
		return nil, err
	}
	return asyncHash{h}, nil
}

func TestAsyncImplementationRejected(t *testing.T) {
	e := selftest.New(asyncProvider{provider.NewSoftware()},
		selftest.WithLogger(metrics.NullLogger()))
	if e.Run(context.Background()) {
		t.Fatal("run passed with an async implementation")
	}
	if !qerrors.Is(e.Failure(), qerrors.ErrAsyncImplementation) {
		t.Errorf("failure: got %v, want ErrAsyncImplementation", e.Failure())
	}
}

func TestCipherIVSizeMismatchRejected(t *testing.T) {
	tests := selftest.DefaultTests()
	for i := range tests {
		if tests[i].Alg != constants.AlgCBCAES {
			continue
		}
		vec := *tests[i].Cipher
		vec.IV = vec.IV[:8]
		tests[i].Cipher = &vec
	}

	e := newEngine(selftest.WithTests(tests))
	if e.Run(context.Background()) {
		t.Fatal("run passed with a wrong-size IV")
	}
	if !qerrors.Is(e.Failure(), qerrors.ErrIVSizeMismatch) {
		t.Errorf("failure: got %v, want ErrIVSizeMismatch", e.Failure())
	}
}
