package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/certivault/fipskat/pkg/metrics"
	"github.com/certivault/fipskat/pkg/provider"
	"github.com/certivault/fipskat/pkg/selftest"
)

func runCommand() {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	breakAlg := fs.String("break", "", "Inject a fault into the named algorithm (no-op in hardened builds)")
	timeout := fs.Duration("timeout", 30*time.Second, "Abort the run after this long")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error, silent")
	logFormat := fs.String("log-format", "text", "Log format: text or json")
	tracing := fs.String("tracing", "none", "Tracing mode: none, simple, otel (requires -tags otel)")

	fs.Usage = func() {
		fmt.Println(`USAGE: fipskat run [options]

Run every registered known answer test against the software provider.
Exits 0 when all algorithms pass and 1 when any fails.

OPTIONS:`)
		fs.PrintDefaults()
		fmt.Println(`
EXAMPLES:
    # Normal run
    fipskat run

    # Prove the gate trips on a corrupted result
    fipskat run --break "sha256"

    # Record spans in memory and dump them after the run
    fipskat run --tracing simple`)
	}

	_ = fs.Parse(os.Args[2:])

	logger, tracer, err := setupObservability(*logLevel, *logFormat, *tracing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *breakAlg != "" {
		selftest.SetFaultInjection(*breakAlg)
		defer selftest.ClearFaultInjection()
		fmt.Printf("Injecting fault into %q\n", *breakAlg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	engine := selftest.New(provider.NewSoftware(),
		selftest.WithLogger(logger),
		selftest.WithTracer(tracer),
	)

	start := time.Now()
	passed := engine.Run(ctx)
	elapsed := time.Since(start)

	if st, ok := tracer.(*metrics.SimpleTracer); ok {
		for _, span := range st.Spans() {
			fmt.Printf("span %-22s %8s %v\n", span.Name, span.Duration.Round(time.Microsecond), span.Attributes)
		}
	}

	if !passed {
		fmt.Fprintf(os.Stderr, "✗ self-tests FAILED after %s: %v\n", elapsed.Round(time.Millisecond), engine.Failure())
		os.Exit(1)
	}
	fmt.Printf("✓ all self-tests passed in %s\n", elapsed.Round(time.Millisecond))
}

func listCommand() {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(`USAGE: fipskat list

Print the self-test registry in execution order.`)
	}
	_ = fs.Parse(os.Args[2:])

	for i, t := range selftest.DefaultTests() {
		fmt.Printf("%2d  %s\n", i+1, t.Alg)
	}
}

func setupObservability(logLevel, logFormat, tracing string) (*metrics.Logger, metrics.Tracer, error) {
	var format metrics.Format
	switch strings.ToLower(logFormat) {
	case "text":
		format = metrics.FormatText
	case "json":
		format = metrics.FormatJSON
	default:
		return nil, nil, fmt.Errorf("invalid log format: %s (use text or json)", logFormat)
	}

	logger := metrics.NewLogger(
		metrics.WithLevel(metrics.ParseLevel(logLevel)),
		metrics.WithFormat(format),
	)

	var tracer metrics.Tracer
	switch strings.ToLower(tracing) {
	case "none":
		tracer = metrics.NoOpTracer{}
	case "simple":
		tracer = metrics.NewSimpleTracer()
	case "otel":
		if !metrics.OTelEnabled() {
			return nil, nil, fmt.Errorf("otel tracing not enabled (build with -tags otel)")
		}
		tracer = metrics.NewOTelTracer("fipskat")
	default:
		return nil, nil, fmt.Errorf("invalid tracing mode: %s (use none, simple, or otel)", tracing)
	}

	return logger, tracer, nil
}
