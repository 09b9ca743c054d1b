// Package metrics provides the observability surface of fipskat: a
// levelled structured logger and a pluggable tracer. The self-test engine
// emits one log line and one span per algorithm under test; OpenTelemetry
// export is compiled in with the "otel" build tag and stubbed out
// otherwise.
package metrics
