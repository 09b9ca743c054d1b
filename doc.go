// Package fipskat implements a FIPS 140 power-up self-test gate: a fixed
// registry of known answer tests (KATs) run against a cryptographic
// provider before the provider is put into service.
//
// Every approved algorithm the provider exposes is exercised against a
// published test vector and compared byte for byte against the expected
// result. A single mismatch fails the whole gate.
//
// # Quick Start
//
// To gate the built-in software provider:
//
//	import (
//		"github.com/certivault/fipskat/pkg/provider"
//		"github.com/certivault/fipskat/pkg/selftest"
//	)
//
//	if !selftest.RunAll(ctx, provider.NewSoftware()) {
//		// refuse to serve cryptographic operations
//	}
//
// For failure details and custom observability:
//
//	engine := selftest.New(provider.NewSoftware(),
//		selftest.WithLogger(logger),
//		selftest.WithTracer(tracer),
//	)
//	if !engine.Run(ctx) {
//		log.Fatal(engine.Failure())
//	}
//
// # Package Structure
//
//   - pkg/selftest: the test engine, registry, vectors, and fault injection
//   - pkg/provider: algorithm interfaces and the software provider
//   - pkg/metrics: structured logging and tracing
//   - internal/constants: algorithm identifiers and size parameters
//   - internal/errors: self-test error types
//
// # Tested Algorithms
//
// The default registry covers AES (raw block plus ECB, CBC, CTR, and XTS
// modes), AES-GCM, ChaCha20-Poly1305, SHA-1, SHA-256, SHA3-256, SHA-512,
// HMAC-SHA256, HMAC-SHA256 DRBG (with and without prediction resistance),
// and ML-KEM-1024.
//
// # Fault Injection
//
// Development builds can corrupt the computed result for one named
// algorithm to prove the gate trips:
//
//	selftest.SetFaultInjection("gcm(aes)")
//
// Builds tagged "hardened" compile the injection hooks out entirely.
//
// # References
//
//   - FIPS 140-3 / ISO 19790: pre-operational self-test requirements
//   - NIST SP 800-90A: HMAC_DRBG
//   - NIST FIPS 203: Module-Lattice-Based Key-Encapsulation Mechanism
package fipskat
