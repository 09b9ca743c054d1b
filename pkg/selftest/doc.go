// Package selftest implements the known-answer-test gate run against a
// cryptographic provider before it is put into service. Every registered
// algorithm is exercised through one published test vector: the engine
// allocates the provider's default implementation, validates it is inside
// the certification boundary, drives the family's operation sequence and
// compares each result byte for byte against the recorded answer.
//
// A run either passes completely or stops at the first failing algorithm.
// The engine reports the outcome as a boolean and retains the first
// failure for diagnostics; it never terminates the process. Fault
// injection for negative testing of the gate itself is available through
// SetFaultInjection and is compiled out by the "hardened" build tag.
package selftest
