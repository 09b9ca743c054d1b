//go:build !hardened
// +build !hardened

package selftest

// brokenAlg names the algorithm whose results the comparator corrupts.
// It is written before a run and read-only during one; runs themselves
// never mutate it.
var brokenAlg string

// SetFaultInjection arranges for the comparator to corrupt the first
// result byte of the named algorithm, forcing its self-test to fail. It
// exists to prove the gate actually gates; call it before Run, never
// during one.
func SetFaultInjection(alg string) {
	brokenAlg = alg
}

// ClearFaultInjection removes a previously injected fault.
func ClearFaultInjection() {
	brokenAlg = ""
}

func injectedFault() string {
	return brokenAlg
}
