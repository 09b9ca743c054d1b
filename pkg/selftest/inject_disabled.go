//go:build hardened
// +build hardened

package selftest

// SetFaultInjection is a no-op in hardened builds; the comparator has no
// corruption path.
func SetFaultInjection(alg string) {}

// ClearFaultInjection is a no-op in hardened builds.
func ClearFaultInjection() {}

func injectedFault() string {
	return ""
}
