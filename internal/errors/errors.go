// Package errors defines the error types shared by the fipskat self-test
// engine and the software crypto provider. Error messages identify the
// failing algorithm and operation for diagnostics without leaking key or
// state material.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the self-test engine.
var (
	// ErrResultMismatch indicates a computed result did not equal the
	// known-answer value byte for byte.
	ErrResultMismatch = errors.New("selftest: result mismatch")

	// ErrAsyncImplementation indicates the provider handed out an
	// asynchronous/offloaded implementation, which is outside the
	// certification boundary of the self-test engine.
	ErrAsyncImplementation = errors.New("selftest: asynchronous implementation not permitted")

	// ErrBlockSizeMismatch indicates the instance reported a block size
	// different from the one the vector declares.
	ErrBlockSizeMismatch = errors.New("selftest: wrong block size")

	// ErrIVSizeMismatch indicates the instance reported an IV size
	// different from the one the vector declares.
	ErrIVSizeMismatch = errors.New("selftest: wrong IV size")

	// ErrDigestSizeMismatch indicates the instance reported a digest size
	// different from the one the vector declares.
	ErrDigestSizeMismatch = errors.New("selftest: wrong digest size")

	// ErrVectorMalformed indicates a test vector violates a structural
	// invariant (oversized buffer, AEAD ciphertext not longer than
	// plaintext, and so on). This is a defect in the vector tables.
	ErrVectorMalformed = errors.New("selftest: malformed test vector")
)

// Sentinel errors reported by the crypto provider.
var (
	// ErrUnknownAlgorithm indicates no implementation is registered for
	// the requested algorithm identifier.
	ErrUnknownAlgorithm = errors.New("provider: unknown algorithm")

	// ErrInvalidKeySize indicates a key of unsupported length.
	ErrInvalidKeySize = errors.New("provider: invalid key size")

	// ErrInvalidIVSize indicates an IV/nonce of unsupported length.
	ErrInvalidIVSize = errors.New("provider: invalid IV size")

	// ErrInvalidTagSize indicates an unsupported authentication tag size.
	ErrInvalidTagSize = errors.New("provider: invalid tag size")

	// ErrKeyNotSet indicates an operation that requires key material was
	// invoked before SetKey.
	ErrKeyNotSet = errors.New("provider: key not set")

	// ErrNotSeeded indicates a DRBG generate call before seeding.
	ErrNotSeeded = errors.New("provider: drbg not seeded")

	// ErrInvalidSeed indicates seed material of unsupported length.
	ErrInvalidSeed = errors.New("provider: invalid seed")

	// ErrInvalidCiphertext indicates ciphertext of unsupported shape.
	ErrInvalidCiphertext = errors.New("provider: invalid ciphertext")
)

// CryptoError wraps a provider error with the operation that failed.
type CryptoError struct {
	Op  string // Operation that failed (e.g. "aes.SetKey")
	Err error  // Underlying error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError creates a new CryptoError.
func NewCryptoError(op string, err error) *CryptoError {
	return &CryptoError{Op: op, Err: err}
}

// SelfTestError is the failure outcome of one algorithm's self-test. It
// carries the algorithm identifier and the operation (allocation, setup,
// encryption, decryption, digest, generation) at which the test failed.
// A self-test either passes, reported as a nil error, or fails with
// exactly one SelfTestError; there is no partial-success state.
type SelfTestError struct {
	Alg string // Algorithm identifier from the registry
	Op  string // Step at which the test failed
	Err error  // Underlying error
}

func (e *SelfTestError) Error() string {
	return fmt.Sprintf("self-test %s: %s: %v", e.Alg, e.Op, e.Err)
}

func (e *SelfTestError) Unwrap() error {
	return e.Err
}

// NewSelfTestError creates a new SelfTestError.
func NewSelfTestError(alg, op string, err error) *SelfTestError {
	return &SelfTestError{Alg: alg, Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
