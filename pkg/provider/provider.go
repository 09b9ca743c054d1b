// Package provider defines the capability interfaces the fipskat self-test
// engine expects from a cryptographic provider, and a software provider
// implementing them with in-process, synchronous engines.
//
// The engine never reimplements cryptography: it allocates a family-typed
// instance by algorithm identifier, drives it through the family's
// operation sequence, and releases it. Each instance reports metadata the
// engine uses to reject execution modes outside its certification boundary
// (asynchronous or hardware-offloaded implementations).
package provider

import (
	qerrors "github.com/certivault/fipskat/internal/errors"
)

// Metadata describes one allocated primitive instance.
type Metadata struct {
	// Algorithm is the identifier the instance was allocated for.
	Algorithm string

	// Implementation names the concrete engine backing the instance.
	Implementation string

	// Async reports whether the implementation completes operations
	// asynchronously (for example on an offload device). Such
	// implementations are outside the self-test boundary.
	Async bool
}

// Instance is the common surface of every allocated primitive.
// Instances are owned by a single caller and are not safe for concurrent
// use. Close releases any resources held by the instance and must be
// called on every exit path.
type Instance interface {
	Metadata() Metadata
	Close()
}

// BlockCipher is a raw single-block cipher (no mode of operation).
type BlockCipher interface {
	Instance

	// BlockSize returns the cipher block size in bytes.
	BlockSize() int

	// SetKey configures the key material.
	SetKey(key []byte) error

	// EncryptBlock encrypts exactly one block from src into dst.
	// dst and src may overlap exactly.
	EncryptBlock(dst, src []byte) error

	// DecryptBlock decrypts exactly one block from src into dst.
	DecryptBlock(dst, src []byte) error
}

// Cipher is a length-preserving cipher (a block cipher under a mode of
// operation such as CBC, CTR, ECB or XTS). Encrypt and Decrypt transform
// buf in place; stateful modes consume the caller's IV copy, so callers
// re-initialize the IV between directions.
type Cipher interface {
	Instance

	// IVSize returns the required IV size in bytes (zero for ECB).
	IVSize() int

	// SetKey configures the key material.
	SetKey(key []byte) error

	// Encrypt transforms buf in place using iv.
	Encrypt(buf, iv []byte) error

	// Decrypt transforms buf in place using iv.
	Decrypt(buf, iv []byte) error
}

// AEAD is an authenticated cipher operating on a combined buffer laid out
// as associated-data ‖ payload. Encrypt seals plaintextLen payload bytes in
// place, growing the payload by the configured tag length; Decrypt opens
// ciphertextLen payload bytes (which include the tag) in place.
type AEAD interface {
	Instance

	// IVSize returns the required nonce size in bytes.
	IVSize() int

	// SetKey configures the key material.
	SetKey(key []byte) error

	// SetTagSize configures the authentication tag length in bytes.
	// Must be called before the first Encrypt or Decrypt.
	SetTagSize(n int) error

	// Encrypt authenticates buf[:assocLen] and seals
	// buf[assocLen:assocLen+plaintextLen] in place. After a successful
	// call buf[assocLen:assocLen+plaintextLen+tag] holds ciphertext‖tag.
	Encrypt(buf []byte, assocLen, plaintextLen int, iv []byte) error

	// Decrypt authenticates buf[:assocLen] and opens
	// buf[assocLen:assocLen+ciphertextLen] in place. After a successful
	// call buf[assocLen:assocLen+ciphertextLen-tag] holds the plaintext.
	Decrypt(buf []byte, assocLen, ciphertextLen int, iv []byte) error
}

// Hash is a hash or MAC. For keyed algorithms SetKey must be called before
// Digest; for unkeyed algorithms SetKey reports an error.
type Hash interface {
	Instance

	// DigestSize returns the digest size in bytes.
	DigestSize() int

	// SetKey configures MAC key material.
	SetKey(key []byte) error

	// Digest computes the digest of message.
	Digest(message []byte) ([]byte, error)
}

// DRBG is a deterministic random bit generator with test-mode seeding.
type DRBG interface {
	Instance

	// Seed resets the generator from externally supplied entropy and an
	// optional personalization string. Supplying entropy from the caller
	// is only valid in self-test mode; production seeding draws from the
	// platform entropy source.
	Seed(entropy, personalization []byte) error

	// Generate fills out with generated bytes. additional is mixed into
	// the generate call. For prediction-resistant variants freshEntropy
	// must carry externally supplied entropy, which triggers a reseed
	// (consuming additional) before generation; otherwise freshEntropy
	// is nil.
	Generate(out, additional, freshEntropy []byte) error
}

// KEM is a key encapsulation mechanism with deterministic, seed-driven
// operation for self-testing.
type KEM interface {
	Instance

	// KeyGenFromSeed deterministically derives the key pair from seed.
	KeyGenFromSeed(seed []byte) error

	// PublicKeySize, CiphertextSize and SharedSecretSize report the
	// parameter-set sizes in bytes.
	PublicKeySize() int
	CiphertextSize() int
	SharedSecretSize() int

	// Encapsulate derives a ciphertext and shared secret using the
	// supplied encapsulation seed.
	Encapsulate(seed []byte) (ciphertext, sharedSecret []byte, err error)

	// Decapsulate recovers the shared secret from ciphertext.
	Decapsulate(ciphertext []byte) ([]byte, error)
}

// Provider allocates primitive instances by algorithm identifier. The
// provider hands out its default implementation for each identifier; the
// self-test engine never enumerates alternates.
type Provider interface {
	NewBlockCipher(alg string) (BlockCipher, error)
	NewCipher(alg string) (Cipher, error)
	NewAEAD(alg string) (AEAD, error)
	NewHash(alg string) (Hash, error)
	NewDRBG(alg string) (DRBG, error)
	NewKEM(alg string) (KEM, error)
}

// unknown returns the allocation error for an unregistered identifier.
func unknown(op, alg string) error {
	return qerrors.NewCryptoError(op+" "+alg, qerrors.ErrUnknownAlgorithm)
}
