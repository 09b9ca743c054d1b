package selftest

import "encoding/hex"

// Test binds an algorithm identifier to the driver that exercises it and
// to exactly one family vector. One and only one of the vector pointers is
// non-nil; the driver field selects which.
type Test struct {
	Alg string
	Run func(e *Engine, t *Test) error

	Block  *BlockCipherVector
	Cipher *CipherVector
	AEAD   *AEADVector
	Hash   *HashVector
	DRBG   *DRBGVector
	KEM    *KEMVector
}

// BlockCipherVector is a single-block known answer for a raw block cipher.
// Plaintext and Ciphertext are exactly one block long.
type BlockCipherVector struct {
	Key        []byte
	Plaintext  []byte
	Ciphertext []byte
}

// CipherVector is a known answer for a length-preserving cipher.
// Plaintext and Ciphertext have equal length; IV is empty for modes that
// take none.
type CipherVector struct {
	Key        []byte
	IV         []byte
	Plaintext  []byte
	Ciphertext []byte
}

// AEADVector is a known answer for an authenticated cipher. Ciphertext
// includes the authentication tag, so it is strictly longer than
// Plaintext; the difference is the tag length the driver configures.
type AEADVector struct {
	Key        []byte
	IV         []byte
	Assoc      []byte
	Plaintext  []byte
	Ciphertext []byte
}

// HashVector is a known answer for a hash or MAC. Key is nil for unkeyed
// algorithms.
type HashVector struct {
	Key     []byte
	Message []byte
	Digest  []byte
}

// DRBGVector is a known answer for a deterministic random bit generator.
// The driver seeds from Entropy and Personalization, then generates twice
// with AdditionalA and AdditionalB; the Output records only the second
// call's result. For prediction-resistant variants EntropyPRA/B carry the
// fresh entropy each generate call consumes; they are nil otherwise.
type DRBGVector struct {
	Entropy         []byte
	Personalization []byte
	AdditionalA     []byte
	AdditionalB     []byte
	EntropyPRA      []byte
	EntropyPRB      []byte
	Output          []byte
}

// KEMVector drives the deterministic consistency test of a key
// encapsulation mechanism: seeded key generation, seeded encapsulation,
// decapsulation, shared secrets compared.
type KEMVector struct {
	KeySeed   []byte
	EncapSeed []byte
}

// mustHex decodes static vector material. The tables are compile-time
// constants, so a decode failure is a build defect, not a runtime
// condition.
func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("selftest: bad vector hex: " + err.Error())
	}
	return b
}
