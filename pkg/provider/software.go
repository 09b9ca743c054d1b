// software.go implements the in-process software provider. All engines are
// synchronous and report Async: false in their metadata.
package provider

import (
	"github.com/certivault/fipskat/internal/constants"
)

// Software is the built-in software provider. Its engines wrap the Go
// standard library, golang.org/x/crypto and cloudflare/circl.
// The zero value is not usable; construct it with NewSoftware.
type Software struct{}

// NewSoftware returns the software provider.
func NewSoftware() *Software {
	return &Software{}
}

// NewBlockCipher allocates a raw block cipher.
func (*Software) NewBlockCipher(alg string) (BlockCipher, error) {
	switch alg {
	case constants.AlgAES:
		return newAESBlockCipher(alg), nil
	}
	return nil, unknown("NewBlockCipher", alg)
}

// NewCipher allocates a length-preserving cipher.
func (*Software) NewCipher(alg string) (Cipher, error) {
	switch alg {
	case constants.AlgCBCAES:
		return newCBCCipher(alg), nil
	case constants.AlgCTRAES:
		return newCTRCipher(alg), nil
	case constants.AlgECBAES:
		return newECBCipher(alg), nil
	case constants.AlgXTSAES:
		return newXTSCipher(alg), nil
	}
	return nil, unknown("NewCipher", alg)
}

// NewAEAD allocates an authenticated cipher.
func (*Software) NewAEAD(alg string) (AEAD, error) {
	switch alg {
	case constants.AlgGCMAES:
		return newGCMAEAD(alg), nil
	case constants.AlgChaCha20Poly1305:
		return newChaChaAEAD(alg), nil
	}
	return nil, unknown("NewAEAD", alg)
}

// NewHash allocates a hash or MAC.
func (*Software) NewHash(alg string) (Hash, error) {
	switch alg {
	case constants.AlgSHA1, constants.AlgSHA256, constants.AlgSHA512,
		constants.AlgSHA3_256, constants.AlgHMACSHA256:
		return newHash(alg)
	}
	return nil, unknown("NewHash", alg)
}

// NewDRBG allocates a deterministic random bit generator.
func (*Software) NewDRBG(alg string) (DRBG, error) {
	switch alg {
	case constants.AlgDRBGNoPRHMAC256, constants.AlgDRBGPRHMAC256:
		return newHMACDRBG(alg), nil
	}
	return nil, unknown("NewDRBG", alg)
}

// NewKEM allocates a key encapsulation mechanism.
func (*Software) NewKEM(alg string) (KEM, error) {
	switch alg {
	case constants.AlgMLKEM1024:
		return newMLKEM(alg), nil
	}
	return nil, unknown("NewKEM", alg)
}
