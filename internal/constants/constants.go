// Package constants defines the size bounds and algorithm identifiers used
// by the fipskat self-test engine and its software crypto provider.
//
// The bounds describe the largest buffers any registered test vector is
// allowed to declare. They are engine limits, not limits of the underlying
// primitives: a vector exceeding them indicates a defect in the vector
// tables, which the drivers check defensively at entry.
package constants

// Buffer size bounds across all tested algorithm families.
const (
	// MaxBlockSize is the largest block size (in bytes) of any block
	// cipher tested by the engine. AES has 16-byte blocks.
	MaxBlockSize = 16

	// MaxIVSize is the largest IV/nonce size (in bytes) among any tested
	// algorithm.
	MaxIVSize = 16

	// MaxDigestSize is the largest digest size (in bytes) among any tested
	// hash or MAC. SHA-512 produces 64 bytes.
	MaxDigestSize = 64

	// MaxMessageSize is the largest plaintext/ciphertext buffer any vector
	// may declare. Self-test vectors are intentionally short.
	MaxMessageSize = 256
)

// AES parameters.
const (
	// AESBlockSize is the AES block size in bytes.
	AESBlockSize = 16

	// AES128KeySize and AES256KeySize are the supported AES key sizes.
	AES128KeySize = 16
	AES256KeySize = 32
)

// AEAD parameters.
const (
	// GCMNonceSize is the nonce size required by the AES-GCM engine.
	GCMNonceSize = 12

	// GCMTagSize is the default AES-GCM authentication tag size.
	GCMTagSize = 16

	// ChaCha20Poly1305NonceSize is the ChaCha20-Poly1305 nonce size.
	ChaCha20Poly1305NonceSize = 12

	// ChaCha20Poly1305TagSize is the fixed ChaCha20-Poly1305 tag size.
	ChaCha20Poly1305TagSize = 16
)

// ML-KEM-1024 parameters (NIST FIPS 203).
const (
	// MLKEMPublicKeySize is the ML-KEM-1024 encapsulation key size.
	MLKEMPublicKeySize = 1568

	// MLKEMCiphertextSize is the ML-KEM-1024 ciphertext size.
	MLKEMCiphertextSize = 1568

	// MLKEMSharedSecretSize is the shared secret size.
	MLKEMSharedSecretSize = 32

	// MLKEMKeySeedSize is the seed length for deterministic key generation.
	MLKEMKeySeedSize = 64

	// MLKEMEncapSeedSize is the seed length for deterministic encapsulation.
	MLKEMEncapSeedSize = 32
)

// Algorithm identifiers understood by the software provider. The syntax
// follows the Linux crypto API convention of mode(cipher) so that vectors
// and diagnostics read the same as upstream CAVP material.
const (
	AlgAES              = "aes"
	AlgCBCAES           = "cbc(aes)"
	AlgCTRAES           = "ctr(aes)"
	AlgECBAES           = "ecb(aes)"
	AlgXTSAES           = "xts(aes)"
	AlgGCMAES           = "gcm(aes)"
	AlgChaCha20Poly1305 = "chacha20-poly1305"
	AlgSHA1             = "sha1"
	AlgSHA256           = "sha256"
	AlgSHA3_256         = "sha3-256"
	AlgSHA512           = "sha512"
	AlgHMACSHA256       = "hmac(sha256)"
	AlgDRBGNoPRHMAC256  = "drbg_nopr_hmac_sha256"
	AlgDRBGPRHMAC256    = "drbg_pr_hmac_sha256"
	AlgMLKEM1024        = "mlkem1024"
)
