// block.go implements the AES raw block cipher engine and the
// provider-independent library entry points (key schedule expansion and
// one-shot SHA-256). The library entry points exist so the self-test
// engine can exercise the direct code path separately from the dispatched
// one; the two are distinct call paths even when they share a backend.
package provider

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"

	"github.com/certivault/fipskat/internal/constants"
	qerrors "github.com/certivault/fipskat/internal/errors"
)

type aesBlockCipher struct {
	alg   string
	block cipher.Block
}

func newAESBlockCipher(alg string) *aesBlockCipher {
	return &aesBlockCipher{alg: alg}
}

func (c *aesBlockCipher) Metadata() Metadata {
	return Metadata{Algorithm: c.alg, Implementation: "aes-generic"}
}

func (c *aesBlockCipher) Close() {
	c.block = nil
}

func (c *aesBlockCipher) BlockSize() int {
	return constants.AESBlockSize
}

func (c *aesBlockCipher) SetKey(key []byte) error {
	switch len(key) {
	case constants.AES128KeySize, constants.AES256KeySize, 24:
	default:
		return qerrors.NewCryptoError("aes.SetKey", qerrors.ErrInvalidKeySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return qerrors.NewCryptoError("aes.SetKey", err)
	}
	c.block = block
	return nil
}

func (c *aesBlockCipher) EncryptBlock(dst, src []byte) error {
	if c.block == nil {
		return qerrors.NewCryptoError("aes.EncryptBlock", qerrors.ErrKeyNotSet)
	}
	c.block.Encrypt(dst, src)
	return nil
}

func (c *aesBlockCipher) DecryptBlock(dst, src []byte) error {
	if c.block == nil {
		return qerrors.NewCryptoError("aes.DecryptBlock", qerrors.ErrKeyNotSet)
	}
	c.block.Decrypt(dst, src)
	return nil
}

// AESKeySchedule is an expanded AES key schedule obtained through the
// library entry point rather than through provider dispatch.
type AESKeySchedule struct {
	block cipher.Block
}

// ExpandAESKey derives an AES key schedule directly from key material.
func ExpandAESKey(key []byte) (*AESKeySchedule, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, qerrors.NewCryptoError("ExpandAESKey", err)
	}
	return &AESKeySchedule{block: block}, nil
}

// EncryptBlock encrypts one block from src into dst.
func (s *AESKeySchedule) EncryptBlock(dst, src []byte) {
	s.block.Encrypt(dst, src)
}

// DecryptBlock decrypts one block from src into dst.
func (s *AESKeySchedule) DecryptBlock(dst, src []byte) {
	s.block.Decrypt(dst, src)
}

// SHA256Sum computes a SHA-256 digest through the library entry point,
// bypassing provider dispatch.
func SHA256Sum(message []byte) []byte {
	digest := sha256.Sum256(message)
	return digest[:]
}
