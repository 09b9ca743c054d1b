// aead.go implements the authenticated-cipher engines: AES-GCM and
// ChaCha20-Poly1305. Both operate on a combined buffer laid out as
// associated-data ‖ payload and seal/open the payload in place.
package provider

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/certivault/fipskat/internal/constants"
	qerrors "github.com/certivault/fipskat/internal/errors"
)

// gcmAEAD implements AES-GCM. The AEAD state is built lazily on first use
// because the tag size may be configured after the key.
type gcmAEAD struct {
	alg     string
	key     []byte
	tagSize int
	aead    cipher.AEAD
}

func newGCMAEAD(alg string) *gcmAEAD {
	return &gcmAEAD{alg: alg, tagSize: constants.GCMTagSize}
}

func (g *gcmAEAD) Metadata() Metadata {
	return Metadata{Algorithm: g.alg, Implementation: "gcm-aes-generic"}
}

func (g *gcmAEAD) Close() {
	for i := range g.key {
		g.key[i] = 0
	}
	g.key = nil
	g.aead = nil
}

func (g *gcmAEAD) IVSize() int { return constants.GCMNonceSize }

func (g *gcmAEAD) SetKey(key []byte) error {
	switch len(key) {
	case constants.AES128KeySize, constants.AES256KeySize, 24:
	default:
		return qerrors.NewCryptoError("gcm(aes).SetKey", qerrors.ErrInvalidKeySize)
	}
	g.key = append(g.key[:0], key...)
	g.aead = nil
	return nil
}

func (g *gcmAEAD) SetTagSize(n int) error {
	if n < 12 || n > 16 {
		return qerrors.NewCryptoError("gcm(aes).SetTagSize", qerrors.ErrInvalidTagSize)
	}
	g.tagSize = n
	g.aead = nil
	return nil
}

func (g *gcmAEAD) instance(op string) (cipher.AEAD, error) {
	if g.aead != nil {
		return g.aead, nil
	}
	if g.key == nil {
		return nil, qerrors.NewCryptoError(op, qerrors.ErrKeyNotSet)
	}
	block, err := aes.NewCipher(g.key)
	if err != nil {
		return nil, qerrors.NewCryptoError(op, err)
	}
	aead, err := cipher.NewGCMWithTagSize(block, g.tagSize)
	if err != nil {
		return nil, qerrors.NewCryptoError(op, err)
	}
	g.aead = aead
	return aead, nil
}

func (g *gcmAEAD) Encrypt(buf []byte, assocLen, plaintextLen int, iv []byte) error {
	const op = "gcm(aes).Encrypt"
	aead, err := g.instance(op)
	if err != nil {
		return err
	}
	return sealInPlace(op, aead, buf, assocLen, plaintextLen, iv)
}

func (g *gcmAEAD) Decrypt(buf []byte, assocLen, ciphertextLen int, iv []byte) error {
	const op = "gcm(aes).Decrypt"
	aead, err := g.instance(op)
	if err != nil {
		return err
	}
	return openInPlace(op, aead, buf, assocLen, ciphertextLen, iv)
}

// chachaAEAD implements ChaCha20-Poly1305 with its fixed 16-byte tag.
type chachaAEAD struct {
	alg  string
	aead cipher.AEAD
}

func newChaChaAEAD(alg string) *chachaAEAD { return &chachaAEAD{alg: alg} }

func (c *chachaAEAD) Metadata() Metadata {
	return Metadata{Algorithm: c.alg, Implementation: "chacha20-poly1305-generic"}
}

func (c *chachaAEAD) Close()      { c.aead = nil }
func (c *chachaAEAD) IVSize() int { return constants.ChaCha20Poly1305NonceSize }

func (c *chachaAEAD) SetKey(key []byte) error {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return qerrors.NewCryptoError("chacha20-poly1305.SetKey", err)
	}
	c.aead = aead
	return nil
}

func (c *chachaAEAD) SetTagSize(n int) error {
	if n != constants.ChaCha20Poly1305TagSize {
		return qerrors.NewCryptoError("chacha20-poly1305.SetTagSize", qerrors.ErrInvalidTagSize)
	}
	return nil
}

func (c *chachaAEAD) Encrypt(buf []byte, assocLen, plaintextLen int, iv []byte) error {
	const op = "chacha20-poly1305.Encrypt"
	if c.aead == nil {
		return qerrors.NewCryptoError(op, qerrors.ErrKeyNotSet)
	}
	return sealInPlace(op, c.aead, buf, assocLen, plaintextLen, iv)
}

func (c *chachaAEAD) Decrypt(buf []byte, assocLen, ciphertextLen int, iv []byte) error {
	const op = "chacha20-poly1305.Decrypt"
	if c.aead == nil {
		return qerrors.NewCryptoError(op, qerrors.ErrKeyNotSet)
	}
	return openInPlace(op, c.aead, buf, assocLen, ciphertextLen, iv)
}

// sealInPlace seals the payload region of the combined buffer, reusing its
// storage for the output.
func sealInPlace(op string, aead cipher.AEAD, buf []byte, assocLen, plaintextLen int, iv []byte) error {
	if len(iv) != aead.NonceSize() {
		return qerrors.NewCryptoError(op, qerrors.ErrInvalidIVSize)
	}
	if assocLen < 0 || plaintextLen < 0 || assocLen+plaintextLen+aead.Overhead() > len(buf) {
		return qerrors.NewCryptoError(op, qerrors.ErrInvalidCiphertext)
	}
	assoc := buf[:assocLen]
	plaintext := buf[assocLen : assocLen+plaintextLen]
	aead.Seal(plaintext[:0], iv, plaintext, assoc)
	return nil
}

// openInPlace opens the payload region of the combined buffer, reusing its
// storage for the output.
func openInPlace(op string, aead cipher.AEAD, buf []byte, assocLen, ciphertextLen int, iv []byte) error {
	if len(iv) != aead.NonceSize() {
		return qerrors.NewCryptoError(op, qerrors.ErrInvalidIVSize)
	}
	if assocLen < 0 || ciphertextLen < aead.Overhead() || assocLen+ciphertextLen > len(buf) {
		return qerrors.NewCryptoError(op, qerrors.ErrInvalidCiphertext)
	}
	assoc := buf[:assocLen]
	ciphertext := buf[assocLen : assocLen+ciphertextLen]
	if _, err := aead.Open(ciphertext[:0], iv, ciphertext, assoc); err != nil {
		return qerrors.NewCryptoError(op, err)
	}
	return nil
}
