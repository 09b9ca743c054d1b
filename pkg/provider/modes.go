// modes.go implements the length-preserving cipher engines: AES in CBC,
// CTR, ECB and XTS modes. All engines transform the caller's buffer in
// place and leave the caller's IV copy untouched (fresh mode state is
// built per call from the supplied IV).
package provider

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"

	"golang.org/x/crypto/xts"

	"github.com/certivault/fipskat/internal/constants"
	qerrors "github.com/certivault/fipskat/internal/errors"
)

// cbcCipher implements AES-CBC.
type cbcCipher struct {
	alg   string
	block cipher.Block
}

func newCBCCipher(alg string) *cbcCipher { return &cbcCipher{alg: alg} }

func (c *cbcCipher) Metadata() Metadata {
	return Metadata{Algorithm: c.alg, Implementation: "cbc-aes-generic"}
}
func (c *cbcCipher) Close()      { c.block = nil }
func (c *cbcCipher) IVSize() int { return constants.AESBlockSize }

func (c *cbcCipher) SetKey(key []byte) error {
	block, err := aes.NewCipher(key)
	if err != nil {
		return qerrors.NewCryptoError("cbc(aes).SetKey", err)
	}
	c.block = block
	return nil
}

func (c *cbcCipher) Encrypt(buf, iv []byte) error {
	if err := c.check("cbc(aes).Encrypt", buf, iv); err != nil {
		return err
	}
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(buf, buf)
	return nil
}

func (c *cbcCipher) Decrypt(buf, iv []byte) error {
	if err := c.check("cbc(aes).Decrypt", buf, iv); err != nil {
		return err
	}
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(buf, buf)
	return nil
}

func (c *cbcCipher) check(op string, buf, iv []byte) error {
	if c.block == nil {
		return qerrors.NewCryptoError(op, qerrors.ErrKeyNotSet)
	}
	if len(iv) != constants.AESBlockSize {
		return qerrors.NewCryptoError(op, qerrors.ErrInvalidIVSize)
	}
	if len(buf)%constants.AESBlockSize != 0 {
		return qerrors.NewCryptoError(op, qerrors.ErrInvalidCiphertext)
	}
	return nil
}

// ctrCipher implements AES-CTR.
type ctrCipher struct {
	alg   string
	block cipher.Block
}

func newCTRCipher(alg string) *ctrCipher { return &ctrCipher{alg: alg} }

func (c *ctrCipher) Metadata() Metadata {
	return Metadata{Algorithm: c.alg, Implementation: "ctr-aes-generic"}
}
func (c *ctrCipher) Close()      { c.block = nil }
func (c *ctrCipher) IVSize() int { return constants.AESBlockSize }

func (c *ctrCipher) SetKey(key []byte) error {
	block, err := aes.NewCipher(key)
	if err != nil {
		return qerrors.NewCryptoError("ctr(aes).SetKey", err)
	}
	c.block = block
	return nil
}

func (c *ctrCipher) xor(op string, buf, iv []byte) error {
	if c.block == nil {
		return qerrors.NewCryptoError(op, qerrors.ErrKeyNotSet)
	}
	if len(iv) != constants.AESBlockSize {
		return qerrors.NewCryptoError(op, qerrors.ErrInvalidIVSize)
	}
	cipher.NewCTR(c.block, iv).XORKeyStream(buf, buf)
	return nil
}

func (c *ctrCipher) Encrypt(buf, iv []byte) error {
	return c.xor("ctr(aes).Encrypt", buf, iv)
}

func (c *ctrCipher) Decrypt(buf, iv []byte) error {
	return c.xor("ctr(aes).Decrypt", buf, iv)
}

// ecbCipher implements AES-ECB. ECB takes no IV; IVSize is zero and the
// iv argument is ignored.
type ecbCipher struct {
	alg   string
	block cipher.Block
}

func newECBCipher(alg string) *ecbCipher { return &ecbCipher{alg: alg} }

func (c *ecbCipher) Metadata() Metadata {
	return Metadata{Algorithm: c.alg, Implementation: "ecb-aes-generic"}
}
func (c *ecbCipher) Close()      { c.block = nil }
func (c *ecbCipher) IVSize() int { return 0 }

func (c *ecbCipher) SetKey(key []byte) error {
	block, err := aes.NewCipher(key)
	if err != nil {
		return qerrors.NewCryptoError("ecb(aes).SetKey", err)
	}
	c.block = block
	return nil
}

func (c *ecbCipher) apply(op string, buf []byte, transform func(dst, src []byte)) error {
	if c.block == nil {
		return qerrors.NewCryptoError(op, qerrors.ErrKeyNotSet)
	}
	if len(buf)%constants.AESBlockSize != 0 {
		return qerrors.NewCryptoError(op, qerrors.ErrInvalidCiphertext)
	}
	for off := 0; off < len(buf); off += constants.AESBlockSize {
		transform(buf[off:off+constants.AESBlockSize], buf[off:off+constants.AESBlockSize])
	}
	return nil
}

func (c *ecbCipher) Encrypt(buf, _ []byte) error {
	return c.apply("ecb(aes).Encrypt", buf, func(dst, src []byte) { c.block.Encrypt(dst, src) })
}

func (c *ecbCipher) Decrypt(buf, _ []byte) error {
	return c.apply("ecb(aes).Decrypt", buf, func(dst, src []byte) { c.block.Decrypt(dst, src) })
}

// xtsCipher implements AES-XTS. The 16-byte IV carries the data unit
// number in its first 8 bytes, little endian; the backend only supports
// sequence-number tweaks, so a nonzero upper half is rejected.
type xtsCipher struct {
	alg string
	c   *xts.Cipher
}

func newXTSCipher(alg string) *xtsCipher { return &xtsCipher{alg: alg} }

func (c *xtsCipher) Metadata() Metadata {
	return Metadata{Algorithm: c.alg, Implementation: "xts-aes-generic"}
}
func (c *xtsCipher) Close()      { c.c = nil }
func (c *xtsCipher) IVSize() int { return constants.AESBlockSize }

func (c *xtsCipher) SetKey(key []byte) error {
	// XTS keys are two AES keys concatenated.
	if len(key) != 2*constants.AES128KeySize && len(key) != 2*constants.AES256KeySize {
		return qerrors.NewCryptoError("xts(aes).SetKey", qerrors.ErrInvalidKeySize)
	}
	xc, err := xts.NewCipher(aes.NewCipher, key)
	if err != nil {
		return qerrors.NewCryptoError("xts(aes).SetKey", err)
	}
	c.c = xc
	return nil
}

func (c *xtsCipher) sector(op string, iv []byte) (uint64, error) {
	if len(iv) != constants.AESBlockSize {
		return 0, qerrors.NewCryptoError(op, qerrors.ErrInvalidIVSize)
	}
	for _, b := range iv[8:] {
		if b != 0 {
			return 0, qerrors.NewCryptoError(op, qerrors.ErrInvalidIVSize)
		}
	}
	return binary.LittleEndian.Uint64(iv[:8]), nil
}

func (c *xtsCipher) Encrypt(buf, iv []byte) error {
	const op = "xts(aes).Encrypt"
	if c.c == nil {
		return qerrors.NewCryptoError(op, qerrors.ErrKeyNotSet)
	}
	sector, err := c.sector(op, iv)
	if err != nil {
		return err
	}
	c.c.Encrypt(buf, buf, sector)
	return nil
}

func (c *xtsCipher) Decrypt(buf, iv []byte) error {
	const op = "xts(aes).Decrypt"
	if c.c == nil {
		return qerrors.NewCryptoError(op, qerrors.ErrKeyNotSet)
	}
	sector, err := c.sector(op, iv)
	if err != nil {
		return err
	}
	c.c.Decrypt(buf, buf, sector)
	return nil
}
