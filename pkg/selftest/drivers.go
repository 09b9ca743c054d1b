// drivers.go holds one driver per algorithm family. Every driver follows
// the same shape: allocate the provider's default implementation, validate
// it is inside the boundary, check the structural sizes the vector
// declares, run the forward operation and compare, run the inverse
// operation and compare, release the instance on every exit path.
package selftest

import (
	"fmt"

	"github.com/certivault/fipskat/internal/constants"
	qerrors "github.com/certivault/fipskat/internal/errors"

	"github.com/certivault/fipskat/pkg/provider"
)

func malformed(alg, op string) error {
	return qerrors.NewSelfTestError(alg, op, qerrors.ErrVectorMalformed)
}

func failed(alg, op string, err error) error {
	return qerrors.NewSelfTestError(alg, op, err)
}

// testBlockCipher exercises a raw block cipher: encrypt one block in
// place, compare, decrypt it back, compare.
func testBlockCipher(e *Engine, t *Test) error {
	vec := t.Block
	blockSize := len(vec.Plaintext)
	if blockSize == 0 || blockSize > constants.MaxBlockSize || len(vec.Ciphertext) != blockSize {
		return malformed(t.Alg, "vector")
	}

	c, err := e.provider.NewBlockCipher(t.Alg)
	if err != nil {
		return failed(t.Alg, "allocate", err)
	}
	defer c.Close()

	if err := validate(t.Alg, c); err != nil {
		return err
	}
	if c.BlockSize() != blockSize {
		return failed(t.Alg, "allocate", qerrors.ErrBlockSizeMismatch)
	}
	if err := c.SetKey(vec.Key); err != nil {
		return failed(t.Alg, "setkey", err)
	}

	block := scratch.get(blockSize)
	defer scratch.put(block)

	copy(block, vec.Plaintext)
	if err := c.EncryptBlock(block, block); err != nil {
		return failed(t.Alg, "encryption", err)
	}
	if err := e.check(t.Alg, "encryption", block, vec.Ciphertext); err != nil {
		return err
	}

	if err := c.DecryptBlock(block, block); err != nil {
		return failed(t.Alg, "decryption", err)
	}
	return e.check(t.Alg, "decryption", block, vec.Plaintext)
}

// testAES runs the block-cipher test and then repeats the round trip
// through the key-schedule library entry point. The dispatched engine and
// the library path are distinct code, so each needs its own answer check.
func testAES(e *Engine, t *Test) error {
	vec := t.Block
	if len(vec.Plaintext) != constants.AESBlockSize {
		return malformed(t.Alg, "vector")
	}
	if err := testBlockCipher(e, t); err != nil {
		return err
	}

	sched, err := provider.ExpandAESKey(vec.Key)
	if err != nil {
		return failed(t.Alg, "expandkey (library API)", err)
	}

	block := scratch.get(constants.AESBlockSize)
	defer scratch.put(block)

	sched.EncryptBlock(block, vec.Plaintext)
	if err := e.check(t.Alg, "encryption (library API)", block, vec.Ciphertext); err != nil {
		return err
	}
	sched.DecryptBlock(block, block)
	return e.check(t.Alg, "decryption (library API)", block, vec.Plaintext)
}

// testCipher exercises a length-preserving cipher over the full vector
// message. The IV is copied fresh for each direction; stateful modes must
// not see the previous direction's final state.
func testCipher(e *Engine, t *Test) error {
	vec := t.Cipher
	messageSize := len(vec.Plaintext)
	if messageSize == 0 || messageSize > constants.MaxMessageSize ||
		len(vec.Ciphertext) != messageSize || len(vec.IV) > constants.MaxIVSize {
		return malformed(t.Alg, "vector")
	}

	c, err := e.provider.NewCipher(t.Alg)
	if err != nil {
		return failed(t.Alg, "allocate", err)
	}
	defer c.Close()

	if err := validate(t.Alg, c); err != nil {
		return err
	}
	if c.IVSize() != len(vec.IV) {
		return failed(t.Alg, "allocate", qerrors.ErrIVSizeMismatch)
	}
	if err := c.SetKey(vec.Key); err != nil {
		return failed(t.Alg, "setkey", err)
	}

	message := scratch.get(messageSize)
	defer scratch.put(message)
	iv := scratch.get(constants.MaxIVSize)
	defer scratch.put(iv)

	copy(message, vec.Plaintext)
	copy(iv, vec.IV)
	if err := c.Encrypt(message, iv[:len(vec.IV)]); err != nil {
		return failed(t.Alg, "encryption", err)
	}
	if err := e.check(t.Alg, "encryption", message, vec.Ciphertext); err != nil {
		return err
	}

	copy(iv, vec.IV)
	if err := c.Decrypt(message, iv[:len(vec.IV)]); err != nil {
		return failed(t.Alg, "decryption", err)
	}
	return e.check(t.Alg, "decryption", message, vec.Plaintext)
}

// testAEAD exercises an authenticated cipher in the combined buffer layout
// assoc ‖ payload. The tag length is whatever the vector implies:
// ciphertext size minus plaintext size.
func testAEAD(e *Engine, t *Test) error {
	vec := t.AEAD
	tagSize := len(vec.Ciphertext) - len(vec.Plaintext)
	if tagSize <= 0 || len(vec.IV) > constants.MaxIVSize ||
		len(vec.Assoc)+len(vec.Ciphertext) > constants.MaxMessageSize {
		return malformed(t.Alg, "vector")
	}

	a, err := e.provider.NewAEAD(t.Alg)
	if err != nil {
		return failed(t.Alg, "allocate", err)
	}
	defer a.Close()

	if err := validate(t.Alg, a); err != nil {
		return err
	}
	if a.IVSize() != len(vec.IV) {
		return failed(t.Alg, "allocate", qerrors.ErrIVSizeMismatch)
	}
	if err := a.SetKey(vec.Key); err != nil {
		return failed(t.Alg, "setkey", err)
	}
	if err := a.SetTagSize(tagSize); err != nil {
		return failed(t.Alg, "set tag size", err)
	}

	assocLen := len(vec.Assoc)
	buf := scratch.get(assocLen + len(vec.Ciphertext))
	defer scratch.put(buf)
	iv := scratch.get(constants.MaxIVSize)
	defer scratch.put(iv)

	copy(buf, vec.Assoc)
	copy(buf[assocLen:], vec.Plaintext)
	copy(iv, vec.IV)
	if err := a.Encrypt(buf, assocLen, len(vec.Plaintext), iv[:len(vec.IV)]); err != nil {
		return failed(t.Alg, "encryption", err)
	}
	if err := e.check(t.Alg, "encryption", buf[assocLen:], vec.Ciphertext); err != nil {
		return err
	}

	copy(iv, vec.IV)
	if err := a.Decrypt(buf, assocLen, len(vec.Ciphertext), iv[:len(vec.IV)]); err != nil {
		return failed(t.Alg, "decryption", err)
	}
	return e.check(t.Alg, "decryption", buf[assocLen:assocLen+len(vec.Plaintext)], vec.Plaintext)
}

// testHash exercises a hash or MAC over the vector message.
func testHash(e *Engine, t *Test) error {
	vec := t.Hash
	if len(vec.Digest) == 0 || len(vec.Digest) > constants.MaxDigestSize ||
		len(vec.Message) > constants.MaxMessageSize {
		return malformed(t.Alg, "vector")
	}

	h, err := e.provider.NewHash(t.Alg)
	if err != nil {
		return failed(t.Alg, "allocate", err)
	}
	defer h.Close()

	if err := validate(t.Alg, h); err != nil {
		return err
	}
	if h.DigestSize() != len(vec.Digest) {
		return failed(t.Alg, "allocate", qerrors.ErrDigestSizeMismatch)
	}
	if vec.Key != nil {
		if err := h.SetKey(vec.Key); err != nil {
			return failed(t.Alg, "setkey", err)
		}
	}

	digest, err := h.Digest(vec.Message)
	if err != nil {
		return failed(t.Alg, "digest", err)
	}
	return e.check(t.Alg, "digest", digest, vec.Digest)
}

// testSHA256Library checks the one-shot SHA-256 library entry point,
// which may be a different code path from the dispatched sha256 engine
// and from the hmac(sha256) test that otherwise covers it.
func testSHA256Library(e *Engine, t *Test) error {
	vec := t.Hash
	if len(vec.Digest) != 32 {
		return malformed(t.Alg, "vector")
	}
	digest := provider.SHA256Sum(vec.Message)
	return e.check(t.Alg, "digest (library API)", digest, vec.Digest)
}

// testDRBG seeds the generator from the vector's entropy, generates twice
// (consuming the two additional inputs and, for prediction-resistant
// variants, fresh entropy per call) and compares only the second call's
// output, which is how the CAVP response files record the sequence.
func testDRBG(e *Engine, t *Test) error {
	vec := t.DRBG
	if len(vec.Entropy) == 0 || len(vec.Output) == 0 || len(vec.Output) > constants.MaxMessageSize {
		return malformed(t.Alg, "vector")
	}

	d, err := e.provider.NewDRBG(t.Alg)
	if err != nil {
		return failed(t.Alg, "allocate", err)
	}
	defer d.Close()

	if err := validate(t.Alg, d); err != nil {
		return err
	}
	if err := d.Seed(vec.Entropy, vec.Personalization); err != nil {
		return failed(t.Alg, "seed", err)
	}

	out := scratch.get(len(vec.Output))
	defer scratch.put(out)

	if err := d.Generate(out, vec.AdditionalA, vec.EntropyPRA); err != nil {
		return failed(t.Alg, "generate (call 1)", err)
	}
	if err := d.Generate(out, vec.AdditionalB, vec.EntropyPRB); err != nil {
		return failed(t.Alg, "generate (call 2)", err)
	}
	return e.check(t.Alg, "generate", out, vec.Output)
}

// testKEM runs the deterministic consistency test: seeded key generation,
// seeded encapsulation, decapsulation, shared secrets compared through the
// comparator so fault injection reaches it like any other algorithm.
func testKEM(e *Engine, t *Test) error {
	vec := t.KEM

	k, err := e.provider.NewKEM(t.Alg)
	if err != nil {
		return failed(t.Alg, "allocate", err)
	}
	defer k.Close()

	if err := validate(t.Alg, k); err != nil {
		return err
	}
	if err := k.KeyGenFromSeed(vec.KeySeed); err != nil {
		return failed(t.Alg, "keygen", err)
	}

	ciphertext, sharedSecret, err := k.Encapsulate(vec.EncapSeed)
	if err != nil {
		return failed(t.Alg, "encapsulation", err)
	}
	if len(ciphertext) != k.CiphertextSize() {
		return failed(t.Alg, "encapsulation",
			fmt.Errorf("ciphertext size %d, want %d", len(ciphertext), k.CiphertextSize()))
	}
	if len(sharedSecret) != k.SharedSecretSize() {
		return failed(t.Alg, "encapsulation",
			fmt.Errorf("shared secret size %d, want %d", len(sharedSecret), k.SharedSecretSize()))
	}

	recovered, err := k.Decapsulate(ciphertext)
	if err != nil {
		return failed(t.Alg, "decapsulation", err)
	}
	return e.check(t.Alg, "decapsulation", recovered, sharedSecret)
}
