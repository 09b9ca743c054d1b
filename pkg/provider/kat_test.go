package provider_test

import (
	"bytes"
	"testing"

	"github.com/certivault/fipskat/internal/constants"
	"github.com/certivault/fipskat/pkg/provider"
)

// TestKATAESBlock checks the FIPS 197 appendix C.1 single-block vector
// through the dispatched engine and through the key-schedule library entry
// point, which are distinct call paths.
func TestKATAESBlock(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := mustHex(t, "00112233445566778899aabbccddeeff")
	ciphertext := mustHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	p := provider.NewSoftware()
	c, err := p.NewBlockCipher(constants.AlgAES)
	if err != nil {
		t.Fatalf("NewBlockCipher failed: %v", err)
	}
	defer c.Close()

	if got := c.BlockSize(); got != constants.AESBlockSize {
		t.Fatalf("block size: got %d, want %d", got, constants.AESBlockSize)
	}
	if err := c.SetKey(key); err != nil {
		t.Fatalf("SetKey failed: %v", err)
	}

	block := make([]byte, constants.AESBlockSize)
	copy(block, plaintext)
	if err := c.EncryptBlock(block, block); err != nil {
		t.Fatalf("EncryptBlock failed: %v", err)
	}
	if !bytes.Equal(block, ciphertext) {
		t.Errorf("encrypt: got %x, want %x", block, ciphertext)
	}
	if err := c.DecryptBlock(block, block); err != nil {
		t.Fatalf("DecryptBlock failed: %v", err)
	}
	if !bytes.Equal(block, plaintext) {
		t.Errorf("decrypt: got %x, want %x", block, plaintext)
	}

	sched, err := provider.ExpandAESKey(key)
	if err != nil {
		t.Fatalf("ExpandAESKey failed: %v", err)
	}
	sched.EncryptBlock(block, plaintext)
	if !bytes.Equal(block, ciphertext) {
		t.Errorf("library encrypt: got %x, want %x", block, ciphertext)
	}
	sched.DecryptBlock(block, block)
	if !bytes.Equal(block, plaintext) {
		t.Errorf("library decrypt: got %x, want %x", block, plaintext)
	}
}

// TestKATCipherModes checks one NIST SP 800-38A vector per AES mode plus
// the IEEE 1619 XTS vector, encrypting and decrypting in place with the
// IV re-supplied between directions.
func TestKATCipherModes(t *testing.T) {
	// SP 800-38A F.1.1/F.2.1/F.5.1 share this key and two-block message.
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	message := mustHex(t, "6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e51")

	testCases := []struct {
		alg        string
		key        string
		iv         string
		plaintext  string
		ciphertext string
	}{
		{
			alg:        constants.AlgECBAES,
			ciphertext: "3ad77bb40d7a3660a89ecaf32466ef97f5d3d58503b9699de785895a96fdbaaf",
		},
		{
			alg:        constants.AlgCBCAES,
			iv:         "000102030405060708090a0b0c0d0e0f",
			ciphertext: "7649abac8119b246cee98e9b12e9197d5086cb9b507219ee95db113a917678b2",
		},
		{
			// SP 800-38A F.2.5: CBC with a 256-bit key, one block.
			alg:        constants.AlgCBCAES,
			key:        "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4",
			iv:         "000102030405060708090a0b0c0d0e0f",
			plaintext:  "6bc1bee22e409f96e93d7e117393172a",
			ciphertext: "f58c4c04d6e5f1ba779eabfb5f7bfbd6",
		},
		{
			alg:        constants.AlgCTRAES,
			iv:         "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff",
			ciphertext: "874d6191b620e3261bef6864990db6ce9806f66b7970fdff8617187bb9fffdff",
		},
		{
			// IEEE 1619-2007 XTS-AES-128 vector 1: zero key, zero
			// data unit, zero plaintext.
			alg:        constants.AlgXTSAES,
			key:        "0000000000000000000000000000000000000000000000000000000000000000",
			iv:         "00000000000000000000000000000000",
			plaintext:  "0000000000000000000000000000000000000000000000000000000000000000",
			ciphertext: "917cf69ebd68b2ec9b9fe9a3eadda692cd43d2f59598ed858c02c2652fbf922e",
		},
	}

	p := provider.NewSoftware()
	for _, tc := range testCases {
		t.Run(tc.alg, func(t *testing.T) {
			c, err := p.NewCipher(tc.alg)
			if err != nil {
				t.Fatalf("NewCipher failed: %v", err)
			}
			defer c.Close()

			k := key
			if tc.key != "" {
				k = mustHex(t, tc.key)
			}
			pt := message
			if tc.plaintext != "" {
				pt = mustHex(t, tc.plaintext)
			}
			ct := mustHex(t, tc.ciphertext)
			var iv []byte
			if tc.iv != "" {
				iv = mustHex(t, tc.iv)
			}

			if err := c.SetKey(k); err != nil {
				t.Fatalf("SetKey failed: %v", err)
			}

			buf := make([]byte, len(pt))
			copy(buf, pt)
			if err := c.Encrypt(buf, iv); err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}
			if !bytes.Equal(buf, ct) {
				t.Errorf("encrypt: got %x, want %x", buf, ct)
			}
			if err := c.Decrypt(buf, iv); err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}
			if !bytes.Equal(buf, pt) {
				t.Errorf("decrypt: got %x, want %x", buf, pt)
			}
		})
	}
}

// TestKATHash checks one published vector per digest engine.
func TestKATHash(t *testing.T) {
	abc := []byte("abc")

	testCases := []struct {
		alg     string
		key     []byte
		message []byte
		digest  string
	}{
		{alg: constants.AlgSHA1, message: abc,
			digest: "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{alg: constants.AlgSHA256, message: abc,
			digest: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{alg: constants.AlgSHA3_256, message: abc,
			digest: "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{alg: constants.AlgSHA512, message: abc,
			digest: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
		{
			// RFC 4231 test case 2.
			alg:     constants.AlgHMACSHA256,
			key:     []byte("Jefe"),
			message: []byte("what do ya want for nothing?"),
			digest:  "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
	}

	p := provider.NewSoftware()
	for _, tc := range testCases {
		t.Run(tc.alg, func(t *testing.T) {
			h, err := p.NewHash(tc.alg)
			if err != nil {
				t.Fatalf("NewHash failed: %v", err)
			}
			defer h.Close()

			want := mustHex(t, tc.digest)
			if got := h.DigestSize(); got != len(want) {
				t.Fatalf("digest size: got %d, want %d", got, len(want))
			}
			if tc.key != nil {
				if err := h.SetKey(tc.key); err != nil {
					t.Fatalf("SetKey failed: %v", err)
				}
			}
			got, err := h.Digest(tc.message)
			if err != nil {
				t.Fatalf("Digest failed: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("digest: got %x, want %x", got, want)
			}
		})
	}
}

func TestKATSHA256Library(t *testing.T) {
	want := mustHex(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	if got := provider.SHA256Sum([]byte("abc")); !bytes.Equal(got, want) {
		t.Errorf("SHA256Sum: got %x, want %x", got, want)
	}
}
