package selftest_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/certivault/fipskat/internal/constants"
	"github.com/certivault/fipskat/pkg/selftest"
)

func TestDefaultRegistryOrder(t *testing.T) {
	want := []string{
		constants.AlgAES,
		constants.AlgCBCAES,
		constants.AlgCTRAES,
		constants.AlgECBAES,
		constants.AlgXTSAES,
		constants.AlgGCMAES,
		constants.AlgChaCha20Poly1305,
		constants.AlgSHA1,
		constants.AlgSHA256,
		constants.AlgSHA3_256,
		constants.AlgHMACSHA256,
		constants.AlgSHA512,
		constants.AlgDRBGNoPRHMAC256,
		constants.AlgDRBGPRHMAC256,
		constants.AlgMLKEM1024,
	}
	var got []string
	for _, tt := range selftest.DefaultTests() {
		got = append(got, tt.Alg)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("registry order mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistryShape(t *testing.T) {
	for _, tt := range selftest.DefaultTests() {
		if tt.Run == nil {
			t.Errorf("%s: nil driver", tt.Alg)
		}

		vectors := 0
		if tt.Block != nil {
			vectors++
			if len(tt.Block.Plaintext) != constants.AESBlockSize ||
				len(tt.Block.Ciphertext) != constants.AESBlockSize {
				t.Errorf("%s: block vector is not one block", tt.Alg)
			}
		}
		if tt.Cipher != nil {
			vectors++
			if len(tt.Cipher.Plaintext) != len(tt.Cipher.Ciphertext) {
				t.Errorf("%s: cipher vector does not preserve length", tt.Alg)
			}
		}
		if tt.AEAD != nil {
			vectors++
			if len(tt.AEAD.Ciphertext) <= len(tt.AEAD.Plaintext) {
				t.Errorf("%s: AEAD ciphertext carries no tag", tt.Alg)
			}
		}
		if tt.Hash != nil {
			vectors++
			if len(tt.Hash.Digest) == 0 {
				t.Errorf("%s: empty digest", tt.Alg)
			}
		}
		if tt.DRBG != nil {
			vectors++
			if len(tt.DRBG.Entropy) == 0 || len(tt.DRBG.Output) == 0 {
				t.Errorf("%s: DRBG vector missing entropy or output", tt.Alg)
			}
			pr := tt.DRBG.EntropyPRA != nil || tt.DRBG.EntropyPRB != nil
			if pr && (tt.DRBG.EntropyPRA == nil || tt.DRBG.EntropyPRB == nil) {
				t.Errorf("%s: prediction resistance needs entropy for both calls", tt.Alg)
			}
		}
		if tt.KEM != nil {
			vectors++
			if len(tt.KEM.KeySeed) != constants.MLKEMKeySeedSize {
				t.Errorf("%s: key seed is %d bytes, want %d",
					tt.Alg, len(tt.KEM.KeySeed), constants.MLKEMKeySeedSize)
			}
		}

		if vectors != 1 {
			t.Errorf("%s: %d vectors attached, want exactly 1", tt.Alg, vectors)
		}
	}
}

func TestDefaultTestsReturnsCopy(t *testing.T) {
	a := selftest.DefaultTests()
	a[0].Alg = "mutated"
	if b := selftest.DefaultTests(); b[0].Alg != constants.AlgAES {
		t.Errorf("registry mutated through the returned slice: %q", b[0].Alg)
	}
}
