package provider_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/certivault/fipskat/internal/constants"
	qerrors "github.com/certivault/fipskat/internal/errors"
	"github.com/certivault/fipskat/pkg/provider"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex: %v", err)
	}
	return b
}

// TestHMACDRBGNoPR runs the CAVP SHA-256 no-prediction-resistance sequence
// (instantiate, reseed, generate twice, compare the second output). The
// vector is COUNT 0 of the no-reseed CAVP response file for HMAC_DRBG
// SHA-256 with a 256-bit entropy input and 128-bit nonce.
func TestHMACDRBGNoPR(t *testing.T) {
	entropy := mustHex(t, "06032cd5eed33f39265f49ecb142c511da9aff2af71203bffaf34a9ca5bd9c0d")
	nonce := mustHex(t, "0e66f71edc43e42a45ad3c6fc6cdc4df")
	reseedEntropy := mustHex(t, "01920a4e669ed3a85ae8a33b35a74ad7fb2a6bb4cf395ce00334a9c9a5a5d552")
	expected := mustHex(t,
		"76fc79fe9b50beccc991a11b5635783a83536add03c157fb30645e611c2898bb"+
			"2b1bc215000209208cd506cb28da2a51bdb03826aaf2bd2335d576d519160842"+
			"e7158ad0949d1a9ec3e66ea1b1a064b005de914eac2e9d4f2d72a8616a802254"+
			"22918250ff66a41bd2f864a6a38cc5b6499dc43f7f2bd09e1e0f8f5885935124")

	p := provider.NewSoftware()
	drbg, err := p.NewDRBG(constants.AlgDRBGNoPRHMAC256)
	if err != nil {
		t.Fatalf("NewDRBG failed: %v", err)
	}
	defer drbg.Close()

	// Instantiate consumes entropy-input concatenated with the nonce.
	seed := append(append([]byte{}, entropy...), nonce...)
	if err := drbg.Seed(seed, nil); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	out := make([]byte, len(expected))
	// Fresh entropy on the first call forces the reseed.
	if err := drbg.Generate(out, nil, reseedEntropy); err != nil {
		t.Fatalf("Generate (reseed) failed: %v", err)
	}
	if err := drbg.Generate(out, nil, nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !bytes.Equal(out, expected) {
		t.Errorf("wrong output:\n got  %x\n want %x", out, expected)
	}
}

// TestHMACDRBGPR runs the CAVP SHA-256 prediction-resistance sequence: each
// generate call consumes fresh entropy and an additional input; only the
// second output is recorded.
func TestHMACDRBGPR(t *testing.T) {
	entropy := mustHex(t, "6c1f4bffc476e488fb57eb80dc106cf2b417bad22b196baa6346958256db490f")
	nonce := mustHex(t, "5f1b92223e3909e43677da2f588a6d19")
	addA := mustHex(t, "e6cd940610375e504fa80406120b34d498b022393436e910c0ba2560603fd066")
	entropyPRA := mustHex(t, "abaca65695bd5d289880453850fc8289b76f78b43f970ed32f4125a941165515")
	addB := mustHex(t, "d20082c5bdf6f6711af391e7d01046b9d3610827de63aa2671a5f5ad07b90841")
	entropyPRB := mustHex(t, "4a39b666cf861816d7d82ef6e23f70f149d74d9bd499eea19b622e751c43d839")
	expected := mustHex(t, "d3c36e4ae25ff21a95a157a89f13eb976362a695ea755f0465ed4a7bb20c5cb3")

	p := provider.NewSoftware()
	drbg, err := p.NewDRBG(constants.AlgDRBGPRHMAC256)
	if err != nil {
		t.Fatalf("NewDRBG failed: %v", err)
	}
	defer drbg.Close()

	seed := append(append([]byte{}, entropy...), nonce...)
	if err := drbg.Seed(seed, nil); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	out := make([]byte, len(expected))
	if err := drbg.Generate(out, addA, entropyPRA); err != nil {
		t.Fatalf("Generate (call 1) failed: %v", err)
	}
	if err := drbg.Generate(out, addB, entropyPRB); err != nil {
		t.Fatalf("Generate (call 2) failed: %v", err)
	}
	if !bytes.Equal(out, expected) {
		t.Errorf("wrong output:\n got  %x\n want %x", out, expected)
	}
}

func TestHMACDRBGRequiresSeed(t *testing.T) {
	p := provider.NewSoftware()
	drbg, err := p.NewDRBG(constants.AlgDRBGNoPRHMAC256)
	if err != nil {
		t.Fatalf("NewDRBG failed: %v", err)
	}
	defer drbg.Close()

	out := make([]byte, 16)
	if err := drbg.Generate(out, nil, nil); !qerrors.Is(err, qerrors.ErrNotSeeded) {
		t.Errorf("Generate before Seed: got %v, want ErrNotSeeded", err)
	}
}
