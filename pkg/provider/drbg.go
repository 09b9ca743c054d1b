// drbg.go implements the HMAC-DRBG (NIST SP 800-90A section 10.1.2) over
// SHA-256, in both the no-prediction-resistance and prediction-resistance
// variants. Prediction resistance is driven by the caller: a Generate call
// carrying fresh entropy reseeds first (consuming the additional input)
// and then generates with no additional input, which is the call sequence
// the CAVP vector files encode.
package provider

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"

	"github.com/certivault/fipskat/internal/constants"
	qerrors "github.com/certivault/fipskat/internal/errors"
)

type hmacDRBG struct {
	alg  string
	newF func() hash.Hash

	key    []byte
	v      []byte
	seeded bool
}

func newHMACDRBG(alg string) *hmacDRBG {
	return &hmacDRBG{alg: alg, newF: sha256.New}
}

func (d *hmacDRBG) Metadata() Metadata {
	impl := "drbg-nopr-hmac-sha256-generic"
	if d.alg == constants.AlgDRBGPRHMAC256 {
		impl = "drbg-pr-hmac-sha256-generic"
	}
	return Metadata{Algorithm: d.alg, Implementation: impl}
}

func (d *hmacDRBG) Close() {
	for i := range d.key {
		d.key[i] = 0
	}
	for i := range d.v {
		d.v[i] = 0
	}
	d.key = nil
	d.v = nil
	d.seeded = false
}

// update is HMAC_DRBG_Update (SP 800-90A 10.1.2.2). The first half always
// runs; the second half only when provided data is present.
func (d *hmacDRBG) update(provided ...[]byte) {
	mac := hmac.New(d.newF, d.key)
	mac.Write(d.v)
	mac.Write([]byte{0x00})
	empty := true
	for _, p := range provided {
		if len(p) > 0 {
			empty = false
		}
		mac.Write(p)
	}
	d.key = mac.Sum(nil)

	mac = hmac.New(d.newF, d.key)
	mac.Write(d.v)
	d.v = mac.Sum(nil)

	if empty {
		return
	}

	mac = hmac.New(d.newF, d.key)
	mac.Write(d.v)
	mac.Write([]byte{0x01})
	for _, p := range provided {
		mac.Write(p)
	}
	d.key = mac.Sum(nil)

	mac = hmac.New(d.newF, d.key)
	mac.Write(d.v)
	d.v = mac.Sum(nil)
}

// Seed instantiates the generator from externally supplied entropy (the
// CAVP convention concatenates entropy input and nonce into one buffer)
// and an optional personalization string.
func (d *hmacDRBG) Seed(entropy, personalization []byte) error {
	if len(entropy) == 0 {
		return qerrors.NewCryptoError(d.alg+".Seed", qerrors.ErrInvalidSeed)
	}
	outlen := d.newF().Size()
	d.key = make([]byte, outlen)
	d.v = make([]byte, outlen)
	for i := range d.v {
		d.v[i] = 0x01
	}
	d.update(entropy, personalization)
	d.seeded = true
	return nil
}

// reseed is HMAC_DRBG_Reseed (SP 800-90A 10.1.2.4).
func (d *hmacDRBG) reseed(entropy, additional []byte) {
	d.update(entropy, additional)
}

// Generate is HMAC_DRBG_Generate (SP 800-90A 10.1.2.5). When freshEntropy
// is non-nil (prediction-resistant operation) the generator reseeds from
// it first, consuming additional, and generates with no additional input.
func (d *hmacDRBG) Generate(out, additional, freshEntropy []byte) error {
	if !d.seeded {
		return qerrors.NewCryptoError(d.alg+".Generate", qerrors.ErrNotSeeded)
	}
	if freshEntropy != nil {
		d.reseed(freshEntropy, additional)
		additional = nil
	}
	if len(additional) > 0 {
		d.update(additional)
	}
	filled := 0
	for filled < len(out) {
		mac := hmac.New(d.newF, d.key)
		mac.Write(d.v)
		d.v = mac.Sum(nil)
		filled += copy(out[filled:], d.v)
	}
	d.update(additional)
	return nil
}
