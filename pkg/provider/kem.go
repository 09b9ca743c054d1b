// kem.go implements the ML-KEM-1024 engine (NIST FIPS 203) on top of
// cloudflare/circl. Key generation and encapsulation are seed-driven so
// the self-test engine can run them deterministically.
package provider

import (
	"github.com/cloudflare/circl/kem/mlkem/mlkem1024"

	"github.com/certivault/fipskat/internal/constants"
	qerrors "github.com/certivault/fipskat/internal/errors"
)

type mlkemEngine struct {
	alg string
	pk  *mlkem1024.PublicKey
	sk  *mlkem1024.PrivateKey
}

func newMLKEM(alg string) *mlkemEngine {
	return &mlkemEngine{alg: alg}
}

func (k *mlkemEngine) Metadata() Metadata {
	return Metadata{Algorithm: k.alg, Implementation: "mlkem1024-circl"}
}

func (k *mlkemEngine) Close() {
	k.pk = nil
	k.sk = nil
}

func (k *mlkemEngine) PublicKeySize() int    { return mlkem1024.PublicKeySize }
func (k *mlkemEngine) CiphertextSize() int   { return mlkem1024.CiphertextSize }
func (k *mlkemEngine) SharedSecretSize() int { return mlkem1024.SharedKeySize }

// seedReader feeds a fixed seed to the deterministic key generator.
type seedReader struct {
	data   []byte
	offset int
}

func (r *seedReader) Read(p []byte) (int, error) {
	n := copy(p, r.data[r.offset:])
	r.offset += n
	return n, nil
}

func (k *mlkemEngine) KeyGenFromSeed(seed []byte) error {
	if len(seed) != constants.MLKEMKeySeedSize {
		return qerrors.NewCryptoError("mlkem1024.KeyGenFromSeed", qerrors.ErrInvalidSeed)
	}
	pk, sk, err := mlkem1024.GenerateKeyPair(&seedReader{data: seed})
	if err != nil {
		return qerrors.NewCryptoError("mlkem1024.KeyGenFromSeed", err)
	}
	k.pk = pk
	k.sk = sk
	return nil
}

func (k *mlkemEngine) Encapsulate(seed []byte) (ciphertext, sharedSecret []byte, err error) {
	const op = "mlkem1024.Encapsulate"
	if k.pk == nil {
		return nil, nil, qerrors.NewCryptoError(op, qerrors.ErrKeyNotSet)
	}
	if len(seed) != mlkem1024.EncapsulationSeedSize {
		return nil, nil, qerrors.NewCryptoError(op, qerrors.ErrInvalidSeed)
	}
	ciphertext = make([]byte, mlkem1024.CiphertextSize)
	sharedSecret = make([]byte, mlkem1024.SharedKeySize)
	k.pk.EncapsulateTo(ciphertext, sharedSecret, seed)
	return ciphertext, sharedSecret, nil
}

func (k *mlkemEngine) Decapsulate(ciphertext []byte) ([]byte, error) {
	const op = "mlkem1024.Decapsulate"
	if k.sk == nil {
		return nil, qerrors.NewCryptoError(op, qerrors.ErrKeyNotSet)
	}
	if len(ciphertext) != mlkem1024.CiphertextSize {
		return nil, qerrors.NewCryptoError(op, qerrors.ErrInvalidCiphertext)
	}
	sharedSecret := make([]byte, mlkem1024.SharedKeySize)
	k.sk.DecapsulateTo(sharedSecret, ciphertext)
	return sharedSecret, nil
}
