// hash.go implements the hash and MAC engines: SHA-1, SHA-256, SHA-512,
// SHA3-256 and HMAC-SHA256.
package provider

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/certivault/fipskat/internal/constants"
	qerrors "github.com/certivault/fipskat/internal/errors"
)

type hashEngine struct {
	alg   string
	impl  string
	newF  func() hash.Hash
	keyed bool
	key   []byte
}

func newHash(alg string) (*hashEngine, error) {
	switch alg {
	case constants.AlgSHA1:
		return &hashEngine{alg: alg, impl: "sha1-generic", newF: sha1.New}, nil
	case constants.AlgSHA256:
		return &hashEngine{alg: alg, impl: "sha256-generic", newF: sha256.New}, nil
	case constants.AlgSHA512:
		return &hashEngine{alg: alg, impl: "sha512-generic", newF: sha512.New}, nil
	case constants.AlgSHA3_256:
		return &hashEngine{alg: alg, impl: "sha3-256-generic", newF: sha3.New256}, nil
	case constants.AlgHMACSHA256:
		return &hashEngine{alg: alg, impl: "hmac-sha256-generic", newF: sha256.New, keyed: true}, nil
	}
	return nil, unknown("NewHash", alg)
}

func (h *hashEngine) Metadata() Metadata {
	return Metadata{Algorithm: h.alg, Implementation: h.impl}
}

func (h *hashEngine) Close() {
	for i := range h.key {
		h.key[i] = 0
	}
	h.key = nil
}

func (h *hashEngine) DigestSize() int {
	return h.newF().Size()
}

func (h *hashEngine) SetKey(key []byte) error {
	if !h.keyed {
		return qerrors.NewCryptoError(h.alg+".SetKey", qerrors.ErrInvalidKeySize)
	}
	h.key = append(h.key[:0], key...)
	return nil
}

func (h *hashEngine) Digest(message []byte) ([]byte, error) {
	var state hash.Hash
	if h.keyed {
		if h.key == nil {
			return nil, qerrors.NewCryptoError(h.alg+".Digest", qerrors.ErrKeyNotSet)
		}
		state = hmac.New(h.newF, h.key)
	} else {
		state = h.newF()
	}
	state.Write(message)
	return state.Sum(nil), nil
}
