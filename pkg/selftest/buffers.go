// buffers.go provides pooled scratch buffers for the drivers. Every
// driver works on a private copy of its vector's plaintext so the vector
// tables stay pristine; the copies come from size-class pools and are
// zeroed on return so no intermediate cryptographic state outlives a test.
package selftest

import (
	"sync"

	"github.com/certivault/fipskat/internal/constants"
)

// Scratch size classes. Block covers single blocks and IVs; digest covers
// every hash output; message covers the largest combined buffer a vector
// may declare (associated data plus ciphertext plus tag).
const (
	blockScratchSize   = constants.MaxBlockSize
	digestScratchSize  = constants.MaxDigestSize
	messageScratchSize = constants.MaxMessageSize
)

type scratchPool struct {
	block   sync.Pool
	digest  sync.Pool
	message sync.Pool
}

var scratch = newScratchPool()

func newScratchPool() *scratchPool {
	newBuf := func(size int) func() any {
		return func() any {
			buf := make([]byte, size)
			return &buf
		}
	}
	return &scratchPool{
		block:   sync.Pool{New: newBuf(blockScratchSize)},
		digest:  sync.Pool{New: newBuf(digestScratchSize)},
		message: sync.Pool{New: newBuf(messageScratchSize)},
	}
}

// get returns a zeroed buffer of length size. Requests beyond the largest
// class are allocated directly.
func (p *scratchPool) get(size int) []byte {
	var bufPtr *[]byte
	switch {
	case size <= blockScratchSize:
		bufPtr = p.block.Get().(*[]byte)
	case size <= digestScratchSize:
		bufPtr = p.digest.Get().(*[]byte)
	case size <= messageScratchSize:
		bufPtr = p.message.Get().(*[]byte)
	default:
		return make([]byte, size)
	}
	buf := (*bufPtr)[:size]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// put zeroes a buffer and returns it to its size class. Buffers of
// non-class capacity are dropped.
func (p *scratchPool) put(buf []byte) {
	if buf == nil {
		return
	}
	buf = buf[:cap(buf)]
	for i := range buf {
		buf[i] = 0
	}
	switch cap(buf) {
	case blockScratchSize:
		p.block.Put(&buf)
	case digestScratchSize:
		p.digest.Put(&buf)
	case messageScratchSize:
		p.message.Put(&buf)
	}
}
