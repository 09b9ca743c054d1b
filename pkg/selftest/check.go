package selftest

import (
	"bytes"

	qerrors "github.com/certivault/fipskat/internal/errors"
)

// check is the engine's only equality judgement: every computed result
// passes through here on its way to a verdict. When fault injection names
// the algorithm under test, the first result byte is corrupted before the
// comparison so the failure path is exercised end to end.
func (e *Engine) check(alg, op string, actual, expected []byte) error {
	if injected := injectedFault(); injected != "" && injected == alg {
		actual[0] ^= 0xff
	}
	if !bytes.Equal(actual, expected) {
		return qerrors.NewSelfTestError(alg, op, qerrors.ErrResultMismatch)
	}
	return nil
}
