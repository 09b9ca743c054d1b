package selftest

import (
	qerrors "github.com/certivault/fipskat/internal/errors"

	"github.com/certivault/fipskat/pkg/provider"
)

// validate rejects provider instances outside the self-test boundary.
// Asynchronous implementations complete on offload hardware that would
// need its own certification, so the gate refuses to vouch for them.
func validate(alg string, inst provider.Instance) error {
	if inst.Metadata().Async {
		return qerrors.NewSelfTestError(alg, "validate", qerrors.ErrAsyncImplementation)
	}
	return nil
}
