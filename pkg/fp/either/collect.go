package either

import (
	"errors"

	"github.com/ib-77/fpbox/pkg/fp"
)

// Collect gathers the Right payloads of es in order. If any element is
// Left, the result is Left with every failure joined by errors.Join, so no
// error is dropped; fp.GetErrors recovers them individually.
func Collect[R any](es []Either[error, R]) Either[error, []R] {
	lefts, rights := fp.CountSides(es)

	if lefts > 0 {
		errs := make([]error, 0, lefts)
		for _, e := range es {
			if !e.isRight {
				errs = append(errs, e.left)
			}
		}
		return Left[error, []R](errors.Join(errs...))
	}

	out := make([]R, 0, rights)
	for _, e := range es {
		out = append(out, e.right)
	}
	return Right[error](out)
}
