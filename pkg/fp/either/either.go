package either

import "fmt"

// Either holds a Left or a Right value. The zero value is Left(zero L).
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the Left payload and true, or zero and false on Right
func (e Either[L, R]) LeftValue() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// RightValue returns the Right payload and true, or zero and false on Left
func (e Either[L, R]) RightValue() (R, bool) {
	if !e.isRight {
		var zero R
		return zero, false
	}
	return e.right, true
}

// Map transforms a Right payload. A Left is returned as is and f is not called.
func Map[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, R2](e.left)
}

// Chain feeds a Right payload to f and returns its Either without nesting.
// A Left is returned as is and f is not called.
func Chain[L, R, R2 any](e Either[L, R], f func(R) Either[L, R2]) Either[L, R2] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, R2](e.left)
}

// Fold eliminates e by calling exactly one of the handlers
func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeft transforms a Left payload, leaving a Right untouched
func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if e.isRight {
		return Right[L2](e.right)
	}
	return Left[L2, R](f(e.left))
}

// Swap exchanges the sides
func Swap[L, R any](e Either[L, R]) Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// Try chains a function returning (R2, error). A returned error becomes Left.
func Try[R, R2 any](e Either[error, R], f func(R) (R2, error)) Either[error, R2] {
	if !e.isRight {
		return Left[error, R2](e.left)
	}

	out, err := f(e.right)
	if err != nil {
		return Left[error, R2](err)
	}
	return Right[error](out)
}

// Validate keeps a Right only when valid holds, otherwise it becomes
// Left(onInvalid(r)).
func Validate[L, R any](e Either[L, R], valid func(R) bool, onInvalid func(R) L) Either[L, R] {
	if e.isRight && !valid(e.right) {
		return Left[L, R](onInvalid(e.right))
	}
	return e
}

// Tee runs onRight or onLeft (either may be nil) and returns e unchanged
func Tee[L, R any](e Either[L, R], onLeft func(L), onRight func(R)) Either[L, R] {
	if e.isRight {
		if onRight != nil {
			onRight(e.right)
		}
		return e
	}

	if onLeft != nil {
		onLeft(e.left)
	}
	return e
}

// GetOrElse returns the Right payload or def
func GetOrElse[L, R any](e Either[L, R], def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

// ToValues converts back to Go's (value, error) pair
func ToValues[R any](e Either[error, R]) (R, error) {
	if e.isRight {
		return e.right, nil
	}

	var zero R
	return zero, e.left
}

// Map is the method form of Map for functions that keep the payload type
func (e Either[L, R]) Map(f func(R) R) Either[L, R] {
	return Map(e, f)
}

// Chain is the method form of Chain for functions that keep the payload type
func (e Either[L, R]) Chain(f func(R) Either[L, R]) Either[L, R] {
	return Chain(e, f)
}

// Apply implements fp.Functor
func (e Either[L, R]) Apply(f func(R) R) Either[L, R] {
	return Map(e, f)
}

// Or returns the first Right among e and alternatives. When all are Left
// the first Left (e) is returned.
func (e Either[L, R]) Or(alternatives ...Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}

	for _, alt := range alternatives {
		if alt.isRight {
			return alt
		}
	}
	return e
}

// And returns the first Left among e and required. When all are Right the
// last one is returned.
func (e Either[L, R]) And(required ...Either[L, R]) Either[L, R] {
	res := e
	if !res.isRight {
		return res
	}

	for _, r := range required {
		res = r
		if !res.isRight {
			return res
		}
	}
	return res
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
