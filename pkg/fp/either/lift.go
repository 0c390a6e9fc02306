package either

import (
	"errors"
	"fmt"

	"github.com/ib-77/fpbox/pkg/fp"
)

// ErrAbsent is the Left payload of FromPtr for a nil pointer
var ErrAbsent = errors.New("either: absent value")

// FromNullable returns Left(v) when v holds nothing (see fp.IsNil) and
// Right(v) otherwise. Zero values of non-nillable types are present.
func FromNullable[T any](v T) Either[T, T] {
	if fp.IsNil(v) {
		return Left[T, T](v)
	}
	return Right[T](v)
}

// FromPtr dereferences p into a Right, or returns Left(ErrAbsent) for nil
func FromPtr[T any](p *T) Either[error, T] {
	if p == nil {
		return Left[error, T](ErrAbsent)
	}
	return Right[error](*p)
}

// FromOK lifts a comma-ok pair such as a map lookup
func FromOK[T any](v T, ok bool) Either[T, T] {
	if !ok {
		return Left[T, T](v)
	}
	return Right[T](v)
}

// FromValues lifts a (value, error) pair
func FromValues[R any](v R, err error) Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](v)
}

// TryCatch runs thunk and lifts its outcome. A returned error becomes its
// Left payload. A panic is recovered: an error value is used as the Left
// payload directly, anything else is wrapped with fp.ErrPanic.
func TryCatch[R any](thunk func() (R, error)) (res Either[error, R]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Left[error, R](recoveredError(rec))
		}
	}()

	return FromValues(thunk())
}

// Attempt is TryCatch for thunks that only fail by panicking
func Attempt[R any](thunk func() R) Either[error, R] {
	return TryCatch(func() (R, error) {
		return thunk(), nil
	})
}

func recoveredError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", fp.ErrPanic, rec)
}
