package fp

import (
	"errors"
	"reflect"
)

// ErrPanic wraps non-error values recovered from a panicking thunk.
var ErrPanic = errors.New("fp: recovered panic")

// IsNil reports whether i holds no value: a nil interface, or a nil
// pointer, map, slice, channel, function or interface inside one.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens an errors.Join tree into its leaf errors, depth first.
// A nil error gives an empty slice.
func GetErrors(err error) []error {
	leaves := []error{}
	var walk func(error)
	walk = func(e error) {
		if IsNil(e) {
			return
		}
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		leaves = append(leaves, e)
	}

	walk(err)
	return leaves
}

// CountSides tallies the Left and Right variants in xs
func CountSides[S Sided](xs []S) (lefts, rights int) {
	for _, x := range xs {
		if x.IsRight() {
			rights++
		} else {
			lefts++
		}
	}
	return lefts, rights
}

func Identity[T any](v T) T {
	return v
}

// Compose returns g∘f.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
