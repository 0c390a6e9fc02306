package box

import "fmt"

// Box wraps a single immutable value
type Box[T any] struct {
	value T
}

func Of[T any](v T) Box[T] {
	return Box[T]{value: v}
}

// Map applies f to the held value and wraps the result in a new Box
func Map[T, U any](b Box[T], f func(T) U) Box[U] {
	return Box[U]{value: f(b.value)}
}

// Chain applies a Box-returning f without nesting the result
func Chain[T, U any](b Box[T], f func(T) Box[U]) Box[U] {
	return f(b.value)
}

// Fold applies f to the held value and returns the plain result
func Fold[T, U any](b Box[T], f func(T) U) U {
	return f(b.value)
}

// Tee runs a side effect on the held value and returns b unchanged
func Tee[T any](b Box[T], f func(T)) Box[T] {
	f(b.value)
	return b
}

// Apply is Map for functions that keep the payload type
func (b Box[T]) Apply(f func(T) T) Box[T] {
	return Map(b, f)
}

// Fold is the method form of Fold for functions that keep the payload type
func (b Box[T]) Fold(f func(T) T) T {
	return f(b.value)
}

func (b Box[T]) Value() T {
	return b.value
}

func (b Box[T]) String() string {
	return fmt.Sprintf("Box(%v)", b.value)
}
