package box

// Lazy holds a computation producing T. Map composes onto the computation;
// nothing is evaluated until Fold or Eval. Results are not memoised, every
// fold runs the whole pipeline again.
type Lazy[T any] struct {
	thunk func() T
}

func Defer[T any](thunk func() T) Lazy[T] {
	return Lazy[T]{thunk: thunk}
}

func LazyOf[T any](v T) Lazy[T] {
	return Lazy[T]{thunk: func() T { return v }}
}

func LazyMap[T, U any](l Lazy[T], f func(T) U) Lazy[U] {
	return Lazy[U]{thunk: func() U { return f(l.run()) }}
}

// LazyFold runs the pipeline and applies f to its result
func LazyFold[T, U any](l Lazy[T], f func(T) U) U {
	return f(l.run())
}

func (l Lazy[T]) Apply(f func(T) T) Lazy[T] {
	return LazyMap(l, f)
}

func (l Lazy[T]) Fold(f func(T) T) T {
	return LazyFold(l, f)
}

// Eval runs the pipeline and wraps the result in a strict Box
func (l Lazy[T]) Eval() Box[T] {
	return Of(l.run())
}

func (l Lazy[T]) run() T {
	if l.thunk == nil {
		var zero T
		return zero
	}
	return l.thunk()
}
