package fp

// Functor is implemented by containers whose payload can be transformed
// without leaving the container. F is the container type itself, so
// Box[int] is a Functor[int, Box[int]].
type Functor[T any, F any] interface {
	// Apply maps the held value, returning a new container
	Apply(f func(T) T) F
}

// Sided is implemented by two-variant containers
type Sided interface {
	// IsLeft returns true if the left (failure/absent) variant is active
	IsLeft() bool
	// IsRight returns true if the right (success) variant is active
	IsRight() bool
}
