// Package fp holds the helpers shared by the container packages: nil
// detection for FromNullable-style lifts, identity and composition for law
// checks, the panic sentinel used by TryCatch, and the Functor interface
// implemented by box.Box, box.Lazy and either.Either.
//
// The containers themselves live in subpackages:
// - box: Box[T] (strict) and Lazy[T] (deferred) unary functors
// - either: Either[L, R] with Left/Right, Map, Chain, Fold, FromNullable, TryCatch
// - laws: reusable functor and monad law checks
package fp
