package laws

import (
	"fmt"
	"reflect"

	"github.com/ib-77/fpbox/pkg/fp"
)

// Violation reports a law whose two sides differ
type Violation struct {
	Law   string
	Left  any
	Right any
}

func (v *Violation) Error() string {
	return fmt.Sprintf("laws: %s violated: %v != %v", v.Law, v.Left, v.Right)
}

// Equal compares with reflect.DeepEqual
func Equal[F any](a, b F) bool {
	return reflect.DeepEqual(a, b)
}

func check[F any](law string, lhs, rhs F, eq func(F, F) bool) error {
	if eq == nil {
		eq = Equal[F]
	}
	if !eq(lhs, rhs) {
		return &Violation{Law: law, Left: lhs, Right: rhs}
	}
	return nil
}

// FunctorIdentity checks m.Apply(id) == m
func FunctorIdentity[T any, F fp.Functor[T, F]](m F, eq func(F, F) bool) error {
	return check("functor identity", m.Apply(fp.Identity[T]), m, eq)
}

// FunctorComposition checks m.Apply(f).Apply(g) == m.Apply(g∘f)
func FunctorComposition[T any, F fp.Functor[T, F]](m F, f, g func(T) T, eq func(F, F) bool) error {
	return check("functor composition", m.Apply(f).Apply(g), m.Apply(fp.Compose(f, g)), eq)
}

// ChainAssociativity checks chain(chain(m, f), g) == chain(m, x => chain(f(x), g)).
// chain is the container's bind, e.g. either.Chain[L, T, T].
func ChainAssociativity[T, M any](m M, chain func(M, func(T) M) M, f, g func(T) M, eq func(M, M) bool) error {
	lhs := chain(chain(m, f), g)
	rhs := chain(m, func(x T) M { return chain(f(x), g) })
	return check("chain associativity", lhs, rhs, eq)
}

// LeftIdentity checks chain(unit(a), f) == f(a)
func LeftIdentity[T, M any](a T, unit func(T) M, chain func(M, func(T) M) M, f func(T) M, eq func(M, M) bool) error {
	return check("left identity", chain(unit(a), f), f(a), eq)
}

// RightIdentity checks chain(m, unit) == m
func RightIdentity[T, M any](m M, unit func(T) M, chain func(M, func(T) M) M, eq func(M, M) bool) error {
	return check("right identity", chain(m, unit), m, eq)
}
