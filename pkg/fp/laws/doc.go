// Package laws checks the algebraic laws that Box and Either are expected
// to satisfy. Each check returns nil when the law holds for the given
// inputs and a *Violation describing both sides otherwise, so callers can
// use them from tests or from property-style loops.
package laws
