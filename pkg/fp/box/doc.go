// Package box provides Box[T], a container holding exactly one value, and
// Lazy[T], its deferred counterpart.
//
// A Box is a way to write a sequence of transformations as a linear
// pipeline instead of nested calls or temporaries:
//
//	trimmed := box.Map(box.Of(" 64"), strings.TrimSpace)
//	code := box.Map(trimmed, func(s string) int { n, _ := strconv.Atoi(s); return n })
//	next := box.Fold(code, func(i int) string { return string(rune(i + 1)) }) // "A"
//
// Key operations:
// - Of: wrap a value
// - Map/Apply: transform the held value, returning a new Box
// - Chain: transform with a function that already returns a Box
// - Tee: run a side effect on the held value
// - Fold/Value: leave the Box, returning a plain value
//
// Lazy mirrors the same surface but Map only composes functions; nothing
// runs until Fold or Eval is called.
package box
