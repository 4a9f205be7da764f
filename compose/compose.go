// Package compose builds right-to-left function compositions.
//
// Compose(f, g, h) yields a function equivalent to
//
//	func(x T) T { return f(g(h(x))) }
//
// The rightmost function is applied first and is the only one that sees the
// caller's arguments; every other function receives the single result of the
// stage to its right. Nil functions are skipped. With nothing left to compose
// the identity is returned, and a lone function is returned as is.
//
// The generic functions in this file cover statically typed callers. Any and
// Composer cover callers that only hold untyped values.
package compose

import (
	"github.com/everxy/redux/functional"
)

// Compose composes fns from right to left.
func Compose[T any](fns ...functional.Function[T, T]) functional.Function[T, T] {
	fns = nonNil(fns)
	switch len(fns) {
	case 0:
		return functional.Identity[T]
	case 1:
		return fns[0]
	}

	last, rest := fns[len(fns)-1], fns[:len(fns)-1]
	return func(v T) T {
		acc := last(v)
		for i := len(rest) - 1; i >= 0; i-- {
			acc = rest[i](acc)
		}
		return acc
	}
}

// From composes rest from right to left on top of last, which receives every
// argument passed to the returned function. When rest holds no non-nil
// function, last itself is returned.
func From[A, T any](last functional.VariadicFunction[A, T], rest ...functional.Function[T, T]) functional.VariadicFunction[A, T] {
	rest = nonNil(rest)
	if len(rest) == 0 {
		return last
	}

	return func(args ...A) T {
		acc := last(args...)
		for i := len(rest) - 1; i >= 0; i-- {
			acc = rest[i](acc)
		}
		return acc
	}
}

// ComposeErrorable composes fns from right to left, stopping at the first
// stage that returns an error. That error is returned as is.
func ComposeErrorable[T any](fns ...functional.ErrorableFunction[T, T]) functional.ErrorableFunction[T, T] {
	fns = nonNilErrorable(fns)
	switch len(fns) {
	case 0:
		return functional.ErrorableIdentity[T]
	case 1:
		return fns[0]
	}

	last, rest := fns[len(fns)-1], fns[:len(fns)-1]
	return func(v T) (T, error) {
		acc, err := last(v)
		if err != nil {
			var zero T
			return zero, err
		}
		for i := len(rest) - 1; i >= 0; i-- {
			if acc, err = rest[i](acc); err != nil {
				var zero T
				return zero, err
			}
		}
		return acc, nil
	}
}

// Compose2 returns f after g.
func Compose2[A, B, C any](f functional.Function[B, C], g functional.Function[A, B]) functional.Function[A, C] {
	return func(a A) C {
		return f(g(a))
	}
}

// Compose3 returns f after g after h.
func Compose3[A, B, C, D any](f functional.Function[C, D], g functional.Function[B, C], h functional.Function[A, B]) functional.Function[A, D] {
	return Compose2(f, Compose2(g, h))
}

// nonNil returns a fresh slice holding the non-nil entries of fns in order,
// so later writes to the caller's slice cannot reach a composite.
func nonNil[A, V any](fns []functional.Function[A, V]) []functional.Function[A, V] {
	kept := make([]functional.Function[A, V], 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			kept = append(kept, fn)
		}
	}
	return kept
}

func nonNilErrorable[A, V any](fns []functional.ErrorableFunction[A, V]) []functional.ErrorableFunction[A, V] {
	kept := make([]functional.ErrorableFunction[A, V], 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			kept = append(kept, fn)
		}
	}
	return kept
}
