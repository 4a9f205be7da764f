// Package functional names the function shapes shared by the composition
// helpers in this module.
package functional

type Function[A, V any] func(A) V
type ErrorableFunction[A, V any] func(A) (V, error)

// VariadicFunction is the shape of a first stage: it receives the whole
// argument list of a composite.
type VariadicFunction[A, V any] func(...A) V

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

// ErrorableIdentity returns v unchanged and a nil error.
func ErrorableIdentity[T any](v T) (T, error) {
	return v, nil
}
