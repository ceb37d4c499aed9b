// Package function provides named function types of arity 0 through 16.
// Types of arity 2 and above can be applied to the matching tuple.
package function

//go:generate go run ../../internal/gen/tuples -kind function -o functions_gen.go

// Function0 is a function without arguments, also known as a supplier.
type Function0[R any] func() R

// Function1 is a function of one argument.
type Function1[T1, R any] func(T1) R

// Consumer0 is a function without arguments or result, also known as a
// runnable.
type Consumer0 func()

// Consumer1 is a function of one argument without a result.
type Consumer1[T1 any] func(T1)

// Predicate is a test on one value.
type Predicate[T any] func(T) bool

// Identity returns its argument.
func Identity[T any]() Function1[T, T] {
	return func(v T) T { return v }
}

// AndThen composes f and g into a function applying f and then g.
func AndThen[T, U, R any](f Function1[T, U], g Function1[U, R]) Function1[T, R] {
	return func(v T) R { return g(f(v)) }
}

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// Curry2 turns a function of two arguments into a chain of functions of
// one argument.
func Curry2[T1, T2, R any](f Function2[T1, T2, R]) Function1[T1, Function1[T2, R]] {
	return func(v1 T1) Function1[T2, R] {
		return func(v2 T2) R { return f(v1, v2) }
	}
}

// Partial1 binds the first argument of f.
func Partial1[T1, T2, R any](f Function2[T1, T2, R], v1 T1) Function1[T2, R] {
	return func(v2 T2) R { return f(v1, v2) }
}
