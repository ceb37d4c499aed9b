// Package unchecked adapts error-returning callbacks to the plain
// signatures expected by sequence operators, and back.
//
// By default a failing callback panics with an *Error wrapping the
// cause. Pass a Handler to decide otherwise; when the handler returns
// normally the adapted callback returns the zero value.
package unchecked

import (
	"errors"
	"fmt"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Error is the panic value raised by the default handler.
type Error struct {
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("unchecked: %v", e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Handler receives the error of a failed callback.
type Handler func(error)

// Panic is the default Handler.
func Panic(err error) {
	panic(&Error{Cause: err})
}

// Ignore is a Handler that drops errors.
func Ignore(error) {}

func pick(handlers []Handler) Handler {
	for _, h := range handlers {
		if h != nil {
			return h
		}
	}
	return Panic
}

// Function adapts fn to func(T) R.
func Function[T, R any](fn func(T) (R, error), handler ...Handler) func(T) R {
	h := pick(handler)
	return func(v T) R {
		r, err := fn(v)
		if err != nil {
			h(err)
			var zero R
			return zero
		}
		return r
	}
}

// BiFunction adapts fn to func(T, U) R.
func BiFunction[T, U, R any](fn func(T, U) (R, error), handler ...Handler) func(T, U) R {
	h := pick(handler)
	return func(a T, b U) R {
		r, err := fn(a, b)
		if err != nil {
			h(err)
			var zero R
			return zero
		}
		return r
	}
}

// Supplier adapts fn to func() R.
func Supplier[R any](fn func() (R, error), handler ...Handler) func() R {
	h := pick(handler)
	return func() R {
		r, err := fn()
		if err != nil {
			h(err)
			var zero R
			return zero
		}
		return r
	}
}

// Consumer adapts fn to func(T).
func Consumer[T any](fn func(T) error, handler ...Handler) func(T) {
	h := pick(handler)
	return func(v T) {
		if err := fn(v); err != nil {
			h(err)
		}
	}
}

// BiConsumer adapts fn to func(T, U).
func BiConsumer[T, U any](fn func(T, U) error, handler ...Handler) func(T, U) {
	h := pick(handler)
	return func(a T, b U) {
		if err := fn(a, b); err != nil {
			h(err)
		}
	}
}

// Predicate adapts fn to func(T) bool. A failed test is false when the
// handler returns.
func Predicate[T any](fn func(T) (bool, error), handler ...Handler) func(T) bool {
	return Function(fn, handler...)
}

// BiPredicate adapts fn to func(T, U) bool.
func BiPredicate[T, U any](fn func(T, U) (bool, error), handler ...Handler) func(T, U) bool {
	return BiFunction(fn, handler...)
}

// Runnable adapts fn to func().
func Runnable(fn func() error, handler ...Handler) func() {
	h := pick(handler)
	return func() {
		if err := fn(); err != nil {
			h(err)
		}
	}
}

// recoverInto turns a panic into *err. An *Error yields its cause, any
// other value a core.ErrPanic.
func recoverInto(err *error) {
	r := recover()
	if r == nil {
		return
	}
	var unchecked *Error
	if e, ok := r.(error); ok && errors.As(e, &unchecked) {
		*err = unchecked.Cause
		return
	}
	*err = core.NewPanicError(r)
}

// CheckedFunction is the reverse of Function: panics raised by fn are
// returned as errors.
func CheckedFunction[T, R any](fn func(T) R) func(T) (R, error) {
	return func(v T) (r R, err error) {
		defer recoverInto(&err)
		return fn(v), nil
	}
}

// CheckedSupplier is the reverse of Supplier.
func CheckedSupplier[R any](fn func() R) func() (R, error) {
	return func() (r R, err error) {
		defer recoverInto(&err)
		return fn(), nil
	}
}

// CheckedConsumer is the reverse of Consumer.
func CheckedConsumer[T any](fn func(T)) func(T) error {
	return func(v T) (err error) {
		defer recoverInto(&err)
		fn(v)
		return nil
	}
}

// CheckedRunnable is the reverse of Runnable.
func CheckedRunnable(fn func()) func() error {
	return func() (err error) {
		defer recoverInto(&err)
		fn()
		return nil
	}
}
