package core

import (
	"context"
	"errors"
	"fmt"
)

// Terminal drivers pull a Seq to the end (or to the first error) on the
// calling goroutine. They check ctx between pulls, fire the Hooks[T]
// attached to ctx and honor DrainConfig.

var (
	// ErrEmpty is returned by First for a sequence without values.
	ErrEmpty = errors.New("sequence is empty")

	// ErrDrainLimit is returned when a driver pulls more entries than
	// DrainConfig.MaxItems allows.
	ErrDrainLimit = errors.New("drain limit exceeded")
)

// drain feeds entries of s to visit until the sequence ends, visit
// returns false, ctx is done or the drain limit is hit.
func drain[T any](ctx context.Context, s Seq[T], visit func(Result[T]) bool) error {
	hooks := newHookInvoker[T](ctx)
	hooks.start()
	defer hooks.complete()

	limit := drainLimit(ctx)
	it := s.Iterator()
	for pulled := 0; ; pulled++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if limit > 0 && pulled >= limit {
			return fmt.Errorf("%w: pulled %d entries", ErrDrainLimit, pulled)
		}
		res := it.Next()
		hooks.result(res)
		if res.IsSentinel() {
			return nil
		}
		if !visit(res) {
			return nil
		}
	}
}

// Slice collects all values of s. It stops at the first error entry and
// returns it.
func Slice[T any](ctx context.Context, s Seq[T]) ([]T, error) {
	var values []T
	var failure error
	err := drain(ctx, s, func(res Result[T]) bool {
		if res.IsError() {
			failure = res.Error()
			return false
		}
		values = append(values, res.Value())
		return true
	})
	if err != nil {
		return nil, err
	}
	if failure != nil {
		return nil, failure
	}
	return values, nil
}

// First pulls a single entry from s. An empty sequence yields ErrEmpty.
func First[T any](ctx context.Context, s Seq[T]) (T, error) {
	var zero T
	var first Result[T]
	got := false
	err := drain(ctx, s, func(res Result[T]) bool {
		first, got = res, true
		return false
	})
	switch {
	case err != nil:
		return zero, err
	case !got:
		return zero, ErrEmpty
	case first.IsError():
		return zero, first.Error()
	}
	return first.Value(), nil
}

// Run drains s for its side effects and returns the first error entry.
func Run[T any](ctx context.Context, s Seq[T]) error {
	return ForEach(ctx, s, func(T) error { return nil })
}

// ForEach calls fn for every value of s. It stops at the first error
// entry or the first error returned by fn.
func ForEach[T any](ctx context.Context, s Seq[T], fn func(T) error) error {
	var failure error
	err := drain(ctx, s, func(res Result[T]) bool {
		if res.IsError() {
			failure = res.Error()
			return false
		}
		if err := fn(res.Value()); err != nil {
			failure = err
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	return failure
}

// Collect gathers every entry of s, errors included, excluding the
// terminating sentinel. Cancellation truncates the result.
func Collect[T any](ctx context.Context, s Seq[T]) []Result[T] {
	var results []Result[T]
	_ = drain(ctx, s, func(res Result[T]) bool {
		results = append(results, res)
		return true
	})
	return results
}
