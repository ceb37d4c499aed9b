// Package seq provides lazy, single-pass, pull-based sequences and the
// functional helpers that go with them. At the heart of it is Duplicate,
// which splits one sequence into two independently consumed ones.
//
// This package is the primary user-facing API. The seq/core subpackage
// contains the low-level abstractions; the operator packages
// (seq/combine, seq/filter, seq/transform, seq/aggregate) build on both.
package seq

import (
	"context"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Type aliases for the core abstractions, so most users never import
// core directly.
type (
	// Result is one entry of a sequence: a Value, an Error or a Sentinel.
	Result[T any] = core.Result[T]

	// Iterator is the single-pass pull cursor behind a Seq.
	Iterator[T any] = core.Iterator[T]

	// Seq is a lazy single-pass sequence.
	Seq[T any] = core.Seq[T]

	// Transformer turns a Seq of IN into a Seq of OUT.
	Transformer[IN, OUT any] = core.Transformer[IN, OUT]

	// Transmitter is a function implementation of Transformer.
	Transmitter[IN, OUT any] = core.Transmitter[IN, OUT]

	// Mapper transforms individual entries (1:1) and implements Transformer.
	Mapper[IN, OUT any] = core.Mapper[IN, OUT]

	// FlatMapper transforms individual entries (1:N) and implements Transformer.
	FlatMapper[IN, OUT any] = core.FlatMapper[IN, OUT]

	// DuplicateOption configures Duplicate.
	DuplicateOption = core.DuplicateOption
)

var (
	// ErrEndOfStream is the cause carried by the end-of-sequence sentinel.
	ErrEndOfStream = core.ErrEndOfStream

	// ErrEmpty is returned by First for a sequence without values.
	ErrEmpty = core.ErrEmpty

	// ErrGapLimit is handed out by a bounded Duplicate, see WithMaxGap.
	ErrGapLimit = core.ErrGapLimit
)

// Result constructors.

// Ok creates a successful Result containing the given value.
func Ok[T any](value T) Result[T] {
	return core.Ok(value)
}

// Err creates an error Result.
func Err[T any](err error) Result[T] {
	return core.Err[T](err)
}

// EndOfStream creates the sentinel marking the end of a sequence.
func EndOfStream[T any]() Result[T] {
	return core.EndOfStream[T]()
}

// Mapper/FlatMapper constructors.

// Map creates a Mapper from a transformation function that cannot fail.
func Map[IN, OUT any](mapFunc func(IN) OUT) Mapper[IN, OUT] {
	return core.Map(func(v IN) (OUT, error) {
		return mapFunc(v), nil
	})
}

// TryMap creates a Mapper from a fallible transformation function.
// Returned errors become error entries.
func TryMap[IN, OUT any](mapFunc func(IN) (OUT, error)) Mapper[IN, OUT] {
	return core.Map(mapFunc)
}

// FlatMap creates a FlatMapper from a function returning a slice.
func FlatMap[IN, OUT any](flatMapFunc func(IN) ([]OUT, error)) FlatMapper[IN, OUT] {
	return core.FlatMap(flatMapFunc)
}

// Duplicate splits s into two sequences that each replay every entry of
// s in order. Entries are buffered only while one side is ahead of the
// other. Both results may be consumed on different goroutines.
func Duplicate[T any](s Seq[T], opts ...DuplicateOption) (Seq[T], Seq[T]) {
	return s.Duplicate(opts...)
}

// WithMaxGap bounds how far one side of a Duplicate may run ahead.
func WithMaxGap(n int) DuplicateOption {
	return core.WithMaxGap(n)
}

// WithGapObserver reports every change of the Duplicate gap buffer.
func WithGapObserver(fn func(size, delta int)) DuplicateOption {
	return core.WithGapObserver(fn)
}

// Terminal operations.

// Slice collects all values of s, stopping at the first error.
func Slice[T any](ctx context.Context, s Seq[T]) ([]T, error) {
	return core.Slice(ctx, s)
}

// First returns the first value of s.
func First[T any](ctx context.Context, s Seq[T]) (T, error) {
	return core.First(ctx, s)
}

// Run drains s for side effects only.
func Run[T any](ctx context.Context, s Seq[T]) error {
	return core.Run(ctx, s)
}

// ForEach calls fn for every value of s.
func ForEach[T any](ctx context.Context, s Seq[T], fn func(T) error) error {
	return core.ForEach(ctx, s, fn)
}

// Collect gathers all entries (including errors) of s.
func Collect[T any](ctx context.Context, s Seq[T]) []Result[T] {
	return core.Collect(ctx, s)
}
