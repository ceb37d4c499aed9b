// Package aggregate provides terminal operations that drain a sequence
// into a single value: folds, counts, extremes, collections and the
// ordered-set aggregations (percentiles and ranks).
//
// Every function honors ctx and the drain limit configured on it, and
// stops at the first error entry, returning that error.
package aggregate

import (
	"cmp"
	"context"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Numeric is a constraint for numeric types that support arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FoldLeft folds the values into seed from the first to the last.
//
//	FoldLeft(ctx, Of("a", "b", "c"), "", concat) == "abc"
func FoldLeft[T, U any](ctx context.Context, s core.Seq[T], seed U, fn func(acc U, item T) U) (U, error) {
	acc := seed
	err := core.ForEach(ctx, s, func(v T) error {
		acc = fn(acc, v)
		return nil
	})
	if err != nil {
		var zero U
		return zero, err
	}
	return acc, nil
}

// FoldRight folds the values into seed from the last to the first. The
// sequence must be finite; all values are buffered.
//
//	FoldRight(ctx, Of("a", "b", "c"), "", concat) == "abc"
func FoldRight[T, U any](ctx context.Context, s core.Seq[T], seed U, fn func(item T, acc U) U) (U, error) {
	values, err := core.Slice(ctx, s)
	if err != nil {
		var zero U
		return zero, err
	}
	acc := seed
	for i := len(values) - 1; i >= 0; i-- {
		acc = fn(values[i], acc)
	}
	return acc, nil
}

// Reduce combines the values with fn, using the first value as the
// initial accumulator. ok is false for an empty sequence.
func Reduce[T any](ctx context.Context, s core.Seq[T], fn func(acc, item T) T) (result T, ok bool, err error) {
	err = core.ForEach(ctx, s, func(v T) error {
		if !ok {
			result, ok = v, true
			return nil
		}
		result = fn(result, v)
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return result, ok, nil
}

// Count returns the number of values.
func Count[T any](ctx context.Context, s core.Seq[T]) (int, error) {
	return FoldLeft(ctx, s, 0, func(acc int, _ T) int { return acc + 1 })
}

// Sum adds up the values. An empty sequence sums to zero.
func Sum[T Numeric](ctx context.Context, s core.Seq[T]) (T, error) {
	var zero T
	return FoldLeft(ctx, s, zero, func(acc, v T) T { return acc + v })
}

// Average returns the arithmetic mean of the values. ok is false for an
// empty sequence.
func Average[T Numeric](ctx context.Context, s core.Seq[T]) (float64, bool, error) {
	var sum float64
	n := 0
	err := core.ForEach(ctx, s, func(v T) error {
		sum += float64(v)
		n++
		return nil
	})
	if err != nil || n == 0 {
		return 0, false, err
	}
	return sum / float64(n), true, nil
}

// Min returns the smallest value. The first of several equal values wins.
func Min[T cmp.Ordered](ctx context.Context, s core.Seq[T]) (T, bool, error) {
	return MinBy(ctx, s, func(v T) T { return v })
}

// Max returns the largest value. The first of several equal values wins.
func Max[T cmp.Ordered](ctx context.Context, s core.Seq[T]) (T, bool, error) {
	return MaxBy(ctx, s, func(v T) T { return v })
}

// MinBy returns the value whose key is the smallest.
//
//	MinBy(ctx, Of(1, 2, 3, 4, 5, 6), func(t int) int { return abs(t - 5) }) == 5
func MinBy[T any, K cmp.Ordered](ctx context.Context, s core.Seq[T], key func(T) K) (T, bool, error) {
	return extreme(ctx, s, key, -1)
}

// MaxBy returns the value whose key is the largest.
//
//	MaxBy(ctx, Of(1, 2, 3, 4, 5, 6), func(t int) int { return abs(t - 5) }) == 1
func MaxBy[T any, K cmp.Ordered](ctx context.Context, s core.Seq[T], key func(T) K) (T, bool, error) {
	return extreme(ctx, s, key, 1)
}

// extreme keeps the value whose key compares as want against every
// later key. Ties keep the earlier value.
func extreme[T any, K cmp.Ordered](ctx context.Context, s core.Seq[T], key func(T) K, want int) (T, bool, error) {
	var best T
	var bestKey K
	found := false
	err := core.ForEach(ctx, s, func(v T) error {
		k := key(v)
		if !found || cmp.Compare(k, bestKey) == want {
			best, bestKey, found = v, k, true
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return best, found, nil
}
