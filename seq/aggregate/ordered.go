package aggregate

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/lguimbarda/min-seq/seq/core"
)

// ErrPercentileRange is returned for a percentile outside [0, 1].
var ErrPercentileRange = errors.New("percentile must be between 0 and 1")

func identity[T any](v T) T { return v }

// Percentile returns the value at percentile p of the sorted values,
// using the discrete (nearest rank) definition: p == 0 is the smallest
// value, p == 1 the largest and otherwise the value at index
// ceil(n*p)-1.
//
//	Percentile(ctx, Of(1, 2, 3, 4, 10, 9, 3, 3), 0.75) == 4
func Percentile[T cmp.Ordered](ctx context.Context, s core.Seq[T], p float64) (T, bool, error) {
	return PercentileBy(ctx, s, p, identity[T])
}

// PercentileBy is Percentile ordering the values by key. Values with
// equal keys keep their encounter order.
func PercentileBy[T any, K cmp.Ordered](ctx context.Context, s core.Seq[T], p float64, key func(T) K) (T, bool, error) {
	var zero T
	if p < 0 || p > 1 || math.IsNaN(p) {
		return zero, false, fmt.Errorf("%w: %v", ErrPercentileRange, p)
	}
	values, err := core.Slice(ctx, s)
	if err != nil || len(values) == 0 {
		return zero, false, err
	}
	slices.SortStableFunc(values, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
	return values[percentileIndex(len(values), p)], true, nil
}

func percentileIndex(n int, p float64) int {
	switch p {
	case 0:
		return 0
	case 1:
		return n - 1
	}
	return int(math.Ceil(float64(n)*p)) - 1
}

// Median is Percentile at 0.5. For an even count it picks the lower of
// the two middle values.
func Median[T cmp.Ordered](ctx context.Context, s core.Seq[T]) (T, bool, error) {
	return Percentile(ctx, s, 0.5)
}

// MedianBy is PercentileBy at 0.5.
func MedianBy[T any, K cmp.Ordered](ctx context.Context, s core.Seq[T], key func(T) K) (T, bool, error) {
	return PercentileBy(ctx, s, 0.5, key)
}

// Rank returns the hypothetical rank of value among the values: the
// number of values strictly less than it. Equal values share a rank and
// leave gaps after them.
func Rank[T cmp.Ordered](ctx context.Context, s core.Seq[T], value T) (int, bool, error) {
	return RankBy(ctx, s, value, identity[T])
}

// RankBy is Rank comparing value against the key of each element.
func RankBy[T any, K cmp.Ordered](ctx context.Context, s core.Seq[T], value K, key func(T) K) (int, bool, error) {
	rank, seen := 0, false
	err := core.ForEach(ctx, s, func(v T) error {
		seen = true
		if cmp.Less(key(v), value) {
			rank++
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return rank, seen, nil
}

// DenseRank returns the number of distinct values strictly less than
// value.
func DenseRank[T cmp.Ordered](ctx context.Context, s core.Seq[T], value T) (int, bool, error) {
	return DenseRankBy(ctx, s, value, identity[T])
}

// DenseRankBy is DenseRank comparing value against the key of each
// element.
func DenseRankBy[T any, K cmp.Ordered](ctx context.Context, s core.Seq[T], value K, key func(T) K) (int, bool, error) {
	less := make(map[K]struct{})
	seen := false
	err := core.ForEach(ctx, s, func(v T) error {
		seen = true
		if k := key(v); cmp.Less(k, value) {
			less[k] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return len(less), seen, nil
}

// PercentRank returns Rank divided by the number of values, a fraction
// in [0, 1].
func PercentRank[T cmp.Ordered](ctx context.Context, s core.Seq[T], value T) (float64, bool, error) {
	rank, n := 0, 0
	err := core.ForEach(ctx, s, func(v T) error {
		n++
		if cmp.Less(v, value) {
			rank++
		}
		return nil
	})
	if err != nil || n == 0 {
		return 0, false, err
	}
	return float64(rank) / float64(n), true, nil
}

// Mode returns the most frequent value. Among equally frequent values
// the one seen first wins.
func Mode[T comparable](ctx context.Context, s core.Seq[T]) (T, bool, error) {
	counts := make(map[T]int)
	var order []T
	err := core.ForEach(ctx, s, func(v T) error {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
		return nil
	})
	if err != nil || len(order) == 0 {
		var zero T
		return zero, false, err
	}
	best := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[best] {
			best = v
		}
	}
	return best, true, nil
}
