package filter

import (
	"github.com/lguimbarda/min-seq/seq/core"
)

// Distinct drops values that were already seen. Every distinct value is
// remembered for the lifetime of the sequence.
func Distinct[T comparable]() core.Transformer[T, T] {
	return DistinctBy(func(v T) T { return v })
}

// DistinctBy drops values whose key was already seen.
func DistinctBy[T any, K comparable](key func(T) K) core.Transformer[T, T] {
	return core.Transmit(func(in core.Seq[T]) core.Seq[T] {
		seen := make(map[K]struct{})
		return Where(func(v T) bool {
			k := key(v)
			if _, ok := seen[k]; ok {
				return false
			}
			seen[k] = struct{}{}
			return true
		}).Apply(in)
	})
}

// DistinctUntilChanged drops values equal to their predecessor.
func DistinctUntilChanged[T comparable]() core.Transformer[T, T] {
	return core.Transmit(func(in core.Seq[T]) core.Seq[T] {
		var last T
		first := true
		return Where(func(v T) bool {
			if !first && v == last {
				return false
			}
			first, last = false, v
			return true
		}).Apply(in)
	})
}
