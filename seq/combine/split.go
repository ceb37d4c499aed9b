package combine

import (
	"github.com/lguimbarda/min-seq/seq/core"
	"github.com/lguimbarda/min-seq/seq/filter"
)

// Tee splits s into n sequences that each replay every entry of s. It
// chains Duplicate, so the i-th output shares a gap buffer with the
// outputs after it. n < 1 yields no sequences.
func Tee[T any](s core.Seq[T], n int, opts ...core.DuplicateOption) []core.Seq[T] {
	if n < 1 {
		return nil
	}
	outs := make([]core.Seq[T], 0, n)
	rest := s
	for range n - 1 {
		head, tail := rest.Duplicate(opts...)
		outs = append(outs, head)
		rest = tail
	}
	return append(outs, rest)
}

// Fork applies each transformer to its own copy of s.
func Fork[IN, OUT any](s core.Seq[IN], transformers ...core.Transformer[IN, OUT]) []core.Seq[OUT] {
	copies := Tee(s, len(transformers))
	outs := make([]core.Seq[OUT], len(transformers))
	for i, t := range transformers {
		outs[i] = t.Apply(copies[i])
	}
	return outs
}

// Partition splits s into the values matching predicate and the rest.
// Both outputs are lazy; predicate runs once per value on each side.
// Error entries appear on both sides.
func Partition[T any](s core.Seq[T], predicate func(T) bool) (matched, unmatched core.Seq[T]) {
	a, b := s.Duplicate()
	return filter.Where(predicate).Apply(a), filter.Exclude(predicate).Apply(b)
}

// SplitAt splits s into its first n values and everything after them.
func SplitAt[T any](s core.Seq[T], n int) (head, tail core.Seq[T]) {
	a, b := s.Duplicate()
	return filter.Limit[T](n).Apply(a), filter.Skip[T](n).Apply(b)
}

// SplitAtHead pulls the first entry of s and returns it with the rest of
// the sequence. For an empty s the head is the end-of-stream sentinel.
func SplitAtHead[T any](s core.Seq[T]) (core.Result[T], core.Seq[T]) {
	return s.Next(), s
}
