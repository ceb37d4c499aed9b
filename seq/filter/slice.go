package filter

import (
	"github.com/lguimbarda/min-seq/seq/core"
)

// Skip drops the first n values.
func Skip[T any](n int) core.Transformer[T, T] {
	return core.StatefulStage(func() func(core.Iterator[T]) core.Result[T] {
		skipped := 0
		return func(it core.Iterator[T]) core.Result[T] {
			for {
				res := it.Next()
				if !res.IsValue() || skipped >= n {
					return res
				}
				skipped++
			}
		}
	})
}

// Limit passes through at most n values. The upstream is not pulled
// again once n values were handed out, so Limit terminates infinite
// sequences.
func Limit[T any](n int) core.Transformer[T, T] {
	return core.StatefulStage(func() func(core.Iterator[T]) core.Result[T] {
		taken := 0
		return func(it core.Iterator[T]) core.Result[T] {
			if taken >= n {
				return core.EndOfStream[T]()
			}
			res := it.Next()
			if res.IsValue() {
				taken++
			}
			return res
		}
	})
}

// Slice passes through the values with index in [from, to). Negative
// bounds are treated as zero and to <= from yields nothing.
//
//	Slice(2, 5) over 1..10 yields 3, 4, 5
func Slice[T any](from, to int) core.Transformer[T, T] {
	from, to = max(from, 0), max(to, 0)
	return core.Transmit(func(in core.Seq[T]) core.Seq[T] {
		if to <= from {
			return core.Empty[T]()
		}
		return Limit[T](to - from).Apply(Skip[T](from).Apply(in))
	})
}

// SkipWhile drops values as long as predicate holds, then passes through
// everything that follows.
func SkipWhile[T any](predicate func(T) bool) core.Transformer[T, T] {
	return core.StatefulStage(func() func(core.Iterator[T]) core.Result[T] {
		skipping := true
		return func(it core.Iterator[T]) core.Result[T] {
			for {
				res := it.Next()
				if !skipping || !res.IsValue() {
					return res
				}
				if !predicate(res.Value()) {
					skipping = false
					return res
				}
			}
		}
	})
}

// SkipUntil drops values until predicate holds for one, which is passed
// through along with everything that follows.
func SkipUntil[T any](predicate func(T) bool) core.Transformer[T, T] {
	return SkipWhile(func(v T) bool { return !predicate(v) })
}

// LimitWhile passes through values as long as predicate holds. The first
// failing value ends the sequence and is discarded.
func LimitWhile[T any](predicate func(T) bool) core.Transformer[T, T] {
	return core.StatefulStage(func() func(core.Iterator[T]) core.Result[T] {
		done := false
		return func(it core.Iterator[T]) core.Result[T] {
			if done {
				return core.EndOfStream[T]()
			}
			res := it.Next()
			if res.IsValue() && !predicate(res.Value()) {
				done = true
				return core.EndOfStream[T]()
			}
			return res
		}
	})
}

// LimitUntil passes through values until predicate holds for one. That
// value ends the sequence and is discarded.
func LimitUntil[T any](predicate func(T) bool) core.Transformer[T, T] {
	return LimitWhile(func(v T) bool { return !predicate(v) })
}

// ElementAt yields only the value at index, or nothing if the sequence
// is shorter.
func ElementAt[T any](index int) core.Transformer[T, T] {
	return core.Transmit(func(in core.Seq[T]) core.Seq[T] {
		return Slice[T](index, index+1).Apply(in)
	})
}
