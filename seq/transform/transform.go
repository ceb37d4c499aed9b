// Package transform provides operators that reshape a sequence: adding,
// reordering, grouping or replaying entries.
package transform

import (
	"github.com/lguimbarda/min-seq/seq/core"
	"github.com/lguimbarda/min-seq/seq/tuple"
)

// Intersperse puts separator between consecutive values.
//
//	Intersperse(0) over 1, 2, 3 yields 1, 0, 2, 0, 3
func Intersperse[T any](separator T) core.Transformer[T, T] {
	return core.StatefulStage(func() func(core.Iterator[T]) core.Result[T] {
		var pending *core.Result[T]
		started := false
		return func(it core.Iterator[T]) core.Result[T] {
			if pending != nil {
				res := *pending
				pending = nil
				return res
			}
			res := it.Next()
			if !res.IsValue() {
				return res
			}
			if !started {
				started = true
				return res
			}
			pending = &res
			return core.Ok(separator)
		}
	})
}

// Indexed pairs a value with its zero-based position.
type Indexed[T any] struct {
	Index int
	Value T
}

// WithIndex wraps each value with its position. Error entries pass
// through without taking a position.
func WithIndex[T any]() core.Transformer[T, Indexed[T]] {
	return core.StatefulStage(func() func(core.Iterator[T]) core.Result[Indexed[T]] {
		index := 0
		return func(it core.Iterator[T]) core.Result[Indexed[T]] {
			res := it.Next()
			if !res.IsValue() {
				return core.Forward[Indexed[T]](res)
			}
			index++
			return core.Ok(Indexed[T]{Index: index - 1, Value: res.Value()})
		}
	})
}

// Scan yields the running accumulation of fn over the values, starting
// from seed. The seed itself is not yielded.
func Scan[T, U any](seed U, fn func(U, T) U) core.Transformer[T, U] {
	return core.StatefulStage(func() func(core.Iterator[T]) core.Result[U] {
		acc := seed
		return func(it core.Iterator[T]) core.Result[U] {
			res := it.Next()
			if !res.IsValue() {
				return core.Forward[U](res)
			}
			acc = fn(acc, res.Value())
			return core.Ok(acc)
		}
	})
}

// Pairwise yields each value together with its predecessor.
//
//	Pairwise over 1, 2, 3 yields (1, 2), (2, 3)
func Pairwise[T any]() core.Transformer[T, tuple.Tuple2[T, T]] {
	return core.StatefulStage(func() func(core.Iterator[T]) core.Result[tuple.Tuple2[T, T]] {
		var prev T
		havePrev := false
		return func(it core.Iterator[T]) core.Result[tuple.Tuple2[T, T]] {
			for {
				res := it.Next()
				if !res.IsValue() {
					return core.Forward[tuple.Tuple2[T, T]](res)
				}
				if !havePrev {
					prev, havePrev = res.Value(), true
					continue
				}
				pair := tuple.New2(prev, res.Value())
				prev = res.Value()
				return core.Ok(pair)
			}
		}
	})
}

// Batch groups values into slices of size. The last batch may be
// shorter. An error entry closes the current batch early and is yielded
// right after it. size < 1 is treated as 1.
func Batch[T any](size int) core.Transformer[T, []T] {
	size = max(size, 1)
	return core.StatefulStage(func() func(core.Iterator[T]) core.Result[[]T] {
		var pending *core.Result[[]T]
		return func(it core.Iterator[T]) core.Result[[]T] {
			if pending != nil {
				res := *pending
				pending = nil
				return res
			}
			batch := make([]T, 0, size)
			for len(batch) < size {
				res := it.Next()
				if res.IsValue() {
					batch = append(batch, res.Value())
					continue
				}
				out := core.Forward[[]T](res)
				if len(batch) == 0 {
					return out
				}
				if res.IsError() {
					pending = &out
				}
				return core.Ok(batch)
			}
			return core.Ok(batch)
		}
	})
}
