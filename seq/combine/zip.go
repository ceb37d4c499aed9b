// Package combine joins several sequences into one and splits one
// sequence into several. Splitting operators are built on Duplicate, so
// every output stays lazy and buffers only what the others have not
// consumed yet.
package combine

import (
	"github.com/lguimbarda/min-seq/seq/core"
	"github.com/lguimbarda/min-seq/seq/tuple"
)

// Zip pairs the entries of a and b by position. It ends as soon as either
// input ends. If either entry of a pair is an error, the pair is yielded
// as that error.
//
//	Zip(Of(1, 2), Of("a", "b", "c")) yields (1, a), (2, b)
func Zip[A, B any](a core.Seq[A], b core.Seq[B]) core.Seq[tuple.Tuple2[A, B]] {
	return ZipWith(a, b, tuple.New2[A, B])
}

// ZipWith combines the entries of a and b by position with fn.
func ZipWith[A, B, R any](a core.Seq[A], b core.Seq[B], fn func(A, B) R) core.Seq[R] {
	left, right := a.Iterator(), b.Iterator()
	return core.Generate(func() core.Result[R] {
		ra := left.Next()
		if ra.IsSentinel() {
			return core.Forward[R](ra)
		}
		rb := right.Next()
		switch {
		case rb.IsSentinel():
			return core.Forward[R](rb)
		case ra.IsError():
			return core.Forward[R](ra)
		case rb.IsError():
			return core.Forward[R](rb)
		}
		return core.Ok(fn(ra.Value(), rb.Value()))
	})
}

// ZipAll pairs a and b until both end, filling the shorter side with
// its default.
func ZipAll[A, B any](a core.Seq[A], b core.Seq[B], defaultA A, defaultB B) core.Seq[tuple.Tuple2[A, B]] {
	left, right := a.Iterator(), b.Iterator()
	return core.Generate(func() core.Result[tuple.Tuple2[A, B]] {
		if !left.HasNext() && !right.HasNext() {
			return core.EndOfStream[tuple.Tuple2[A, B]]()
		}
		va, vb := defaultA, defaultB
		if left.HasNext() {
			ra := left.Next()
			if ra.IsError() {
				return core.Forward[tuple.Tuple2[A, B]](ra)
			}
			va = ra.Value()
		}
		if right.HasNext() {
			rb := right.Next()
			if rb.IsError() {
				return core.Forward[tuple.Tuple2[A, B]](rb)
			}
			vb = rb.Value()
		}
		return core.Ok(tuple.New2(va, vb))
	})
}

// ZipWithIndex pairs every value with its zero-based position. Error
// entries pass through and do not take a position.
func ZipWithIndex[T any](s core.Seq[T]) core.Seq[tuple.Tuple2[T, int]] {
	it := s.Iterator()
	index := 0
	return core.Generate(func() core.Result[tuple.Tuple2[T, int]] {
		res := it.Next()
		if !res.IsValue() {
			return core.Forward[tuple.Tuple2[T, int]](res)
		}
		index++
		return core.Ok(tuple.New2(res.Value(), index-1))
	})
}

// Unzip splits a sequence of pairs into the sequence of first and the
// sequence of second elements.
func Unzip[A, B any](s core.Seq[tuple.Tuple2[A, B]]) (core.Seq[A], core.Seq[B]) {
	return UnzipWith(s, func(a A, b B) (A, B) { return a, b })
}

// UnzipWith maps every pair with fn before splitting it.
func UnzipWith[A, B, C, D any](s core.Seq[tuple.Tuple2[A, B]], fn func(A, B) (C, D)) (core.Seq[C], core.Seq[D]) {
	mapped := core.Map(func(t tuple.Tuple2[A, B]) (tuple.Tuple2[C, D], error) {
		c, d := fn(t.V1, t.V2)
		return tuple.New2(c, d), nil
	}).Apply(s)

	left, right := mapped.Duplicate()
	first := core.Map(func(t tuple.Tuple2[C, D]) (C, error) { return t.V1, nil }).Apply(left)
	second := core.Map(func(t tuple.Tuple2[C, D]) (D, error) { return t.V2, nil }).Apply(right)
	return first, second
}
