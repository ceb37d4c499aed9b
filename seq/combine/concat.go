package combine

import (
	"context"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Concat yields all entries of each sequence in turn.
func Concat[T any](seqs ...core.Seq[T]) core.Seq[T] {
	i := 0
	return core.Generate(func() core.Result[T] {
		for i < len(seqs) {
			res := seqs[i].Next()
			if !res.IsSentinel() {
				return res
			}
			i++
		}
		return core.EndOfStream[T]()
	})
}

// Interleave takes one entry from each sequence in turn, dropping
// sequences as they end.
//
//	Interleave(Of(1, 2, 3), Of(10)) yields 1, 10, 2, 3
func Interleave[T any](seqs ...core.Seq[T]) core.Seq[T] {
	active := append([]core.Seq[T](nil), seqs...)
	next := 0
	return core.Generate(func() core.Result[T] {
		for len(active) > 0 {
			if next >= len(active) {
				next = 0
			}
			res := active[next].Next()
			if res.IsSentinel() {
				active = append(active[:next], active[next+1:]...)
				continue
			}
			next++
			return res
		}
		return core.EndOfStream[T]()
	})
}

// IfEmpty yields source, or alternative when source has no entries.
func IfEmpty[T any](source, alternative core.Seq[T]) core.Seq[T] {
	var chosen core.Iterator[T]
	return core.Generate(func() core.Result[T] {
		if chosen == nil {
			chosen = source.Iterator()
			if !chosen.HasNext() {
				chosen = alternative.Iterator()
			}
		}
		return chosen.Next()
	})
}

// SequenceEqual reports whether a and b hold the same values in the same
// order. It stops at the first difference or error.
func SequenceEqual[T comparable](ctx context.Context, a, b core.Seq[T]) (bool, error) {
	left, right := a.Iterator(), b.Iterator()
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		ra, rb := left.Next(), right.Next()
		switch {
		case ra.IsError():
			return false, ra.Error()
		case rb.IsError():
			return false, rb.Error()
		case ra.IsSentinel() || rb.IsSentinel():
			return ra.IsSentinel() && rb.IsSentinel(), nil
		case ra.Value() != rb.Value():
			return false, nil
		}
	}
}
