package transform

import (
	"slices"

	"github.com/lguimbarda/min-seq/seq/core"
)

// drainEntries pulls every entry of it, errors included.
func drainEntries[T any](it core.Iterator[T]) []core.Result[T] {
	var entries []core.Result[T]
	for {
		res := it.Next()
		if res.IsSentinel() {
			return entries
		}
		entries = append(entries, res)
	}
}

// replay hands out entries one per pull.
func replay[T any](entries []core.Result[T]) core.Seq[T] {
	i := 0
	return core.Generate(func() core.Result[T] {
		if i >= len(entries) {
			return core.EndOfStream[T]()
		}
		i++
		return entries[i-1]
	})
}

// Reverse yields the entries of a finite sequence in reverse order. The
// whole input is buffered on the first pull.
func Reverse[T any]() core.Transformer[T, T] {
	return core.Transmit(func(in core.Seq[T]) core.Seq[T] {
		var out core.Seq[T]
		var loaded bool
		return core.Generate(func() core.Result[T] {
			if !loaded {
				entries := drainEntries(in.Iterator())
				slices.Reverse(entries)
				out, loaded = replay(entries), true
			}
			return out.Next()
		})
	})
}

// Cycle repeats a finite sequence forever. Entries are buffered during
// the first pass and replayed from memory afterwards. An empty input
// stays empty.
//
//	Cycle over 1, 2 yields 1, 2, 1, 2, ...
func Cycle[T any]() core.Transformer[T, T] {
	return Repeat[T](-1)
}

// Repeat plays the sequence count times in total, or forever for a
// negative count. The first pass is buffered for the replays.
func Repeat[T any](count int) core.Transformer[T, T] {
	return core.Transmit(func(in core.Seq[T]) core.Seq[T] {
		it := in.Iterator()
		var seen []core.Result[T]
		pass, pos := 0, 0
		return core.Generate(func() core.Result[T] {
			if count >= 0 && pass >= count {
				return core.EndOfStream[T]()
			}
			if pass == 0 {
				res := it.Next()
				if !res.IsSentinel() {
					seen = append(seen, res)
					return res
				}
				pass++
			}
			if len(seen) == 0 {
				return core.EndOfStream[T]()
			}
			for pos >= len(seen) {
				pos = 0
				pass++
			}
			if count >= 0 && pass >= count {
				return core.EndOfStream[T]()
			}
			pos++
			return seen[pos-1]
		})
	})
}

// StartWith yields values before the entries of the sequence.
func StartWith[T any](values ...T) core.Transformer[T, T] {
	return core.Transmit(func(in core.Seq[T]) core.Seq[T] {
		i := 0
		it := in.Iterator()
		return core.Generate(func() core.Result[T] {
			if i < len(values) {
				i++
				return core.Ok(values[i-1])
			}
			return it.Next()
		})
	})
}

// EndWith yields values after the sequence ends.
func EndWith[T any](values ...T) core.Transformer[T, T] {
	return core.Transmit(func(in core.Seq[T]) core.Seq[T] {
		i := 0
		it := in.Iterator()
		ended := false
		return core.Generate(func() core.Result[T] {
			if !ended {
				if res := it.Next(); !res.IsSentinel() {
					return res
				}
				ended = true
			}
			if i < len(values) {
				i++
				return core.Ok(values[i-1])
			}
			return core.EndOfStream[T]()
		})
	})
}

// DefaultIfEmpty yields value when the sequence has no entries.
func DefaultIfEmpty[T any](value T) core.Transformer[T, T] {
	return core.Transmit(func(in core.Seq[T]) core.Seq[T] {
		it := in.Iterator()
		checked := false
		usedDefault := false
		return core.Generate(func() core.Result[T] {
			if !checked {
				checked = true
				if !it.HasNext() {
					usedDefault = true
					return core.Ok(value)
				}
			}
			if usedDefault {
				return core.EndOfStream[T]()
			}
			return it.Next()
		})
	})
}

// ConcatMap projects every value to a sequence and yields the entries of
// each projected sequence in turn.
func ConcatMap[IN, OUT any](project func(IN) core.Seq[OUT]) core.Transformer[IN, OUT] {
	return core.StatefulStage(func() func(core.Iterator[IN]) core.Result[OUT] {
		var inner core.Iterator[OUT]
		return func(it core.Iterator[IN]) core.Result[OUT] {
			for {
				if inner != nil {
					if res := inner.Next(); !res.IsSentinel() {
						return res
					}
					inner = nil
				}
				res := it.Next()
				if !res.IsValue() {
					return core.Forward[OUT](res)
				}
				inner = project(res.Value()).Iterator()
			}
		}
	})
}
