package seq

import (
	"iter"
	"maps"

	"github.com/lguimbarda/min-seq/seq/core"
	"github.com/lguimbarda/min-seq/seq/tuple"
)

// Of creates a Seq over the given values.
func Of[T any](values ...T) Seq[T] {
	return FromSlice(values)
}

// FromSlice creates a Seq that yields each element of items. The slice
// is read lazily, so later writes to not-yet-pulled elements are seen.
func FromSlice[T any](items []T) Seq[T] {
	i := 0
	return core.Generate(func() Result[T] {
		if i >= len(items) {
			return EndOfStream[T]()
		}
		i++
		return Ok(items[i-1])
	})
}

// FromChannel creates a Seq that receives from ch. Pulls block until a
// value arrives; the sequence ends when ch is closed.
func FromChannel[T any](ch <-chan T) Seq[T] {
	return core.Generate(func() Result[T] {
		item, ok := <-ch
		if !ok {
			return EndOfStream[T]()
		}
		return Ok(item)
	})
}

// FromIter creates a Seq from a range-over-func iterator. The iterator is
// started on the first pull and stopped once it is exhausted. A Seq that
// is abandoned before its end (First, filter.Limit) leaves the iterator
// suspended with its deferred cleanup pending; drain it, or give the
// iterator its own way to stop such as a context.
func FromIter[T any](it iter.Seq[T]) Seq[T] {
	var next func() (T, bool)
	var stop func()
	return core.Generate(func() Result[T] {
		if next == nil {
			next, stop = iter.Pull(it)
		}
		v, ok := next()
		if !ok {
			stop()
			return EndOfStream[T]()
		}
		return Ok(v)
	})
}

// FromIter2 creates a Seq from an iterator of (value, error) pairs. Non-nil
// errors become error entries. Stopping works as for FromIter.
func FromIter2[T any](it iter.Seq2[T, error]) Seq[T] {
	var next func() (T, error, bool)
	var stop func()
	return core.Generate(func() Result[T] {
		if next == nil {
			next, stop = iter.Pull2(it)
		}
		v, err, ok := next()
		switch {
		case !ok:
			stop()
			return EndOfStream[T]()
		case err != nil:
			return Err[T](err)
		}
		return Ok(v)
	})
}

// FromMap creates a Seq of key/value pairs from m. The order follows Go
// map iteration and is not deterministic.
func FromMap[K comparable, V any](m map[K]V) Seq[tuple.Tuple2[K, V]] {
	pairs := maps.All(m)
	return FromIter(func(yield func(tuple.Tuple2[K, V]) bool) {
		for k, v := range pairs {
			if !yield(tuple.New2(k, v)) {
				return
			}
		}
	})
}

// Empty creates a Seq without values.
func Empty[T any]() Seq[T] {
	return core.Empty[T]()
}

// Once creates a Seq yielding a single value.
func Once[T any](value T) Seq[T] {
	return Of(value)
}

// FromError creates a Seq yielding a single error entry.
func FromError[T any](err error) Seq[T] {
	done := false
	return core.Generate(func() Result[T] {
		if done {
			return EndOfStream[T]()
		}
		done = true
		return Err[T](err)
	})
}

// Generate creates a Seq that calls fn for every pull. fn returns the
// next value and true to continue, or false to end the sequence. An error
// is yielded as an error entry and generation continues.
func Generate[T any](fn func() (T, bool, error)) Seq[T] {
	return core.Generate(func() Result[T] {
		value, ok, err := fn()
		switch {
		case err != nil:
			return Err[T](err)
		case !ok:
			return EndOfStream[T]()
		}
		return Ok(value)
	})
}

// FromFunc creates a Seq by calling fn until it returns an error. The
// terminating error is not yielded.
func FromFunc[T any](fn func() (T, error)) Seq[T] {
	return core.Generate(func() Result[T] {
		value, err := fn()
		if err != nil {
			return EndOfStream[T]()
		}
		return Ok(value)
	})
}

// Repeat creates a Seq yielding value n times, or forever when n is
// negative.
func Repeat[T any](value T, n int) Seq[T] {
	count := 0
	return core.Generate(func() Result[T] {
		if n >= 0 && count >= n {
			return EndOfStream[T]()
		}
		count++
		return Ok(value)
	})
}

// Range creates a Seq of the integers in [start, end).
func Range(start, end int) Seq[int] {
	return RangeStep(start, end, 1)
}

// RangeStep creates a Seq of start, start+step, ... while below end for a
// positive step or above end for a negative one. A zero step or a step
// pointing away from end yields an empty Seq.
func RangeStep(start, end, step int) Seq[int] {
	if step == 0 || (step > 0 && start >= end) || (step < 0 && start <= end) {
		return Empty[int]()
	}
	i := start
	return core.Generate(func() Result[int] {
		if (step > 0 && i >= end) || (step < 0 && i <= end) {
			return EndOfStream[int]()
		}
		i += step
		return Ok(i - step)
	})
}

// Iterate creates the infinite Seq seed, fn(seed), fn(fn(seed)), ...
// fn is only applied when the next value is pulled.
func Iterate[T any](seed T, fn func(T) T) Seq[T] {
	return IterateN(seed, fn, -1)
}

// IterateN is Iterate limited to n values. A negative n is unlimited.
func IterateN[T any](seed T, fn func(T) T, n int) Seq[T] {
	current, count := seed, 0
	return core.Generate(func() Result[T] {
		if n >= 0 && count >= n {
			return EndOfStream[T]()
		}
		if count > 0 {
			current = fn(current)
		}
		count++
		return Ok(current)
	})
}

// Unfold creates a Seq by repeatedly applying fn to a state, starting
// from seed. fn returns the value to yield, the next state and whether
// to continue. An error is yielded as an error entry and unfolding goes
// on with the returned state.
func Unfold[T, S any](seed S, fn func(S) (T, S, bool, error)) Seq[T] {
	state := seed
	done := false
	return core.Generate(func() Result[T] {
		if done {
			return EndOfStream[T]()
		}
		value, next, ok, err := fn(state)
		state = next
		switch {
		case err != nil:
			return Err[T](err)
		case !ok:
			done = true
			return EndOfStream[T]()
		}
		return Ok(value)
	})
}

// Cycle creates a Seq repeating items forever. An empty slice yields an
// empty Seq.
func Cycle[T any](items ...T) Seq[T] {
	if len(items) == 0 {
		return Empty[T]()
	}
	i := 0
	return core.Generate(func() Result[T] {
		v := items[i%len(items)]
		i++
		return Ok(v)
	})
}

// Defer creates a Seq whose source is built by factory on the first pull.
// Sources that hold resources (FromIter, seq/sql.Query, seq/io files) only
// release them once they are drained to the end.
func Defer[T any](factory func() Seq[T]) Seq[T] {
	var it Iterator[T]
	return core.Generate(func() Result[T] {
		if it == nil {
			it = factory().Iterator()
		}
		return it.Next()
	})
}
