// Package core defines the pull-based building blocks of min-seq: the
// Result entry type, the single-pass Iterator and Seq abstractions, the
// duplicate (tee) mechanism, typed hooks and the terminal drivers.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other seq packages.
package core

import "iter"

// Iterator is a single-pass pull cursor. HasNext reports whether a
// further entry (value or error) can be pulled; it may be called any
// number of times between pulls and always answers the same. Next
// returns the next entry, or a sentinel once the cursor is exhausted.
//
// An Iterator is not safe for concurrent use unless stated otherwise.
type Iterator[T any] interface {
	HasNext() bool
	Next() Result[T]
}

// Pull turns a producer function into an Iterator with one entry of
// lookahead. The producer signals the end by returning a sentinel; it is
// never called again after that, and the sentinel is handed out by every
// later Next.
func Pull[T any](pull func() Result[T]) Iterator[T] {
	return &lookahead[T]{pull: pull}
}

type lookahead[T any] struct {
	pull   func() Result[T]
	head   Result[T]
	peeked bool
	end    *Result[T]
}

func (l *lookahead[T]) HasNext() bool {
	if l.end != nil {
		return false
	}
	if !l.peeked {
		res := l.pull()
		if res.IsSentinel() {
			l.end = &res
			l.pull = nil
			return false
		}
		l.head, l.peeked = res, true
	}
	return true
}

func (l *lookahead[T]) Next() Result[T] {
	if !l.HasNext() {
		return *l.end
	}
	head := l.head
	l.head, l.peeked = Result[T]{}, false
	return head
}

type emptyIterator[T any] struct{}

func (emptyIterator[T]) HasNext() bool    { return false }
func (emptyIterator[T]) Next() Result[T] { return EndOfStream[T]() }

// Seq is a single-pass lazy sequence. Nothing is pulled from the
// underlying iterator until a consumer asks for it, so a Seq may be
// infinite. Copies of a Seq share the same cursor. The zero Seq is empty.
type Seq[T any] struct {
	it Iterator[T]
}

// From wraps an Iterator as a Seq. The Seq takes ownership of it.
func From[T any](it Iterator[T]) Seq[T] {
	return Seq[T]{it: it}
}

// Generate builds a Seq from a producer function, see Pull.
func Generate[T any](pull func() Result[T]) Seq[T] {
	return Seq[T]{it: Pull(pull)}
}

// Empty returns a Seq without entries.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Iterator returns the cursor backing s.
func (s Seq[T]) Iterator() Iterator[T] {
	if s.it == nil {
		return emptyIterator[T]{}
	}
	return s.it
}

// HasNext reports whether another entry can be pulled from s.
func (s Seq[T]) HasNext() bool {
	return s.Iterator().HasNext()
}

// Next pulls the next entry from s.
func (s Seq[T]) Next() Result[T] {
	return s.Iterator().Next()
}

// Results adapts s to a range-over-func iterator of raw entries,
// excluding the terminating sentinel.
func (s Seq[T]) Results() iter.Seq[Result[T]] {
	return func(yield func(Result[T]) bool) {
		it := s.Iterator()
		for {
			res := it.Next()
			if res.IsSentinel() || !yield(res) {
				return
			}
		}
	}
}

// All adapts s to an iter.Seq2 of (value, error) pairs. Error entries
// are yielded with the zero value and iteration continues after them.
func (s Seq[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for res := range s.Results() {
			if !yield(res.Unwrap()) {
				return
			}
		}
	}
}

// Values adapts s to an iter.Seq of its values. It stops silently at the
// first error; use All or a terminal driver when errors matter.
func (s Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for res := range s.Results() {
			if res.IsError() || !yield(res.Value()) {
				return
			}
		}
	}
}
