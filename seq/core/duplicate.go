package core

import (
	"errors"
	"sync"
)

// ErrGapLimit is the error entry handed to the leading cursor of a
// bounded Duplicate when its gap buffer is full. Nothing is pulled from
// the source in that case. Further pulls on the lead return a sentinel
// carrying ErrGapLimit and HasNext reports false, until the other cursor
// consumes an entry; after that the lead can be pulled again.
var ErrGapLimit = errors.New("duplicate: gap buffer limit reached")

// DuplicateConfig configures Duplicate.
type DuplicateConfig struct {
	// MaxGap bounds the gap buffer. Zero means unbounded.
	MaxGap int

	// OnGap is called after every change to the gap buffer with the new
	// size and the change (+1 push, -1 pop). It runs while the tee lock is
	// held and must not pull from either cursor.
	OnGap func(size, delta int)
}

// DuplicateOption is a functional option for Duplicate.
type DuplicateOption func(*DuplicateConfig)

// WithMaxGap bounds how far the leading cursor may run ahead of the
// lagging one. A lead that reaches the bound gets one ErrGapLimit entry
// and then reports the end, so consumers that skip errors terminate.
// Pulling the returned iterator again after the other side has caught up
// resumes it; a Seq built on top of it stays ended.
func WithMaxGap(n int) DuplicateOption {
	return func(c *DuplicateConfig) {
		c.MaxGap = n
	}
}

// WithGapObserver registers a callback tracking the gap buffer size.
// Multiple observers are called in registration order.
func WithGapObserver(fn func(size, delta int)) DuplicateOption {
	return func(c *DuplicateConfig) {
		if prev := c.OnGap; prev != nil {
			c.OnGap = func(size, delta int) {
				prev(size, delta)
				fn(size, delta)
			}
			return
		}
		c.OnGap = fn
	}
}

// lead identifies which cursor is ahead of the other.
type lead uint8

const (
	undesignated lead = iota
	leadA
	leadB
)

// tee is the state shared by the two cursors returned from Duplicate.
// mu serializes every access to source, gap and ahead.
type tee[T any] struct {
	mu     sync.Mutex
	source Iterator[T]
	gap    gapQueue[Result[T]]
	ahead  lead
	cfg    DuplicateConfig

	// stalled is set once the lead has been told the gap is full and
	// cleared by the next pop.
	stalled bool
}

type teeCursor[T any] struct {
	shared *tee[T]
	side   lead
}

// Duplicate splits a single-pass source into two single-pass iterators
// that each replay every entry of source, in order, exactly once. The
// source is consumed lazily and pulled at most once per entry; entries
// pulled by the cursor that is ahead are kept in a gap buffer until the
// other cursor consumes them, so memory is proportional to the distance
// between the two consumers. Error entries are buffered like values.
//
// The first cursor to pull becomes the lead. When the lagging cursor has
// drained the gap and pulls again, both are level and it takes the lead,
// so either consumer may run ahead at any time without ending early.
//
// The returned iterators may be consumed from different goroutines, but
// each one must not be pulled concurrently with itself. source must not
// be used by anyone else afterwards.
func Duplicate[T any](source Iterator[T], opts ...DuplicateOption) (Iterator[T], Iterator[T]) {
	t := &tee[T]{source: source}
	for _, opt := range opts {
		opt(&t.cfg)
	}
	return &teeCursor[T]{shared: t, side: leadA}, &teeCursor[T]{shared: t, side: leadB}
}

func (c *teeCursor[T]) HasNext() bool {
	t := c.shared
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ahead == c.side || t.ahead == undesignated || t.gap.len() == 0 {
		if t.full() {
			return !t.stalled
		}
		return t.source.HasNext()
	}
	return true
}

func (c *teeCursor[T]) Next() Result[T] {
	t := c.shared
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ahead != c.side && t.gap.len() > 0 {
		res, _ := t.gap.pop()
		t.stalled = false
		t.observe(-1)
		return res
	}

	// Level with the other cursor or already ahead of it.
	t.ahead = c.side
	if t.full() {
		if t.stalled {
			return Sentinel[T](ErrGapLimit)
		}
		t.stalled = true
		return Err[T](ErrGapLimit)
	}
	res := t.source.Next()
	if res.IsSentinel() {
		return res
	}
	t.gap.push(res)
	t.observe(+1)
	return res
}

func (t *tee[T]) full() bool {
	return t.cfg.MaxGap > 0 && t.gap.len() >= t.cfg.MaxGap
}

func (t *tee[T]) observe(delta int) {
	if t.cfg.OnGap != nil {
		t.cfg.OnGap(t.gap.len(), delta)
	}
}

// Duplicate splits s into two independent sequences, see Duplicate.
func (s Seq[T]) Duplicate(opts ...DuplicateOption) (Seq[T], Seq[T]) {
	a, b := Duplicate(s.Iterator(), opts...)
	return From(a), From(b)
}
