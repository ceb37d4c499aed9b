package core

import "math/bits"

// gapQueue is a FIFO ring buffer whose capacity is always a power of two
// so wrapping is a mask. It grows on demand and releases its backing
// array once drained past a quarter of its capacity.
type gapQueue[T any] struct {
	buf  []T
	head int
	size int
}

func (q *gapQueue[T]) len() int {
	return q.size
}

func (q *gapQueue[T]) push(v T) {
	if q.size == len(q.buf) {
		q.resize(q.size + 1)
	}
	q.buf[(q.head+q.size)&(len(q.buf)-1)] = v
	q.size++
}

func (q *gapQueue[T]) pop() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) & (len(q.buf) - 1)
	q.size--
	if len(q.buf) > minGapCapacity && q.size <= len(q.buf)/4 {
		q.resize(q.size)
	}
	return v, true
}

const minGapCapacity = 16

// resize moves the queued entries into a fresh array large enough for
// want entries.
func (q *gapQueue[T]) resize(want int) {
	capacity := minGapCapacity
	if want > capacity {
		capacity = 1 << bits.Len(uint(want-1))
	}
	buf := make([]T, capacity)
	if q.size > 0 {
		if q.head+q.size <= len(q.buf) {
			copy(buf, q.buf[q.head:q.head+q.size])
		} else {
			n := copy(buf, q.buf[q.head:])
			copy(buf[n:], q.buf[:q.size-n])
		}
	}
	q.buf = buf
	q.head = 0
}
