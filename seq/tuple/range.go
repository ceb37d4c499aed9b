package tuple

import "cmp"

// Range is a closed interval [V1, V2]. Constructing one orders the
// bounds, so V1 <= V2 always holds.
type Range[T cmp.Ordered] struct {
	Tuple2[T, T]
}

// NewRange creates a Range from two bounds in any order.
func NewRange[T cmp.Ordered](a, b T) Range[T] {
	if cmp.Compare(a, b) > 0 {
		a, b = b, a
	}
	return Range[T]{Tuple2: New2(a, b)}
}

// Overlaps reports whether r and other share at least one point.
//
//	NewRange(1, 3).Overlaps(NewRange(2, 4)) // true
//	NewRange(1, 3).Overlaps(NewRange(5, 8)) // false
func (r Range[T]) Overlaps(other Range[T]) bool {
	return cmp.Compare(r.V1, other.V2) <= 0 && cmp.Compare(r.V2, other.V1) >= 0
}

// Intersect returns the common part of r and other. ok is false when
// they do not overlap.
//
//	NewRange(1, 3).Intersect(NewRange(2, 4)) // [2, 3], true
func (r Range[T]) Intersect(other Range[T]) (Range[T], bool) {
	if !r.Overlaps(other) {
		return Range[T]{}, false
	}
	return Range[T]{Tuple2: New2(max(r.V1, other.V1), min(r.V2, other.V2))}, true
}

// Contains reports whether v lies within r.
func (r Range[T]) Contains(v T) bool {
	return cmp.Compare(r.V1, v) <= 0 && cmp.Compare(v, r.V2) <= 0
}
