// Package tuple provides fixed-arity tuple types of degree 2 through 16.
//
// Tuples are plain comparable-when-their-members-are structs with
// exported fields V1..Vn, so they work as map keys and with ==.
package tuple

//go:generate go run ../../internal/gen/tuples -kind tuple -o tuples_gen.go

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Tuple is implemented by every TupleN.
type Tuple interface {
	// Degree is the number of elements.
	Degree() int
	// Array returns the elements in order.
	Array() []any
	String() string
}

// format renders elements as "(v1, v2, ...)".
func format(values []any) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Swap returns the tuple with its two elements exchanged.
func (t Tuple2[T1, T2]) Swap() Tuple2[T2, T1] {
	return Tuple2[T2, T1]{V1: t.V2, V2: t.V1}
}

// Map1 replaces the first element of t with fn applied to it.
func Map1[T1, T2, U any](t Tuple2[T1, T2], fn func(T1) U) Tuple2[U, T2] {
	return Tuple2[U, T2]{V1: fn(t.V1), V2: t.V2}
}

// Map2 replaces the second element of t with fn applied to it.
func Map2[T1, T2, U any](t Tuple2[T1, T2], fn func(T2) U) Tuple2[T1, U] {
	return Tuple2[T1, U]{V1: t.V1, V2: fn(t.V2)}
}

// Values iterates over the elements of t in order.
func Values(t Tuple) iter.Seq[any] {
	return slices.Values(t.Array())
}
