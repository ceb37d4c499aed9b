// Package filter provides operators that drop entries from a sequence
// without changing their type. Error entries always pass through and are
// never counted as elements.
package filter

import (
	"github.com/lguimbarda/min-seq/seq/core"
)

// Where creates a Transformer that only passes through values matching
// the predicate.
func Where[T any](predicate func(T) bool) core.Transformer[T, T] {
	return core.Stage(func(it core.Iterator[T]) core.Result[T] {
		for {
			res := it.Next()
			if !res.IsValue() || predicate(res.Value()) {
				return res
			}
		}
	})
}

// Exclude creates a Transformer that drops values matching the
// predicate. It is the inverse of Where.
func Exclude[T any](predicate func(T) bool) core.Transformer[T, T] {
	return Where(func(v T) bool { return !predicate(v) })
}

// MapWhere filters and maps in a single pass. fn returns the mapped
// value and true to keep it.
func MapWhere[IN, OUT any](fn func(IN) (OUT, bool)) core.Transformer[IN, OUT] {
	return core.Stage(func(it core.Iterator[IN]) core.Result[OUT] {
		for {
			res := it.Next()
			if !res.IsValue() {
				return core.Forward[OUT](res)
			}
			if out, ok := fn(res.Value()); ok {
				return core.Ok(out)
			}
		}
	})
}

// IgnoreErrors creates a Transformer that drops error entries.
func IgnoreErrors[T any]() core.Transformer[T, T] {
	return core.Stage(func(it core.Iterator[T]) core.Result[T] {
		for {
			if res := it.Next(); !res.IsError() {
				return res
			}
		}
	})
}
