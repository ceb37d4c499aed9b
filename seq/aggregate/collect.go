package aggregate

import (
	"context"
	"fmt"
	"strings"

	"github.com/lguimbarda/min-seq/seq/core"
)

// ToString concatenates the values formatted with fmt.Sprint.
func ToString[T any](ctx context.Context, s core.Seq[T]) (string, error) {
	return Join(ctx, s, "")
}

// Join formats the values with fmt.Sprint and joins them with sep.
//
//	Join(ctx, Of(1, 2, 3), ", ") == "1, 2, 3"
func Join[T any](ctx context.Context, s core.Seq[T], sep string) (string, error) {
	var sb strings.Builder
	first := true
	err := core.ForEach(ctx, s, func(v T) error {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		fmt.Fprint(&sb, v)
		return nil
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ToMap builds a map from the values. Later values overwrite earlier ones
// with the same key.
func ToMap[T any, K comparable, V any](ctx context.Context, s core.Seq[T], key func(T) K, value func(T) V) (map[K]V, error) {
	m := make(map[K]V)
	err := core.ForEach(ctx, s, func(v T) error {
		m[key(v)] = value(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ToSet collects the distinct values.
func ToSet[T comparable](ctx context.Context, s core.Seq[T]) (map[T]struct{}, error) {
	return ToMap(ctx, s, func(v T) T { return v }, func(T) struct{} { return struct{}{} })
}

// GroupBy collects the values into slices keyed by key, keeping the
// encounter order within each group.
func GroupBy[T any, K comparable](ctx context.Context, s core.Seq[T], key func(T) K) (map[K][]T, error) {
	groups := make(map[K][]T)
	err := core.ForEach(ctx, s, func(v T) error {
		k := key(v)
		groups[k] = append(groups[k], v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}
