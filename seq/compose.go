package seq

import "github.com/lguimbarda/min-seq/seq/core"

// Through chains two transformers, applying t1 and then t2.
func Through[IN, MID, OUT any](t1 Transformer[IN, MID], t2 Transformer[MID, OUT]) Transformer[IN, OUT] {
	return core.Transmit(func(in Seq[IN]) Seq[OUT] {
		return t2.Apply(t1.Apply(in))
	})
}

// Chain composes transformers of the same type, left to right. With no
// transformers it is the identity.
func Chain[T any](transformers ...Transformer[T, T]) Transformer[T, T] {
	return core.Transmit(func(in Seq[T]) Seq[T] {
		return Pipe(in, transformers...)
	})
}

// Pipe applies transformers to source in order.
func Pipe[T any](source Seq[T], transformers ...Transformer[T, T]) Seq[T] {
	result := source
	for _, t := range transformers {
		result = t.Apply(result)
	}
	return result
}

// Apply applies a single transformer to s. It reads left to right in
// pipelines that change the element type.
func Apply[IN, OUT any](s Seq[IN], transformer Transformer[IN, OUT]) Seq[OUT] {
	return transformer.Apply(s)
}
