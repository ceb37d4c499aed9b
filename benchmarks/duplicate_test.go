package benchmarks

import (
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/lguimbarda/min-seq/seq"
	"github.com/lguimbarda/min-seq/seq/combine"
)

// =============================================================================
// Duplicate Benchmarks
// =============================================================================

// Lockstep consumption keeps the gap at one entry.
func BenchmarkDuplicate_MinSeqLockstep_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		left, right := seq.Duplicate(seq.FromSlice(data))
		l, r := left.Iterator(), right.Iterator()
		sum := 0
		for l.HasNext() {
			sum += l.Next().Value() + r.Next().Value()
		}
		_ = sum
	}
}

// Draining one side first buffers the whole input in the gap.
func BenchmarkDuplicate_MinSeqDrainFirst_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		left, right := seq.Duplicate(seq.FromSlice(data))
		_, _ = seq.Slice(ctx, left)
		_, _ = seq.Slice(ctx, right)
	}
}

// Re-iterating a query is how go-linq reads a source twice.
func BenchmarkDuplicate_GoLinq_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		query := linq.From(data)
		var left, right []int
		query.ToSlice(&left)
		query.ToSlice(&right)
	}
}

func BenchmarkDuplicate_RawCopy_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		left := make([]int, len(data))
		copy(left, data)
		right := make([]int, len(data))
		copy(right, data)
	}
}

// =============================================================================
// Zip Benchmarks
// =============================================================================

func BenchmarkZip_MinSeq_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = seq.Slice(ctx, combine.Zip(seq.FromSlice(data), seq.FromSlice(data)))
	}
}

func BenchmarkZip_Lo_Large(b *testing.B) {
	data := generateInts(LargeSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = lo.Zip2(data, data)
	}
}
