package combine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lguimbarda/min-seq/seq"
	"github.com/lguimbarda/min-seq/seq/combine"
	"github.com/lguimbarda/min-seq/seq/tuple"
)

func values[T any](t *testing.T, s seq.Seq[T]) []T {
	t.Helper()
	got, err := seq.Slice(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

func TestZip(t *testing.T) {
	tests := []struct {
		name  string
		left  []int
		right []string
		want  []tuple.Tuple2[int, string]
	}{
		{
			name:  "equal length",
			left:  []int{1, 2, 3},
			right: []string{"a", "b", "c"},
			want:  []tuple.Tuple2[int, string]{tuple.New2(1, "a"), tuple.New2(2, "b"), tuple.New2(3, "c")},
		},
		{
			name:  "differing length",
			left:  []int{1, 2},
			right: []string{"a", "b", "c", "d"},
			want:  []tuple.Tuple2[int, string]{tuple.New2(1, "a"), tuple.New2(2, "b")},
		},
		{name: "empty", left: nil, right: []string{"a"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := values(t, combine.Zip(seq.FromSlice(tt.left), seq.FromSlice(tt.right)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestZip_InfiniteSide(t *testing.T) {
	got := values(t, combine.ZipWith(seq.Of("a", "b"), seq.Iterate(0, func(v int) int { return v + 1 }),
		func(s string, i int) string { return s + string(rune('0'+i)) }))
	if diff := cmp.Diff([]string{"a0", "b1"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestZip_Errors(t *testing.T) {
	failure := errors.New("left failed")
	left := seq.FromIter2(func(yield func(int, error) bool) {
		_ = yield(1, nil) && yield(0, failure) && yield(3, nil)
	})
	results := seq.Collect(context.Background(), combine.Zip(left, seq.Of("a", "b", "c")))
	if len(results) != 3 {
		t.Fatalf("got %d entries, want 3", len(results))
	}
	if results[1].Error() != failure {
		t.Errorf("entry 1 = %v, want Err(left failed)", results[1])
	}
	if results[2].Value() != tuple.New2(3, "c") {
		t.Errorf("entry 2 = %v, want (3, c)", results[2])
	}
}

func TestZipAll(t *testing.T) {
	got := values(t, combine.ZipAll(seq.Of(1, 2, 3), seq.Of("a"), -1, "?"))
	want := []tuple.Tuple2[int, string]{tuple.New2(1, "a"), tuple.New2(2, "?"), tuple.New2(3, "?")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestZipWithIndex(t *testing.T) {
	tests := []struct {
		input []string
		want  []tuple.Tuple2[string, int]
	}{
		{input: nil, want: nil},
		{input: []string{"a"}, want: []tuple.Tuple2[string, int]{tuple.New2("a", 0)}},
		{input: []string{"a", "b", "c"}, want: []tuple.Tuple2[string, int]{tuple.New2("a", 0), tuple.New2("b", 1), tuple.New2("c", 2)}},
	}

	for _, tt := range tests {
		got := values(t, combine.ZipWithIndex(seq.FromSlice(tt.input)))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ZipWithIndex(%v) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestUnzip(t *testing.T) {
	pairs := func() seq.Seq[tuple.Tuple2[int, string]] {
		return seq.Of(tuple.New2(1, "a"), tuple.New2(2, "b"), tuple.New2(3, "c"))
	}

	nums, strs := combine.Unzip(pairs())
	if diff := cmp.Diff([]int{1, 2, 3}, values(t, nums)); diff != "" {
		t.Errorf("first mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, values(t, strs)); diff != "" {
		t.Errorf("second mismatch (-want +got):\n%s", diff)
	}

	neg, bang := combine.UnzipWith(pairs(), func(i int, s string) (int, string) { return -i, s + "!" })
	if diff := cmp.Diff([]string{"a!", "b!", "c!"}, values(t, bang)); diff != "" {
		t.Errorf("mapped second mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{-1, -2, -3}, values(t, neg)); diff != "" {
		t.Errorf("mapped first mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateComposition(t *testing.T) {
	a, b := seq.Duplicate(seq.Of(1, 2, 3))
	if diff := cmp.Diff([]int{1, 2, 3, 1, 2, 3}, values(t, combine.Concat(a, b))); diff != "" {
		t.Errorf("concat mismatch (-want +got):\n%s", diff)
	}

	a, b = seq.Duplicate(seq.Of(1, 2, 3))
	want := []tuple.Tuple2[int, int]{tuple.New2(1, 1), tuple.New2(2, 2), tuple.New2(3, 3)}
	if diff := cmp.Diff(want, values(t, combine.Zip(a, b))); diff != "" {
		t.Errorf("zip mismatch (-want +got):\n%s", diff)
	}
}

func TestTee(t *testing.T) {
	outs := combine.Tee(seq.Range(0, 4), 3)
	if len(outs) != 3 {
		t.Fatalf("Tee returned %d sequences, want 3", len(outs))
	}
	for i := len(outs) - 1; i >= 0; i-- {
		if diff := cmp.Diff([]int{0, 1, 2, 3}, values(t, outs[i])); diff != "" {
			t.Errorf("output %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	if combine.Tee(seq.Of(1), 0) != nil {
		t.Error("Tee(0) returned sequences")
	}
}

func TestFork(t *testing.T) {
	outs := combine.Fork(seq.Of(1, 2, 3),
		seq.Map(func(v int) int { return v * 10 }),
		seq.Map(func(v int) int { return -v }),
	)
	if diff := cmp.Diff([]int{-1, -2, -3}, values(t, outs[1])); diff != "" {
		t.Errorf("second mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{10, 20, 30}, values(t, outs[0])); diff != "" {
		t.Errorf("first mismatch (-want +got):\n%s", diff)
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name      string
		predicate func(int) bool
		matched   []int
		unmatched []int
	}{
		{name: "odd", predicate: func(i int) bool { return i%2 != 0 }, matched: []int{1, 3, 5}, unmatched: []int{2, 4, 6}},
		{name: "even", predicate: func(i int) bool { return i%2 == 0 }, matched: []int{2, 4, 6}, unmatched: []int{1, 3, 5}},
		{name: "prefix", predicate: func(i int) bool { return i <= 3 }, matched: []int{1, 2, 3}, unmatched: []int{4, 5, 6}},
		{name: "all", predicate: func(int) bool { return true }, matched: []int{1, 2, 3, 4, 5, 6}},
		{name: "none", predicate: func(int) bool { return false }, unmatched: []int{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, unmatched := combine.Partition(seq.Range(1, 7), tt.predicate)
			if diff := cmp.Diff(tt.matched, values(t, matched)); diff != "" {
				t.Errorf("matched mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.unmatched, values(t, unmatched)); diff != "" {
				t.Errorf("unmatched mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitAt(t *testing.T) {
	tests := []struct {
		n          int
		head, tail []int
	}{
		{n: 0, tail: []int{1, 2, 3, 4, 5, 6}},
		{n: 1, head: []int{1}, tail: []int{2, 3, 4, 5, 6}},
		{n: 3, head: []int{1, 2, 3}, tail: []int{4, 5, 6}},
		{n: 6, head: []int{1, 2, 3, 4, 5, 6}},
		{n: 7, head: []int{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		head, tail := combine.SplitAt(seq.Range(1, 7), tt.n)
		if diff := cmp.Diff(tt.head, values(t, head)); diff != "" {
			t.Errorf("SplitAt(%d) head mismatch (-want +got):\n%s", tt.n, diff)
		}
		if diff := cmp.Diff(tt.tail, values(t, tail)); diff != "" {
			t.Errorf("SplitAt(%d) tail mismatch (-want +got):\n%s", tt.n, diff)
		}
	}
}

func TestSplitAtHead(t *testing.T) {
	head, rest := combine.SplitAtHead(seq.Empty[int]())
	if !head.IsSentinel() {
		t.Errorf("head of empty = %v, want sentinel", head)
	}
	if got := values(t, rest); got != nil {
		t.Errorf("rest of empty = %v", got)
	}

	head, rest = combine.SplitAtHead(seq.Of(1, 2, 3))
	if head.Value() != 1 {
		t.Errorf("head = %v, want Ok(1)", head)
	}
	second, rest := combine.SplitAtHead(rest)
	if second.Value() != 2 {
		t.Errorf("second head = %v, want Ok(2)", second)
	}
	if diff := cmp.Diff([]int{3}, values(t, rest)); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}
}

func TestInterleave(t *testing.T) {
	got := values(t, combine.Interleave(seq.Of(1, 2, 3), seq.Of(10), seq.Of(20, 21)))
	if diff := cmp.Diff([]int{1, 10, 20, 2, 21, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestIfEmpty(t *testing.T) {
	if diff := cmp.Diff([]int{9}, values(t, combine.IfEmpty(seq.Empty[int](), seq.Of(9)))); diff != "" {
		t.Errorf("empty source mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, values(t, combine.IfEmpty(seq.Of(1), seq.Of(9)))); diff != "" {
		t.Errorf("non-empty source mismatch (-want +got):\n%s", diff)
	}
}

func TestSequenceEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{name: "equal", a: []int{1, 2, 3}, b: []int{1, 2, 3}, want: true},
		{name: "both empty", want: true},
		{name: "different value", a: []int{1, 2}, b: []int{1, 3}},
		{name: "shorter", a: []int{1, 2}, b: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := combine.SequenceEqual(context.Background(), seq.FromSlice(tt.a), seq.FromSlice(tt.b))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SequenceEqual() = %v, want %v", got, tt.want)
			}
		})
	}
}
