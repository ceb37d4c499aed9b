package tuple

import (
	"slices"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTuple_Equality(t *testing.T) {
	set := map[Tuple2[int, string]]bool{}
	set[New2(1, "abc")] = true
	set[New2(1, "abc")] = true
	set[New2(0, "")] = true
	set[New2(1, "")] = true
	if len(set) != 3 {
		t.Errorf("len(set) = %d, want 3", len(set))
	}

	var ptr *int
	if New3(1, "a", ptr) != New3(1, "a", ptr) {
		t.Error("equal tuples compare unequal")
	}
}

func TestTuple_String(t *testing.T) {
	tests := []struct {
		name  string
		tuple Tuple
		want  string
	}{
		{name: "degree 2", tuple: New2(1, "abc"), want: "(1, abc)"},
		{name: "degree 3 with nil", tuple: New3[int, string, error](1, "b", nil), want: "(1, b, <nil>)"},
		{name: "range", tuple: NewRange(3, 1), want: "(1, 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tuple.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTuple_ArrayAndDegree(t *testing.T) {
	tup := New16(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, "sixteen")
	if tup.Degree() != 16 {
		t.Errorf("Degree() = %d, want 16", tup.Degree())
	}
	arr := tup.Array()
	if len(arr) != 16 || arr[15] != "sixteen" || arr[0] != 1 {
		t.Errorf("Array() = %v", arr)
	}
	if diff := cmp.Diff([]any{1, "a", 2.5}, slices.Collect(Values(New3(1, "a", 2.5)))); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}

	a, b, c := New3(1, "x", true).Unpack()
	if a != 1 || b != "x" || !c {
		t.Errorf("Unpack() = (%v, %v, %v)", a, b, c)
	}
}

func TestTuple2_SwapAndMap(t *testing.T) {
	if got := New2("a", 1).Swap(); got != New2(1, "a") {
		t.Errorf("Swap() = %v, want (1, a)", got)
	}
	if got := New2(1, "a").Swap().Swap(); got != New2(1, "a") {
		t.Errorf("Swap().Swap() = %v, want (1, a)", got)
	}
	if got := Map1(New2(2, "b"), func(v int) float64 { return float64(v) / 4 }); got != New2(0.5, "b") {
		t.Errorf("Map1() = %v, want (0.5, b)", got)
	}
	if got := Map2(New2(2, "b"), func(s string) int { return len(s) }); got != New2(2, 1) {
		t.Errorf("Map2() = %v, want (2, 1)", got)
	}
}

func TestCompare(t *testing.T) {
	tuples := []Tuple2[int, string]{New2(2, "a"), New2(1, "b"), New2(1, "a")}
	sort.Slice(tuples, func(i, j int) bool { return Compare2(tuples[i], tuples[j]) < 0 })

	want := []Tuple2[int, string]{New2(1, "a"), New2(1, "b"), New2(2, "a")}
	if diff := cmp.Diff(want, tuples); diff != "" {
		t.Errorf("sorted mismatch (-want +got):\n%s", diff)
	}
	if c := Compare4(New4(1, 2, 3, 4), New4(1, 2, 3, 4)); c != 0 {
		t.Errorf("Compare4() of equal tuples = %d, want 0", c)
	}
	if c := Compare3(New3(1, 2, 9), New3(1, 3, 0)); c >= 0 {
		t.Errorf("Compare3() = %d, want < 0", c)
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Range[int]
		overlaps  bool
		intersect Range[int]
	}{
		{name: "overlapping", a: NewRange(1, 3), b: NewRange(2, 4), overlaps: true, intersect: NewRange(2, 3)},
		{name: "disjoint", a: NewRange(1, 3), b: NewRange(5, 8)},
		{name: "touching", a: NewRange(1, 3), b: NewRange(3, 5), overlaps: true, intersect: NewRange(3, 3)},
		{name: "reversed bounds", a: NewRange(4, 2), b: NewRange(3, 1), overlaps: true, intersect: NewRange(2, 3)},
		{name: "contained", a: NewRange(0, 10), b: NewRange(4, 5), overlaps: true, intersect: NewRange(4, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.overlaps {
				t.Errorf("Overlaps() = %v, want %v", got, tt.overlaps)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.overlaps {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tt.overlaps)
			}
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.overlaps {
				t.Fatalf("Intersect() ok = %v, want %v", ok, tt.overlaps)
			}
			if ok && got != tt.intersect {
				t.Errorf("Intersect() = %v, want %v", got, tt.intersect)
			}
		})
	}

	if r := NewRange("b", "a"); r.V1 != "a" || !r.Contains("a") || r.Contains("c") {
		t.Errorf("NewRange(b, a) = %v", r)
	}
}
