package core

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMap(t *testing.T) {
	failure := errors.New("upstream")
	tests := []struct {
		name  string
		input []Result[int]
		fn    func(int) (string, error)
		want  []string
	}{
		{
			name:  "maps values",
			input: okResults(1, 2, 3),
			fn:    func(v int) (string, error) { return strconv.Itoa(v * 10), nil },
			want:  []string{"Ok(10)", "Ok(20)", "Ok(30)"},
		},
		{
			name:  "forwards upstream errors",
			input: []Result[int]{Ok(1), Err[int](failure), Ok(2)},
			fn:    func(v int) (string, error) { return strconv.Itoa(v), nil },
			want:  []string{"Ok(1)", "Err(upstream)", "Ok(2)"},
		},
		{
			name:  "function error becomes entry",
			input: okResults(1, 2),
			fn: func(v int) (string, error) {
				if v == 1 {
					return "", errors.New("odd")
				}
				return "even", nil
			},
			want: []string{"Err(odd)", "Ok(even)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Map(tt.fn).Apply(From[int](&countingSource[int]{items: tt.input}))
			var got []string
			for _, res := range Collect(context.Background(), out) {
				got = append(got, res.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMap_RecoversPanic(t *testing.T) {
	out := Map(func(v int) (int, error) {
		if v == 2 {
			panic("two")
		}
		return v, nil
	}).Apply(fromSlice([]int{1, 2, 3}))

	results := Collect(context.Background(), out)
	if len(results) != 3 {
		t.Fatalf("got %d entries, want 3", len(results))
	}
	var perr ErrPanic
	if !errors.As(results[1].Error(), &perr) || perr.Value != "two" {
		t.Errorf("entry 1 = %v, want ErrPanic(two)", results[1])
	}
	if results[2].Value() != 3 {
		t.Errorf("entry 2 = %v, want Ok(3)", results[2])
	}
}

func TestMap_IsLazy(t *testing.T) {
	src := &countingSource[int]{items: okResults(1, 2, 3)}
	out := Map(func(v int) (int, error) { return v, nil }).Apply(From[int](src))
	if src.pulled != 0 {
		t.Fatalf("Apply pulled %d entries", src.pulled)
	}
	out.Next()
	if src.pulled != 1 {
		t.Errorf("one Next pulled %d entries, want 1", src.pulled)
	}
}

func TestFlatMap(t *testing.T) {
	out := FlatMap(func(v int) ([]int, error) {
		switch v {
		case 0:
			return nil, nil
		case 3:
			return nil, errors.New("three")
		}
		return []int{v, v}, nil
	}).Apply(fromSlice([]int{0, 1, 2, 3, 4}))

	var got []string
	for _, res := range Collect(context.Background(), out) {
		got = append(got, res.String())
	}
	want := []string{"Ok(1)", "Ok(1)", "Ok(2)", "Ok(2)", "Err(three)", "Ok(4)", "Ok(4)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStage_Filtering(t *testing.T) {
	evens := Stage(func(it Iterator[int]) Result[int] {
		for {
			res := it.Next()
			if !res.IsValue() || res.Value()%2 == 0 {
				return res
			}
		}
	})

	got, err := Slice(context.Background(), evens.Apply(fromSlice([]int{1, 2, 3, 4, 5, 6})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{2, 4, 6}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
