package unchecked

import (
	"errors"
	"strconv"
	"testing"

	"github.com/lguimbarda/min-seq/seq/core"
)

func mustPanic(t *testing.T, fn func()) any {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	if recovered == nil {
		t.Fatal("expected a panic")
	}
	return recovered
}

func TestFunction_DefaultHandler(t *testing.T) {
	parse := Function(strconv.Atoi)
	if got := parse("12"); got != 12 {
		t.Errorf("parse(12) = %d, want 12", got)
	}

	r := mustPanic(t, func() { parse("x") })
	err, ok := r.(*Error)
	if !ok {
		t.Fatalf("panic value = %T, want *Error", r)
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Errorf("cause = %v, want a *strconv.NumError", err.Cause)
	}
}

func TestFunction_CustomHandler(t *testing.T) {
	var handled []error
	record := func(err error) { handled = append(handled, err) }
	boom := errors.New("boom")

	tests := []struct {
		name string
		call func()
	}{
		{name: "function", call: func() { Function(func(int) (int, error) { return 0, boom }, record)(1) }},
		{name: "bi function", call: func() { BiFunction(func(int, int) (int, error) { return 0, boom }, record)(1, 2) }},
		{name: "supplier", call: func() { Supplier(func() (int, error) { return 0, boom }, record)() }},
		{name: "consumer", call: func() { Consumer(func(int) error { return boom }, record)(1) }},
		{name: "bi consumer", call: func() { BiConsumer(func(int, string) error { return boom }, record)(1, "a") }},
		{name: "predicate", call: func() { Predicate(func(int) (bool, error) { return true, boom }, record)(1) }},
		{name: "bi predicate", call: func() { BiPredicate(func(int, int) (bool, error) { return true, boom }, record)(1, 2) }},
		{name: "runnable", call: func() { Runnable(func() error { return boom }, record)() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handled = nil
			tt.call()
			if len(handled) != 1 || handled[0] != boom {
				t.Errorf("handled = %v, want [boom]", handled)
			}
		})
	}
}

func TestPredicate_FalseOnIgnoredError(t *testing.T) {
	failing := Predicate(func(int) (bool, error) { return true, errors.New("no") }, Ignore)
	if failing(1) {
		t.Error("predicate returned true for a failed test")
	}
}

func TestChecked(t *testing.T) {
	boom := errors.New("boom")

	parse := CheckedFunction(Function(strconv.Atoi))
	if v, err := parse("7"); v != 7 || err != nil {
		t.Errorf("parse(7) = (%d, %v), want (7, nil)", v, err)
	}
	if _, err := parse("x"); err == nil {
		t.Error("parse(x) returned no error")
	}

	if _, err := CheckedSupplier(Supplier(func() (int, error) { return 0, boom }))(); err != boom {
		t.Errorf("CheckedSupplier error = %v, want boom", err)
	}
	if err := CheckedConsumer(Consumer(func(int) error { return boom }))(1); err != boom {
		t.Errorf("CheckedConsumer error = %v, want boom", err)
	}
	if err := CheckedRunnable(func() {})(); err != nil {
		t.Errorf("CheckedRunnable error = %v, want nil", err)
	}

	err := CheckedRunnable(func() { panic("plain") })()
	var perr core.ErrPanic
	if !errors.As(err, &perr) || perr.Value != "plain" {
		t.Errorf("CheckedRunnable error = %v, want ErrPanic(plain)", err)
	}
}
