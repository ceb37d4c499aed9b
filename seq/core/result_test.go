package core

import (
	"errors"
	"strings"
	"testing"
)

func TestErrPanic(t *testing.T) {
	var err ErrPanic
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = NewPanicError(r)
			}
		}()
		panic("kaboom")
	}()

	if err.Value != "kaboom" {
		t.Errorf("Value = %v, want %q", err.Value, "kaboom")
	}
	if !strings.HasPrefix(err.Error(), "panic: kaboom") {
		t.Errorf("Error() = %q, want prefix %q", err.Error(), "panic: kaboom")
	}
	if strings.Contains(err.Stack, "github.com/lguimbarda/min-seq/seq/") {
		t.Errorf("stack contains internal frames:\n%s", err.Stack)
	}

	cause := errors.New("inner")
	if !errors.Is(ErrPanic{Value: cause}, cause) {
		t.Error("ErrPanic does not unwrap an error value")
	}
	if (ErrPanic{Value: 3}).Unwrap() != nil {
		t.Error("ErrPanic unwraps a non-error value")
	}
}

func TestCleanStack(t *testing.T) {
	stack := "app/main.run\n\t/src/app/main.go:10\n" +
		"github.com/lguimbarda/min-seq/seq/core.Map\n\t/src/min-seq/seq/core/map.go:20\n" +
		"testing.tRunner\n\t/go/src/testing/testing.go:1595"

	got := cleanStack(stack)
	for _, s := range []string{"app/main.run", "main.go:10", "testing.tRunner"} {
		if !strings.Contains(got, s) {
			t.Errorf("cleanStack() = %q, want it to contain %q", got, s)
		}
	}
	for _, s := range []string{"core.Map", "map.go:20"} {
		if strings.Contains(got, s) {
			t.Errorf("cleanStack() = %q, want %q removed", got, s)
		}
	}
	if cleanStack("") != "" {
		t.Error("cleanStack(\"\") is not empty")
	}
}

func TestResult_States(t *testing.T) {
	failure := errors.New("failure")
	marker := errors.New("marker")

	tests := []struct {
		name         string
		res          Result[int]
		wantValue    bool
		wantError    error
		wantSentinel error
		wantString   string
	}{
		{name: "ok", res: Ok(42), wantValue: true, wantString: "Ok(42)"},
		{name: "err", res: Err[int](failure), wantError: failure, wantString: "Err(failure)"},
		{name: "err nil", res: Err[int](nil), wantError: errNilError, wantString: "Err(core: Err called with nil error)"},
		{name: "sentinel", res: Sentinel[int](marker), wantSentinel: marker, wantString: "Sentinel(marker)"},
		{name: "end of stream", res: EndOfStream[int](), wantSentinel: ErrEndOfStream, wantString: "Sentinel(end of stream)"},
		{name: "explicit", res: NewResult(7, nil, false), wantValue: true, wantString: "Ok(7)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.IsValue(); got != tt.wantValue {
				t.Errorf("IsValue() = %v, want %v", got, tt.wantValue)
			}
			if got := tt.res.IsError(); got != (tt.wantError != nil) {
				t.Errorf("IsError() = %v, want %v", got, tt.wantError != nil)
			}
			if got := tt.res.IsSentinel(); got != (tt.wantSentinel != nil) {
				t.Errorf("IsSentinel() = %v, want %v", got, tt.wantSentinel != nil)
			}
			if got := tt.res.Error(); got != tt.wantError {
				t.Errorf("Error() = %v, want %v", got, tt.wantError)
			}
			if got := tt.res.Sentinel(); got != tt.wantSentinel {
				t.Errorf("Sentinel() = %v, want %v", got, tt.wantSentinel)
			}
			if got := tt.res.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
		})
	}
}

func TestResult_Unwrap(t *testing.T) {
	if v, err := Ok(5).Unwrap(); v != 5 || err != nil {
		t.Errorf("Ok(5).Unwrap() = (%d, %v), want (5, nil)", v, err)
	}
	failure := errors.New("failure")
	if v, err := Err[int](failure).Unwrap(); v != 0 || err != failure {
		t.Errorf("Err.Unwrap() = (%d, %v), want (0, %v)", v, err, failure)
	}
	if v, err := EndOfStream[int]().Unwrap(); v != 0 || err != nil {
		t.Errorf("EndOfStream.Unwrap() = (%d, %v), want (0, nil)", v, err)
	}
}
