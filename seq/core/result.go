package core

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrPanic wraps a value recovered from a panicking user callback.
// Stack holds the trace with internal min-seq frames removed so the
// offending user frame is on top.
type ErrPanic struct {
	Value any
	Stack string
}

func (e ErrPanic) Error() string {
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the recovered value when it is itself an error.
func (e ErrPanic) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// NewPanicError builds an ErrPanic from a recovered value. It must be
// called from the deferred function that recovered.
func NewPanicError(recovered any) ErrPanic {
	return ErrPanic{
		Value: recovered,
		Stack: cleanStack(captureStack(4)), // runtime.Callers, captureStack, NewPanicError, deferred func
	}
}

func captureStack(skip int) string {
	const maxFrames = 32
	var pcs [maxFrames]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}

// cleanStack drops min-seq frames (and the file:line row under each) from
// a trace produced by captureStack.
func cleanStack(stack string) string {
	var kept []string
	skipLocation := false

	for _, line := range strings.Split(stack, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, "\t") {
			skipLocation = strings.Contains(line, "github.com/lguimbarda/min-seq/seq")
			if skipLocation {
				continue
			}
		} else if skipLocation {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// Result is one entry pulled from a sequence. It is in exactly one of
// three states:
//   - Value: an element (IsValue)
//   - Error: a failed element; later entries may still follow (IsError)
//   - Sentinel: a control signal, normally end of sequence (IsSentinel)
//
// Errors are ordinary entries. Operators pass them through and the
// duplicate gap buffer stores them like values, so every consumer of a
// sequence observes a failure at the position it occurred.
type Result[T any] struct {
	value      T
	err        error
	isSentinel bool
}

// NewResult creates a Result with explicit control over all fields.
func NewResult[T any](value T, err error, isSentinel bool) Result[T] {
	return Result[T]{value: value, err: err, isSentinel: isSentinel}
}

// Ok wraps a successfully produced element.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil err is replaced by a placeholder so an Err
// can never be mistaken for a value.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errNilError
	}
	return Result[T]{err: err}
}

// Sentinel creates a sentinel with an optional cause, for instance the
// context error of a source that stopped early.
func Sentinel[T any](err error) Result[T] {
	return Result[T]{err: err, isSentinel: true}
}

var (
	// ErrEndOfStream is the cause carried by the end-of-sequence sentinel.
	ErrEndOfStream = errors.New("end of stream")

	errNilError = errors.New("core: Err called with nil error")
)

// EndOfStream is the sentinel returned by Next once a sequence is
// exhausted.
func EndOfStream[T any]() Result[T] {
	return Result[T]{err: ErrEndOfStream, isSentinel: true}
}

// IsValue reports whether r holds an element.
func (r Result[T]) IsValue() bool {
	return r.err == nil && !r.isSentinel
}

// IsSentinel reports whether r is a control signal.
func (r Result[T]) IsSentinel() bool {
	return r.isSentinel
}

// IsError reports whether r holds a failure.
func (r Result[T]) IsError() bool {
	return r.err != nil && !r.isSentinel
}

// Value returns the element, or the zero value for errors and sentinels.
func (r Result[T]) Value() T {
	return r.value
}

// Error returns the failure of an error Result and nil otherwise.
func (r Result[T]) Error() error {
	if r.isSentinel {
		return nil
	}
	return r.err
}

// Sentinel returns the cause of a sentinel Result and nil otherwise.
func (r Result[T]) Sentinel() error {
	if !r.isSentinel {
		return nil
	}
	return r.err
}

// Unwrap returns the value and the error of an error Result. Sentinels
// unwrap to the zero value and a nil error.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.Error()
}

func (r Result[T]) String() string {
	switch {
	case r.isSentinel:
		return fmt.Sprintf("Sentinel(%v)", r.err)
	case r.err != nil:
		return fmt.Sprintf("Err(%v)", r.err)
	default:
		return fmt.Sprintf("Ok(%v)", r.value)
	}
}
