package core

import "context"

// Hooks holds typed observation callbacks fired by the terminal drivers
// (Slice, First, Run, Collect, ForEach) while they drain a Seq[T]. All
// fields are optional. Hooks run synchronously on the draining goroutine,
// so they should be cheap.
type Hooks[T any] struct {
	OnStart    func()      // drain begins
	OnValue    func(T)     // value entry pulled
	OnError    func(error) // error entry pulled
	OnSentinel func(error) // sequence ended, with the sentinel cause
	OnComplete func()      // drain finished, also on cancellation or early stop
}

type hooksKey[T any] struct{}

// WithHooks attaches hooks for sequences of T to ctx. Repeated calls
// compose in FIFO order: earlier hooks fire first.
//
// Example:
//
//	ctx := core.WithHooks(ctx, core.Hooks[int]{
//	    OnValue: func(v int) { log.Printf("value: %d", v) },
//	})
func WithHooks[T any](ctx context.Context, hooks Hooks[T]) context.Context {
	if ctx == nil {
		panic("nil context")
	}
	existing := hookSets[T](ctx)
	sets := make([]Hooks[T], len(existing), len(existing)+1)
	copy(sets, existing)
	return context.WithValue(ctx, hooksKey[T]{}, append(sets, hooks))
}

func hookSets[T any](ctx context.Context) []Hooks[T] {
	if ctx == nil {
		return nil
	}
	sets, _ := ctx.Value(hooksKey[T]{}).([]Hooks[T])
	return sets
}

// WithSafeHooks attaches hooks whose panics are recovered and passed to
// panicHandler (or dropped when it is nil) instead of unwinding the drain.
func WithSafeHooks[T any](ctx context.Context, hooks Hooks[T], panicHandler func(any)) context.Context {
	if panicHandler == nil {
		panicHandler = func(any) {}
	}
	guard := func(fn func()) {
		defer func() {
			if r := recover(); r != nil {
				panicHandler(r)
			}
		}()
		fn()
	}

	var safe Hooks[T]
	if hooks.OnStart != nil {
		safe.OnStart = func() { guard(hooks.OnStart) }
	}
	if hooks.OnValue != nil {
		safe.OnValue = func(v T) { guard(func() { hooks.OnValue(v) }) }
	}
	if hooks.OnError != nil {
		safe.OnError = func(err error) { guard(func() { hooks.OnError(err) }) }
	}
	if hooks.OnSentinel != nil {
		safe.OnSentinel = func(err error) { guard(func() { hooks.OnSentinel(err) }) }
	}
	if hooks.OnComplete != nil {
		safe.OnComplete = func() { guard(hooks.OnComplete) }
	}
	return WithHooks(ctx, safe)
}

// hookInvoker is resolved once per drain so the per-entry path is a
// nil check when no hooks are registered.
type hookInvoker[T any] struct {
	sets []Hooks[T]
}

func newHookInvoker[T any](ctx context.Context) hookInvoker[T] {
	return hookInvoker[T]{sets: hookSets[T](ctx)}
}

func (h hookInvoker[T]) start() {
	for _, hooks := range h.sets {
		if hooks.OnStart != nil {
			hooks.OnStart()
		}
	}
}

func (h hookInvoker[T]) result(res Result[T]) {
	for _, hooks := range h.sets {
		switch {
		case res.IsValue():
			if hooks.OnValue != nil {
				hooks.OnValue(res.Value())
			}
		case res.IsError():
			if hooks.OnError != nil {
				hooks.OnError(res.Error())
			}
		default:
			if hooks.OnSentinel != nil {
				hooks.OnSentinel(res.Sentinel())
			}
		}
	}
}

func (h hookInvoker[T]) complete() {
	for _, hooks := range h.sets {
		if hooks.OnComplete != nil {
			hooks.OnComplete()
		}
	}
}
