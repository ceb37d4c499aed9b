// Package observe attaches observers to sequence drains: typed hooks,
// counters, slog logging, per-entry metering and OpenTelemetry
// instruments, including gap metrics for Duplicate.
//
// Hooks are type-parameterized, so an observer is registered for the
// element type of the sequence it watches:
//
//	ctx := observe.WithValueHook(ctx, func(v int) { fmt.Println("value:", v) })
//	ctx = observe.WithErrorHook[int](ctx, func(err error) { log.Print(err) })
//	values, err := seq.Slice(ctx, s) // fires the hooks for every entry
package observe

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/lguimbarda/min-seq/seq/core"
)

// WithValueHook attaches a callback fired for each value entry of a
// Seq[T] drained with ctx.
func WithValueHook[T any](ctx context.Context, callback func(T)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{OnValue: callback})
}

// WithErrorHook attaches a callback fired for each error entry.
func WithErrorHook[T any](ctx context.Context, callback func(error)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{OnError: callback})
}

// WithStartHook attaches a callback fired when a drain begins.
func WithStartHook[T any](ctx context.Context, callback func()) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{OnStart: callback})
}

// WithCompleteHook attaches a callback fired when a drain finishes.
func WithCompleteHook[T any](ctx context.Context, callback func()) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{OnComplete: callback})
}

// WithSentinelHook attaches a callback fired with the cause of the end
// of the sequence.
func WithSentinelHook[T any](ctx context.Context, callback func(error)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{OnSentinel: callback})
}

// Counter provides thread-safe counting of values and errors.
type Counter struct {
	values atomic.Int64
	errors atomic.Int64
}

// Values returns the count of values processed.
func (c *Counter) Values() int64 { return c.values.Load() }

// Errors returns the count of errors encountered.
func (c *Counter) Errors() int64 { return c.errors.Load() }

// Total returns the total count of values and errors.
func (c *Counter) Total() int64 { return c.values.Load() + c.errors.Load() }

// WithCounter attaches counting hooks for type T and returns the counter for querying.
func WithCounter[T any](ctx context.Context) (context.Context, *Counter) {
	counter := &Counter{}
	ctx = core.WithHooks(ctx, core.Hooks[T]{
		OnValue: func(T) { counter.values.Add(1) },
		OnError: func(error) { counter.errors.Add(1) },
	})
	return ctx, counter
}

// ErrorCollector collects the error entries seen by drains.
type ErrorCollector struct {
	mu     sync.Mutex
	errors []error
}

// Errors returns a copy of all collected errors.
func (c *ErrorCollector) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]error, len(c.errors))
	copy(result, c.errors)
	return result
}

// Count returns the number of collected errors.
func (c *ErrorCollector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

// WithErrorCollector attaches an error collecting hook for type T and returns the collector.
func WithErrorCollector[T any](ctx context.Context) (context.Context, *ErrorCollector) {
	collector := &ErrorCollector{}
	ctx = core.WithHooks(ctx, core.Hooks[T]{
		OnError: func(err error) {
			collector.mu.Lock()
			collector.errors = append(collector.errors, err)
			collector.mu.Unlock()
		},
	})
	return ctx, collector
}

// WithLogging logs the drain lifecycle of Seq[T] to logger. Values are
// logged at debug level, errors at warn.
func WithLogging[T any](ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = slog.Default()
	}
	return core.WithHooks(ctx, core.Hooks[T]{
		OnStart: func() {
			logger.DebugContext(ctx, "sequence started")
		},
		OnValue: func(v T) {
			logger.DebugContext(ctx, "value", slog.Any("value", v))
		},
		OnError: func(err error) {
			logger.WarnContext(ctx, "error entry", slog.Any("error", err))
		},
		OnSentinel: func(err error) {
			logger.DebugContext(ctx, "sequence ended", slog.Any("cause", err))
		},
		OnComplete: func() {
			logger.DebugContext(ctx, "sequence completed")
		},
	})
}
