package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Instrument registers OpenTelemetry counters for Seq[T] drains on ctx:
// <prefix>.values and <prefix>.errors count entries, <prefix>.drains
// counts completed drains.
func Instrument[T any](ctx context.Context, meter metric.Meter, prefix string) (context.Context, error) {
	values, err := meter.Int64Counter(prefix+".values", metric.WithDescription("value entries pulled"))
	if err != nil {
		return ctx, fmt.Errorf("create values counter: %w", err)
	}
	errs, err := meter.Int64Counter(prefix+".errors", metric.WithDescription("error entries pulled"))
	if err != nil {
		return ctx, fmt.Errorf("create errors counter: %w", err)
	}
	drains, err := meter.Int64Counter(prefix+".drains", metric.WithDescription("completed drains"))
	if err != nil {
		return ctx, fmt.Errorf("create drains counter: %w", err)
	}

	return core.WithHooks(ctx, core.Hooks[T]{
		OnValue:    func(T) { values.Add(ctx, 1) },
		OnError:    func(error) { errs.Add(ctx, 1) },
		OnComplete: func() { drains.Add(ctx, 1) },
	}), nil
}

// NewGapMetrics returns a Duplicate option reporting the gap buffer to
// meter: <prefix>.gap.size is an up-down counter following the number of
// buffered entries, <prefix>.gap.depth a histogram of the size after
// each push.
func NewGapMetrics(ctx context.Context, meter metric.Meter, prefix string) (core.DuplicateOption, error) {
	size, err := meter.Int64UpDownCounter(prefix+".gap.size", metric.WithDescription("entries buffered between duplicate cursors"))
	if err != nil {
		return nil, fmt.Errorf("create gap size counter: %w", err)
	}
	depth, err := meter.Int64Histogram(prefix+".gap.depth", metric.WithDescription("gap buffer size after each push"))
	if err != nil {
		return nil, fmt.Errorf("create gap depth histogram: %w", err)
	}

	return core.WithGapObserver(func(n, delta int) {
		size.Add(ctx, int64(delta))
		if delta > 0 {
			depth.Record(ctx, int64(n))
		}
	}), nil
}
