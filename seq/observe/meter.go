package observe

import (
	"sync/atomic"
	"time"

	"github.com/lguimbarda/min-seq/seq/core"
)

// SeqMetrics holds statistics about one pass over a sequence.
type SeqMetrics struct {
	ValueCount int64
	ErrorCount int64

	StartTime time.Time
	EndTime   time.Time

	// MaxPull is the longest time a single pull took upstream.
	MaxPull time.Duration
}

// Total returns the number of entries seen.
func (m SeqMetrics) Total() int64 { return m.ValueCount + m.ErrorCount }

// Meter passes entries through unchanged and calls onComplete with the
// collected metrics once the sequence ends. A pass abandoned before the
// end does not report.
func Meter[T any](onComplete func(SeqMetrics)) core.Transformer[T, T] {
	return core.StatefulStage(func() func(core.Iterator[T]) core.Result[T] {
		var metrics SeqMetrics
		reported := false
		return func(it core.Iterator[T]) core.Result[T] {
			start := time.Now()
			if metrics.StartTime.IsZero() {
				metrics.StartTime = start
			}
			res := it.Next()
			metrics.MaxPull = max(metrics.MaxPull, time.Since(start))
			switch {
			case res.IsValue():
				metrics.ValueCount++
			case res.IsError():
				metrics.ErrorCount++
			default:
				if !reported && onComplete != nil {
					reported = true
					metrics.EndTime = time.Now()
					onComplete(metrics)
				}
			}
			return res
		}
	})
}

// LiveMetrics holds counts that can be read while a sequence is being
// consumed, possibly from another goroutine.
type LiveMetrics struct {
	values atomic.Int64
	errors atomic.Int64
	done   atomic.Bool
}

// Values returns the number of values pulled so far.
func (m *LiveMetrics) Values() int64 { return m.values.Load() }

// Errors returns the number of error entries pulled so far.
func (m *LiveMetrics) Errors() int64 { return m.errors.Load() }

// Done reports whether the sequence has ended.
func (m *LiveMetrics) Done() bool { return m.done.Load() }

// MeterLive updates metrics for every entry that passes through.
func MeterLive[T any](metrics *LiveMetrics) core.Transformer[T, T] {
	return Tap(func(res core.Result[T]) {
		switch {
		case res.IsValue():
			metrics.values.Add(1)
		case res.IsError():
			metrics.errors.Add(1)
		default:
			metrics.done.Store(true)
		}
	})
}

// Tap calls fn with every entry, the end sentinel included, and passes
// the entry on unchanged.
func Tap[T any](fn func(core.Result[T])) core.Transformer[T, T] {
	return core.Stage(func(it core.Iterator[T]) core.Result[T] {
		res := it.Next()
		fn(res)
		return res
	})
}
