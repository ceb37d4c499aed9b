package core

// Transformer turns a Seq of IN into a Seq of OUT. Transformers are
// lazy: Apply only wires cursors together, nothing is pulled until the
// returned Seq is consumed.
type Transformer[IN, OUT any] interface {
	Apply(Seq[IN]) Seq[OUT]
}

// Transmitter is a function implementation of Transformer. It answers
// the question "how is each downstream pull served from upstream?".
type Transmitter[IN, OUT any] func(Seq[IN]) Seq[OUT]

// Transmit wraps a function as a Transformer.
func Transmit[IN, OUT any](transmitter func(Seq[IN]) Seq[OUT]) Transmitter[IN, OUT] {
	return transmitter
}

// Apply implements Transformer.
func (t Transmitter[IN, OUT]) Apply(in Seq[IN]) Seq[OUT] {
	return t(in)
}

// Stage builds a Transmitter from a per-pull step. For every downstream
// Next, step receives the upstream iterator and returns the entry to hand
// out; returning a sentinel ends the output. Typical steps pull once,
// many times (filters) or not at all (buffered replay).
func Stage[IN, OUT any](step func(Iterator[IN]) Result[OUT]) Transmitter[IN, OUT] {
	return func(in Seq[IN]) Seq[OUT] {
		it := in.Iterator()
		return Generate(func() Result[OUT] {
			return step(it)
		})
	}
}

// Forward converts a non-value entry to another element type. It must
// only be called with error or sentinel results.
func Forward[OUT, IN any](res Result[IN]) Result[OUT] {
	var zero OUT
	return NewResult(zero, res.err, res.isSentinel)
}

// StatefulStage is Stage for steps that keep state between pulls. newStep
// is called on every Apply, so each output sequence gets fresh state.
func StatefulStage[IN, OUT any](newStep func() func(Iterator[IN]) Result[OUT]) Transmitter[IN, OUT] {
	return func(in Seq[IN]) Seq[OUT] {
		return Stage(newStep()).Apply(in)
	}
}
