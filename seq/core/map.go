package core

// Mapper maps one entry to one entry (1:1 cardinality). It is the lowest
// level of a per-element transformation and answers the question "what is
// done to each item in the sequence?".
type Mapper[IN, OUT any] func(Result[IN]) Result[OUT]

// Map creates a Mapper from a fallible function. Error entries pass
// through untouched, a returned error becomes an error entry and a panic
// becomes an ErrPanic entry.
func Map[IN, OUT any](mapFunc func(IN) (OUT, error)) Mapper[IN, OUT] {
	return func(res Result[IN]) (out Result[OUT]) {
		if !res.IsValue() {
			return Forward[OUT](res)
		}
		defer func() {
			if r := recover(); r != nil {
				out = Err[OUT](NewPanicError(r))
			}
		}()
		mapped, err := mapFunc(res.Value())
		if err != nil {
			return Err[OUT](err)
		}
		return Ok(mapped)
	}
}

// Apply lazily transforms a Seq with m.
func (m Mapper[IN, OUT]) Apply(s Seq[IN]) Seq[OUT] {
	return Stage(func(it Iterator[IN]) Result[OUT] {
		res := it.Next()
		if res.IsSentinel() {
			return Forward[OUT](res)
		}
		return m(res)
	}).Apply(s)
}

// FlatMapper maps one entry to zero or more entries (1:N cardinality).
type FlatMapper[IN, OUT any] func(Result[IN]) []Result[OUT]

// FlatMap creates a FlatMapper from a fallible function returning a
// slice. Failures and panics become single error entries.
func FlatMap[IN, OUT any](flatMapFunc func(IN) ([]OUT, error)) FlatMapper[IN, OUT] {
	return func(res Result[IN]) (outs []Result[OUT]) {
		if !res.IsValue() {
			return []Result[OUT]{Forward[OUT](res)}
		}
		defer func() {
			if r := recover(); r != nil {
				outs = []Result[OUT]{Err[OUT](NewPanicError(r))}
			}
		}()
		values, err := flatMapFunc(res.Value())
		if err != nil {
			return []Result[OUT]{Err[OUT](err)}
		}
		outs = make([]Result[OUT], len(values))
		for i, v := range values {
			outs[i] = Ok(v)
		}
		return outs
	}
}

// Apply lazily transforms a Seq with fm. Expanded entries are replayed
// one per pull; the next upstream entry is only pulled once they are
// handed out.
func (fm FlatMapper[IN, OUT]) Apply(s Seq[IN]) Seq[OUT] {
	var pending []Result[OUT]
	return Stage(func(it Iterator[IN]) Result[OUT] {
		for len(pending) == 0 {
			res := it.Next()
			if res.IsSentinel() {
				return Forward[OUT](res)
			}
			pending = fm(res)
		}
		head := pending[0]
		pending = pending[1:]
		return head
	}).Apply(s)
}
