package core

// fromSlice returns a Seq over items.
func fromSlice[T any](items []T) Seq[T] {
	return From(sliceSource(items))
}

func sliceSource[T any](items []T) Iterator[T] {
	i := 0
	return Pull(func() Result[T] {
		if i >= len(items) {
			return EndOfStream[T]()
		}
		i++
		return Ok(items[i-1])
	})
}

// countingSource yields items and records how many entries were pulled.
type countingSource[T any] struct {
	items  []Result[T]
	pulled int
}

func (c *countingSource[T]) HasNext() bool {
	return c.pulled < len(c.items)
}

func (c *countingSource[T]) Next() Result[T] {
	if c.pulled >= len(c.items) {
		return EndOfStream[T]()
	}
	c.pulled++
	return c.items[c.pulled-1]
}

func okResults[T any](items ...T) []Result[T] {
	out := make([]Result[T], len(items))
	for i, v := range items {
		out[i] = Ok(v)
	}
	return out
}

// naturals is an infinite source 0, 1, 2, ...
func naturals() Iterator[int] {
	n := -1
	return Pull(func() Result[int] {
		n++
		return Ok(n)
	})
}
