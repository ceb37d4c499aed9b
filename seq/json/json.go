// Package json provides sequence adapters for JSON encoding and decoding,
// built on the json/v2 experiment (github.com/go-json-experiment/json).
// Every function accepts json.Options to adjust the default behavior.
package json

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Decode creates a Transformer that decodes each string as one JSON
// document. Invalid input becomes an error entry and decoding goes on.
func Decode[T any](opts ...json.Options) core.Transformer[string, T] {
	return decodeEach(func(s string) []byte { return []byte(s) }, opts)
}

// DecodeBytes is Decode over byte slices.
func DecodeBytes[T any](opts ...json.Options) core.Transformer[[]byte, T] {
	return decodeEach(func(b []byte) []byte { return b }, opts)
}

func decodeEach[IN any, T any](raw func(IN) []byte, opts []json.Options) core.Transformer[IN, T] {
	return core.Stage(func(it core.Iterator[IN]) core.Result[T] {
		res := it.Next()
		if !res.IsValue() {
			return core.Forward[T](res)
		}
		var value T
		if err := json.Unmarshal(raw(res.Value()), &value, opts...); err != nil {
			return core.Err[T](err)
		}
		return core.Ok(value)
	})
}

// Encode creates a Transformer that encodes each value as a JSON string.
func Encode[T any](opts ...json.Options) core.Transformer[T, string] {
	return core.Stage(func(it core.Iterator[T]) core.Result[string] {
		res := it.Next()
		if !res.IsValue() {
			return core.Forward[string](res)
		}
		data, err := json.Marshal(res.Value(), opts...)
		if err != nil {
			return core.Err[string](err)
		}
		return core.Ok(string(data))
	})
}

// EncodeBytes is Encode producing byte slices.
func EncodeBytes[T any](opts ...json.Options) core.Transformer[T, []byte] {
	return core.Stage(func(it core.Iterator[T]) core.Result[[]byte] {
		res := it.Next()
		if !res.IsValue() {
			return core.Forward[[]byte](res)
		}
		data, err := json.Marshal(res.Value(), opts...)
		if err != nil {
			return core.Err[[]byte](err)
		}
		return core.Ok(data)
	})
}

// DecodeStream creates a Seq of the JSON values read one after another
// from r, such as newline-delimited JSON. Malformed input ends the
// sequence with an error entry.
func DecodeStream[T any](r io.Reader, opts ...json.Options) core.Seq[T] {
	dec := jsontext.NewDecoder(r)
	done := false
	return core.Generate(func() core.Result[T] {
		if done {
			return core.EndOfStream[T]()
		}
		var value T
		before := dec.InputOffset()
		err := json.UnmarshalDecode(dec, &value, opts...)
		switch {
		case err == nil:
			return core.Ok(value)
		case errors.Is(err, io.EOF):
			done = true
			return core.EndOfStream[T]()
		}
		done = fatal(dec, before, err)
		return core.Err[T](err)
	})
}

// DecodeArray creates a Seq of the elements of the JSON array read from
// r. Elements are decoded one per pull, so the array is never held in
// memory as a whole. An element that does not fit T is yielded as an
// error entry; malformed input ends the sequence with an error entry.
func DecodeArray[T any](r io.Reader, opts ...json.Options) core.Seq[T] {
	dec := jsontext.NewDecoder(r)
	started, done := false, false
	fail := func(err error) core.Result[T] {
		done = true
		return core.Err[T](err)
	}
	return core.Generate(func() core.Result[T] {
		if done {
			return core.EndOfStream[T]()
		}
		if !started {
			started = true
			tok, err := dec.ReadToken()
			if err != nil {
				return fail(err)
			}
			if tok.Kind() != '[' {
				return fail(fmt.Errorf("json: expected array, got %v", tok.Kind()))
			}
		}
		if dec.PeekKind() == ']' {
			done = true
			if _, err := dec.ReadToken(); err != nil {
				return core.Err[T](err)
			}
			return core.EndOfStream[T]()
		}
		var value T
		before := dec.InputOffset()
		if err := json.UnmarshalDecode(dec, &value, opts...); err != nil {
			done = fatal(dec, before, err)
			return core.Err[T](err)
		}
		return core.Ok(value)
	})
}

// fatal reports whether decoding cannot go on after err: the input is
// malformed or the decoder did not move past the failed value.
func fatal(dec *jsontext.Decoder, before int64, err error) bool {
	var semErr *json.SemanticError
	return !errors.As(err, &semErr) || dec.InputOffset() == before
}
