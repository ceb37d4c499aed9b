// Package io provides sequence adapters for readers, writers and files.
// Files are opened on the first pull and closed when the sequence ends.
package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Lines creates a Seq of the lines of r, without line terminators. A read
// error is yielded as a final error entry.
func Lines(r io.Reader) core.Seq[string] {
	scanner := bufio.NewScanner(r)
	done := false
	return core.Generate(func() core.Result[string] {
		if done {
			return core.EndOfStream[string]()
		}
		if scanner.Scan() {
			return core.Ok(scanner.Text())
		}
		done = true
		if err := scanner.Err(); err != nil {
			return core.Err[string](err)
		}
		return core.EndOfStream[string]()
	})
}

// ReadLines creates a Seq of the lines of the file at path. If the file
// cannot be opened the sequence holds a single error entry.
func ReadLines(path string) core.Seq[string] {
	return FromFile(path, Lines)
}

// Chunks creates a Seq of consecutive reads of up to size bytes from r.
// Each chunk is a fresh slice.
func Chunks(r io.Reader, size int) core.Seq[[]byte] {
	size = max(size, 1)
	done := false
	return core.Generate(func() core.Result[[]byte] {
		if done {
			return core.EndOfStream[[]byte]()
		}
		buf := make([]byte, size)
		n, err := io.ReadFull(r, buf)
		switch {
		case n > 0:
			if err != nil {
				done = true
			}
			return core.Ok(buf[:n])
		case errors.Is(err, io.EOF):
			done = true
			return core.EndOfStream[[]byte]()
		}
		done = true
		return core.Err[[]byte](err)
	})
}

// ReadChunks is Chunks over the file at path.
func ReadChunks(path string, size int) core.Seq[[]byte] {
	return FromFile(path, func(r io.Reader) core.Seq[[]byte] { return Chunks(r, size) })
}

// FromFile opens path on the first pull, reads it with read and closes
// it once the resulting Seq ends. An open failure is yielded as a single
// error entry.
func FromFile[T any](path string, read func(io.Reader) core.Seq[T]) core.Seq[T] {
	var file *os.File
	var inner core.Seq[T]
	done := false
	return core.Generate(func() core.Result[T] {
		if done {
			return core.EndOfStream[T]()
		}
		if file == nil {
			f, err := os.Open(path)
			if err != nil {
				done = true
				return core.Err[T](err)
			}
			file, inner = f, read(f)
		}
		res := inner.Next()
		if res.IsSentinel() {
			done = true
			if err := file.Close(); err != nil {
				return core.Err[T](fmt.Errorf("close %s: %w", path, err))
			}
		}
		return res
	})
}

// WriteTo creates a Transformer that writes each string to w followed by
// a newline, passing it on unchanged. Output is buffered and flushed when
// the sequence ends.
func WriteTo(w io.Writer) core.Transformer[string, string] {
	return core.StatefulStage(func() func(core.Iterator[string]) core.Result[string] {
		lw := &lineWriter{w: bufio.NewWriter(w)}
		return lw.step
	})
}

// WriteLines creates a Transformer that writes each string as a line of
// the file at path, created or truncated on the first pull. The file is
// closed when the sequence ends.
func WriteLines(path string) core.Transformer[string, string] {
	return WriteLinesWithOptions(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
}

// AppendLines is WriteLines appending to an existing file.
func AppendLines(path string) core.Transformer[string, string] {
	return WriteLinesWithOptions(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// WriteLinesWithOptions is WriteLines with custom open flags.
func WriteLinesWithOptions(path string, flag int, perm os.FileMode) core.Transformer[string, string] {
	return core.StatefulStage(func() func(core.Iterator[string]) core.Result[string] {
		lw := &lineWriter{}
		return func(it core.Iterator[string]) core.Result[string] {
			if lw.w == nil && !lw.done {
				f, err := os.OpenFile(path, flag, perm)
				if err != nil {
					lw.done = true
					return core.Err[string](err)
				}
				lw.w = bufio.NewWriter(f)
				lw.close = func() error {
					if err := f.Close(); err != nil {
						return fmt.Errorf("close %s: %w", path, err)
					}
					return nil
				}
			}
			return lw.step(it)
		}
	})
}

// lineWriter writes value entries as lines and finishes the output once
// at the end of the sequence.
type lineWriter struct {
	w     *bufio.Writer
	close func() error
	done  bool
}

func (lw *lineWriter) step(it core.Iterator[string]) core.Result[string] {
	if lw.done {
		return core.EndOfStream[string]()
	}
	res := it.Next()
	switch {
	case res.IsValue():
		if _, err := lw.w.WriteString(res.Value() + "\n"); err != nil {
			return core.Err[string](err)
		}
	case res.IsSentinel():
		lw.done = true
		err := lw.w.Flush()
		if err != nil {
			err = fmt.Errorf("flush: %w", err)
		}
		if lw.close != nil {
			if cerr := lw.close(); err == nil {
				err = cerr
			}
		}
		if err != nil {
			return core.Err[string](err)
		}
	}
	return res
}
