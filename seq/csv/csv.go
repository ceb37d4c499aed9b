// Package csv provides sequence adapters for CSV encoding and decoding.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/lguimbarda/min-seq/seq/core"
	seqio "github.com/lguimbarda/min-seq/seq/io"
)

// ReaderOption configures a CSV reader.
type ReaderOption func(*csv.Reader)

// WithComma sets the field delimiter (default is ',').
func WithComma(comma rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comma = comma
	}
}

// WithComment sets the comment character. Lines beginning with this
// character are ignored.
func WithComment(comment rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comment = comment
	}
}

// WithFieldsPerRecord sets the expected number of fields per record.
// If positive, each record must have exactly that many fields.
// If 0, the number is set to the first record's field count.
// If negative, no check is made and records may have variable fields.
func WithFieldsPerRecord(n int) ReaderOption {
	return func(r *csv.Reader) {
		r.FieldsPerRecord = n
	}
}

// WithLazyQuotes allows lazy quotes in quoted fields.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(r *csv.Reader) {
		r.LazyQuotes = lazy
	}
}

// WithTrimLeadingSpace trims leading whitespace from fields.
func WithTrimLeadingSpace(trim bool) ReaderOption {
	return func(r *csv.Reader) {
		r.TrimLeadingSpace = trim
	}
}

// Records creates a Seq of the records read from r. A malformed record is
// yielded as an error entry and reading goes on; any other read error
// ends the sequence.
func Records(r io.Reader, opts ...ReaderOption) core.Seq[[]string] {
	reader := csv.NewReader(r)
	for _, opt := range opts {
		opt(reader)
	}
	done := false
	return core.Generate(func() core.Result[[]string] {
		if done {
			return core.EndOfStream[[]string]()
		}
		record, err := reader.Read()
		if err == nil {
			return core.Ok(record)
		}
		var parseErr *csv.ParseError
		if !errors.As(err, &parseErr) {
			done = true
			if errors.Is(err, io.EOF) {
				return core.EndOfStream[[]string]()
			}
		}
		return core.Err[[]string](err)
	})
}

// ReadRecords is Records over the file at path.
func ReadRecords(path string, opts ...ReaderOption) core.Seq[[]string] {
	return seqio.FromFile(path, func(r io.Reader) core.Seq[[]string] { return Records(r, opts...) })
}

// SkipHeader creates a Transformer that drops the first record.
func SkipHeader() core.Transformer[[]string, []string] {
	return core.StatefulStage(func() func(core.Iterator[[]string]) core.Result[[]string] {
		first := true
		return func(it core.Iterator[[]string]) core.Result[[]string] {
			res := it.Next()
			if first && res.IsValue() {
				first = false
				return it.Next()
			}
			return res
		}
	})
}

// WithHeader creates a Transformer that uses the first record as column
// names and turns every following record into a map from column name to
// field. A record whose length differs from the header becomes an error
// entry.
func WithHeader() core.Transformer[[]string, map[string]string] {
	return core.StatefulStage(func() func(core.Iterator[[]string]) core.Result[map[string]string] {
		var header []string
		return func(it core.Iterator[[]string]) core.Result[map[string]string] {
			for {
				res := it.Next()
				if !res.IsValue() {
					return core.Forward[map[string]string](res)
				}
				record := res.Value()
				if header == nil {
					header = record
					continue
				}
				if len(record) != len(header) {
					return core.Err[map[string]string](fmt.Errorf("csv: record has %d fields, header has %d", len(record), len(header)))
				}
				row := make(map[string]string, len(header))
				for i, name := range header {
					row[name] = record[i]
				}
				return core.Ok(row)
			}
		}
	})
}

// WriterOption configures a CSV writer.
type WriterOption func(*csv.Writer)

// WithWriterComma sets the field delimiter for writing (default is ',').
func WithWriterComma(comma rune) WriterOption {
	return func(w *csv.Writer) {
		w.Comma = comma
	}
}

// WithUseCRLF sets whether to use \r\n as the line terminator.
func WithUseCRLF(useCRLF bool) WriterOption {
	return func(w *csv.Writer) {
		w.UseCRLF = useCRLF
	}
}

// WriteTo creates a Transformer that writes each record to w and passes
// it on unchanged. Output is flushed when the sequence ends.
func WriteTo(w io.Writer, opts ...WriterOption) core.Transformer[[]string, []string] {
	return core.StatefulStage(func() func(core.Iterator[[]string]) core.Result[[]string] {
		writer := csv.NewWriter(w)
		for _, opt := range opts {
			opt(writer)
		}
		flushed := false
		return func(it core.Iterator[[]string]) core.Result[[]string] {
			if flushed {
				return core.EndOfStream[[]string]()
			}
			res := it.Next()
			switch {
			case res.IsValue():
				if err := writer.Write(res.Value()); err != nil {
					return core.Err[[]string](err)
				}
			case res.IsSentinel():
				flushed = true
				writer.Flush()
				if err := writer.Error(); err != nil {
					return core.Err[[]string](err)
				}
			}
			return res
		}
	})
}
