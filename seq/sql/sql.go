// Package sql provides sequence adapters for database/sql. Queries run
// lazily on the first pull and rows are read one per pull.
package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lguimbarda/min-seq/seq/core"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Querier is implemented by *sql.DB, *sql.Tx and *sql.Conn.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// RowQuerier is implemented by *sql.DB, *sql.Tx and *sql.Conn.
type RowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Execer is implemented by *sql.DB, *sql.Tx and *sql.Conn.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Query creates a Seq over the rows of query. The query is executed on
// the first pull; scanner converts each row. A failing query yields a
// single error entry. A scan error is yielded as an error entry and
// reading goes on with the next row. Rows are closed when the sequence
// is exhausted, or by database/sql when ctx is canceled. A consumer that
// stops early (First, filter.Limit) leaves the rows open and holds a
// connection until then, so pass a ctx that is canceled once the
// sequence is no longer needed.
func Query[T any](ctx context.Context, db Querier, query string, scanner Scanner[T], args ...any) core.Seq[T] {
	var rows *sql.Rows
	done := false
	finish := func() core.Result[T] {
		done = true
		if rows == nil {
			return core.EndOfStream[T]()
		}
		err := rows.Err()
		if cerr := rows.Close(); err == nil {
			err = cerr
		}
		rows = nil
		if err != nil {
			return core.Err[T](fmt.Errorf("read rows: %w", err))
		}
		return core.EndOfStream[T]()
	}

	return core.Generate(func() core.Result[T] {
		if done {
			return core.EndOfStream[T]()
		}
		if rows == nil {
			r, err := db.QueryContext(ctx, query, args...)
			if err != nil {
				done = true
				return core.Err[T](fmt.Errorf("query: %w", err))
			}
			rows = r
		}
		if !rows.Next() {
			return finish()
		}
		value, err := scanner(rows)
		if err != nil {
			return core.Err[T](fmt.Errorf("scan row: %w", err))
		}
		return core.Ok(value)
	})
}

// QueryRow creates a Seq with the single row of query, or a single error
// entry. sql.ErrNoRows is reported as an empty sequence.
func QueryRow[T any](ctx context.Context, db RowQuerier, query string, scanner func(*sql.Row) (T, error), args ...any) core.Seq[T] {
	done := false
	return core.Generate(func() core.Result[T] {
		if done {
			return core.EndOfStream[T]()
		}
		done = true
		value, err := scanner(db.QueryRowContext(ctx, query, args...))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return core.EndOfStream[T]()
		case err != nil:
			return core.Err[T](err)
		}
		return core.Ok(value)
	})
}

// ExecResult contains the result of an exec operation. Drivers that do
// not support LastInsertId or RowsAffected leave the field at 0.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
}

// Exec executes a statement immediately. Errors from LastInsertId and
// RowsAffected are ignored; only the statement's own error is returned.
func Exec(ctx context.Context, db Execer, query string, args ...any) (ExecResult, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, err
	}
	lastID, _ := result.LastInsertId()
	rowsAffected, _ := result.RowsAffected()
	return ExecResult{LastInsertId: lastID, RowsAffected: rowsAffected}, nil
}

// ExecMany creates a Transformer that executes query once per value,
// binding the arguments returned by binder. Failed statements become
// error entries; upstream errors pass through without executing.
func ExecMany[T any](ctx context.Context, db Execer, query string, binder func(T) []any) core.Transformer[T, ExecResult] {
	return core.Stage(func(it core.Iterator[T]) core.Result[ExecResult] {
		res := it.Next()
		if !res.IsValue() {
			return core.Forward[ExecResult](res)
		}
		result, err := Exec(ctx, db, query, binder(res.Value())...)
		if err != nil {
			return core.Err[ExecResult](err)
		}
		return core.Ok(result)
	})
}
