// Package testkit provides hand-written fakes for the parameterized-query
// primitive, so core packages can be tested without a live database.
package testkit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Call records one statement issued against the fake DB.
type Call struct {
	SQL  string
	Args []any
}

// DB is a scriptable fake of the query/exec primitive. Tests set QueryFn
// and ExecFn to script responses; issued statements are recorded in order.
// The zero value answers every query with an empty row-set and every exec
// with success.
type DB struct {
	QueryFn func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	ExecFn  func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	QueryCalls []Call
	ExecCalls  []Call
}

// Query records the call and delegates to QueryFn.
func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.QueryCalls = append(db.QueryCalls, Call{SQL: sql, Args: args})
	if db.QueryFn == nil {
		return NewRows(nil), nil
	}
	return db.QueryFn(ctx, sql, args...)
}

// Exec records the call and delegates to ExecFn.
func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.ExecCalls = append(db.ExecCalls, Call{SQL: sql, Args: args})
	if db.ExecFn == nil {
		return pgconn.CommandTag{}, nil
	}
	return db.ExecFn(ctx, sql, args...)
}

// Rows is an in-memory pgx.Rows backed by a column list and row data.
type Rows struct {
	cols   []string
	data   [][]any
	idx    int
	err    error
	closed bool
}

// NewRows builds a Rows over the given columns and rows.
func NewRows(cols []string, data ...[]any) *Rows {
	return &Rows{cols: cols, data: data}
}

// NewRowsError builds a Rows that reports err after iteration.
func NewRowsError(err error) *Rows {
	return &Rows{err: err}
}

func (r *Rows) Close()                        { r.closed = true }
func (r *Rows) Err() error                    { return r.err }
func (r *Rows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *Rows) Conn() *pgx.Conn               { return nil }
func (r *Rows) RawValues() [][]byte           { return nil }

// FieldDescriptions exposes the column names.
func (r *Rows) FieldDescriptions() []pgconn.FieldDescription {
	fields := make([]pgconn.FieldDescription, len(r.cols))
	for i, col := range r.cols {
		fields[i] = pgconn.FieldDescription{Name: col}
	}
	return fields
}

// Next advances to the next row.
func (r *Rows) Next() bool {
	if r.closed || r.err != nil || r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

// Values returns the current row.
func (r *Rows) Values() ([]any, error) {
	if r.idx == 0 || r.idx > len(r.data) {
		return nil, fmt.Errorf("no current row")
	}
	return r.data[r.idx-1], nil
}

// Scan copies the current row into dest pointers. Supports the destination
// types the repositories actually scan into.
func (r *Rows) Scan(dest ...any) error {
	values, err := r.Values()
	if err != nil {
		return err
	}
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, d := range dest {
		switch dst := d.(type) {
		case *any:
			*dst = values[i]
		case *string:
			*dst, _ = values[i].(string)
		case *int64:
			*dst, _ = values[i].(int64)
		case *int:
			*dst, _ = values[i].(int)
		case *bool:
			*dst, _ = values[i].(bool)
		default:
			return fmt.Errorf("scan: unsupported destination type %T", d)
		}
	}
	return nil
}

var _ pgx.Rows = (*Rows)(nil)
