// Package fetch assembles composite responses from batches of independent
// reads.
//
// Failure of one read must not fail the others: a broken or not-yet-migrated
// table yields an empty row-set for its slot while the rest of the batch is
// served normally. Degradations are recorded per slot so callers can observe
// them explicitly; they never surface as an overall error.
package fetch

import (
	"context"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// Querier is the parameterized-query primitive the fetcher consumes.
// *pgxpool.Pool satisfies it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Query is one read in a batch.
type Query struct {
	Statement string
	Args      []any
}

// Result is one slot of a batch response. Rows is never nil; a degraded
// slot carries an empty row-set and the recorded reason.
type Result struct {
	Rows []map[string]any
	Err  error
}

// Degraded reports whether this slot failed and was recovered as empty.
func (r Result) Degraded() bool {
	return r.Err != nil
}

// FetchAll executes all queries concurrently and returns one result per
// query, in input order. Concurrency is bounded by the connection pool
// underneath the Querier; excess queries queue on pool acquisition.
//
// FetchAll itself never fails: per-slot errors (including missing tables or
// columns) are recorded on the slot. A store that is entirely unreachable
// shows up as every slot degraded; surfacing that as a hard failure is the
// caller's outer layer's job.
func FetchAll(ctx context.Context, q Querier, queries []Query) []Result {
	results := make([]Result, len(queries))

	var g errgroup.Group
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			rows, err := Collect(ctx, q, query)
			if err != nil {
				results[i] = Result{Rows: []map[string]any{}, Err: err}
				return nil
			}
			results[i] = Result{Rows: rows}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Collect runs one query and materializes its rows as column-name keyed
// maps. Unlike FetchAll it surfaces the error, for callers that need to
// distinguish failure from emptiness.
func Collect(ctx context.Context, q Querier, query Query) ([]map[string]any, error) {
	rows, err := q.Query(ctx, query.Statement, query.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	collected := make([]map[string]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(map[string]any, len(fields))
		for i, field := range fields {
			if i < len(values) {
				row[field.Name] = values[i]
			}
		}
		collected = append(collected, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return collected, nil
}
