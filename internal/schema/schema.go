// Package schema reconciles a live table's column set with the current
// naming convention.
//
// Deployments that predate the convention may still carry legacy column
// names (e.g. avatarUrl instead of avatar_url). Each reconciliation
// directive describes one such rename/creation target; running the full
// directive set is idempotent and converges to the same end state from any
// starting schema, so it is safe to run on every process start, including
// concurrently from multiple instances.
package schema

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the parameterized-query execution primitive the reconciler
// consumes. *pgxpool.Pool satisfies it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Directive describes one column rename/creation rule: bring Table to a
// state where Current exists, preserving any data stored under Legacy.
// Definition is the column definition used when the column has to be
// created from scratch.
type Directive struct {
	Table      string
	Legacy     string
	Current    string
	Definition string
}

// Status is the outcome category of one directive run.
type Status int

const (
	// StatusNoop means the current column already existed (or both columns
	// exist, which the reconciler refuses to merge).
	StatusNoop Status = iota

	// StatusRenamed means the legacy column was renamed to the current name,
	// carrying its data along.
	StatusRenamed

	// StatusAdded means neither column existed and the current one was
	// created fresh from the definition.
	StatusAdded

	// StatusDegraded means the directive was abandoned for this run, usually
	// because a concurrent schema change collided with it. A later run sees
	// the new state and no-ops.
	StatusDegraded
)

// String returns the status name used in log output.
func (s Status) String() string {
	switch s {
	case StatusNoop:
		return "noop"
	case StatusRenamed:
		return "renamed"
	case StatusAdded:
		return "added"
	case StatusDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Outcome reports what one directive run did. Reason is set only for
// degraded outcomes so callers can observe degradation explicitly instead
// of relying on log output.
type Outcome struct {
	Directive Directive
	Status    Status
	Reason    string
}

// Degraded reports whether the directive was abandoned for this run.
func (o Outcome) Degraded() bool {
	return o.Status == StatusDegraded
}
