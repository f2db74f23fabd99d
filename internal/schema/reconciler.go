package schema

import (
	"context"
	"fmt"

	"github.com/arkanhaq/contenthub/internal/sqlerr"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Reconcile brings one table/column pair into the desired shape.
//
// By case on (legacy exists, current exists):
//   - current present: no-op. When the legacy column is also present the
//     reconciler refuses to merge or drop either column; deciding which one
//     is authoritative would be a destructive guess.
//   - legacy only: rename legacy to current. The only case that moves data.
//   - neither: create the current column from the directive's definition.
//
// A directive whose legacy name equals its current name never renames; it
// falls through to the add/no-op cases. A directive without a definition is
// rename-only: when neither column exists it no-ops, leaving creation to a
// later directive. Several legacy names mapping to one current column are
// expressed as a chain of rename-only directives in priority order, closed
// by an add-only directive carrying the definition.
//
// At most one schema-altering statement is issued per call. Every failure is
// returned as a degraded outcome rather than an error: a lost race with
// another instance leaves the schema in a state a later run resolves, so
// the directive is abandoned for this run, never retried.
func Reconcile(ctx context.Context, db DB, d Directive) Outcome {
	checkLegacy := d.Legacy != "" && d.Legacy != d.Current

	currentExists, err := columnExists(ctx, db, d.Table, d.Current)
	if err != nil {
		return degraded(d, fmt.Errorf("checking column %s.%s: %w", d.Table, d.Current, err))
	}
	if currentExists {
		return Outcome{Directive: d, Status: StatusNoop}
	}

	if checkLegacy {
		legacyExists, err := columnExists(ctx, db, d.Table, d.Legacy)
		if err != nil {
			return degraded(d, fmt.Errorf("checking column %s.%s: %w", d.Table, d.Legacy, err))
		}
		if legacyExists {
			stmt := fmt.Sprintf("ALTER TABLE %s RENAME COLUMN %s TO %s",
				pgx.Identifier{d.Table}.Sanitize(),
				pgx.Identifier{d.Legacy}.Sanitize(),
				pgx.Identifier{d.Current}.Sanitize(),
			)
			if _, err := db.Exec(ctx, stmt); err != nil {
				return degraded(d, fmt.Errorf("renaming %s.%s to %s: %w", d.Table, d.Legacy, d.Current, err))
			}
			return Outcome{Directive: d, Status: StatusRenamed}
		}
	}

	if d.Definition == "" {
		return Outcome{Directive: d, Status: StatusNoop}
	}

	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s",
		pgx.Identifier{d.Table}.Sanitize(),
		pgx.Identifier{d.Current}.Sanitize(),
		d.Definition,
	)
	if _, err := db.Exec(ctx, stmt); err != nil {
		return degraded(d, fmt.Errorf("adding %s.%s: %w", d.Table, d.Current, err))
	}
	return Outcome{Directive: d, Status: StatusAdded}
}

// ReconcileAll runs every directive in order, logging one line per outcome,
// and returns the outcomes for callers that want to inspect degradation.
// Runs before the pool starts serving request traffic.
func ReconcileAll(ctx context.Context, db DB, logger *zerolog.Logger, directives []Directive) []Outcome {
	outcomes := make([]Outcome, 0, len(directives))
	for _, d := range directives {
		outcome := Reconcile(ctx, db, d)
		outcomes = append(outcomes, outcome)

		event := logger.Info()
		if outcome.Degraded() {
			event = logger.Warn().Str("reason", outcome.Reason)
		} else if outcome.Status == StatusNoop {
			event = logger.Debug()
		}
		event.
			Str("table", d.Table).
			Str("column", d.Current).
			Str("status", outcome.Status.String()).
			Msg("schema reconciliation")
	}
	return outcomes
}

// columnExists checks information_schema for a column in the current schema.
func columnExists(ctx context.Context, db DB, table, column string) (bool, error) {
	rows, err := db.Query(ctx,
		`SELECT 1 FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = $1 AND column_name = $2`,
		table, column,
	)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	exists := rows.Next()
	rows.Close()
	if err := rows.Err(); err != nil {
		return false, err
	}
	return exists, nil
}

func degraded(d Directive, err error) Outcome {
	reason := err.Error()
	if sqlerr.IsDuplicateObject(err) {
		reason = "lost schema race: " + reason
	}
	return Outcome{Directive: d, Status: StatusDegraded, Reason: reason}
}
