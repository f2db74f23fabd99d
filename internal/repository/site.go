package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/arkanhaq/contenthub/internal/errs"
	"github.com/arkanhaq/contenthub/internal/fetch"
	"github.com/arkanhaq/contenthub/internal/mapper"
	"github.com/arkanhaq/contenthub/internal/sqlerr"

	"github.com/jackc/pgx/v5"
)

// singletonID is the conventional identifier for singleton-row tables.
const singletonID = 1

// SingletonRepo serves tables modeled as holding exactly one configuration
// record (site profile, contact info).
type SingletonRepo struct {
	db      DB
	table   string
	mapping mapper.Mapping
}

// NewSingletonRepo creates a repository for one singleton-row table.
func NewSingletonRepo(db DB, table string, mapping mapper.Mapping) *SingletonRepo {
	return &SingletonRepo{db: db, table: table, mapping: mapping}
}

// Get returns the configuration row in API shape, or nil when no row has
// been stored yet. Absence is an explicit nil, never a fabricated object.
func (r *SingletonRepo) Get(ctx context.Context) (map[string]any, error) {
	stmt := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", pgx.Identifier{r.table}.Sanitize())
	rows, err := fetch.Collect(ctx, r.db, fetch.Query{Statement: stmt, Args: []any{singletonID}})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.mapping.ToAPI(rows[0]), nil
}

// Upsert writes the fields present in the payload to the configuration
// row, creating it at the conventional identifier when missing.
func (r *SingletonRepo) Upsert(ctx context.Context, payload map[string]any) (map[string]any, error) {
	cols := r.mapping.ToDB(payload)
	delete(cols, "id")
	if len(cols) == 0 {
		return nil, errs.NewBadRequestError("Request contains no usable fields", false, nil, nil)
	}

	names := sortedColumns(cols)
	quoted := make([]string, len(names))
	placeholders := make([]string, len(names))
	assignments := make([]string, len(names))
	args := make([]any, 0, len(names)+1)
	args = append(args, singletonID)
	for i, name := range names {
		quoted[i] = pgx.Identifier{name}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		assignments[i] = fmt.Sprintf("%s = EXCLUDED.%s", quoted[i], quoted[i])
		args = append(args, cols[name])
	}

	stmt := fmt.Sprintf(
		"INSERT INTO %s (id, %s) VALUES ($1, %s) ON CONFLICT (id) DO UPDATE SET %s RETURNING *",
		pgx.Identifier{r.table}.Sanitize(),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(assignments, ", "),
	)

	rows, err := fetch.Collect(ctx, r.db, fetch.Query{Statement: stmt, Args: args})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if len(rows) == 0 {
		return nil, errs.NewInternalServerError()
	}
	return r.mapping.ToAPI(rows[0]), nil
}
