package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/arkanhaq/contenthub/internal/errs"
	"github.com/arkanhaq/contenthub/internal/fetch"
	"github.com/arkanhaq/contenthub/internal/mapper"
	"github.com/arkanhaq/contenthub/internal/sqlerr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the parameterized-query primitive the repositories consume.
// *pgxpool.Pool satisfies it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EntityRepo provides the CRUD queries shared by the flat content tables.
// Field name translation in both directions goes through the entity
// mapping, so callers only ever see the API shape.
type EntityRepo struct {
	db      DB
	table   string
	mapping mapper.Mapping
	orderBy string
}

// NewEntityRepo creates a repository for one table. orderBy is the column
// ordering list queries use.
func NewEntityRepo(db DB, table string, mapping mapper.Mapping, orderBy string) *EntityRepo {
	return &EntityRepo{db: db, table: table, mapping: mapping, orderBy: orderBy}
}

// List returns every row in the table, in the repo's order, in API shape.
func (r *EntityRepo) List(ctx context.Context) ([]map[string]any, error) {
	stmt := fmt.Sprintf("SELECT * FROM %s ORDER BY %s",
		pgx.Identifier{r.table}.Sanitize(), pgx.Identifier{r.orderBy}.Sanitize())
	rows, err := fetch.Collect(ctx, r.db, fetch.Query{Statement: stmt})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return r.toAPI(rows), nil
}

// Get returns one row by identifier.
func (r *EntityRepo) Get(ctx context.Context, id int64) (map[string]any, error) {
	stmt := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", pgx.Identifier{r.table}.Sanitize())
	rows, err := fetch.Collect(ctx, r.db, fetch.Query{Statement: stmt, Args: []any{id}})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if len(rows) == 0 {
		return nil, r.notFound()
	}
	return r.mapping.ToAPI(rows[0]), nil
}

// Create inserts a new row from an API payload and returns the stored row.
func (r *EntityRepo) Create(ctx context.Context, payload map[string]any) (map[string]any, error) {
	cols := r.mapping.ToDB(payload)
	delete(cols, "id")
	if len(cols) == 0 {
		return nil, errs.NewBadRequestError("Request contains no usable fields", false, nil, nil)
	}

	stmt, args := insertSQL(r.table, cols)
	rows, err := fetch.Collect(ctx, r.db, fetch.Query{Statement: stmt, Args: args})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if len(rows) == 0 {
		return nil, errs.NewInternalServerError()
	}
	return r.mapping.ToAPI(rows[0]), nil
}

// Update applies the fields present in the payload to one row and returns
// the stored row. Fields absent from the payload are left untouched.
func (r *EntityRepo) Update(ctx context.Context, id int64, payload map[string]any) (map[string]any, error) {
	cols := r.mapping.ToDB(payload)
	delete(cols, "id")
	if len(cols) == 0 {
		return nil, errs.NewBadRequestError("Request contains no usable fields", false, nil, nil)
	}

	stmt, args := updateSQL(r.table, cols, id)
	rows, err := fetch.Collect(ctx, r.db, fetch.Query{Statement: stmt, Args: args})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if len(rows) == 0 {
		return nil, r.notFound()
	}
	return r.mapping.ToAPI(rows[0]), nil
}

// Delete removes one row by identifier.
func (r *EntityRepo) Delete(ctx context.Context, id int64) error {
	stmt := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pgx.Identifier{r.table}.Sanitize())
	tag, err := r.db.Exec(ctx, stmt, id)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	if tag.RowsAffected() == 0 {
		return r.notFound()
	}
	return nil
}

func (r *EntityRepo) toAPI(rows []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.mapping.ToAPI(row))
	}
	return out
}

// notFound carries the table name in the error text, which sqlerr uses to
// phrase the client-facing message.
func (r *EntityRepo) notFound() error {
	return sqlerr.HandleError(fmt.Errorf("table:%s: %w", r.table, pgx.ErrNoRows))
}

// insertSQL builds an INSERT ... RETURNING * statement over the column
// assignments. Columns are sorted so generated statements are deterministic.
func insertSQL(table string, cols map[string]any) (string, []any) {
	names := sortedColumns(cols)

	quoted := make([]string, len(names))
	placeholders := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		quoted[i] = pgx.Identifier{name}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = cols[name]
	}

	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)
	return stmt, args
}

// updateSQL builds an UPDATE ... WHERE id = $n RETURNING * statement over
// the column assignments.
func updateSQL(table string, cols map[string]any, id int64) (string, []any) {
	names := sortedColumns(cols)

	assignments := make([]string, len(names))
	args := make([]any, 0, len(names)+1)
	for i, name := range names {
		assignments[i] = fmt.Sprintf("%s = $%d", pgx.Identifier{name}.Sanitize(), i+1)
		args = append(args, cols[name])
	}
	args = append(args, id)

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING *",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(assignments, ", "),
		len(names)+1,
	)
	return stmt, args
}

func sortedColumns(cols map[string]any) []string {
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
