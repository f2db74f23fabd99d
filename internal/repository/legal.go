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

// LegalRepo serves the legal pages table, keyed by page key rather than
// numeric identifier.
type LegalRepo struct {
	*EntityRepo
}

func NewLegalRepo(db DB) *LegalRepo {
	return &LegalRepo{
		EntityRepo: NewEntityRepo(db, "legal_content", mapper.LegalContent, "page_key"),
	}
}

// GetByKey returns one legal page by its key, e.g. "privacy" or "terms".
func (r *LegalRepo) GetByKey(ctx context.Context, pageKey string) (map[string]any, error) {
	rows, err := fetch.Collect(ctx, r.db, fetch.Query{
		Statement: "SELECT * FROM legal_content WHERE page_key = $1",
		Args:      []any{pageKey},
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if len(rows) == 0 {
		return nil, r.notFound()
	}
	return r.mapping.ToAPI(rows[0]), nil
}

// UpsertByKey writes the fields present in the payload to the page with
// the given key, creating the page when missing.
func (r *LegalRepo) UpsertByKey(ctx context.Context, pageKey string, payload map[string]any) (map[string]any, error) {
	cols := r.mapping.ToDB(payload)
	delete(cols, "id")
	delete(cols, "page_key")
	if len(cols) == 0 {
		return nil, errs.NewBadRequestError("Request contains no usable fields", false, nil, nil)
	}

	names := sortedColumns(cols)
	quoted := make([]string, len(names))
	placeholders := make([]string, len(names))
	assignments := make([]string, len(names))
	args := make([]any, 0, len(names)+1)
	args = append(args, pageKey)
	for i, name := range names {
		quoted[i] = pgx.Identifier{name}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		assignments[i] = fmt.Sprintf("%s = EXCLUDED.%s", quoted[i], quoted[i])
		args = append(args, cols[name])
	}

	stmt := fmt.Sprintf(
		"INSERT INTO legal_content (page_key, %s) VALUES ($1, %s) ON CONFLICT (page_key) DO UPDATE SET %s RETURNING *",
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
