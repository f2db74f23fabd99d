package repository

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/errs"
	"github.com/arkanhaq/contenthub/internal/fetch"
	"github.com/arkanhaq/contenthub/internal/mapper"
	"github.com/arkanhaq/contenthub/internal/sqlerr"
)

// StructureRepo serves the organizational chart table. Besides the shared
// CRUD queries it supports replacing the whole chart in one call, which is
// how the admin UI saves reordered entries.
type StructureRepo struct {
	*EntityRepo
}

func NewStructureRepo(db DB) *StructureRepo {
	return &StructureRepo{
		EntityRepo: NewEntityRepo(db, "structure", mapper.Structure, "ordinal"),
	}
}

// Replace swaps the stored chart for the given entries and returns the
// stored rows. Every entry is translated and checked before the delete is
// issued, so a malformed request never touches the stored chart. The delete
// and the inserts still run as separate statements; a failed insert can
// leave a partially written chart and the admin UI retries the whole save
// in that case.
func (r *StructureRepo) Replace(ctx context.Context, entries []map[string]any) ([]map[string]any, error) {
	inserts := make([]fetch.Query, 0, len(entries))
	for i, entry := range entries {
		cols := r.mapping.ToDB(entry)
		delete(cols, "id")
		if _, present := cols["ordinal"]; !present {
			cols["ordinal"] = int64(i)
		}
		if len(cols) == 1 {
			return nil, errs.NewBadRequestError("Request contains no usable fields", false, nil, nil)
		}

		stmt, args := insertSQL(r.table, cols)
		inserts = append(inserts, fetch.Query{Statement: stmt, Args: args})
	}

	if _, err := r.db.Exec(ctx, "DELETE FROM structure"); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	out := make([]map[string]any, 0, len(inserts))
	for _, insert := range inserts {
		rows, err := fetch.Collect(ctx, r.db, insert)
		if err != nil {
			return nil, sqlerr.HandleError(err)
		}
		if len(rows) == 0 {
			return nil, errs.NewInternalServerError()
		}
		out = append(out, r.mapping.ToAPI(rows[0]))
	}
	return out, nil
}
