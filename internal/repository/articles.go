package repository

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/fetch"
	"github.com/arkanhaq/contenthub/internal/mapper"
	"github.com/arkanhaq/contenthub/internal/sqlerr"
)

// ArticleRepo extends the shared CRUD queries with slug lookup.
type ArticleRepo struct {
	*EntityRepo
}

func NewArticleRepo(db DB) *ArticleRepo {
	return &ArticleRepo{
		EntityRepo: NewEntityRepo(db, "articles", mapper.Articles, "created_at"),
	}
}

// GetBySlug returns one article by its URL slug.
func (r *ArticleRepo) GetBySlug(ctx context.Context, slug string) (map[string]any, error) {
	rows, err := fetch.Collect(ctx, r.db, fetch.Query{
		Statement: "SELECT * FROM articles WHERE slug = $1",
		Args:      []any{slug},
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if len(rows) == 0 {
		return nil, r.notFound()
	}
	return r.mapping.ToAPI(rows[0]), nil
}
