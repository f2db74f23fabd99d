package repository

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/fetch"
	"github.com/arkanhaq/contenthub/internal/mapper"
	"github.com/arkanhaq/contenthub/internal/sqlerr"
)

// CommentRepo extends the shared CRUD queries with per-article listing.
type CommentRepo struct {
	*EntityRepo
}

func NewCommentRepo(db DB) *CommentRepo {
	return &CommentRepo{
		EntityRepo: NewEntityRepo(db, "comments", mapper.Comments, "created_at"),
	}
}

// ListByArticle returns the comments on one article, oldest first.
func (r *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]map[string]any, error) {
	rows, err := fetch.Collect(ctx, r.db, fetch.Query{
		Statement: "SELECT * FROM comments WHERE article_id = $1 ORDER BY created_at",
		Args:      []any{articleID},
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return r.toAPI(rows), nil
}
