package service

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/repository"
)

// ArticleService serves articles and their comments.
type ArticleService struct {
	articles *repository.ArticleRepo
	comments *repository.CommentRepo
}

func NewArticleService(repos *repository.Repositories) *ArticleService {
	return &ArticleService{
		articles: repos.Articles,
		comments: repos.Comments,
	}
}

func (s *ArticleService) List(ctx context.Context) ([]map[string]any, error) {
	return s.articles.List(ctx)
}

func (s *ArticleService) Get(ctx context.Context, id int64) (map[string]any, error) {
	return s.articles.Get(ctx, id)
}

// GetBySlug resolves an article by its URL slug, the lookup the public
// site uses.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (map[string]any, error) {
	return s.articles.GetBySlug(ctx, slug)
}

func (s *ArticleService) Create(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return s.articles.Create(ctx, payload)
}

func (s *ArticleService) Update(ctx context.Context, id int64, payload map[string]any) (map[string]any, error) {
	return s.articles.Update(ctx, id, payload)
}

func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	return s.articles.Delete(ctx, id)
}

// ListComments returns one article's comments after confirming the
// article exists, so a bad identifier reads as 404 rather than an empty
// list.
func (s *ArticleService) ListComments(ctx context.Context, articleID int64) ([]map[string]any, error) {
	if _, err := s.articles.Get(ctx, articleID); err != nil {
		return nil, err
	}
	return s.comments.ListByArticle(ctx, articleID)
}

// AddComment attaches a comment to an article. The article id in the
// path wins over any id in the payload.
func (s *ArticleService) AddComment(ctx context.Context, articleID int64, payload map[string]any) (map[string]any, error) {
	merged := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		merged[k] = v
	}
	merged["articleId"] = articleID
	return s.comments.Create(ctx, merged)
}

func (s *ArticleService) DeleteComment(ctx context.Context, commentID int64) error {
	return s.comments.Delete(ctx, commentID)
}
