package service

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/repository"
)

// ContentService serves the flat content collections whose behavior is
// plain CRUD on one table.
type ContentService struct {
	repo *repository.EntityRepo
}

func NewContentService(repo *repository.EntityRepo) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) List(ctx context.Context) ([]map[string]any, error) {
	return s.repo.List(ctx)
}

func (s *ContentService) Get(ctx context.Context, id int64) (map[string]any, error) {
	return s.repo.Get(ctx, id)
}

func (s *ContentService) Create(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return s.repo.Create(ctx, payload)
}

func (s *ContentService) Update(ctx context.Context, id int64, payload map[string]any) (map[string]any, error) {
	return s.repo.Update(ctx, id, payload)
}

func (s *ContentService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
