package service

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/repository"
)

// LegalService serves the legal pages, addressed by page key.
type LegalService struct {
	repo *repository.LegalRepo
}

func NewLegalService(repos *repository.Repositories) *LegalService {
	return &LegalService{repo: repos.Legal}
}

func (s *LegalService) List(ctx context.Context) ([]map[string]any, error) {
	return s.repo.List(ctx)
}

func (s *LegalService) GetByKey(ctx context.Context, pageKey string) (map[string]any, error) {
	return s.repo.GetByKey(ctx, pageKey)
}

func (s *LegalService) UpsertByKey(ctx context.Context, pageKey string, payload map[string]any) (map[string]any, error) {
	return s.repo.UpsertByKey(ctx, pageKey, payload)
}
