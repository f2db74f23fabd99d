package service

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/repository"
)

// StructureService serves the organizational chart.
type StructureService struct {
	repo *repository.StructureRepo
}

func NewStructureService(repos *repository.Repositories) *StructureService {
	return &StructureService{repo: repos.Structure}
}

func (s *StructureService) List(ctx context.Context) ([]map[string]any, error) {
	return s.repo.List(ctx)
}

func (s *StructureService) Get(ctx context.Context, id int64) (map[string]any, error) {
	return s.repo.Get(ctx, id)
}

func (s *StructureService) Create(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return s.repo.Create(ctx, payload)
}

func (s *StructureService) Update(ctx context.Context, id int64, payload map[string]any) (map[string]any, error) {
	return s.repo.Update(ctx, id, payload)
}

func (s *StructureService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Replace swaps the whole chart for the given entries, preserving their
// order as the display order.
func (s *StructureService) Replace(ctx context.Context, entries []map[string]any) ([]map[string]any, error) {
	return s.repo.Replace(ctx, entries)
}
