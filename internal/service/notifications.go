package service

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/repository"
)

// NotificationService serves per-user notifications and their read state.
type NotificationService struct {
	repo *repository.NotificationRepo
}

func NewNotificationService(repos *repository.Repositories) *NotificationService {
	return &NotificationService{repo: repos.Notifications}
}

func (s *NotificationService) ListByUser(ctx context.Context, userID int64) ([]map[string]any, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) Create(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return s.repo.Create(ctx, payload)
}

func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
