package repository

import (
	"context"

	"github.com/arkanhaq/contenthub/internal/fetch"
	"github.com/arkanhaq/contenthub/internal/mapper"
	"github.com/arkanhaq/contenthub/internal/sqlerr"
)

// NotificationRepo extends the shared CRUD queries with per-user listing
// and read-state updates.
type NotificationRepo struct {
	*EntityRepo
}

func NewNotificationRepo(db DB) *NotificationRepo {
	return &NotificationRepo{
		EntityRepo: NewEntityRepo(db, "notifications", mapper.Notifications, "created_at"),
	}
}

// ListByUser returns the notifications addressed to one user, newest first.
func (r *NotificationRepo) ListByUser(ctx context.Context, userID int64) ([]map[string]any, error) {
	rows, err := fetch.Collect(ctx, r.db, fetch.Query{
		Statement: "SELECT * FROM notifications WHERE user_id = $1 ORDER BY created_at DESC",
		Args:      []any{userID},
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return r.toAPI(rows), nil
}

// MarkRead flags one notification as read.
func (r *NotificationRepo) MarkRead(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "UPDATE notifications SET is_read = 1 WHERE id = $1", id)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	if tag.RowsAffected() == 0 {
		return r.notFound()
	}
	return nil
}

// MarkAllRead flags every notification for one user as read.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, "UPDATE notifications SET is_read = 1 WHERE user_id = $1", userID)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	return nil
}
