package repository

import (
	"context"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository defines notification-related database operations.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUser retrieves all notifications for a recipient, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead flips read=true on the given notifications, scoped to the
	// recipient, and returns the rows it touched. Already-read rows are
	// matched again without error, keeping the operation idempotent.
	MarkRead(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.Notification, error)
}
