package usecase

import (
	"context"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput carries the fields for creating a notification directly.
type CreateNotificationInput struct {
	UserID  uuid.UUID `json:"userId" validate:"required"`
	Message string    `json:"message" validate:"required"`
	Type    string    `json:"type" validate:"required"`
	Link    *string   `json:"link"`
}

// MarkReadInput carries the notification IDs to flip to read.
type MarkReadInput struct {
	NotificationIDs []uuid.UUID `json:"notificationIds" validate:"required,min=1"`
	UserID          uuid.UUID   `json:"userId" validate:"required"`
}

// NotificationUsecase defines the interface for notification use cases.
type NotificationUsecase interface {
	// CreateNotification creates a notification. Creating one for another
	// user requires the admin capability.
	CreateNotification(ctx context.Context, callerID uuid.UUID, input *CreateNotificationInput) (*entity.Notification, error)

	// ListUserNotifications retrieves the caller's notifications, newest first.
	ListUserNotifications(ctx context.Context, callerID, userID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead flips read=true on the caller's notifications. Idempotent.
	MarkRead(ctx context.Context, callerID uuid.UUID, input *MarkReadInput) ([]*entity.Notification, error)
}
