package impl

import (
	"context"
	"log/slog"
	"time"

	"ideaforge/internal/domain/entity"
	domainerrors "ideaforge/internal/domain/errors"
	"ideaforge/internal/domain/repository"
	"ideaforge/internal/domain/service"
	"ideaforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	adminChecker     service.AdminChecker
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	adminChecker service.AdminChecker,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
		adminChecker:     adminChecker,
	}
}

// CreateNotification creates a notification. Creating one for another user
// requires the admin capability.
func (s *notificationService) CreateNotification(ctx context.Context, callerID uuid.UUID, input *usecase.CreateNotificationInput) (*entity.Notification, error) {
	if callerID != input.UserID {
		isAdmin, err := s.adminChecker.IsAdmin(ctx, callerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check admin capability")
		}
		if !isAdmin {
			return nil, domainerrors.ErrForbidden.WithDetails("not authorized to create notifications for other users")
		}
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Message:   input.Message,
		Type:      input.Type,
		Link:      input.Link,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	return notification, nil
}

// ListUserNotifications retrieves the caller's notifications, newest first.
func (s *notificationService) ListUserNotifications(ctx context.Context, callerID, userID uuid.UUID) ([]*entity.Notification, error) {
	if callerID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("you can only view your own notifications")
	}

	notifications, err := s.notificationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch notifications")
	}

	return notifications, nil
}

// MarkRead flips read=true on the caller's notifications. Re-marking an
// already-read notification succeeds without error.
func (s *notificationService) MarkRead(ctx context.Context, callerID uuid.UUID, input *usecase.MarkReadInput) ([]*entity.Notification, error) {
	if callerID != input.UserID {
		return nil, domainerrors.ErrForbidden.WithDetails("you can only update your own notifications")
	}

	updated, err := s.notificationRepo.MarkRead(ctx, input.NotificationIDs, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark notifications as read")
	}

	return updated, nil
}
