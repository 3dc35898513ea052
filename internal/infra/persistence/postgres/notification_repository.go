package postgres

import (
	"context"

	"ideaforge/internal/domain/entity"
	domainerrors "ideaforge/internal/domain/errors"
	"ideaforge/internal/domain/repository"
	"ideaforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid recipient reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByUser retrieves all notifications for a recipient, newest first.
func (repo *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	return toNotificationDomainList(notificationModels), nil
}

// MarkRead flips read=true on the given notifications, scoped to the
// recipient, and returns the rows it touched. Rows belonging to other users
// or unknown IDs are silently skipped, and re-marking an already-read row is
// a no-op, which keeps the operation idempotent.
func (repo *notificationRepository) MarkRead(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Model(&notificationModels).
		Clauses(clause.Returning{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Update("read", true).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to mark notifications as read")
	}

	return toNotificationDomainList(notificationModels), nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Message:   data.Message,
		Type:      data.Type,
		Link:      data.Link,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}

func toNotificationDomainList(data []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(data))
	for _, notificationM := range data {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Message:   data.Message,
		Type:      data.Type,
		Link:      data.Link,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}
