package impl

import (
	"context"
	"testing"

	"ideaforge/internal/domain/entity"
	domainerrors "ideaforge/internal/domain/errors"
	mockRepo "ideaforge/internal/mocks/repository"
	mockService "ideaforge/internal/mocks/service"
	"ideaforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	adminChecker     *mockService.MockAdminChecker
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	adminChecker := mockService.NewMockAdminChecker(t)
	service := NewNotificationService(newDiscardLogger(), notificationRepo, adminChecker)

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
		adminChecker:     adminChecker,
	}
}

func TestNotificationService_CreateNotification_Self(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateNotificationInput{
		UserID:  userID,
		Message: "Welcome aboard",
		Type:    entity.NotificationTypeComment,
	}

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	notification, err := fx.service.CreateNotification(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, userID, notification.UserID)
	assert.Equal(t, "Welcome aboard", notification.Message)
	assert.False(t, notification.Read)
}

func TestNotificationService_CreateNotification_CrossUserAdmin(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	targetID := uuid.New()
	input := &usecase.CreateNotificationInput{
		UserID:  targetID,
		Message: "Your account was reviewed",
		Type:    entity.NotificationTypeTransaction,
	}

	fx.adminChecker.EXPECT().IsAdmin(ctx, adminID).Return(true, nil)

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	notification, err := fx.service.CreateNotification(ctx, adminID, input)
	require.NoError(t, err)
	assert.Equal(t, targetID, notification.UserID)
}

func TestNotificationService_CreateNotification_CrossUserNonAdmin(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	callerID := uuid.New()
	input := &usecase.CreateNotificationInput{
		UserID:  uuid.New(),
		Message: "spam",
		Type:    entity.NotificationTypeComment,
	}

	fx.adminChecker.EXPECT().IsAdmin(ctx, callerID).Return(false, nil)

	_, err := fx.service.CreateNotification(ctx, callerID, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestNotificationService_ListUserNotifications_Self(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Message: "newest"},
		{ID: uuid.New(), UserID: userID, Message: "older"},
	}

	fx.notificationRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(stored, nil)

	notifications, err := fx.service.ListUserNotifications(ctx, userID, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, notifications)
}

func TestNotificationService_ListUserNotifications_OtherUser(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	_, err := fx.service.ListUserNotifications(ctx, uuid.New(), uuid.New())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	updated := []*entity.Notification{
		{ID: ids[0], UserID: userID, Read: true},
		{ID: ids[1], UserID: userID, Read: true},
	}

	fx.notificationRepo.EXPECT().
		MarkRead(ctx, ids, userID).
		Return(updated, nil)

	notifications, err := fx.service.MarkRead(ctx, userID, &usecase.MarkReadInput{
		NotificationIDs: ids,
		UserID:          userID,
	})
	require.NoError(t, err)
	assert.Equal(t, updated, notifications)
}

func TestNotificationService_MarkRead_AlreadyRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New()}
	updated := []*entity.Notification{
		{ID: ids[0], UserID: userID, Read: true},
	}

	// Marking an already-read notification is a no-op that still succeeds.
	fx.notificationRepo.EXPECT().
		MarkRead(ctx, ids, userID).
		Return(updated, nil)

	notifications, err := fx.service.MarkRead(ctx, userID, &usecase.MarkReadInput{
		NotificationIDs: ids,
		UserID:          userID,
	})
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestNotificationService_MarkRead_OtherUser(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	_, err := fx.service.MarkRead(ctx, uuid.New(), &usecase.MarkReadInput{
		NotificationIDs: []uuid.UUID{uuid.New()},
		UserID:          uuid.New(),
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
