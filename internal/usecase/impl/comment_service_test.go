package impl

import (
	"context"
	"testing"

	"ideaforge/internal/domain/entity"
	domainerrors "ideaforge/internal/domain/errors"
	"ideaforge/internal/domain/repository"
	mockRepo "ideaforge/internal/mocks/repository"
	"ideaforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// commentServiceFixtures holds all test dependencies for comment service tests.
type commentServiceFixtures struct {
	service          usecase.CommentUsecase
	commentRepo      *mockRepo.MockCommentRepository
	projectRepo      *mockRepo.MockProjectRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewCommentService(newDiscardLogger(), commentRepo, projectRepo, notificationRepo)

	return commentServiceFixtures{
		service:          service,
		commentRepo:      commentRepo,
		projectRepo:      projectRepo,
		notificationRepo: notificationRepo,
	}
}

func TestCommentService_CreateComment_SuccessNotifiesOwner(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	userID := uuid.New()
	projectID := uuid.New()
	ownerID := uuid.New()
	project := &entity.Project{
		ID:         projectID,
		OwnerID:    ownerID,
		Visibility: entity.VisibilityPublic,
	}
	input := &usecase.CreateCommentInput{
		ProjectID: projectID,
		UserID:    userID,
		Content:   "Love the webcam idea",
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Return(nil)

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			assert.Equal(t, ownerID, notification.UserID)
			assert.Equal(t, entity.NotificationTypeComment, notification.Type)
		}).
		Return(nil)

	comment, err := fx.service.CreateComment(ctx, userID, input)
	require.NoError(t, err)
	assert.Equal(t, projectID, comment.ProjectID)
	assert.Equal(t, userID, comment.UserID)
	assert.Equal(t, "Love the webcam idea", comment.Content)
}

func TestCommentService_CreateComment_ForOtherUser(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	input := &usecase.CreateCommentInput{
		ProjectID: uuid.New(),
		UserID:    uuid.New(),
		Content:   "hi",
	}

	_, err := fx.service.CreateComment(ctx, uuid.New(), input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCommentService_CreateComment_ProjectNotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	userID := uuid.New()
	projectID := uuid.New()
	input := &usecase.CreateCommentInput{
		ProjectID: projectID,
		UserID:    userID,
		Content:   "hi",
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(nil, repository.ErrProjectNotFound)

	_, err := fx.service.CreateComment(ctx, userID, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}

func TestCommentService_CreateComment_PrivateNonOwner(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	userID := uuid.New()
	projectID := uuid.New()
	project := &entity.Project{
		ID:         projectID,
		OwnerID:    uuid.New(),
		Visibility: entity.VisibilityPrivate,
	}
	input := &usecase.CreateCommentInput{
		ProjectID: projectID,
		UserID:    userID,
		Content:   "hi",
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	_, err := fx.service.CreateComment(ctx, userID, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectPrivate))
}

func TestCommentService_CreateComment_OwnerSelfCommentNoNotification(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	projectID := uuid.New()
	project := &entity.Project{
		ID:         projectID,
		OwnerID:    ownerID,
		Visibility: entity.VisibilityPrivate,
	}
	input := &usecase.CreateCommentInput{
		ProjectID: projectID,
		UserID:    ownerID,
		Content:   "note to self",
	}

	// No notification expectation: the owner commenting on their own project
	// must not notify anyone.
	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Return(nil)

	comment, err := fx.service.CreateComment(ctx, ownerID, input)
	require.NoError(t, err)
	assert.Equal(t, ownerID, comment.UserID)
}

func TestCommentService_CreateComment_NotificationFailureIgnored(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	userID := uuid.New()
	projectID := uuid.New()
	project := &entity.Project{
		ID:         projectID,
		OwnerID:    uuid.New(),
		Visibility: entity.VisibilityPublic,
	}
	input := &usecase.CreateCommentInput{
		ProjectID: projectID,
		UserID:    userID,
		Content:   "hi",
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Return(nil)

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("notification table unavailable"))

	comment, err := fx.service.CreateComment(ctx, userID, input)
	require.NoError(t, err)
	assert.NotNil(t, comment)
}

func TestCommentService_ListProjectComments_Public(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	projectID := uuid.New()
	project := &entity.Project{
		ID:         projectID,
		OwnerID:    uuid.New(),
		Visibility: entity.VisibilityPublic,
	}
	stored := []*entity.Comment{
		{ID: uuid.New(), ProjectID: projectID, Content: "first"},
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	fx.commentRepo.EXPECT().
		FindByProject(ctx, projectID).
		Return(stored, nil)

	comments, err := fx.service.ListProjectComments(ctx, projectID, nil)
	require.NoError(t, err)
	assert.Equal(t, stored, comments)
}

func TestCommentService_ListProjectComments_PrivateNonOwner(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	projectID := uuid.New()
	viewerID := uuid.New()
	project := &entity.Project{
		ID:         projectID,
		OwnerID:    uuid.New(),
		Visibility: entity.VisibilityPrivate,
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	_, err := fx.service.ListProjectComments(ctx, projectID, &viewerID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectPrivate))
}

func TestCommentService_ListProjectComments_PrivateOwner(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	projectID := uuid.New()
	ownerID := uuid.New()
	project := &entity.Project{
		ID:         projectID,
		OwnerID:    ownerID,
		Visibility: entity.VisibilityPrivate,
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	fx.commentRepo.EXPECT().
		FindByProject(ctx, projectID).
		Return([]*entity.Comment{}, nil)

	_, err := fx.service.ListProjectComments(ctx, projectID, &ownerID)
	require.NoError(t, err)
}
