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

// collaborationServiceFixtures holds all test dependencies for collaboration service tests.
type collaborationServiceFixtures struct {
	service          usecase.CollaborationUsecase
	collabRepo       *mockRepo.MockCollaborationRepository
	projectRepo      *mockRepo.MockProjectRepository
	notificationRepo *mockRepo.MockNotificationRepository
	txManager        *mockRepo.MockTransactionManager
}

func createTestCollaborationService(t *testing.T) collaborationServiceFixtures {
	collabRepo := mockRepo.NewMockCollaborationRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCollaborationService(newDiscardLogger(), collabRepo, projectRepo, notificationRepo, txManager)

	return collaborationServiceFixtures{
		service:          service,
		collabRepo:       collabRepo,
		projectRepo:      projectRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

// onExecute stubs the transaction manager to run the use case closure against
// a repository factory configured by setup.
func (fx collaborationServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)
			return fn(factory)
		})
}

func TestCollaborationService_RequestCollaboration_Success(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	senderID := uuid.New()
	projectID := uuid.New()
	project := &entity.Project{
		ID:         projectID,
		OwnerID:    uuid.New(),
		Visibility: entity.VisibilityPublic,
	}
	input := &usecase.CollaborationRequestInput{
		ProjectID: projectID,
		SenderID:  senderID,
		Message:   "I can help with the firmware",
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	fx.collabRepo.EXPECT().
		FindActiveByProjectAndSender(ctx, projectID, senderID).
		Return(nil, repository.ErrCollaborationNotFound)

	fx.collabRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CollaborationRequest")).
		Return(nil)

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	request, err := fx.service.RequestCollaboration(ctx, senderID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.CollaborationPending, request.Status)
	assert.Equal(t, senderID, request.SenderID)
	assert.Equal(t, projectID, request.ProjectID)
}

func TestCollaborationService_RequestCollaboration_ForOtherUser(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	input := &usecase.CollaborationRequestInput{
		ProjectID: uuid.New(),
		SenderID:  uuid.New(),
		Message:   "hi",
	}

	_, err := fx.service.RequestCollaboration(ctx, uuid.New(), input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCollaborationService_RequestCollaboration_OwnProject(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	senderID := uuid.New()
	projectID := uuid.New()
	project := &entity.Project{ID: projectID, OwnerID: senderID}
	input := &usecase.CollaborationRequestInput{
		ProjectID: projectID,
		SenderID:  senderID,
		Message:   "hi",
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	_, err := fx.service.RequestCollaboration(ctx, senderID, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOwnProjectRequest))
}

func TestCollaborationService_RequestCollaboration_DuplicatePending(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	senderID := uuid.New()
	projectID := uuid.New()
	project := &entity.Project{ID: projectID, OwnerID: uuid.New()}
	input := &usecase.CollaborationRequestInput{
		ProjectID: projectID,
		SenderID:  senderID,
		Message:   "hi again",
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	fx.collabRepo.EXPECT().
		FindActiveByProjectAndSender(ctx, projectID, senderID).
		Return(&entity.CollaborationRequest{
			ID:     uuid.New(),
			Status: entity.CollaborationPending,
		}, nil)

	_, err := fx.service.RequestCollaboration(ctx, senderID, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRequest))
}

func TestCollaborationService_RequestCollaboration_AfterDeclined(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	senderID := uuid.New()
	projectID := uuid.New()
	project := &entity.Project{ID: projectID, OwnerID: uuid.New()}
	input := &usecase.CollaborationRequestInput{
		ProjectID: projectID,
		SenderID:  senderID,
		Message:   "second attempt",
	}

	// A declined request never matches the active lookup, so the sender may
	// try again.
	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	fx.collabRepo.EXPECT().
		FindActiveByProjectAndSender(ctx, projectID, senderID).
		Return(nil, repository.ErrCollaborationNotFound)

	fx.collabRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CollaborationRequest")).
		Return(nil)

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	request, err := fx.service.RequestCollaboration(ctx, senderID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.CollaborationPending, request.Status)
}

func TestCollaborationService_RequestCollaboration_InsertRace(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	senderID := uuid.New()
	projectID := uuid.New()
	project := &entity.Project{ID: projectID, OwnerID: uuid.New()}
	input := &usecase.CollaborationRequestInput{
		ProjectID: projectID,
		SenderID:  senderID,
		Message:   "hi",
	}

	// The datastore unique index catches the race the application-level
	// check misses; both surface as the same duplicate error.
	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	fx.collabRepo.EXPECT().
		FindActiveByProjectAndSender(ctx, projectID, senderID).
		Return(nil, repository.ErrCollaborationNotFound)

	fx.collabRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CollaborationRequest")).
		Return(repository.ErrDuplicateCollaboration)

	_, err := fx.service.RequestCollaboration(ctx, senderID, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateRequest))
}

func TestCollaborationService_RequestCollaboration_NotificationFailureIgnored(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	senderID := uuid.New()
	projectID := uuid.New()
	project := &entity.Project{ID: projectID, OwnerID: uuid.New()}
	input := &usecase.CollaborationRequestInput{
		ProjectID: projectID,
		SenderID:  senderID,
		Message:   "hi",
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(project, nil)

	fx.collabRepo.EXPECT().
		FindActiveByProjectAndSender(ctx, projectID, senderID).
		Return(nil, repository.ErrCollaborationNotFound)

	fx.collabRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CollaborationRequest")).
		Return(nil)

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(errors.New("db error"))

	request, err := fx.service.RequestCollaboration(ctx, senderID, input)
	require.NoError(t, err)
	assert.NotNil(t, request)
}

func TestCollaborationService_RespondToRequest_Accept(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requestID := uuid.New()
	projectID := uuid.New()
	senderID := uuid.New()
	pending := &entity.CollaborationRequest{
		ID:        requestID,
		ProjectID: projectID,
		SenderID:  senderID,
		Status:    entity.CollaborationPending,
	}
	accepted := &entity.CollaborationRequest{
		ID:        requestID,
		ProjectID: projectID,
		SenderID:  senderID,
		Status:    entity.CollaborationAccepted,
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		collabRepo := mockRepo.NewMockCollaborationRepository(t)
		projectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().NewCollaborationRepository().Return(collabRepo)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)

		collabRepo.EXPECT().FindByID(ctx, requestID).Return(pending, nil)
		projectRepo.EXPECT().FindByID(ctx, projectID).Return(&entity.Project{ID: projectID, OwnerID: ownerID}, nil)
		collabRepo.EXPECT().UpdateStatus(ctx, requestID, entity.CollaborationAccepted).Return(accepted, nil)
	})

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	updated, err := fx.service.RespondToRequest(ctx, ownerID, &usecase.CollaborationResponseInput{
		RequestID: requestID,
		Status:    "accepted",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CollaborationAccepted, updated.Status)
}

func TestCollaborationService_RespondToRequest_AlreadyProcessed(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	requestID := uuid.New()
	declined := &entity.CollaborationRequest{
		ID:        requestID,
		ProjectID: uuid.New(),
		Status:    entity.CollaborationDeclined,
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		collabRepo := mockRepo.NewMockCollaborationRepository(t)
		factory.EXPECT().NewCollaborationRepository().Return(collabRepo)
		collabRepo.EXPECT().FindByID(ctx, requestID).Return(declined, nil)
	})

	_, err := fx.service.RespondToRequest(ctx, ownerID, &usecase.CollaborationResponseInput{
		RequestID: requestID,
		Status:    "accepted",
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidState))
}

func TestCollaborationService_RespondToRequest_NotOwner(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	requestID := uuid.New()
	projectID := uuid.New()
	pending := &entity.CollaborationRequest{
		ID:        requestID,
		ProjectID: projectID,
		Status:    entity.CollaborationPending,
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		collabRepo := mockRepo.NewMockCollaborationRepository(t)
		projectRepo := mockRepo.NewMockProjectRepository(t)
		factory.EXPECT().NewCollaborationRepository().Return(collabRepo)
		factory.EXPECT().NewProjectRepository().Return(projectRepo)

		collabRepo.EXPECT().FindByID(ctx, requestID).Return(pending, nil)
		projectRepo.EXPECT().FindByID(ctx, projectID).Return(&entity.Project{ID: projectID, OwnerID: uuid.New()}, nil)
	})

	_, err := fx.service.RespondToRequest(ctx, uuid.New(), &usecase.CollaborationResponseInput{
		RequestID: requestID,
		Status:    "declined",
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCollaborationService_RespondToRequest_NotFound(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	requestID := uuid.New()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		collabRepo := mockRepo.NewMockCollaborationRepository(t)
		factory.EXPECT().NewCollaborationRepository().Return(collabRepo)
		collabRepo.EXPECT().FindByID(ctx, requestID).Return(nil, repository.ErrCollaborationNotFound)
	})

	_, err := fx.service.RespondToRequest(ctx, uuid.New(), &usecase.CollaborationResponseInput{
		RequestID: requestID,
		Status:    "accepted",
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestCollaborationService_RespondToRequest_InvalidStatus(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()

	_, err := fx.service.RespondToRequest(ctx, uuid.New(), &usecase.CollaborationResponseInput{
		RequestID: uuid.New(),
		Status:    "maybe",
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCollaborationService_ListUserCollaborations_Self(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()
	userID := uuid.New()
	sent := []*entity.CollaborationRequest{{ID: uuid.New(), SenderID: userID}}
	received := []*entity.CollaborationRequest{{ID: uuid.New()}}

	fx.collabRepo.EXPECT().FindBySender(ctx, userID).Return(sent, nil)
	fx.collabRepo.EXPECT().FindByProjectOwner(ctx, userID).Return(received, nil)

	collaborations, err := fx.service.ListUserCollaborations(ctx, userID, userID)
	require.NoError(t, err)
	assert.Equal(t, sent, collaborations.Sent)
	assert.Equal(t, received, collaborations.Received)
}

func TestCollaborationService_ListUserCollaborations_OtherUser(t *testing.T) {
	fx := createTestCollaborationService(t)

	ctx := context.Background()

	_, err := fx.service.ListUserCollaborations(ctx, uuid.New(), uuid.New())
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
