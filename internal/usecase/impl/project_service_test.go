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

// projectServiceFixtures holds all test dependencies for project service tests.
type projectServiceFixtures struct {
	service     usecase.ProjectUsecase
	projectRepo *mockRepo.MockProjectRepository
}

func createTestProjectService(t *testing.T) projectServiceFixtures {
	projectRepo := mockRepo.NewMockProjectRepository(t)
	service := NewProjectService(newDiscardLogger(), projectRepo)

	return projectServiceFixtures{
		service:     service,
		projectRepo: projectRepo,
	}
}

func TestProjectService_CreateProject_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateProjectInput{
		OwnerID:     ownerID,
		Title:       "Solar-powered birdhouse",
		Description: "A birdhouse with a webcam",
		Tags:        []string{"hardware", "iot"},
		Price:       floatPtr(49.99),
	}

	fx.projectRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Return(nil)

	project, err := fx.service.CreateProject(ctx, ownerID, input)
	require.NoError(t, err)
	assert.Equal(t, ownerID, project.OwnerID)
	assert.Equal(t, entity.StageIdea, project.Stage)
	assert.Equal(t, entity.VisibilityPublic, project.Visibility)
}

func TestProjectService_CreateProject_ForOtherUser(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	input := &usecase.CreateProjectInput{
		OwnerID:     uuid.New(),
		Title:       "Solar-powered birdhouse",
		Description: "A birdhouse with a webcam",
		Tags:        []string{"hardware"},
	}

	_, err := fx.service.CreateProject(ctx, uuid.New(), input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProjectService_CreateProject_InvalidStage(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateProjectInput{
		OwnerID:     ownerID,
		Title:       "Solar-powered birdhouse",
		Description: "A birdhouse with a webcam",
		Tags:        []string{"hardware"},
		Stage:       "vapor",
	}

	_, err := fx.service.CreateProject(ctx, ownerID, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProjectService_CreateProject_NegativePrice(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateProjectInput{
		OwnerID:     ownerID,
		Title:       "Solar-powered birdhouse",
		Description: "A birdhouse with a webcam",
		Tags:        []string{"hardware"},
		Price:       floatPtr(-1),
	}

	_, err := fx.service.CreateProject(ctx, ownerID, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProjectService_GetProject_PublicAnonymous(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()
	stored := &entity.Project{
		ID:         projectID,
		OwnerID:    uuid.New(),
		Visibility: entity.VisibilityPublic,
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(stored, nil)

	project, err := fx.service.GetProject(ctx, projectID, nil)
	require.NoError(t, err)
	assert.Equal(t, stored, project)
}

func TestProjectService_GetProject_PrivateNonOwner(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()
	viewerID := uuid.New()
	stored := &entity.Project{
		ID:         projectID,
		OwnerID:    uuid.New(),
		Visibility: entity.VisibilityPrivate,
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(stored, nil)

	_, err := fx.service.GetProject(ctx, projectID, &viewerID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectPrivate))
}

func TestProjectService_GetProject_PrivateAnonymous(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()
	stored := &entity.Project{
		ID:         projectID,
		OwnerID:    uuid.New(),
		Visibility: entity.VisibilityPrivate,
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(stored, nil)

	_, err := fx.service.GetProject(ctx, projectID, nil)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectPrivate))
}

func TestProjectService_GetProject_PrivateOwner(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()
	ownerID := uuid.New()
	stored := &entity.Project{
		ID:         projectID,
		OwnerID:    ownerID,
		Visibility: entity.VisibilityPrivate,
	}

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(stored, nil)

	project, err := fx.service.GetProject(ctx, projectID, &ownerID)
	require.NoError(t, err)
	assert.Equal(t, stored, project)
}

func TestProjectService_GetProject_NotFound(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	projectID := uuid.New()

	fx.projectRepo.EXPECT().
		FindByID(ctx, projectID).
		Return(nil, repository.ErrProjectNotFound)

	_, err := fx.service.GetProject(ctx, projectID, nil)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}

func TestProjectService_ListUserProjects_SelfSeesAll(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.projectRepo.EXPECT().
		FindByOwner(ctx, ownerID, false).
		Return([]*entity.Project{}, nil)

	_, err := fx.service.ListUserProjects(ctx, ownerID, ownerID)
	require.NoError(t, err)
}

func TestProjectService_ListUserProjects_OtherSeesPublicOnly(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.projectRepo.EXPECT().
		FindByOwner(ctx, ownerID, true).
		Return([]*entity.Project{}, nil)

	_, err := fx.service.ListUserProjects(ctx, ownerID, uuid.New())
	require.NoError(t, err)
}

func TestProjectService_ListPublicProjects_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	stored := []*entity.Project{
		{ID: uuid.New(), Visibility: entity.VisibilityPublic},
	}

	fx.projectRepo.EXPECT().
		FindPublic(ctx).
		Return(stored, nil)

	projects, err := fx.service.ListPublicProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, projects)
}
