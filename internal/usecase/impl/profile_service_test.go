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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewProfileService(newDiscardLogger(), profileRepo)

	return profileServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
	}
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateProfileInput{
		UserID:   userID,
		Username: "maker_jane",
		FullName: "Jane Doe",
		Bio:      strPtr("builds things"),
		Role:     "maker",
	}

	fx.profileRepo.EXPECT().
		FindByUsername(ctx, "maker_jane").
		Return(nil, repository.ErrProfileNotFound)

	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, "maker_jane", profile.Username)
	assert.Equal(t, entity.RoleMaker, profile.Role)
}

func TestProfileService_CreateProfile_DefaultRole(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateProfileInput{
		UserID:   uuid.New(),
		Username: "maker_joe",
		FullName: "Joe Doe",
	}

	fx.profileRepo.EXPECT().
		FindByUsername(ctx, "maker_joe").
		Return(nil, repository.ErrProfileNotFound)

	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMaker, profile.Role)
}

func TestProfileService_CreateProfile_InvalidRole(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateProfileInput{
		UserID:   uuid.New(),
		Username: "maker_jane",
		FullName: "Jane Doe",
		Role:     "wizard",
	}

	_, err := fx.service.CreateProfile(ctx, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_CreateProfile_UsernameTaken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateProfileInput{
		UserID:   uuid.New(),
		Username: "maker_jane",
		FullName: "Jane Doe",
	}

	fx.profileRepo.EXPECT().
		FindByUsername(ctx, "maker_jane").
		Return(&entity.Profile{ID: uuid.New(), Username: "maker_jane"}, nil)

	_, err := fx.service.CreateProfile(ctx, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestProfileService_CreateProfile_ReSubmitOwnUsername(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateProfileInput{
		UserID:   userID,
		Username: "maker_jane",
		FullName: "Jane Doe",
	}

	// The same user re-submitting their own profile is an upsert, not a conflict.
	fx.profileRepo.EXPECT().
		FindByUsername(ctx, "maker_jane").
		Return(&entity.Profile{ID: userID, Username: "maker_jane"}, nil)

	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.Profile{ID: userID, Username: "maker_jane"}

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(stored, nil)

	profile, err := fx.service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, profile)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, userID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_HandleSignupEvent_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	input := &usecase.SignupEventInput{Event: "INSERT"}
	input.Record.ID = userID
	input.Record.Email = "jane@example.com"

	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	profile, err := fx.service.HandleSignupEvent(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, "user_"+userID.String()[:8], profile.Username)
	assert.Equal(t, "jane", profile.FullName)
	assert.Equal(t, entity.RoleMaker, profile.Role)
}

func TestProfileService_HandleSignupEvent_NoEmailLocalPart(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.SignupEventInput{Event: "INSERT"}
	input.Record.ID = uuid.New()

	fx.profileRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	profile, err := fx.service.HandleSignupEvent(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "New User", profile.FullName)
}

func TestProfileService_HandleSignupEvent_WrongEvent(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.SignupEventInput{Event: "DELETE"}
	input.Record.ID = uuid.New()

	_, err := fx.service.HandleSignupEvent(ctx, input)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
