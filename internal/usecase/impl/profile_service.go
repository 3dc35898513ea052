// Package impl contains the implementations of the use case interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ideaforge/internal/domain/entity"
	domainerrors "ideaforge/internal/domain/errors"
	"ideaforge/internal/domain/repository"
	"ideaforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type profileService struct {
	logger      *slog.Logger
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service instance.
func NewProfileService(logger *slog.Logger, profileRepo repository.ProfileRepository) usecase.ProfileUsecase {
	return &profileService{
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// CreateProfile creates a profile for a freshly signed-up auth user.
func (s *profileService) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	role := entity.RoleMaker
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown role %q", input.Role))
		}
	}

	// Reject usernames already held by a different profile. Re-submitting
	// your own profile with the same username is allowed (upsert semantics).
	existing, err := s.profileRepo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}
	if existing != nil && existing.ID != input.UserID {
		return nil, domainerrors.ErrUsernameTaken
	}

	profile := &entity.Profile{
		ID:        input.UserID,
		Username:  input.Username,
		FullName:  input.FullName,
		Bio:       input.Bio,
		AvatarURL: input.AvatarURL,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// GetProfile retrieves the caller's own profile.
func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	return profile, nil
}

// HandleSignupEvent auto-creates a profile with default values on signup.
func (s *profileService) HandleSignupEvent(ctx context.Context, input *usecase.SignupEventInput) (*entity.Profile, error) {
	if input.Event != "INSERT" || input.Record.ID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid webhook payload")
	}

	fullName := "New User"
	if at := strings.Index(input.Record.Email, "@"); at > 0 {
		fullName = input.Record.Email[:at]
	}

	profile := &entity.Profile{
		ID:        input.Record.ID,
		Username:  "user_" + input.Record.ID.String()[:8],
		FullName:  fullName,
		Role:      entity.RoleMaker,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to auto-create profile")
	}

	return profile, nil
}
