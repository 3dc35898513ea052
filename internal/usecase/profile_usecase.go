// Package usecase defines the application's use case interfaces and DTOs.
package usecase

import (
	"context"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProfileInput carries the fields for self-service profile creation.
type CreateProfileInput struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	Username  string    `json:"username" validate:"required"`
	FullName  string    `json:"fullName" validate:"required"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatarUrl"`
	Role      string    `json:"role"`
}

// SignupEventInput is the payload delivered by the auth provider's signup webhook.
type SignupEventInput struct {
	Event  string `json:"event"`
	Record struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
	} `json:"record"`
}

// ProfileUsecase defines the interface for profile management use cases.
type ProfileUsecase interface {
	// CreateProfile creates a profile for a freshly signed-up auth user.
	// The username must not be taken by another profile.
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*entity.Profile, error)

	// GetProfile retrieves the caller's own profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// HandleSignupEvent auto-creates a profile with default values when the
	// auth provider reports a new signup.
	HandleSignupEvent(ctx context.Context, input *SignupEventInput) (*entity.Profile, error)
}
