// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile row does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines profile-related database operations.
type ProfileRepository interface {
	// Upsert creates the profile or replaces the row with the same ID.
	// The ID is assigned by the external auth provider, so create-profile
	// and the signup webhook may race on the same row.
	Upsert(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile by its auth-provider ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByUsername retrieves a profile by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)
}
