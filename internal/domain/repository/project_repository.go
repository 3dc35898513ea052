package repository

import (
	"context"
	"errors"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when a project row does not exist.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines project-related database operations.
type ProjectRepository interface {
	// Create persists a new project.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindPublic retrieves all public projects, newest first.
	FindPublic(ctx context.Context) ([]*entity.Project, error)

	// FindByOwner retrieves a user's projects, newest first.
	// With publicOnly set, private rows are filtered out.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) ([]*entity.Project, error)
}
