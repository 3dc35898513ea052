package usecase

import (
	"context"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProjectInput carries the fields for posting a new project idea.
type CreateProjectInput struct {
	OwnerID     uuid.UUID      `json:"ownerId" validate:"required"`
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Tags        []string       `json:"tags" validate:"required"`
	Stage       string         `json:"stage"`
	Licensing   *string        `json:"licensing"`
	Price       *float64       `json:"price" validate:"omitempty,gte=0"`
	Visibility  string         `json:"visibility"`
	Attachments map[string]any `json:"attachments"`
}

// ProjectUsecase defines the interface for project management use cases.
type ProjectUsecase interface {
	// CreateProject posts a new project owned by the caller.
	CreateProject(ctx context.Context, callerID uuid.UUID, input *CreateProjectInput) (*entity.Project, error)

	// ListPublicProjects retrieves all public projects, newest first.
	ListPublicProjects(ctx context.Context) ([]*entity.Project, error)

	// GetProject retrieves a single project, enforcing the visibility gate.
	// A nil viewerID is an anonymous request.
	GetProject(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*entity.Project, error)

	// ListUserProjects retrieves a user's projects. Callers other than the
	// owner see only public rows.
	ListUserProjects(ctx context.Context, ownerID, callerID uuid.UUID) ([]*entity.Project, error)
}
