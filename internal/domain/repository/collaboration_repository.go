package repository

import (
	"context"
	"errors"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for collaboration request persistence.
var (
	// ErrCollaborationNotFound is returned when a collaboration request does not exist.
	ErrCollaborationNotFound = errors.New("collaboration request not found")
	// ErrDuplicateCollaboration is returned when the unique index on active
	// (pending or accepted) requests per (project, sender) rejects an insert.
	ErrDuplicateCollaboration = errors.New("active collaboration request already exists")
)

// CollaborationRepository defines collaboration-request database operations.
type CollaborationRepository interface {
	// Create persists a new collaboration request.
	Create(ctx context.Context, request *entity.CollaborationRequest) error

	// FindByID retrieves a collaboration request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CollaborationRequest, error)

	// FindActiveByProjectAndSender retrieves the pending or accepted request
	// for the (project, sender) pair, if any. Declined requests never match.
	FindActiveByProjectAndSender(ctx context.Context, projectID, senderID uuid.UUID) (*entity.CollaborationRequest, error)

	// UpdateStatus sets the status of a request and returns the updated row.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CollaborationStatus) (*entity.CollaborationRequest, error)

	// FindBySender retrieves all requests sent by a user, newest first.
	FindBySender(ctx context.Context, senderID uuid.UUID) ([]*entity.CollaborationRequest, error)

	// FindByProjectOwner retrieves all requests targeting projects owned by a user, newest first.
	FindByProjectOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.CollaborationRequest, error)
}
