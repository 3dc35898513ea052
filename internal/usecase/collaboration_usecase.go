package usecase

import (
	"context"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// CollaborationRequestInput carries the fields for requesting collaboration.
type CollaborationRequestInput struct {
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	SenderID  uuid.UUID `json:"senderId" validate:"required"`
	Message   string    `json:"message" validate:"required"`
}

// CollaborationResponseInput carries the owner's accept/decline decision.
type CollaborationResponseInput struct {
	RequestID uuid.UUID `json:"requestId" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=accepted declined"`
}

// UserCollaborations groups a user's requests by direction.
type UserCollaborations struct {
	Sent     []*entity.CollaborationRequest `json:"sent"`
	Received []*entity.CollaborationRequest `json:"received"`
}

// CollaborationUsecase defines the interface for collaboration request use cases.
type CollaborationUsecase interface {
	// RequestCollaboration creates a pending request from the caller to a
	// project they do not own, and notifies the project owner.
	RequestCollaboration(ctx context.Context, callerID uuid.UUID, input *CollaborationRequestInput) (*entity.CollaborationRequest, error)

	// RespondToRequest lets the project owner accept or decline a pending
	// request, and notifies the sender.
	RespondToRequest(ctx context.Context, callerID uuid.UUID, input *CollaborationResponseInput) (*entity.CollaborationRequest, error)

	// ListUserCollaborations retrieves the caller's sent and received requests.
	ListUserCollaborations(ctx context.Context, callerID, userID uuid.UUID) (*UserCollaborations, error)
}
