package usecase

import (
	"context"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput carries the fields for commenting on a project.
type CreateCommentInput struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	Content   string    `json:"content" validate:"required"`
}

// CommentUsecase defines the interface for comment use cases.
type CommentUsecase interface {
	// CreateComment posts a comment on a project the caller can read, and
	// notifies the project owner unless the caller is the owner.
	CreateComment(ctx context.Context, callerID uuid.UUID, input *CreateCommentInput) (*entity.Comment, error)

	// ListProjectComments retrieves a project's comments, oldest first,
	// enforcing the visibility gate. A nil viewerID is an anonymous request.
	ListProjectComments(ctx context.Context, projectID uuid.UUID, viewerID *uuid.UUID) ([]*entity.Comment, error)
}
