package repository

import (
	"context"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository defines comment-related database operations.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByProject retrieves all comments on a project, oldest first.
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*entity.Comment, error)
}
