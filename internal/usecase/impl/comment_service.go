package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ideaforge/internal/domain/entity"
	domainerrors "ideaforge/internal/domain/errors"
	"ideaforge/internal/domain/repository"
	"ideaforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type commentService struct {
	logger           *slog.Logger
	commentRepo      repository.CommentRepository
	projectRepo      repository.ProjectRepository
	notificationRepo repository.NotificationRepository
}

// NewCommentService creates a new comment service instance.
func NewCommentService(
	logger *slog.Logger,
	commentRepo repository.CommentRepository,
	projectRepo repository.ProjectRepository,
	notificationRepo repository.NotificationRepository,
) usecase.CommentUsecase {
	return &commentService{
		logger:           logger,
		commentRepo:      commentRepo,
		projectRepo:      projectRepo,
		notificationRepo: notificationRepo,
	}
}

// CreateComment posts a comment on a project the caller can read.
func (s *commentService) CreateComment(ctx context.Context, callerID uuid.UUID, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if callerID != input.UserID {
		return nil, domainerrors.ErrForbidden.WithDetails("you can only create comments for yourself")
	}

	project, err := s.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch project")
	}

	if project.Visibility == entity.VisibilityPrivate && project.OwnerID != input.UserID {
		return nil, domainerrors.ErrProjectPrivate.WithDetails("cannot comment on private projects")
	}

	comment := &entity.Comment{
		ID:        uuid.New(),
		ProjectID: input.ProjectID,
		UserID:    input.UserID,
		Content:   input.Content,
		CreatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	// The owner commenting on their own project does not notify anyone.
	if project.OwnerID != input.UserID {
		link := fmt.Sprintf("/projects/%s", input.ProjectID)
		notification := &entity.Notification{
			ID:        uuid.New(),
			UserID:    project.OwnerID,
			Message:   "New comment on your project",
			Type:      entity.NotificationTypeComment,
			Link:      &link,
			CreatedAt: time.Now(),
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			s.logger.Warn("failed to create comment notification",
				slog.String("projectID", input.ProjectID.String()),
				slog.Any("error", err),
			)
		}
	}

	return comment, nil
}

// ListProjectComments retrieves a project's comments, enforcing the visibility gate.
func (s *commentService) ListProjectComments(ctx context.Context, projectID uuid.UUID, viewerID *uuid.UUID) ([]*entity.Comment, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch project")
	}

	if !project.ReadableBy(viewerID) {
		return nil, domainerrors.ErrProjectPrivate
	}

	comments, err := s.commentRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch comments")
	}

	return comments, nil
}
