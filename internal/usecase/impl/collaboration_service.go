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

type collaborationService struct {
	logger           *slog.Logger
	collabRepo       repository.CollaborationRepository
	projectRepo      repository.ProjectRepository
	notificationRepo repository.NotificationRepository
	txManager        repository.TransactionManager
}

// NewCollaborationService creates a new collaboration service instance.
func NewCollaborationService(
	logger *slog.Logger,
	collabRepo repository.CollaborationRepository,
	projectRepo repository.ProjectRepository,
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
) usecase.CollaborationUsecase {
	return &collaborationService{
		logger:           logger,
		collabRepo:       collabRepo,
		projectRepo:      projectRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

// RequestCollaboration creates a pending request and notifies the project owner.
func (s *collaborationService) RequestCollaboration(ctx context.Context, callerID uuid.UUID, input *usecase.CollaborationRequestInput) (*entity.CollaborationRequest, error) {
	if callerID != input.SenderID {
		return nil, domainerrors.ErrForbidden.WithDetails("you can only create collaboration requests for yourself")
	}

	project, err := s.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch project")
	}

	if project.OwnerID == input.SenderID {
		return nil, domainerrors.ErrOwnProjectRequest
	}

	// Duplicate-intent guard: a pending or accepted request for the same
	// (project, sender) pair blocks a new one; a declined request does not.
	// The check-then-insert sequence has a race window; the unique partial
	// index on the table is the backstop and maps to the same error below.
	existing, err := s.collabRepo.FindActiveByProjectAndSender(ctx, input.ProjectID, input.SenderID)
	if err != nil && !errors.Is(err, repository.ErrCollaborationNotFound) {
		return nil, errors.Wrap(err, "failed to check existing requests")
	}
	if existing != nil {
		return nil, domainerrors.ErrDuplicateRequest
	}

	request := &entity.CollaborationRequest{
		ID:        uuid.New(),
		ProjectID: input.ProjectID,
		SenderID:  input.SenderID,
		Message:   input.Message,
		Status:    entity.CollaborationPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.collabRepo.Create(ctx, request); err != nil {
		if errors.Is(err, repository.ErrDuplicateCollaboration) {
			return nil, domainerrors.ErrDuplicateRequest
		}

		return nil, errors.Wrap(err, "failed to create collaboration request")
	}

	link := fmt.Sprintf("/projects/%s/collaborations", input.ProjectID)
	s.notify(ctx, project.OwnerID, "New collaboration request for your project", entity.NotificationTypeCollaborationRequest, &link)

	return request, nil
}

// RespondToRequest lets the project owner accept or decline a pending request.
// The read-guard-update sequence runs in one database transaction so two
// concurrent responses cannot both pass the pending check.
func (s *collaborationService) RespondToRequest(ctx context.Context, callerID uuid.UUID, input *usecase.CollaborationResponseInput) (*entity.CollaborationRequest, error) {
	status := entity.CollaborationStatus(input.Status)
	if status != entity.CollaborationAccepted && status != entity.CollaborationDeclined {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be accepted or declined")
	}

	var updated *entity.CollaborationRequest

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		collabRepo := factory.NewCollaborationRepository()

		request, err := collabRepo.FindByID(ctx, input.RequestID)
		if err != nil {
			if errors.Is(err, repository.ErrCollaborationNotFound) {
				return domainerrors.ErrRequestNotFound
			}

			return errors.Wrap(err, "failed to fetch collaboration request")
		}

		if request.Status != entity.CollaborationPending {
			return domainerrors.ErrInvalidState.WithDetails("this request has already been processed")
		}

		project, err := factory.NewProjectRepository().FindByID(ctx, request.ProjectID)
		if err != nil {
			if errors.Is(err, repository.ErrProjectNotFound) {
				return domainerrors.ErrProjectNotFound
			}

			return errors.Wrap(err, "failed to fetch project")
		}

		if project.OwnerID != callerID {
			return domainerrors.ErrForbidden.WithDetails("only the project owner can respond to collaboration requests")
		}

		updated, err = collabRepo.UpdateStatus(ctx, request.ID, status)
		if err != nil {
			return errors.Wrap(err, "failed to update collaboration request")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	link := fmt.Sprintf("/projects/%s", updated.ProjectID)
	s.notify(ctx, updated.SenderID, fmt.Sprintf("Your collaboration request was %s", status), entity.NotificationTypeCollaborationResponse, &link)

	return updated, nil
}

// ListUserCollaborations retrieves the caller's sent and received requests.
func (s *collaborationService) ListUserCollaborations(ctx context.Context, callerID, userID uuid.UUID) (*usecase.UserCollaborations, error) {
	if callerID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("you can only view your own collaboration requests")
	}

	sent, err := s.collabRepo.FindBySender(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch sent collaboration requests")
	}

	received, err := s.collabRepo.FindByProjectOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch received collaboration requests")
	}

	return &usecase.UserCollaborations{Sent: sent, Received: received}, nil
}

// notify writes a notification row best-effort. Fan-out failures are logged
// and never surfaced: the primary write already happened.
func (s *collaborationService) notify(ctx context.Context, userID uuid.UUID, message, notificationType string, link *string) {
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Type:      notificationType,
		Link:      link,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Warn("failed to create notification",
			slog.String("type", notificationType),
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)
	}
}
