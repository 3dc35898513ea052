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

type projectService struct {
	logger      *slog.Logger
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new project service instance.
func NewProjectService(logger *slog.Logger, projectRepo repository.ProjectRepository) usecase.ProjectUsecase {
	return &projectService{
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// CreateProject posts a new project owned by the caller.
func (s *projectService) CreateProject(ctx context.Context, callerID uuid.UUID, input *usecase.CreateProjectInput) (*entity.Project, error) {
	if callerID != input.OwnerID {
		return nil, domainerrors.ErrForbidden.WithDetails("you can only create projects for yourself")
	}

	stage := entity.StageIdea
	if input.Stage != "" {
		stage = entity.Stage(input.Stage)
		switch stage {
		case entity.StageIdea, entity.StageHalfBuilt, entity.StageReady:
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown stage %q", input.Stage))
		}
	}

	visibility := entity.VisibilityPublic
	if input.Visibility != "" {
		visibility = entity.Visibility(input.Visibility)
		switch visibility {
		case entity.VisibilityPublic, entity.VisibilityPrivate:
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown visibility %q", input.Visibility))
		}
	}

	if input.Price != nil && *input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be non-negative")
	}

	project := &entity.Project{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Tags:        input.Tags,
		Stage:       stage,
		Licensing:   input.Licensing,
		Price:       input.Price,
		Visibility:  visibility,
		Attachments: input.Attachments,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	return project, nil
}

// ListPublicProjects retrieves all public projects, newest first.
func (s *projectService) ListPublicProjects(ctx context.Context) ([]*entity.Project, error) {
	projects, err := s.projectRepo.FindPublic(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch public projects")
	}

	return projects, nil
}

// GetProject retrieves a single project, enforcing the visibility gate.
// Private projects answer 403 to non-owners rather than 404.
func (s *projectService) GetProject(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*entity.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, domainerrors.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch project")
	}

	if !project.ReadableBy(viewerID) {
		return nil, domainerrors.ErrProjectPrivate
	}

	return project, nil
}

// ListUserProjects retrieves a user's projects; non-owners see only public rows.
func (s *projectService) ListUserProjects(ctx context.Context, ownerID, callerID uuid.UUID) ([]*entity.Project, error) {
	publicOnly := callerID != ownerID

	projects, err := s.projectRepo.FindByOwner(ctx, ownerID, publicOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user projects")
	}

	return projects, nil
}
