package postgres

import (
	"context"

	"ideaforge/internal/domain/entity"
	domainerrors "ideaforge/internal/domain/errors"
	"ideaforge/internal/domain/repository"
	"ideaforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// projectRepository implements the repository.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{
		db: db,
	}
}

// Create persists a new project.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

// FindByID retrieves a project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by ID")
	}

	return toProjectDomain(&projectM), nil
}

// FindPublic retrieves all public projects, newest first.
func (repo *projectRepository) FindPublic(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	if err := repo.db.WithContext(ctx).
		Where("visibility = ?", string(entity.VisibilityPublic)).
		Order("created_at DESC").
		Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find public projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

// FindByOwner retrieves a user's projects, newest first, optionally filtered to public rows.
func (repo *projectRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel

	query := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC")

	if publicOnly {
		query = query.Where("visibility = ?", string(entity.VisibilityPublic))
	}

	if err := query.Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find projects by owner")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

// --- Mapper Functions ---

// toProjectDomain converts a GORM ProjectModel to a domain Project entity.
func toProjectDomain(data *model.ProjectModel) *entity.Project {
	if data == nil {
		return nil
	}

	return &entity.Project{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Tags:        data.Tags,
		Stage:       entity.Stage(data.Stage),
		Licensing:   data.Licensing,
		Price:       data.Price,
		Visibility:  entity.Visibility(data.Visibility),
		Attachments: data.Attachments,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProjectDomain converts a domain Project entity to a GORM ProjectModel.
func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	if data == nil {
		return nil
	}

	return &model.ProjectModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Tags:        data.Tags,
		Stage:       string(data.Stage),
		Licensing:   data.Licensing,
		Price:       data.Price,
		Visibility:  string(data.Visibility),
		Attachments: data.Attachments,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
