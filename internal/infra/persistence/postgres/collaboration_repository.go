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

// collaborationRepository implements the repository.CollaborationRepository interface.
type collaborationRepository struct {
	db *gorm.DB
}

// NewCollaborationRepository is the constructor for collaborationRepository.
func NewCollaborationRepository(db *gorm.DB) repository.CollaborationRepository {
	return &collaborationRepository{
		db: db,
	}
}

// Create persists a new collaboration request. The partial unique index on
// active (project, sender) pairs surfaces as ErrDuplicateCollaboration.
func (repo *collaborationRepository) Create(ctx context.Context, request *entity.CollaborationRequest) error {
	requestM := fromCollaborationDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCollaboration
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid project or sender reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create collaboration request")
	}

	request.ID = requestM.ID
	request.Status = entity.CollaborationStatus(requestM.Status)
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a collaboration request by its unique ID.
func (repo *collaborationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CollaborationRequest, error) {
	var requestM model.CollaborationRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollaborationNotFound
		}

		return nil, errors.Wrap(err, "failed to find collaboration request by ID")
	}

	return toCollaborationDomain(&requestM), nil
}

// FindActiveByProjectAndSender retrieves the pending or accepted request for
// the (project, sender) pair. Declined requests never match, so a sender may
// re-request after being turned down.
func (repo *collaborationRepository) FindActiveByProjectAndSender(ctx context.Context, projectID, senderID uuid.UUID) (*entity.CollaborationRequest, error) {
	var requestM model.CollaborationRequestModel

	if err := repo.db.WithContext(ctx).
		Where("project_id = ? AND sender_id = ?", projectID, senderID).
		Where("status IN ?", []string{
			string(entity.CollaborationPending),
			string(entity.CollaborationAccepted),
		}).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollaborationNotFound
		}

		return nil, errors.Wrap(err, "failed to find active collaboration request")
	}

	return toCollaborationDomain(&requestM), nil
}

// UpdateStatus sets the status of a request and returns the updated row.
func (repo *collaborationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CollaborationStatus) (*entity.CollaborationRequest, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CollaborationRequestModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update collaboration request status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCollaborationNotFound
	}

	return repo.FindByID(ctx, id)
}

// FindBySender retrieves all requests sent by a user, newest first.
func (repo *collaborationRepository) FindBySender(ctx context.Context, senderID uuid.UUID) ([]*entity.CollaborationRequest, error) {
	var requestModels []*model.CollaborationRequestModel

	if err := repo.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find collaboration requests by sender")
	}

	return toCollaborationDomainList(requestModels), nil
}

// FindByProjectOwner retrieves all requests targeting projects owned by a user, newest first.
func (repo *collaborationRepository) FindByProjectOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.CollaborationRequest, error) {
	var requestModels []*model.CollaborationRequestModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = collaboration_requests.project_id").
		Where("projects.owner_id = ?", ownerID).
		Order("collaboration_requests.created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find collaboration requests by project owner")
	}

	return toCollaborationDomainList(requestModels), nil
}

// --- Mapper Functions ---

// toCollaborationDomain converts a GORM CollaborationRequestModel to a domain entity.
func toCollaborationDomain(data *model.CollaborationRequestModel) *entity.CollaborationRequest {
	if data == nil {
		return nil
	}

	return &entity.CollaborationRequest{
		ID:        data.ID,
		ProjectID: data.ProjectID,
		SenderID:  data.SenderID,
		Message:   data.Message,
		Status:    entity.CollaborationStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCollaborationDomainList(data []*model.CollaborationRequestModel) []*entity.CollaborationRequest {
	requests := make([]*entity.CollaborationRequest, 0, len(data))
	for _, requestM := range data {
		requests = append(requests, toCollaborationDomain(requestM))
	}

	return requests
}

// fromCollaborationDomain converts a domain entity to a GORM CollaborationRequestModel.
func fromCollaborationDomain(data *entity.CollaborationRequest) *model.CollaborationRequestModel {
	if data == nil {
		return nil
	}

	return &model.CollaborationRequestModel{
		ID:        data.ID,
		ProjectID: data.ProjectID,
		SenderID:  data.SenderID,
		Message:   data.Message,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
