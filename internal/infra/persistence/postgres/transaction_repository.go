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

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a new transaction.
func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid project or buyer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	transaction.ID = transactionM.ID
	transaction.Status = entity.TransactionStatus(transactionM.Status)
	transaction.CreatedAt = transactionM.CreatedAt
	transaction.UpdatedAt = transactionM.UpdatedAt

	return nil
}

// FindByID retrieves a transaction by its unique ID.
func (repo *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&transactionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by ID")
	}

	return toTransactionDomain(&transactionM), nil
}

// UpdateStatus sets the status (and optionally the payment processor ID) of a
// transaction and returns the updated row.
func (repo *transactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus, stripeID *string) (*entity.Transaction, error) {
	updates := map[string]any{"status": string(status)}
	if stripeID != nil {
		updates["stripe_id"] = *stripeID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTransactionNotFound
	}

	return repo.FindByID(ctx, id)
}

// FindByBuyer retrieves all transactions where the user is the buyer, newest first.
func (repo *transactionRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []*model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find transactions by buyer")
	}

	return toTransactionDomainList(transactionModels), nil
}

// FindByProjectOwner retrieves all transactions against projects owned by the user, newest first.
func (repo *transactionRepository) FindByProjectOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []*model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = transactions.project_id").
		Where("projects.owner_id = ?", ownerID).
		Order("transactions.created_at DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find transactions by project owner")
	}

	return toTransactionDomainList(transactionModels), nil
}

// --- Mapper Functions ---

// toTransactionDomain converts a GORM TransactionModel to a domain Transaction entity.
func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:        data.ID,
		ProjectID: data.ProjectID,
		BuyerID:   data.BuyerID,
		Amount:    data.Amount,
		Status:    entity.TransactionStatus(data.Status),
		StripeID:  data.StripeID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toTransactionDomainList(data []*model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(data))
	for _, transactionM := range data {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions
}

// fromTransactionDomain converts a domain Transaction entity to a GORM TransactionModel.
func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:        data.ID,
		ProjectID: data.ProjectID,
		BuyerID:   data.BuyerID,
		Amount:    data.Amount,
		Status:    string(data.Status),
		StripeID:  data.StripeID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
