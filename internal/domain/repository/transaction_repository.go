package repository

import (
	"context"
	"errors"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when a transaction row does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines purchase transaction database operations.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// UpdateStatus sets the status (and optionally the payment processor ID)
	// of a transaction and returns the updated row.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus, stripeID *string) (*entity.Transaction, error)

	// FindByBuyer retrieves all transactions where the user is the buyer, newest first.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Transaction, error)

	// FindByProjectOwner retrieves all transactions against projects owned by the user, newest first.
	FindByProjectOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Transaction, error)
}
