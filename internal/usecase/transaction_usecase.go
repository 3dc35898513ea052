package usecase

import (
	"context"

	"ideaforge/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTransactionInput carries the fields for starting a purchase.
type CreateTransactionInput struct {
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	BuyerID   uuid.UUID `json:"buyerId" validate:"required"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
}

// CreateTransactionOutput pairs the persisted transaction with the payment
// processor client secret the frontend needs to confirm the payment.
type CreateTransactionOutput struct {
	Transaction  *entity.Transaction `json:"transaction"`
	ClientSecret string              `json:"clientSecret"`
}

// UpdateTransactionInput carries a status transition for a transaction.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID `json:"transactionId" validate:"required"`
	Status        string    `json:"status" validate:"required,oneof=pending success failed"`
	StripeID      *string   `json:"stripeId"`
}

// UserTransactions groups a user's transactions by side.
type UserTransactions struct {
	Purchases []*entity.Transaction `json:"purchases"`
	Sales     []*entity.Transaction `json:"sales"`
}

// TransactionUsecase defines the interface for purchase transaction use cases.
type TransactionUsecase interface {
	// CreateTransaction starts a purchase: it validates the project, creates
	// a payment intent at the processor, then persists the pending
	// transaction. Nothing is persisted if the processor call fails.
	CreateTransaction(ctx context.Context, callerID uuid.UUID, input *CreateTransactionInput) (*CreateTransactionOutput, error)

	// UpdateTransaction transitions a transaction's status. Authorized to
	// the buyer or an admin; once terminal, only a reset to pending is
	// permitted. Reaching success notifies both the seller and the buyer.
	UpdateTransaction(ctx context.Context, callerID uuid.UUID, input *UpdateTransactionInput) (*entity.Transaction, error)

	// ListUserTransactions retrieves the caller's purchases and sales.
	ListUserTransactions(ctx context.Context, callerID, userID uuid.UUID) (*UserTransactions, error)
}
