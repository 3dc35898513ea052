package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the state of a purchase attempt.
// pending -> success|failed are the real transitions; a terminal transaction
// may additionally be reset back to pending by the buyer or an admin.
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionSuccess TransactionStatus = "success"
	TransactionFailed  TransactionStatus = "failed"
)

// IsValid reports whether the status is one of the known transaction states.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionPending, TransactionSuccess, TransactionFailed:
		return true
	}

	return false
}

// IsTerminal reports whether the status is success or failed.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionSuccess || s == TransactionFailed
}

// Transaction is a purchase attempt against a project's price, backed by a
// payment intent at the external payment processor.
type Transaction struct {
	ID        uuid.UUID         `json:"id"`
	ProjectID uuid.UUID         `json:"project_id"`
	BuyerID   uuid.UUID         `json:"buyer_id"`
	Amount    float64           `json:"amount"` // Must equal the project price at creation when a price is set.
	Status    TransactionStatus `json:"status"`
	StripeID  *string           `json:"stripe_id"` // Payment intent ID at the processor.
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
