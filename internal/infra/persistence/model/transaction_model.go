package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel is the GORM-specific struct for the 'transactions' table.
type TransactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Status    string    `gorm:"type:text;not null;default:'pending'"`
	StripeID  *string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
