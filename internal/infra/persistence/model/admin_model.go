package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel is the GORM-specific struct for the 'admins' table, the
// capability list backing the admin predicate.
type AdminModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
