package model

import (
	"time"

	"github.com/google/uuid"
)

// CollaborationRequestModel is the GORM-specific struct for the 'collaboration_requests' table.
// A partial unique index guards the one-active-request-per-(project, sender)
// invariant at the datastore, closing the application-level check-then-insert
// race window:
//
//	CREATE UNIQUE INDEX idx_collaboration_requests_active
//	ON collaboration_requests (project_id, sender_id)
//	WHERE status IN ('pending', 'accepted');
type CollaborationRequestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:text;not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollaborationRequestModel) TableName() string {
	return "collaboration_requests"
}
