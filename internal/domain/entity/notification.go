package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification types emitted by marketplace mutations.
const (
	NotificationTypeCollaborationRequest  = "collaboration_request"
	NotificationTypeCollaborationResponse = "collaboration_response"
	NotificationTypeComment               = "comment"
	NotificationTypeTransaction           = "transaction"
)

// Notification is a one-way, fire-and-forget message to a user, created as a
// side effect of another entity's state change. Only its recipient may flip
// it to read.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"` // Recipient.
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Link      *string   `json:"link"` // Optional frontend route the notification points at.
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
