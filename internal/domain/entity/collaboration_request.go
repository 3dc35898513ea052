package entity

import (
	"time"

	"github.com/google/uuid"
)

// CollaborationStatus is the state of a collaboration request.
// The only legal transition is pending -> accepted|declined, performed by
// the project owner. Accepted and declined are terminal.
type CollaborationStatus string

const (
	CollaborationPending  CollaborationStatus = "pending"
	CollaborationAccepted CollaborationStatus = "accepted"
	CollaborationDeclined CollaborationStatus = "declined"
)

// IsTerminal reports whether the status permits no further transition.
func (s CollaborationStatus) IsTerminal() bool {
	return s == CollaborationAccepted || s == CollaborationDeclined
}

// CollaborationRequest is an offer from a non-owner to join a project.
// Status transitions are owned by the referenced project's owner, not by
// the request's creator.
type CollaborationRequest struct {
	ID        uuid.UUID           `json:"id"`
	ProjectID uuid.UUID           `json:"project_id"`
	SenderID  uuid.UUID           `json:"sender_id"`
	Message   string              `json:"message"`
	Status    CollaborationStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
