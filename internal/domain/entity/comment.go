package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a message posted on a project by anyone who can read it.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
