package entity

import (
	"time"

	"github.com/google/uuid"
)

// Stage describes how far along a posted project idea is.
type Stage string

const (
	StageIdea      Stage = "idea"
	StageHalfBuilt Stage = "half-built"
	StageReady     Stage = "ready"
)

// Visibility gates who may read a project and its comments.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Project is a posted idea: the central tradable and collaborable unit.
type Project struct {
	ID          uuid.UUID      `json:"id"`
	OwnerID     uuid.UUID      `json:"owner_id"`    // Profile that created and exclusively owns the project.
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Tags        []string       `json:"tags"`
	Stage       Stage          `json:"stage"`       // Defaults to idea.
	Licensing   *string        `json:"licensing"`   // Optional licensing terms.
	Price       *float64       `json:"price"`       // Optional asking price; nil means not for sale at a fixed price.
	Visibility  Visibility     `json:"visibility"`  // Defaults to public.
	Attachments map[string]any `json:"attachments"` // Optional free-form attachment metadata.
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ReadableBy reports whether viewer may read the project.
// A nil viewer is an anonymous request.
func (p *Project) ReadableBy(viewerID *uuid.UUID) bool {
	if p.Visibility == VisibilityPublic {
		return true
	}

	return viewerID != nil && *viewerID == p.OwnerID
}
