// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies what a profile primarily does on the marketplace.
type Role string

const (
	RoleMaker        Role = "maker"        // Posts project ideas.
	RoleCollaborator Role = "collaborator" // Joins other people's projects.
	RoleBuyer        Role = "buyer"        // Purchases project ideas.
)

// IsValid reports whether the role is one of the known marketplace roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleMaker, RoleCollaborator, RoleBuyer:
		return true
	}

	return false
}

// Profile is a user's public identity record. Its ID matches the identity
// issued by the external auth provider; the auth account itself is not stored here.
type Profile struct {
	ID        uuid.UUID `json:"id"`         // Matches the external auth user ID.
	Username  string    `json:"username"`   // Unique handle shown across the marketplace.
	FullName  string    `json:"full_name"`  // Display name.
	Bio       *string   `json:"bio"`        // Optional short self-description.
	AvatarURL *string   `json:"avatar_url"` // Optional avatar image URL.
	Role      Role      `json:"role"`       // Marketplace role, defaults to maker.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
