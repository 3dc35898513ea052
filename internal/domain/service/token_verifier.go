// Package service defines interfaces for external collaborators the domain
// depends on: token verification, payments and the admin capability check.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a bearer token cannot be verified.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the verified identity carried by a bearer token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// TokenVerifier verifies bearer tokens issued by the external auth provider.
type TokenVerifier interface {
	// VerifyToken validates the token and returns the identity it carries.
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}
