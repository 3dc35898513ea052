package service

import (
	"context"

	"github.com/google/uuid"
)

// AdminChecker answers whether a user holds the administrative capability.
// It is injected wherever write authority may be delegated beyond the
// resource owner, so tests can substitute a fake predicate.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}
