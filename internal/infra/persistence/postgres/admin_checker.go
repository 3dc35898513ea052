package postgres

import (
	"context"

	"ideaforge/internal/domain/service"
	"ideaforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminChecker implements the service.AdminChecker interface against the
// admins capability table.
type adminChecker struct {
	db *gorm.DB
}

// NewAdminChecker is the constructor for adminChecker.
func NewAdminChecker(db *gorm.DB) service.AdminChecker {
	return &adminChecker{
		db: db,
	}
}

// IsAdmin reports whether the user appears in the admins table.
func (checker *adminChecker) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	var adminM model.AdminModel

	if err := checker.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check admin membership")
	}

	return true, nil
}
