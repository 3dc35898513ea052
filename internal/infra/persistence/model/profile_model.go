// Package model contains the GORM-specific structs mapping domain entities to tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// The primary key is assigned by the external auth provider, not generated here.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Username  string    `gorm:"type:text;not null;uniqueIndex"`
	FullName  string    `gorm:"type:text;not null"`
	Bio       *string   `gorm:"type:text"`
	AvatarURL *string   `gorm:"type:text"`
	Role      string    `gorm:"type:text;not null;default:'maker'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
