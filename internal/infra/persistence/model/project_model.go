package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectModel is the GORM-specific struct for the 'projects' table.
type ProjectModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:text;not null"`
	Description string         `gorm:"type:text;not null"`
	Tags        []string       `gorm:"type:jsonb;serializer:json"`
	Stage       string         `gorm:"type:text;not null;default:'idea'"`
	Licensing   *string        `gorm:"type:text"`
	Price       *float64       `gorm:"type:numeric(12,2)"`
	Visibility  string         `gorm:"type:text;not null;default:'public';index"`
	Attachments map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time      `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
