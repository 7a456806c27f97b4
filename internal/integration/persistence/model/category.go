// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// Properties holds the scoped property names as a JSON array.
type CategoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(50);not null;index"`
	Type       string    `gorm:"type:varchar(10);not null;index"`
	Properties string    `gorm:"type:jsonb;not null;default:'[]'"`
	Position   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	var properties []string
	if m.Properties != "" {
		if err := json.Unmarshal([]byte(m.Properties), &properties); err != nil {
			slog.Warn("Failed to unmarshal category properties", "error", err, "id", m.ID)
		}
	}
	if properties == nil {
		properties = []string{}
	}

	return &entity.Category{
		ID:         m.ID,
		Name:       m.Name,
		Type:       entity.CategoryType(m.Type),
		Properties: properties,
		Position:   m.Position,
		CreatedAt:  m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	propertiesJSON, err := json.Marshal(category.Properties)
	if err != nil {
		slog.Error("Failed to marshal category properties", "error", err, "id", category.ID)
		propertiesJSON = []byte("[]")
	}

	return &CategoryModel{
		ID:         category.ID,
		Name:       category.Name,
		Type:       string(category.Type),
		Properties: string(propertiesJSON),
		Position:   category.Position,
		CreatedAt:  category.CreatedAt,
	}
}
