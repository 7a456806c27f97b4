// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindAll retrieves every category ordered by position then creation time.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByType retrieves categories of the given type ordered by position
	// then creation time.
	FindByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// UpdatePositions persists display positions for the given category IDs.
	UpdatePositions(ctx context.Context, positions map[uuid.UUID]int) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// MaxPosition returns the highest position among categories of the given
	// type, or -1 when none exist.
	MaxPosition(ctx context.Context, categoryType entity.CategoryType) (int, error)
}
