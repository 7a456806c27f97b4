// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// PropertyRepository defines the interface for property persistence operations.
// The ledger core never mutates properties; they serve as filter values and
// join keys only.
type PropertyRepository interface {
	// Create creates a new property in the database.
	Create(ctx context.Context, property *entity.Property) error

	// FindAll retrieves every property ordered by name.
	FindAll(ctx context.Context) ([]*entity.Property, error)

	// FindByName retrieves a property by its name.
	FindByName(ctx context.Context, name string) (*entity.Property, error)

	// ExistsByName checks whether a property with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Delete removes a property from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
