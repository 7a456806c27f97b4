// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
// Property and Type use the value "all" (or empty) to pass everything.
type TransactionFilter struct {
	Property string
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves every transaction. The ledger core filters and
	// aggregates over this in-memory snapshot.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, ordered by
	// date descending for tabular display.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete hard-deletes a transaction. Deleting an absent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
