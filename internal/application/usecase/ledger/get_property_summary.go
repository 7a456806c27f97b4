// Package ledger contains the financial ledger aggregation core.
package ledger

import (
	"context"
	"fmt"

	"github.com/rental-ops/backend/internal/application/adapter"
)

// GetPropertySummaryInput represents the input for computing summary-card
// metrics.
type GetPropertySummaryInput struct {
	Property string
}

// GetPropertySummaryOutput represents the derived roll-up metrics.
type GetPropertySummaryOutput struct {
	Metrics RollupMetrics
}

// GetPropertySummaryUseCase computes last-month and year-to-date roll-ups
// for a single property.
type GetPropertySummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetPropertySummaryUseCase creates a new GetPropertySummaryUseCase instance.
func NewGetPropertySummaryUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetPropertySummaryUseCase {
	return &GetPropertySummaryUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute loads the full transaction set and computes the roll-up windows
// relative to the injected clock.
func (uc *GetPropertySummaryUseCase) Execute(ctx context.Context, input GetPropertySummaryInput) (*GetPropertySummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetPropertySummaryOutput{
		Metrics: ComputeRollups(transactions, input.Property, uc.clock.Now()),
	}, nil
}
