// Package ledger contains the financial ledger aggregation core.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/rental-ops/backend/internal/application/adapter"
)

// GetTimeSeriesInput represents the input for building chart data.
type GetTimeSeriesInput struct {
	Property string
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
}

// GetTimeSeriesOutput represents the aggregated chart data.
type GetTimeSeriesOutput struct {
	Series *TimeSeries
}

// GetTimeSeriesUseCase loads the transaction snapshot and produces the
// grouped time series consumed by charts.
type GetTimeSeriesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTimeSeriesUseCase creates a new GetTimeSeriesUseCase instance.
func NewGetTimeSeriesUseCase(transactionRepo adapter.TransactionRepository) *GetTimeSeriesUseCase {
	return &GetTimeSeriesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute filters the snapshot and groups it by period.
func (uc *GetTimeSeriesUseCase) Execute(ctx context.Context, input GetTimeSeriesInput) (*GetTimeSeriesOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	subset := FilterTransactions(transactions, Filter{
		Property: input.Property,
		Type:     input.Type,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
	})

	return &GetTimeSeriesOutput{
		Series: GroupByPeriod(subset),
	}, nil
}
