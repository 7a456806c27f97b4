// Package ledger contains the financial ledger aggregation core.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/rental-ops/backend/internal/application/adapter"
)

// ExportTransactionsInput represents the input for exporting a filtered
// transaction subset.
type ExportTransactionsInput struct {
	Property string
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
}

// ExportTransactionsOutput represents the downloadable export.
type ExportTransactionsOutput struct {
	Content string
	Rows    int
}

// ExportTransactionsUseCase produces the delimited text download for the
// current filter selection.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute fetches the filtered subset in display order (date descending)
// and serializes it.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		Property: input.Property,
		Type:     input.Type,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for export: %w", err)
	}

	return &ExportTransactionsOutput{
		Content: ToDelimitedText(transactions),
		Rows:    len(transactions),
	}, nil
}
