// Package report contains monthly statement report use cases.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/application/usecase/ledger"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
)

// QueueMonthlyStatementInput represents the input for queueing a monthly
// statement email for one property.
type QueueMonthlyStatementInput struct {
	PropertyName   string
	RecipientEmail string
	RecipientName  string
}

// QueueMonthlyStatementOutput represents the output of queueing a
// monthly statement.
type QueueMonthlyStatementOutput struct {
	PeriodLabel string
}

// QueueMonthlyStatementUseCase handles monthly statement queueing logic.
type QueueMonthlyStatementUseCase struct {
	transactionRepo adapter.TransactionRepository
	propertyRepo    adapter.PropertyRepository
	reportService   adapter.ReportService
	clock           adapter.Clock
}

// NewQueueMonthlyStatementUseCase creates a new QueueMonthlyStatementUseCase instance.
func NewQueueMonthlyStatementUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
	reportService adapter.ReportService,
	clock adapter.Clock,
) *QueueMonthlyStatementUseCase {
	return &QueueMonthlyStatementUseCase{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
		reportService:   reportService,
		clock:           clock,
	}
}

// Execute computes the previous calendar month's totals for the property
// and queues a statement email with them. The email is sent asynchronously
// by the report worker.
func (uc *QueueMonthlyStatementUseCase) Execute(ctx context.Context, input QueueMonthlyStatementInput) (*QueueMonthlyStatementOutput, error) {
	if strings.TrimSpace(input.RecipientEmail) == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingRecipient,
			"statement recipient email must not be blank",
			domainerror.ErrMissingRecipient,
		)
	}

	exists, err := uc.propertyRepo.ExistsByName(ctx, input.PropertyName)
	if err != nil {
		return nil, fmt.Errorf("failed to check property: %w", err)
	}
	if !exists {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	now := uc.clock.Now()
	metrics := ledger.ComputeRollups(transactions, input.PropertyName, now)

	// Anchor on the first of the current month so month-end dates do not
	// roll over during the subtraction.
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodLabel := firstOfMonth.AddDate(0, -1, 0).Format("January 2006")

	err = uc.reportService.QueueMonthlyStatement(ctx, adapter.QueueMonthlyStatementInput{
		RecipientEmail: input.RecipientEmail,
		RecipientName:  input.RecipientName,
		PropertyName:   input.PropertyName,
		PeriodLabel:    periodLabel,
		Gross:          metrics.LastMonth.Gross.StringFixed(2),
		Expenses:       metrics.LastMonth.Expenses.StringFixed(2),
		Net:            metrics.LastMonth.Net.StringFixed(2),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to queue monthly statement: %w", err)
	}

	return &QueueMonthlyStatementOutput{PeriodLabel: periodLabel}, nil
}
