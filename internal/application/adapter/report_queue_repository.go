// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/rental-ops/backend/internal/domain/entity"
)

// ReportQueueRepository defines the interface for statement report queue operations.
type ReportQueueRepository interface {
	// Create enqueues a new report job.
	Create(ctx context.Context, job *entity.ReportJob) error

	// GetPendingJobs retrieves up to limit jobs that are ready to process.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReportJob, error)

	// Update persists job state changes (status, attempts, errors).
	Update(ctx context.Context, job *entity.ReportJob) error
}

// ReportService defines the interface for queueing statement reports.
type ReportService interface {
	// QueueMonthlyStatement queues a monthly statement email for a property.
	QueueMonthlyStatement(ctx context.Context, input QueueMonthlyStatementInput) error
}

// QueueMonthlyStatementInput holds the data needed to queue a monthly statement.
type QueueMonthlyStatementInput struct {
	RecipientEmail string
	RecipientName  string
	PropertyName   string
	PeriodLabel    string
	Gross          string
	Expenses       string
	Net            string
}
