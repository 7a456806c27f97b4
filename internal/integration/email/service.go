// Package email provides statement email delivery via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/rental-ops/backend/internal/application/adapter"
	"github.com/rental-ops/backend/internal/domain/entity"
	domainerror "github.com/rental-ops/backend/internal/domain/error"
)

// Service handles statement report queueing operations.
type Service struct {
	queue adapter.ReportQueueRepository
}

// NewService creates a new report service.
func NewService(queue adapter.ReportQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueMonthlyStatement queues a monthly statement email for a property.
func (s *Service) QueueMonthlyStatement(ctx context.Context, input adapter.QueueMonthlyStatementInput) error {
	subject := fmt.Sprintf("%s statement for %s - Rental Ops", input.PeriodLabel, input.PropertyName)

	templateData := map[string]interface{}{
		"recipient_name": input.RecipientName,
		"property_name":  input.PropertyName,
		"period_label":   input.PeriodLabel,
		"gross":          input.Gross,
		"expenses":       input.Expenses,
		"net":            input.Net,
	}

	job := entity.NewReportJob(
		entity.TemplateMonthlyStatement,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewReportError(
			domainerror.ErrCodeReportQueueFailed,
			"failed to queue monthly statement",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.ReportService.
var _ adapter.ReportService = (*Service)(nil)
