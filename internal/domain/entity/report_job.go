// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus represents the status of a statement report job in the queue.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusProcessing ReportStatus = "processing"
	ReportStatusSent       ReportStatus = "sent"
	ReportStatusFailed     ReportStatus = "failed"
)

// ReportTemplateType represents the type of statement template.
type ReportTemplateType string

const (
	TemplateMonthlyStatement ReportTemplateType = "monthly_statement"
)

// ReportJob represents a statement email in the queue waiting to be sent.
type ReportJob struct {
	ID             uuid.UUID
	TemplateType   ReportTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         ReportStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewReportJob creates a new ReportJob with default values.
func NewReportJob(templateType ReportTemplateType, recipientEmail, recipientName, subject string, data map[string]interface{}) *ReportJob {
	now := time.Now().UTC()
	return &ReportJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         ReportStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the report job as currently being processed.
func (r *ReportJob) MarkProcessing() {
	r.Status = ReportStatusProcessing
}

// MarkSent marks the report job as successfully sent.
func (r *ReportJob) MarkSent(providerID string) {
	r.Status = ReportStatusSent
	r.ProviderID = providerID
	now := time.Now().UTC()
	r.ProcessedAt = &now
}

// MarkFailed marks the report job as failed and schedules a retry if
// attempts remain.
func (r *ReportJob) MarkFailed(err error, permanent bool) {
	r.Attempts++
	r.LastError = err.Error()

	if permanent || r.Attempts >= r.MaxAttempts {
		r.Status = ReportStatusFailed
		now := time.Now().UTC()
		r.ProcessedAt = &now
	} else {
		r.Status = ReportStatusPending
		r.ScheduledAt = r.calculateNextRetry()
	}
}

// calculateNextRetry calculates the next retry time using exponential backoff.
// Retry delays: 0s (immediate), 1min, 5min
func (r *ReportJob) calculateNextRetry() time.Time {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if r.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[r.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// IsReadyToProcess returns true if the report job is ready to be processed.
func (r *ReportJob) IsReadyToProcess() bool {
	return r.Status == ReportStatusPending && time.Now().UTC().After(r.ScheduledAt)
}
