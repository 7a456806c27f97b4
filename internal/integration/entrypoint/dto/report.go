// Package dto defines data transfer objects for API requests and responses.
package dto

// QueueMonthlyStatementRequest represents the request body for queueing a
// monthly statement email.
type QueueMonthlyStatementRequest struct {
	Property       string `json:"property" binding:"required"`
	RecipientEmail string `json:"recipient_email" binding:"required,email"`
	RecipientName  string `json:"recipient_name,omitempty" binding:"omitempty,max=255"`
}

// QueueMonthlyStatementResponse represents the response after queueing a
// monthly statement email.
type QueueMonthlyStatementResponse struct {
	Queued      bool   `json:"queued"`
	PeriodLabel string `json:"period_label"`
}
