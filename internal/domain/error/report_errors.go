// Package error defines domain-specific errors for the Rental Ops application.
package error

import "errors"

// Report delivery domain errors.
var (
	// ErrInvalidTemplate is returned when an unknown statement template is requested.
	ErrInvalidTemplate = errors.New("invalid statement template")

	// ErrReportQueueFailed is returned when a report job cannot be queued.
	ErrReportQueueFailed = errors.New("failed to queue report")

	// ErrMissingRecipient is returned when no recipient email is provided.
	ErrMissingRecipient = errors.New("recipient email is required")
)

// ReportErrorCode defines error codes for report delivery errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTemplate  ReportErrorCode = "RPT-010001"
	ErrCodeMissingRecipient ReportErrorCode = "RPT-010002"

	// Delivery errors (02XXXX)
	ErrCodeReportQueueFailed      ReportErrorCode = "RPT-020001"
	ErrCodeTransientReportFailure ReportErrorCode = "RPT-020002"
	ErrCodePermanentReportFailure ReportErrorCode = "RPT-020003"
)

// ReportError represents a report delivery error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
