// Package error defines domain-specific errors for the Rental Ops application.
package error

// RequestErrorCode defines error codes for generic request handling errors.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	// Throttling errors (02XXXX)
	ErrCodeRateLimited RequestErrorCode = "REQ-020001"
)
