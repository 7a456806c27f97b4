// Package error defines domain-specific errors for the Rental Ops application.
package error

import "errors"

// Property domain errors.
var (
	// ErrPropertyNotFound is returned when a property is not found in the system.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyNameBlank is returned when a property name is empty or whitespace.
	ErrPropertyNameBlank = errors.New("property name must not be blank")

	// ErrPropertyNameExists is returned when a property with the same name already exists.
	ErrPropertyNameExists = errors.New("property name already exists")
)

// PropertyErrorCode defines error codes for property errors.
// Format: PRP-XXYYYY where XX is category and YYYY is specific error.
type PropertyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePropertyNameBlank  PropertyErrorCode = "PRP-010001"
	ErrCodePropertyNameExists PropertyErrorCode = "PRP-010002"
	ErrCodePropertyNotFound   PropertyErrorCode = "PRP-010003"
)

// PropertyError represents a property error with code and message.
type PropertyError struct {
	Code    PropertyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// NewPropertyError creates a new PropertyError with the given code and message.
func NewPropertyError(code PropertyErrorCode, message string, err error) *PropertyError {
	return &PropertyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
