// Package error defines domain-specific errors for the Rental Ops application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNameBlank is returned when a category name is empty or whitespace.
	ErrCategoryNameBlank = errors.New("category name must not be blank")

	// ErrCategoryScopeEmpty is returned when a category has no property scope.
	ErrCategoryScopeEmpty = errors.New("category must apply to at least one property")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrBuiltinCategoryImmutable is returned when a built-in category is targeted
	// by a rename or delete.
	ErrBuiltinCategoryImmutable = errors.New("built-in categories cannot be modified")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameBlank        CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryScopeEmpty       CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameTooLong      CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryType      CategoryErrorCode = "CAT-010004"
	ErrCodeBuiltinCategoryImmutable CategoryErrorCode = "CAT-010005"
	ErrCodeMissingCategoryFields    CategoryErrorCode = "CAT-010006"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
