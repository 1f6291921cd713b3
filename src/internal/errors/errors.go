// Package errors provides domain-specific error types for the airport directory.
//
// Every failure the directory can report carries an ErrorCode, so the HTTP layer
// and the tests can branch on the kind of failure with errors.Is instead of
// comparing message strings.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeValidation indicates a record is missing a required field.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeDuplicateKey indicates an icao collision on create or update.
	ErrCodeDuplicateKey ErrorCode = "DUPLICATE_KEY"

	// ErrCodeNotFound indicates no record matches the requested icao.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeInvalidRange indicates a page lies outside the directory.
	ErrCodeInvalidRange ErrorCode = "INVALID_RANGE"

	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeSeed indicates the seed dataset could not be loaded.
	ErrCodeSeed ErrorCode = "SEED_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Sentinels for errors.Is checks. Matching is done on the code only.
var (
	ErrValidation   = New(ErrCodeValidation, "validation failed")
	ErrDuplicateKey = New(ErrCodeDuplicateKey, "duplicate key")
	ErrNotFound     = New(ErrCodeNotFound, "not found")
	ErrInvalidRange = New(ErrCodeInvalidRange, "invalid range")
	ErrConfig       = New(ErrCodeConfig, "configuration error")
	ErrSeed         = New(ErrCodeSeed, "seed error")
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewDuplicateKeyError creates a new duplicate key error.
func NewDuplicateKeyError(message string) *Error {
	return New(ErrCodeDuplicateKey, message)
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(message string) *Error {
	return New(ErrCodeNotFound, message)
}

// NewInvalidRangeError creates a new invalid range error.
func NewInvalidRangeError(message string) *Error {
	return New(ErrCodeInvalidRange, message)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewSeedError creates a new seed dataset error.
func NewSeedError(message string, cause error) *Error {
	return Wrap(ErrCodeSeed, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
