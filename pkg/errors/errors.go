package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Entry errors
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotADirectory  ErrorCode = "NOT_A_DIRECTORY"
	ErrNameConflict   ErrorCode = "NAME_CONFLICT"
	ErrProhibitedName ErrorCode = "PROHIBITED_NAME"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Interaction errors
	ErrPrompt    ErrorCode = "PROMPT"
	ErrOpen      ErrorCode = "OPEN"
	ErrClipboard ErrorCode = "CLIPBOARD"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// PPError represents a structured error with code and details
type PPError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PPError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *PPError) Unwrap() error {
	return e.Wrapped
}

// Is matches any other PPError carrying the same code
func (e *PPError) Is(target error) bool {
	var targetErr *PPError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PPError with the given code and message
func New(code ErrorCode, message string) *PPError {
	return &PPError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PPError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PPError {
	return &PPError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PPError
func Wrap(err error, code ErrorCode, message string) *PPError {
	if err == nil {
		return nil
	}
	return &PPError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PPError {
	if err == nil {
		return nil
	}
	return &PPError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PPError) WithDetail(key string, value interface{}) *PPError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ppErr *PPError
	if errors.As(err, &ppErr) {
		return ppErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PPError
func GetErrorCode(err error) ErrorCode {
	var ppErr *PPError
	if errors.As(err, &ppErr) {
		return ppErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PPError
func GetErrorDetails(err error) map[string]interface{} {
	var ppErr *PPError
	if errors.As(err, &ppErr) {
		return ppErr.Details
	}
	return nil
}
