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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Path errors
	ErrInvalidPath         ErrorCode = "INVALID_PATH"
	ErrProjectUndetectable ErrorCode = "PROJECT_UNDETECTABLE"

	// Mark errors
	ErrInvalidKey ErrorCode = "INVALID_KEY"
	ErrConflict   ErrorCode = "CONFLICT"

	// Bulk edit errors
	ErrLine ErrorCode = "LINE_ERROR"

	// Persistence errors
	ErrPersistWrite   ErrorCode = "PERSIST_WRITE"
	ErrPersistCorrupt ErrorCode = "PERSIST_READ_CORRUPT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// Detail keys used by line errors
const (
	DetailLine   = "line"
	DetailReason = "reason"
)

// MarksError represents a structured error with code and details
type MarksError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MarksError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MarksError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MarksError) Is(target error) bool {
	var targetErr *MarksError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MarksError with the given code and message
func New(code ErrorCode, message string) *MarksError {
	return &MarksError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MarksError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MarksError {
	return &MarksError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MarksError
func Wrap(err error, code ErrorCode, message string) *MarksError {
	if err == nil {
		return nil
	}
	return &MarksError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MarksError {
	if err == nil {
		return nil
	}
	return &MarksError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MarksError) WithDetail(key string, value interface{}) *MarksError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewLineError reports a problem on a given (1-based) line of a bulk-edit document.
func NewLineError(line int, reason string) *MarksError {
	return Newf(ErrLine, "line %d: %s", line, reason).
		WithDetail(DetailLine, line).
		WithDetail(DetailReason, reason)
}

// LineNumber extracts the line number from a line error.
func LineNumber(err error) (int, bool) {
	if !IsErrorCode(err, ErrLine) {
		return 0, false
	}
	line, ok := GetErrorDetails(err)[DetailLine].(int)
	return line, ok
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var marksErr *MarksError
	if errors.As(err, &marksErr) {
		return marksErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MarksError
func GetErrorCode(err error) ErrorCode {
	var marksErr *MarksError
	if errors.As(err, &marksErr) {
		return marksErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MarksError
func GetErrorDetails(err error) map[string]interface{} {
	var marksErr *MarksError
	if errors.As(err, &marksErr) {
		return marksErr.Details
	}
	return nil
}
