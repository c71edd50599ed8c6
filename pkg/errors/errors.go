// Package errors provides structured error types for hanset.
//
// Error codes follow the pipeline's failure taxonomy: fatal I/O failures
// (unreadable baseline, unwritable output) abort the run, while per-item
// failures are logged and skipped by the caller and never become an *Error.
//
// Usage:
//
//	err := errors.Wrap(errors.ErrCodeBaselineRead, ioErr, "baseline %s", path)
//	if errors.Is(err, errors.ErrCodeBaselineRead) {
//	    // fatal: abort the run
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the pipeline's failure taxonomy.
const (
	// Fatal I/O: the run aborts, no partial output is written.
	ErrCodeBaselineRead Code = "BASELINE_READ"
	ErrCodeOutputWrite  Code = "OUTPUT_WRITE"
	ErrCodeDocumentRead Code = "DOCUMENT_READ"

	// Input validation.
	ErrCodeInvalidLimit  Code = "INVALID_LIMIT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Unexpected internal failures (bad embedded data assets).
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
