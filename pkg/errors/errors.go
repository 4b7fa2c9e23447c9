// Package errors provides structured error types for tilereport.
//
// This package defines error codes and pipeline stages that enable:
//   - Consistent error handling across the CLI and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - Identification of the stage (extraction, aggregation, report) that failed
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - INPUT_*/OUTPUT_*: File I/O failures on the design or the reports
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", f)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors and attach the failing stage
//	err := errors.Wrap(errors.ErrCodeInputRead, origErr, "read %s", path).In(errors.StageExtraction)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidImage  Code = "INVALID_IMAGE"

	// I/O errors
	ErrCodeInputRead    Code = "INPUT_READ"
	ErrCodeOutputWrite  Code = "OUTPUT_WRITE"
	ErrCodeImageResolve Code = "IMAGE_RESOLVE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Stage names the pipeline stage an error originated from.
type Stage string

// Pipeline stages.
const (
	StageExtraction  Stage = "extraction"
	StageAggregation Stage = "aggregation"
	StageReport      Stage = "report"
)

// Error is a structured error with a code, an optional stage and an optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Stage   Stage  // Pipeline stage that failed (optional)
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Stage != "" {
		msg = fmt.Sprintf("%s: %s", e.Stage, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// In sets the stage of e and returns it.
func (e *Error) In(stage Stage) *Error {
	e.Stage = stage
	return e
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

// GetStage extracts the pipeline stage from an error, if available.
func GetStage(err error) Stage {
	var e *Error
	if errors.As(err, &e) {
		return e.Stage
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the stage and message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Stage != "" {
			return fmt.Sprintf("%s failed: %s", e.Stage, e.Message)
		}
		return e.Message
	}
	return err.Error()
}
