// Package errors provides structured error types for the gridpush
// application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_FOUND_*: Resource not found
//   - REJECTED_*: Layout operations the engine refused
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidComponent, "bad component ID: %s", id)
//	if errors.Is(err, errors.ErrCodeInvalidComponent) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeStore, origErr, "load board %s", id)
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
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidBoard     Code = "INVALID_BOARD"
	ErrCodeInvalidComponent Code = "INVALID_COMPONENT"
	ErrCodeInvalidOperation Code = "INVALID_OPERATION"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound          Code = "NOT_FOUND"
	ErrCodeBoardNotFound     Code = "BOARD_NOT_FOUND"
	ErrCodeComponentNotFound Code = "COMPONENT_NOT_FOUND"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"

	// Layout operations the engine refused. The board is unchanged.
	ErrCodeRejectedNoPlacement Code = "REJECTED_NO_PLACEMENT"
	ErrCodeRejectedOutOfBounds Code = "REJECTED_OUT_OF_BOUNDS"
	ErrCodeRejectedDuplicate   Code = "REJECTED_DUPLICATE_COMPONENT"

	// Infrastructure errors
	ErrCodeStore  Code = "STORE_ERROR"
	ErrCodeCache  Code = "CACHE_ERROR"
	ErrCodeRender Code = "RENDER_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a machine-readable code with a human-readable message and
// an optional wrapped cause. Surfaces branch on the code; users see the
// message.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap exposes the cause to the stdlib errors traversal.
func (e *Error) Unwrap() error { return e.Cause }

// New creates a coded error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a coded error around cause. The cause stays reachable
// through the standard errors.Is and errors.As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err's chain contains an *Error carrying code.
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or the
// empty string when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of a coded error without its code prefix,
// or err.Error() verbatim for plain errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
