// Package errors provides coded errors shared by the drills.
package errors

import stderrors "errors"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Memory errors
	CodeInvalidSize     Code = "INVALID_SIZE"
	CodeOwnershipMoved  Code = "OWNERSHIP_MOVED"
	CodeAlreadyReleased Code = "ALREADY_RELEASED"

	// Definition errors
	CodeUnknownEnemyKind   Code = "UNKNOWN_ENEMY_KIND"
	CodeDefinitionNotFound Code = "DEFINITION_NOT_FOUND"
	CodeInvalidDefinition  Code = "INVALID_DEFINITION"
)

// Sentinels for errors.Is comparisons. Matching is by code only.
var (
	ErrInvalidSize        = New(CodeInvalidSize, "invalid size")
	ErrOwnershipMoved     = New(CodeOwnershipMoved, "ownership moved")
	ErrAlreadyReleased    = New(CodeAlreadyReleased, "already released")
	ErrUnknownEnemyKind   = New(CodeUnknownEnemyKind, "unknown enemy kind")
	ErrDefinitionNotFound = New(CodeDefinitionNotFound, "definition not found")
	ErrInvalidDefinition  = New(CodeInvalidDefinition, "invalid definition")
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable message
	Metadata map[string]string // Additional context
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// GetCode extracts the code from err, or CodeUnknown if err carries none.
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
