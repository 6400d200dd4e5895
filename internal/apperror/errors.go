package apperror

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeInvariantViolation indicates a programmer error in how the core was driven
	ErrTypeInvariantViolation ErrorType = iota
	// ErrTypeSerializationFailure indicates the pair collection could not be emitted
	ErrTypeSerializationFailure
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeInvariantViolation:
		return "Invariant Violation"
	case ErrTypeSerializationFailure:
		return "Serialization Failure"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is the error value returned by the kvpairs core and output packages
type Error struct {
	Type    ErrorType // Category of error
	Op      string    // Operation that failed (e.g. "menu.Current")
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	prefix := e.Type.String()
	if e.Op != "" {
		prefix = fmt.Sprintf("%s in %s", prefix, e.Op)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvariantViolation creates an invariant violation error
func NewInvariantViolation(op, message string) *Error {
	return &Error{
		Type:    ErrTypeInvariantViolation,
		Op:      op,
		Message: message,
	}
}

// NewSerializationFailure creates a serialization failure wrapping err
func NewSerializationFailure(op, message string, err error) *Error {
	return &Error{
		Type:    ErrTypeSerializationFailure,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsInvariantViolation reports whether any error in err's chain is an invariant violation
func IsInvariantViolation(err error) bool {
	return hasType(err, ErrTypeInvariantViolation)
}

// IsSerializationFailure reports whether any error in err's chain is a serialization failure
func IsSerializationFailure(err error) bool {
	return hasType(err, ErrTypeSerializationFailure)
}

func hasType(err error, t ErrorType) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}
