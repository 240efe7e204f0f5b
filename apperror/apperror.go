// Package apperror defines the application error taxonomy. The core returns
// one of these kinds; the HTTP layer translates them to status codes.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the type of application error.
type ErrorType int

const (
	// InternalError is an unexpected failure (store errors and the like).
	InternalError ErrorType = iota
	// ConflictError is a unique-constraint violation (email, username,
	// loan number, payment number).
	ConflictError
	// NotFoundError is an absent user or loan.
	NotFoundError
	// ForbiddenError means the authenticated caller does not own the
	// resource.
	ForbiddenError
	// AuthError is an authentication failure (bad credentials, bad token).
	AuthError
	// ValidationError is malformed input.
	ValidationError
)

// AppError carries an error kind, a user-facing message and an optional
// underlying cause.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ConflictError:
		return http.StatusConflict
	case NotFoundError:
		return http.StatusNotFound
	case ForbiddenError:
		return http.StatusForbidden
	case AuthError:
		return http.StatusUnauthorized
	case ValidationError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New creates an AppError of an arbitrary type.
func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewConflictError creates a ConflictError.
func NewConflictError(message string, underlying error) *AppError {
	return New(ConflictError, message, underlying)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return New(NotFoundError, message, underlying)
}

// NewForbiddenError creates a ForbiddenError.
func NewForbiddenError(message string, underlying error) *AppError {
	return New(ForbiddenError, message, underlying)
}

// NewAuthError creates an AuthError.
func NewAuthError(message string, underlying error) *AppError {
	return New(AuthError, message, underlying)
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return New(ValidationError, message, underlying)
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

func is(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool { return is(err, ConflictError) }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool { return is(err, NotFoundError) }

// IsForbidden reports whether err is a ForbiddenError.
func IsForbidden(err error) bool { return is(err, ForbiddenError) }

// IsAuth reports whether err is an AuthError.
func IsAuth(err error) bool { return is(err, AuthError) }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool { return is(err, ValidationError) }
