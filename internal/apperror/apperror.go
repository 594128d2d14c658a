// Package apperror defines the error taxonomy shared by usecases, middleware and handlers.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation        Kind = "validation"
	KindUnauthenticated   Kind = "unauthenticated"
	KindForbidden         Kind = "forbidden"
	KindNotFound          Kind = "not_found"
	KindInvalidState      Kind = "invalid_state"
	KindConflict          Kind = "conflict"
	KindInsufficientStock Kind = "insufficient_stock"
	KindInternal          Kind = "internal"
)

// Error is the only error type that crosses the HTTP boundary with its message intact.
type Error struct {
	Kind    Kind
	Message string
	Errors  []string

	// Set only for KindInsufficientStock.
	Available int
	Requested int

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// StatusCode maps the kind onto the HTTP status used in the response envelope.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation, KindInvalidState, KindConflict, KindInsufficientStock:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string, details ...string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Errors: details}
}

func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func InvalidState(msg string) *Error {
	return &Error{Kind: KindInvalidState, Message: msg}
}

func Conflict(msg string, details ...string) *Error {
	return &Error{Kind: KindConflict, Message: msg, Errors: details}
}

func InsufficientStock(available, requested int) *Error {
	return &Error{
		Kind:      KindInsufficientStock,
		Message:   fmt.Sprintf("Insufficient stock. Available: %d, Requested: %d", available, requested),
		Available: available,
		Requested: requested,
	}
}

// Internal wraps an unexpected failure; the cause is logged, never rendered.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: cause}
}

// Is reports whether err carries an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// From converts any error into an *Error, treating unknown errors as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}
