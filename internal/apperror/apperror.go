// Package apperror defines the typed errors raised by the domain services.
// The HTTP adapter maps them onto status codes and the uniform response
// envelope; services never deal with HTTP directly.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for boundary serialization.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error is a domain error with a fixed classification and a human-readable
// message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// HTTPStatus returns the HTTP status code for the error kind. Conflict
// reuses 400, matching the "already exists" responses of the API.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Status returns the response classification: "fail" for client errors,
// "error" for server errors.
func (e *Error) Status() string {
	if s := e.HTTPStatus(); s >= 400 && s < 500 {
		return "fail"
	}
	return "error"
}

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }
func Internal(msg string) *Error     { return &Error{Kind: KindInternal, Message: msg} }

// KindOf returns the kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
