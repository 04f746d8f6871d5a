// Package apperr defines the closed set of error kinds that cross the
// handler boundary. Every failed operation is classified exactly once, at
// the call site that knows what was being attempted, and the resulting
// Error travels unchanged to the response writer.
package apperr

import (
	"errors"
	"net/http"
)

// Kind identifies one of the fixed error classifications.
type Kind string

const (
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

// Error is a classified failure with its HTTP status and client-facing
// message. Internal errors never expose Message to clients.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, status int, msg string) *Error {
	return &Error{Kind: kind, Status: status, Message: msg}
}

// BadRequest classifies malformed input or an invalid identifier format.
func BadRequest(msg string) *Error {
	return newError(KindBadRequest, http.StatusBadRequest, msg)
}

// Unauthorized classifies a missing/invalid token or bad login credentials.
func Unauthorized(msg string) *Error {
	return newError(KindUnauthorized, http.StatusUnauthorized, msg)
}

// Forbidden classifies an authenticated identity acting on a resource it
// does not own.
func Forbidden(msg string) *Error {
	return newError(KindForbidden, http.StatusForbidden, msg)
}

// NotFound classifies a lookup that matched no resource.
func NotFound(msg string) *Error {
	return newError(KindNotFound, http.StatusNotFound, msg)
}

// Conflict classifies a uniqueness violation.
func Conflict(msg string) *Error {
	return newError(KindConflict, http.StatusConflict, msg)
}

// Internal classifies anything that could not be recognized. The message is
// kept for logs; clients receive a generic one.
func Internal(msg string) *Error {
	return newError(KindInternal, http.StatusInternalServerError, msg)
}

// From extracts the classified Error from err, or nil if err was never
// classified.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
