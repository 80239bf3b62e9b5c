// Package httperr defines the error type the handlers use to classify
// failures before they are shaped into HTTP responses. Expected-absence
// conditions (missing entity, unknown email) are NotFound; everything else
// is Internal. Internal errors keep their cause for logging but expose only
// a static message to clients.
package httperr

import "net/http"

// Kind distinguishes expected-absence failures from infrastructure ones.
type Kind int

const (
	KindNotFound Kind = iota
	KindInternal
)

// Error is a classified, client-safe error.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// NotFound builds an expected-absence error with a client-visible message.
func NotFound(message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// Internal wraps an unexpected failure. The cause is retained for logs; the
// client only ever sees the generic message.
func Internal(cause error) *Error {
	return &Error{
		Kind:    KindInternal,
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
		cause:   cause,
	}
}
