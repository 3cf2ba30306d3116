// Package errors defines the HTTP-facing error type delivery layers map
// domain errors to.
package errors

import (
	"errors"
	"net/http"
)

// HTTPError carries the status code and the message shown to the client.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// StatusOf returns the status carried by err, or 400 for anything that is
// not an HTTPError.
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return http.StatusBadRequest
}
