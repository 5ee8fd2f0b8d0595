package errors

import (
	"errors"
	"net/http"
)

// ErrPasswordMismatch is not an error channel in the HTTP sense: a
// failed password check is a 200 response carrying "incorrect
// password". Handlers check for it with errors.Is before the generic
// status mapping.
var ErrPasswordMismatch = errors.New("incorrect password")

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Validation marks missing or empty required input.
func Validation(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusPreconditionFailed}
}

// NotFound marks a referenced board, thread or reply that does not exist.
func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// StatusCode extracts the HTTP status carried by err, defaulting to 500.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
