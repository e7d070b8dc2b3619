package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden          = errors.New("access to another user's record is forbidden")
	ErrServerUnavailable  = errors.New("server unavailable")
	ErrNoToken            = errors.New("no session token: log in first")
	ErrUnexpectedResponse = errors.New("unexpected server response")
	ErrInvalidBaseURL     = errors.New("invalid server address")
)

// ResponseError is a non-2xx answer of the server. It unwraps to the
// sentinel error matching its status code.
type ResponseError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
