package client

import (
	"errors"
	"fmt"
)

// Closed error taxonomy for the API client. Callers branch on these with
// errors.Is / errors.As; nothing else escapes Post.
var (
	// ErrInvalidURL means endpoint concatenation produced an unparseable URL.
	ErrInvalidURL = errors.New("invalid request URL")

	// ErrInvalidResponse means the transport produced something that is not
	// a readable HTTP response.
	ErrInvalidResponse = errors.New("invalid server response")

	// ErrDecoding means a 2xx body did not match the expected shape.
	ErrDecoding = errors.New("failed to decode response")
)

// ServerError is returned for any status outside 200-299.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// UnknownError wraps any other transport failure: timeout, DNS, TLS,
// context cancellation.
type UnknownError struct {
	Cause error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Cause)
}

func (e *UnknownError) Unwrap() error {
	return e.Cause
}

// UserMessage maps a client error to a display string. The structured error
// is preserved for callers; this is only the presentation default.
func UserMessage(err error) string {
	var serverErr *ServerError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidURL):
		return "The recipe service address is misconfigured."
	case errors.Is(err, ErrInvalidResponse):
		return "The recipe service sent an unreadable response."
	case errors.Is(err, ErrDecoding):
		return "The recipe service sent an unexpected response."
	case errors.As(err, &serverErr):
		return fmt.Sprintf("The recipe service reported an error (status %d).", serverErr.StatusCode)
	default:
		return "Could not reach the recipe service. Check your connection and try again."
	}
}
