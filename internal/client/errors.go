package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidCredentials is the cause of an AuthError when the server
// rejected the email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string // the "error" field of the body, if any
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// AuthError reports a failed sign-in or session check.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return "auth: " + e.Err.Error() }
func (e *AuthError) Unwrap() error { return e.Err }

// ReadError reports a failed read of a collection.
type ReadError struct {
	Collection string
	Err        error
}

func (e *ReadError) Error() string { return "read " + e.Collection + ": " + e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed create or delete.
type WriteError struct {
	Op         string // "create" or "delete"
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return e.Op + " " + e.Collection + ": " + e.Err.Error()
}
func (e *WriteError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err carries a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
