package service

import (
	"errors"

	"github.com/shutterfolio/backend/internal/model"
)

// Validation and authentication errors returned before any store call.
var (
	ErrInvalidCategory     = model.ErrInvalidCategory
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrMissingField        = errors.New("missing required field")
	ErrMessageTooLong      = errors.New("message too long")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrImageHostNotAllowed = errors.New("image host not allowed")
)

// FieldError names the field that failed validation. It unwraps to one of
// the sentinels above.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *FieldError) Unwrap() error { return e.Err }

func missing(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}
