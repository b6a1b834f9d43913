// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/user-listing-service/internal/model"
	"github.com/maxviazov/user-listing-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// NoUsersFoundDetail is the client-facing detail of an empty listing.
const NoUsersFoundDetail = "No users found"

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
// Handlers use it for transport-level parse errors so they share the validation shape.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var v interface{ Fields() []FieldError }
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// notFoundError carries a human-readable detail and unwraps to repository.ErrNotFound.
type notFoundError struct {
	detail string
}

func (e *notFoundError) Error() string  { return repository.ErrNotFound.Error() + ": " + e.detail }
func (e *notFoundError) Unwrap() error  { return repository.ErrNotFound }
func (e *notFoundError) Detail() string { return e.detail }

// NewNotFoundError wraps repository.ErrNotFound with a detail safe to show to clients.
func NewNotFoundError(detail string) error {
	return &notFoundError{detail: detail}
}

// NotFoundDetail extracts the client-facing detail of a not-found error, or "" if there is none.
func NotFoundDetail(err error) string {
	var v interface{ Detail() string }
	if errors.As(err, &v) && errors.Is(err, repository.ErrNotFound) {
		return v.Detail()
	}
	return ""
}

// UserService defines user listing use cases.
type UserService interface {
	ListUsers(ctx context.Context, params model.ListUsersParams) (model.UserPage, error)
}
