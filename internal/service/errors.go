package service

import (
	"errors"
	"net/http"
)

// modelNotFoundError is returned when a model id is not in the registry.
type modelNotFoundError struct{ id string }

func (e modelNotFoundError) Error() string   { return "model not found: " + e.id }
func (e modelNotFoundError) StatusCode() int { return http.StatusNotFound }

// ErrModelNotFound returns an error for a missing model id.
func ErrModelNotFound(id string) error { return modelNotFoundError{id: id} }

// IsModelNotFound reports whether the error indicates a missing model id.
func IsModelNotFound(err error) bool {
	var e modelNotFoundError
	return errors.As(err, &e)
}

// invalidInputError wraps parse and range failures so the HTTP layer returns 400.
type invalidInputError struct{ err error }

func (e invalidInputError) Error() string   { return e.err.Error() }
func (e invalidInputError) Unwrap() error   { return e.err }
func (e invalidInputError) StatusCode() int { return http.StatusBadRequest }

// IsInvalidInput reports whether err was caused by a bad request field.
func IsInvalidInput(err error) bool {
	var e invalidInputError
	return errors.As(err, &e)
}
