// Package apperror holds the error kinds the views and the API report to users.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError means the user left out a required value or typed one
// outside its bounds. Nothing was written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DuplicateError is the expected failure for a name that already exists.
type DuplicateError struct {
	Entity string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s '%s' already exists in the database.", e.Entity, e.Value)
}

// PrerequisiteError blocks a view until the records it depends on exist.
type PrerequisiteError struct {
	Messages []string
}

func (e *PrerequisiteError) Error() string { return strings.Join(e.Messages, " ") }

// StorageError wraps any other persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

// Message is the text shown to the user; the cause goes to the log.
func (e *StorageError) Message() string { return fmt.Sprintf("Failed to %s.", e.Op) }

func Validation(field, msg string) error { return &ValidationError{Field: field, Message: msg} }

func Storage(op string, err error) error { return &StorageError{Op: op, Err: err} }

// HTTPStatus maps an error returned by a service to a response code.
func HTTPStatus(err error) int {
	var (
		ve *ValidationError
		de *DuplicateError
		pe *PrerequisiteError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &de):
		return http.StatusConflict
	case errors.As(err, &pe):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is safe to send back in an API body.
func PublicMessage(err error) string {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Message()
	}
	return err.Error()
}
