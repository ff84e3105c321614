package apperr

import (
	"errors"
	"net/http"
)

// Kinds. Every *Error unwraps to exactly one of these so callers can use errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrAlreadyActed = errors.New("already acted")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
)

const CodeValidation = "VALIDATION_ERROR"

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any

	kind error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.kind
}

// NotFound reports a missing entity, e.g. NotFound("TRIP_NOT_FOUND", "trip not found").
func NotFound(code, message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code, Message: message, kind: ErrNotFound}
}

// AlreadyActed reports a one-shot action that was already taken.
func AlreadyActed(code, message string) *Error {
	return &Error{Status: http.StatusConflict, Code: code, Message: message, kind: ErrAlreadyActed}
}

func Conflict(code, message string) *Error {
	return &Error{Status: http.StatusConflict, Code: code, Message: message, kind: ErrConflict}
}

// Validation reports invalid caller input. details maps field names to problems.
func Validation(message string, details map[string]any) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Code: CodeValidation, Message: message, Details: details, kind: ErrValidation}
}

// Field is shorthand for a single-field validation error.
func Field(field, problem string) *Error {
	return Validation("invalid "+field, map[string]any{field: problem})
}
