// Package domain holds the error vocabulary of rastro. The unit library,
// the constants catalog and the services return these errors; the HTTP and
// CLI adapters decide how each kind is reported.
package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every typed error below unwraps to exactly one of them, so
// callers test the kind with errors.Is and the details with errors.As.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrIncompatible = errors.New("incompatible units")
)

// NotFoundError names a unit, prefix, constant or system that is not
// registered.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError reports a symbol registered twice with different
// definitions.
type ConflictError struct {
	Entity  string
	Reason  string
	Details string
}

func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

func NewConflictErrorWithDetails(entity, reason, details string) error {
	return &ConflictError{Entity: entity, Reason: reason, Details: details}
}

func (e *ConflictError) Error() string {
	msg := e.Entity + " conflict: " + e.Reason
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}

	return msg
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// ValidationError reports malformed input. Field names the offending input
// when there is one; Value optionally carries what was rejected.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return "validation failed for " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// IncompatibleUnitsError reports a conversion between different dimensions,
// such as metres to seconds. The dimension strings are optional.
type IncompatibleUnitsError struct {
	From, To       string
	FromDim, ToDim string
}

func NewIncompatibleUnitsError(from, to, fromDim, toDim string) error {
	return &IncompatibleUnitsError{From: from, To: to, FromDim: fromDim, ToDim: toDim}
}

func (e *IncompatibleUnitsError) Error() string {
	if e.FromDim == "" && e.ToDim == "" {
		return fmt.Sprintf("%q and %q are not convertible", e.From, e.To)
	}

	return fmt.Sprintf("%q (%s) and %q (%s) are not convertible", e.From, e.FromDim, e.To, e.ToDim)
}

func (e *IncompatibleUnitsError) Unwrap() error { return ErrIncompatible }

func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool     { return errors.Is(err, ErrConflict) }
func IsValidation(err error) bool   { return errors.Is(err, ErrValidation) }
func IsIncompatible(err error) bool { return errors.Is(err, ErrIncompatible) }
