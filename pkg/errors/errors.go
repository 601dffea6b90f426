// Package errors defines the error taxonomy shared by all application layers.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType defines different categories of errors
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION"
	ErrorTypeStore        ErrorType = "STORE"
	ErrorTypeAggregation  ErrorType = "AGGREGATION"
	ErrorTypePersistence  ErrorType = "PERSISTENCE"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeInternal     ErrorType = "INTERNAL"
)

// AppError is the custom error type for the application
type AppError struct {
	Type    ErrorType
	Message string
	// Group names the record group or operation that failed, when known.
	Group string
	Err   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	switch {
	case e.Group != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s (%s): %v", e.Type, e.Message, e.Group, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	case e.Group != "":
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Group)
	default:
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
}

// Unwrap allows errors.Is and errors.As to work
func (e *AppError) Unwrap() error {
	return e.Err
}

// Constructor functions for different error types

// NewValidation creates a validation error
func NewValidation(message string) error {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewStore creates a store error for a failed record-store operation
func NewStore(collection, message string, err error) error {
	return &AppError{
		Type:    ErrorTypeStore,
		Message: message,
		Group:   collection,
		Err:     err,
	}
}

// NewAggregation creates an aggregation error carrying the failing group name
func NewAggregation(group string, err error) error {
	return &AppError{
		Type:    ErrorTypeAggregation,
		Message: "failed to read record group",
		Group:   group,
		Err:     err,
	}
}

// NewPersistence creates a persistence error for a failed write
func NewPersistence(operation string, err error) error {
	return &AppError{
		Type:    ErrorTypePersistence,
		Message: "failed to persist record",
		Group:   operation,
		Err:     err,
	}
}

// NewNotFound creates a not found error
func NewNotFound(message string) error {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewUnauthorized creates an unauthorized error
func NewUnauthorized(message string) error {
	return &AppError{
		Type:    ErrorTypeUnauthorized,
		Message: message,
	}
}

// NewInternal creates an internal error
func NewInternal(message string, err error) error {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// If it's already an AppError, preserve the type and group
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Type:    appErr.Type,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Group:   appErr.Group,
			Err:     appErr.Err,
		}
	}

	// Otherwise, create an internal error
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// GroupOf returns the record group or operation attached to the error, if any.
func GroupOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Group
	}
	return ""
}

// Type checking functions

func isType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool { return isType(err, ErrorTypeValidation) }

// IsStore checks if an error is a store error
func IsStore(err error) bool { return isType(err, ErrorTypeStore) }

// IsAggregation checks if an error is an aggregation error
func IsAggregation(err error) bool { return isType(err, ErrorTypeAggregation) }

// IsPersistence checks if an error is a persistence error
func IsPersistence(err error) bool { return isType(err, ErrorTypePersistence) }

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool { return isType(err, ErrorTypeNotFound) }

// IsUnauthorized checks if an error is an unauthorized error
func IsUnauthorized(err error) bool { return isType(err, ErrorTypeUnauthorized) }

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool { return isType(err, ErrorTypeInternal) }
