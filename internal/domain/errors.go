// Package domain defines core types and errors for the payroll reporting tool.
package domain

import "fmt"

// NotFoundError indicates a lookup miss (e.g. no matching pay period).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError indicates invalid input (e.g. a malformed period argument).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// EmptyResultError indicates a valid period that matched zero report rows.
// The run fails and no output file is written.
type EmptyResultError struct {
	Message string
}

func (e *EmptyResultError) Error() string { return e.Message }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrEmptyResult creates an EmptyResultError with a formatted message.
func ErrEmptyResult(format string, args ...interface{}) *EmptyResultError {
	return &EmptyResultError{Message: fmt.Sprintf(format, args...)}
}
