package model

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrPersonNotFound = errors.New("person not found")
	ErrMovieNotFound  = errors.New("movie not found")
)

// ModelError provides structured error information for catalog operations.
type ModelError struct {
	Op      string // Operation that failed (e.g., "AddRole", "Resolve")
	Entity  string // Entity type ("person", "movie")
	ID      string // Entity ID (if applicable)
	Cause   error  // Underlying error
	Context string // Additional context
}

// Error implements the error interface.
func (e *ModelError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ModelError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *ModelError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building ModelErrors.
type ErrorBuilder struct {
	err ModelError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: ModelError{Op: op}}
}

// Person sets the entity to "person" with the given ID.
func (b *ErrorBuilder) Person(id PersonID) *ErrorBuilder {
	b.err.Entity = "person"
	b.err.ID = id.String()
	return b
}

// Movie sets the entity to "movie" with the given ID.
func (b *ErrorBuilder) Movie(id MovieID) *ErrorBuilder {
	b.err.Entity = "movie"
	b.err.ID = id.String()
	return b
}

// Context sets additional context information.
func (b *ErrorBuilder) Context(ctx string) *ErrorBuilder {
	b.err.Context = ctx
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// Convenience functions for common error patterns

// PersonNotFoundError creates a person not found error.
func PersonNotFoundError(id PersonID) error {
	return NewError("resolve").Person(id).Cause(ErrPersonNotFound).Err()
}

// MovieNotFoundError creates a movie not found error.
func MovieNotFoundError(id MovieID) error {
	return NewError("resolve").Movie(id).Cause(ErrMovieNotFound).Err()
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPersonNotFound) || errors.Is(err, ErrMovieNotFound)
}
