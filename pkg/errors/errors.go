// Package errors provides custom error types for the viewbundle system.
// These errors enable programmatic error checking and keep the three
// outcomes of optional-file loading (found, absent-and-acceptable,
// absent-and-fatal) distinguishable throughout the pipeline.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As

// Common sentinel errors for the viewbundle system
var (
	// ErrNotFound indicates that a required input file or resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSchema indicates that an input file parsed but violated the
	// expected structure (for example a catalog value that is not a string)
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrViewUnresolvable indicates that a declared view has neither a
	// per-view catalog nor an existing template
	ErrViewUnresolvable = errors.New("view unresolvable")
)

// ParseError represents a failure to parse an input file
type ParseError struct {
	Format  string // File format (yaml, json, etc.)
	File    string // File path that failed to parse
	Message string // Parse error details
	Err     error  // Underlying error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s file %s: %s", e.Format, e.File, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents a filesystem operation failure
type IOError struct {
	Operation string // What was being done (read, write, create)
	Path      string // The path involved
	Err       error  // Underlying error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// SchemaError represents a catalog entry whose value violates the expected
// structure. This is a structural error in the input, not a missing
// translation, and is always fatal.
type SchemaError struct {
	Namespace string // Catalog namespace containing the bad entry
	Key       string // Message identifier of the bad entry
	Value     any    // The offending value
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog %s: value for %q is %T, want string", e.Namespace, e.Key, e.Value)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// ViewError represents a fatal view misconfiguration: the view is not a
// redirect, has no per-view catalog, and its template cannot be resolved.
type ViewError struct {
	View     string // View identifier from the route manifest
	Template string // Template reference that failed to resolve
	Err      error  // Underlying lookup error
}

// Error implements the error interface
func (e *ViewError) Error() string {
	return fmt.Sprintf("view %s: no catalog and template %s unresolvable: %v", e.View, e.Template, e.Err)
}

// Is implements errors.Is support
func (e *ViewError) Is(target error) bool {
	return target == ErrViewUnresolvable
}

// Unwrap implements errors.Unwrap
func (e *ViewError) Unwrap() error {
	return e.Err
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
