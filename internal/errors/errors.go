// Package errors provides a lightweight structured error type (ScaffoldError)
// for category-based classification of fatal failures in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a scaffolder error for classification.
type ErrorCategory string

const (
	// Descriptor and activation resolution errors (bad input, unresolved references).
	CategoryConfig ErrorCategory = "config"

	// External generation command errors (nonzero exit, timeout, launch failure).
	CategoryGeneration ErrorCategory = "generation"

	// Manifest load/mutate/write errors on the generated pom.xml.
	CategoryManifest ErrorCategory = "manifest"

	// Output-root and generated-tree filesystem errors.
	CategoryFileSystem ErrorCategory = "filesystem"

	// Anything that does not fit the above.
	CategoryInternal ErrorCategory = "internal"
)

// ScaffoldError is a structured error with category and context.
// Every category is fatal: the orchestrator is fail-fast and never retries.
type ScaffoldError struct {
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ScaffoldError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *ScaffoldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *ScaffoldError) WithContext(key string, value any) *ScaffoldError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new ScaffoldError.
func New(category ErrorCategory, message string) *ScaffoldError {
	return &ScaffoldError{Category: category, Message: message}
}

// Newf creates a new ScaffoldError with a formatted message.
func Newf(category ErrorCategory, format string, args ...any) *ScaffoldError {
	return &ScaffoldError{Category: category, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new ScaffoldError that wraps an existing error.
func Wrap(err error, category ErrorCategory, message string) *ScaffoldError {
	return &ScaffoldError{Category: category, Message: message, Cause: err}
}

// IsCategory checks if an error belongs to a specific category.
func IsCategory(err error, category ErrorCategory) bool {
	if se, ok := err.(*ScaffoldError); ok {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal
// if it is not a ScaffoldError.
func GetCategory(err error) ErrorCategory {
	if se, ok := err.(*ScaffoldError); ok {
		return se.Category
	}
	return CategoryInternal
}
