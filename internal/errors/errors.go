// Package errors provides a lightweight structured error type
// (NavBuilderError) for category-based classification at the CLI boundary.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a navbuilder error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Content and source errors
	CategoryContent ErrorCategory = "content"
	CategoryGit     ErrorCategory = "git"

	// Build and sink errors
	CategoryBuild ErrorCategory = "build"
	CategoryStore ErrorCategory = "store"

	// Runtime and infrastructure errors
	CategoryDaemon   ErrorCategory = "daemon"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// NavBuilderError is a structured error with category, severity, and context
type NavBuilderError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for NavBuilderError
type ContextFields map[string]any

// Error implements the error interface
func (e *NavBuilderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *NavBuilderError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *NavBuilderError) WithContext(key string, value any) *NavBuilderError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new NavBuilderError
func New(category ErrorCategory, severity ErrorSeverity, message string) *NavBuilderError {
	return &NavBuilderError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new NavBuilderError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *NavBuilderError {
	return &NavBuilderError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}
