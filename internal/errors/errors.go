// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrNoMatches        = errors.New("no accounts matched the criteria")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrExtractorOffline = errors.New("sentiment extractor not configured")
)

// LoadError represents a failure loading one of the input datasets.
type LoadError struct {
	Dataset string
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error [%s] %s: %v", e.Dataset, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(dataset, path string, err error) *LoadError {
	return &LoadError{
		Dataset: dataset,
		Path:    path,
		Err:     err,
	}
}

// ExtractionError represents a failure in the sentiment extraction
// collaborator.
type ExtractionError struct {
	Stage string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error [%s]: %v", e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(stage string, err error) *ExtractionError {
	return &ExtractionError{
		Stage: stage,
		Err:   err,
	}
}

// JournalError represents a failure writing to the recommendation journal.
type JournalError struct {
	Operation string
	Err       error
}

func (e *JournalError) Error() string {
	return fmt.Sprintf("journal error [%s]: %v", e.Operation, e.Err)
}

func (e *JournalError) Unwrap() error {
	return e.Err
}

// NewJournalError creates a new JournalError.
func NewJournalError(operation string, err error) *JournalError {
	return &JournalError{
		Operation: operation,
		Err:       err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
