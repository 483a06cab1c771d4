package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition indicates a document status change out of a
	// terminal state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrCompletionUnavailable indicates the completion service is not
	// configured. Normalisation and output grading are disabled without it.
	ErrCompletionUnavailable = errors.New("completion service unavailable")
)

// Stable error codes carried by typed pipeline errors and rendered at the
// presentation boundary.
const (
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeTemplateNotFound  = "TEMPLATE_NOT_FOUND"
	CodeNormalization     = "NORMALIZATION_ERROR"
	CodeProcessing        = "PROCESSING_ERROR"
)

// ValidationFailedError reports a pre-flight check failure aborting the
// pipeline.
type ValidationFailedError struct {
	Check  CheckCode
	Reason string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("document validation failed: %s", e.Reason)
}

// Code returns the stable error code.
func (e *ValidationFailedError) Code() string { return CodeValidationFailed }

// UnsupportedFormatError reports that no reader supports the input extension.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.Extension)
}

// Code returns the stable error code.
func (e *UnsupportedFormatError) Code() string { return CodeUnsupportedFormat }

// TemplateNotFoundError reports a template identifier that resolves to
// neither a file nor a stored template.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.Name)
}

// Code returns the stable error code.
func (e *TemplateNotFoundError) Code() string { return CodeTemplateNotFound }

// NormalizationError reports a reconciliation failure: the completion
// service errored or returned empty output.
type NormalizationError struct {
	Message string
	Err     error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalization failed: %s", e.Message)
}

func (e *NormalizationError) Unwrap() error { return e.Err }

// Code returns the stable error code.
func (e *NormalizationError) Code() string { return CodeNormalization }

// ProcessingError wraps an unexpected collaborator failure with the pipeline
// stage it occurred in.
type ProcessingError struct {
	Stage string
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing failed at %s: %v", e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// Code returns the stable error code.
func (e *ProcessingError) Code() string { return CodeProcessing }

// coder is implemented by errors that carry a stable code string.
type coder interface {
	Code() string
}

// ErrorCode returns the stable code for an error, or "INTERNAL_ERROR" when
// the error carries none.
func ErrorCode(err error) string {
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return "INTERNAL_ERROR"
}
