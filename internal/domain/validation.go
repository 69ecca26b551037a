package domain

import (
	"fmt"
	"strings"
)

// ValidationError is a single field-scoped validation failure.
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every violation found in one validation pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// HasField reports whether any violation is scoped to the given field path.
func (e ValidationErrors) HasField(field string) bool {
	for _, ve := range e {
		if ve.Field == field {
			return true
		}
	}
	return false
}

// NewValidationError creates a generic validation error without field scope.
func NewValidationError(message string) error {
	return &DomainError{Code: CodeValidation, Message: message}
}

// NewFieldError creates a field-scoped validation error with a custom code.
func NewFieldError(field string, code ErrorCode, message string) ValidationError {
	return ValidationError{Field: field, Code: code, Message: message}
}

// NewMissingFieldError reports a required field that is absent or empty.
func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// NewInvalidFormatError reports a field whose value has the wrong shape.
func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has invalid format: %s", field, value),
	}
}

// NewOutOfRangeError reports a numeric field outside its allowed range.
func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value),
	}
}
