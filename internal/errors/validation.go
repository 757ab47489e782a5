package errors

import (
	"fmt"
	"strings"
)

// ValidationError represents a field-level validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationBuilder accumulates field validation failures and builds a
// single InvalidArgument error from them
type ValidationBuilder struct {
	errors []ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

// RequiredField adds an error if the value is empty
func (b *ValidationBuilder) RequiredField(field string, value string) *ValidationBuilder {
	if value == "" {
		b.errors = append(b.errors, ValidationError{
			Field:   field,
			Message: "is required",
		})
	}
	return b
}

// RequiredSlot adds an error if the slot index is negative
func (b *ValidationBuilder) RequiredSlot(field string, slot int) *ValidationBuilder {
	if slot < 0 {
		b.errors = append(b.errors, ValidationError{
			Field:   field,
			Message: "must not be negative",
		})
	}
	return b
}

// InvalidField adds a custom field error
func (b *ValidationBuilder) InvalidField(field, message string) *ValidationBuilder {
	b.errors = append(b.errors, ValidationError{
		Field:   field,
		Message: message,
	})
	return b
}

// HasErrors reports whether any validations failed
func (b *ValidationBuilder) HasErrors() bool {
	return len(b.errors) > 0
}

// Build returns nil if no validations failed, otherwise an
// InvalidArgument error describing every failed field
func (b *ValidationBuilder) Build() error {
	if len(b.errors) == 0 {
		return nil
	}

	parts := make([]string, 0, len(b.errors))
	for _, ve := range b.errors {
		parts = append(parts, fmt.Sprintf("%s %s", ve.Field, ve.Message))
	}

	err := InvalidArgument(strings.Join(parts, "; "))
	err.WithMeta("validation_errors", b.errors)
	return err
}

// ValidateRequired is a convenience for single-field validation
func ValidateRequired(field, value string) error {
	if value == "" {
		return InvalidArgumentf("%s is required", field)
	}
	return nil
}
