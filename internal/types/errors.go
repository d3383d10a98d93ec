package types

import "fmt"

// NotFoundError reports a lookup that matched no record. It carries the
// resource kind and the key that was searched so callers can surface a
// precise not-found response.
type NotFoundError struct {
	Resource string
	Field    string
	Value    interface{}
}

func NewNotFound(resource, field string, value interface{}) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: '%v'", e.Resource, e.Field, e.Value)
}

// ValidationError reports an inbound request field that failed a constraint.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
