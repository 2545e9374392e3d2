package domain

import (
	"errors"
	"fmt"
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// DuplicateToolErr is returned when a tool name is registered twice.
// It is a startup misconfiguration.
type DuplicateToolErr struct {
	domainErr
	Name string
}

// NewDuplicateToolErr creates a new DuplicateToolErr for the given tool name.
func NewDuplicateToolErr(name string) *DuplicateToolErr {
	return &DuplicateToolErr{
		domainErr: domainErr{message: fmt.Sprintf("tool %q is already registered", name)},
		Name:      name,
	}
}

// UnknownToolErr is returned when the model requests a tool that was never declared.
type UnknownToolErr struct {
	domainErr
	Name string
}

// NewUnknownToolErr creates a new UnknownToolErr for the given tool name.
func NewUnknownToolErr(name string) *UnknownToolErr {
	return &UnknownToolErr{
		domainErr: domainErr{message: fmt.Sprintf("tool %q is not registered", name)},
		Name:      name,
	}
}

// SchemaValidationErr is returned when tool arguments do not match the declared schema.
// Field is empty when the payload as a whole is malformed.
type SchemaValidationErr struct {
	domainErr
	Field string
}

// NewSchemaValidationErr creates a new SchemaValidationErr for the offending field.
func NewSchemaValidationErr(field, reason string) *SchemaValidationErr {
	msg := reason
	if field != "" {
		msg = fmt.Sprintf("field %q: %s", field, reason)
	}
	return &SchemaValidationErr{
		domainErr: domainErr{message: msg},
		Field:     field,
	}
}

// ToolExecutionErr is returned when a tool handler fails for a reason other than bad input.
type ToolExecutionErr struct {
	domainErr
	Name string
	err  error
}

// NewToolExecutionErr wraps a handler failure for the given tool.
func NewToolExecutionErr(name string, err error) *ToolExecutionErr {
	return &ToolExecutionErr{
		domainErr: domainErr{message: fmt.Sprintf("tool %q failed: %v", name, err)},
		Name:      name,
		err:       err,
	}
}

// Unwrap returns the handler error.
func (e *ToolExecutionErr) Unwrap() error {
	return e.err
}

// ToolCallLimitExceededErr is returned when a turn asks for more tool calls than allowed.
type ToolCallLimitExceededErr struct {
	domainErr
	Limit     int
	Requested int
}

// NewToolCallLimitExceededErr creates a new ToolCallLimitExceededErr.
func NewToolCallLimitExceededErr(limit, requested int) *ToolCallLimitExceededErr {
	return &ToolCallLimitExceededErr{
		domainErr: domainErr{message: fmt.Sprintf("turn requested %d tool calls, limit is %d", requested, limit)},
		Limit:     limit,
		Requested: requested,
	}
}

// BackendErr represents a failure reported by the model backend.
// Transient failures (rate limits, timeouts, unavailable upstream) may be retried.
type BackendErr struct {
	domainErr
	Transient  bool
	StatusCode int
	err        error
}

// NewBackendErr wraps a model backend failure.
func NewBackendErr(transient bool, statusCode int, err error) *BackendErr {
	return &BackendErr{
		domainErr:  domainErr{message: fmt.Sprintf("model backend: %v", err)},
		Transient:  transient,
		StatusCode: statusCode,
		err:        err,
	}
}

// Unwrap returns the underlying backend error.
func (e *BackendErr) Unwrap() error {
	return e.err
}

// IsTransientBackendErr reports whether err is a BackendErr marked as transient.
func IsTransientBackendErr(err error) bool {
	var be *BackendErr
	return errors.As(err, &be) && be.Transient
}
