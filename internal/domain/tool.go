package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/toon-format/toon-go"
)

// ToolFieldType is the primitive type of a tool argument.
type ToolFieldType string

const (
	ToolFieldType_String  ToolFieldType = "string"
	ToolFieldType_Number  ToolFieldType = "number"
	ToolFieldType_Integer ToolFieldType = "integer"
	ToolFieldType_Boolean ToolFieldType = "boolean"
)

// IsValid reports whether the type is one of the supported primitive types.
func (t ToolFieldType) IsValid() bool {
	switch t {
	case ToolFieldType_String, ToolFieldType_Number, ToolFieldType_Integer, ToolFieldType_Boolean:
		return true
	}
	return false
}

// ToolField describes one named argument of a tool.
type ToolField struct {
	Name        string
	Type        ToolFieldType
	Description string
	Required    bool
	// CaseFold lowercases string values before they reach the tool.
	CaseFold bool
}

// ToolDescriptor describes a tool exposed to the model.
// Fields are kept in declaration order.
type ToolDescriptor struct {
	Name        string
	Description string
	Fields      []ToolField
}

// Validate checks the descriptor is well formed.
func (d ToolDescriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return NewValidationErr("tool name cannot be empty")
	}
	seen := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return NewValidationErr(fmt.Sprintf("tool %q has a field with an empty name", d.Name))
		}
		if _, dup := seen[f.Name]; dup {
			return NewValidationErr(fmt.Sprintf("tool %q declares field %q twice", d.Name, f.Name))
		}
		if !f.Type.IsValid() {
			return NewValidationErr(fmt.Sprintf("tool %q field %q has unsupported type %q", d.Name, f.Name, f.Type))
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// Field returns the declared field with the given name.
func (d ToolDescriptor) Field(name string) (ToolField, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return ToolField{}, false
}

// RequiredFields returns the names of required fields in declaration order.
func (d ToolDescriptor) RequiredFields() []string {
	required := []string{}
	for _, f := range d.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return required
}

// JSONSchema renders the parameters as a JSON schema object.
// Undeclared properties are not allowed.
func (d ToolDescriptor) JSONSchema() map[string]any {
	properties := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		properties[f.Name] = map[string]any{
			"type":        string(f.Type),
			"description": f.Description,
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             d.RequiredFields(),
		"additionalProperties": false,
	}
}

// ToolInvocationRequest is one tool call issued by the model.
type ToolInvocationRequest struct {
	ID        string
	Name      string
	Arguments string
}

// DecodeArguments parses the raw argument payload as a JSON object.
// Numbers are kept as json.Number so the declared type decides their final form.
func (r ToolInvocationRequest) DecodeArguments() (map[string]any, error) {
	raw := strings.TrimSpace(r.Arguments)
	if raw == "" {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, NewSchemaValidationErr("", fmt.Sprintf("arguments are not a JSON object: %v", err))
	}
	if dec.More() {
		return nil, NewSchemaValidationErr("", "arguments contain trailing data")
	}
	if args == nil {
		return map[string]any{}, nil
	}
	return args, nil
}

// ToolResultStatus is the outcome of one dispatch.
type ToolResultStatus string

const (
	ToolResultStatus_OK       ToolResultStatus = "ok"
	ToolResultStatus_NotFound ToolResultStatus = "not_found"
	ToolResultStatus_Error    ToolResultStatus = "error"
)

// ToolOutput is what a tool handler produces.
type ToolOutput struct {
	Status  ToolResultStatus
	Payload map[string]any
}

// ToolFound builds a successful tool output.
func ToolFound(payload map[string]any) ToolOutput {
	return ToolOutput{Status: ToolResultStatus_OK, Payload: payload}
}

// ToolNotFound builds a not-found tool output. It is a normal result, not an error.
func ToolNotFound(payload map[string]any) ToolOutput {
	return ToolOutput{Status: ToolResultStatus_NotFound, Payload: payload}
}

// ToolErrorCode labels why a dispatch failed.
type ToolErrorCode string

const (
	ToolErrorCode_UnknownTool     ToolErrorCode = "unknown_tool"
	ToolErrorCode_SchemaViolation ToolErrorCode = "schema_violation"
	ToolErrorCode_ExecutionFailed ToolErrorCode = "execution_failed"
)

// ToolErrorCodeOf maps a dispatch error to its code and, for schema violations,
// the offending field.
func ToolErrorCodeOf(err error) (ToolErrorCode, string) {
	var unknownErr *UnknownToolErr
	var schemaErr *SchemaValidationErr
	switch {
	case errors.As(err, &unknownErr):
		return ToolErrorCode_UnknownTool, ""
	case errors.As(err, &schemaErr):
		return ToolErrorCode_SchemaViolation, schemaErr.Field
	default:
		return ToolErrorCode_ExecutionFailed, ""
	}
}

// ToolResult is the dispatcher's answer to a ToolInvocationRequest.
// Error carries the detailed failure text for the model; ErrorCode and
// ErrorField are the labels shown to API callers.
type ToolResult struct {
	CallID     string
	ToolName   string
	Status     ToolResultStatus
	Payload    map[string]any
	Error      string
	ErrorCode  ToolErrorCode
	ErrorField string
}

// Failed marks the result as an error result for err.
func (r ToolResult) Failed(err error) ToolResult {
	r.Status = ToolResultStatus_Error
	r.Error = err.Error()
	r.ErrorCode, r.ErrorField = ToolErrorCodeOf(err)
	return r
}

// Content encodes the result as TOON for the model.
func (r ToolResult) Content() string {
	body := map[string]any{"status": string(r.Status)}
	if len(r.Payload) > 0 {
		body["result"] = r.Payload
	}
	if r.Error != "" {
		body["error"] = r.Error
	}

	content, err := toon.MarshalString(body, toon.WithLengthMarkers(true))
	if err != nil {
		b, _ := json.Marshal(body)
		return string(b)
	}
	return content
}

// Message converts the result into a tool message correlated to its call.
func (r ToolResult) Message() AssistantMessage {
	callID := r.CallID
	return AssistantMessage{
		Role:       ChatRole_Tool,
		Content:    r.Content(),
		ToolCallID: &callID,
	}
}

// ToolAction is one executable tool.
type ToolAction interface {
	Descriptor() ToolDescriptor
	StatusMessage() string
	// Execute runs the tool with validated and normalized arguments.
	Execute(ctx context.Context, args map[string]any) (ToolOutput, error)
}

// ToolCatalog exposes the declared tools.
type ToolCatalog interface {
	// DescribeAll returns every registered descriptor in registration order.
	DescribeAll() []ToolDescriptor
	// StatusMessage returns a friendly status line for the given tool name.
	StatusMessage(toolName string) string
}

// ToolDispatcher resolves and executes a model-issued tool call.
type ToolDispatcher interface {
	// Dispatch always returns a populated ToolResult. The error is non-nil for
	// unknown tools, schema violations and handler failures.
	Dispatch(ctx context.Context, req ToolInvocationRequest) (ToolResult, error)
}
