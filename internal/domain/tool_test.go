package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceDescriptor() ToolDescriptor {
	return ToolDescriptor{
		Name:        "get_ticket_price",
		Description: "Get the price of a return ticket to the destination city.",
		Fields: []ToolField{
			{Name: "destination_city", Type: ToolFieldType_String, Description: "The city", Required: true, CaseFold: true},
			{Name: "passengers", Type: ToolFieldType_Integer, Description: "Number of passengers"},
		},
	}
}

func TestToolDescriptor_Validate(t *testing.T) {
	tests := map[string]struct {
		descriptor ToolDescriptor
		wantErr    string
	}{
		"valid": {
			descriptor: priceDescriptor(),
		},
		"no-fields-is-valid": {
			descriptor: ToolDescriptor{Name: "list_destinations"},
		},
		"empty-name": {
			descriptor: ToolDescriptor{Name: " "},
			wantErr:    "tool name cannot be empty",
		},
		"empty-field-name": {
			descriptor: ToolDescriptor{Name: "t", Fields: []ToolField{{Name: "", Type: ToolFieldType_String}}},
			wantErr:    `tool "t" has a field with an empty name`,
		},
		"duplicate-field": {
			descriptor: ToolDescriptor{Name: "t", Fields: []ToolField{
				{Name: "a", Type: ToolFieldType_String},
				{Name: "a", Type: ToolFieldType_Number},
			}},
			wantErr: `tool "t" declares field "a" twice`,
		},
		"unsupported-type": {
			descriptor: ToolDescriptor{Name: "t", Fields: []ToolField{{Name: "a", Type: "array"}}},
			wantErr:    `tool "t" field "a" has unsupported type "array"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.descriptor.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestToolDescriptor_JSONSchema(t *testing.T) {
	schema := priceDescriptor().JSONSchema()

	b, err := json.Marshal(schema)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"destination_city": {"type": "string", "description": "The city"},
			"passengers": {"type": "integer", "description": "Number of passengers"}
		},
		"required": ["destination_city"],
		"additionalProperties": false
	}`, string(b))
}

func TestToolDescriptor_Field(t *testing.T) {
	d := priceDescriptor()

	f, ok := d.Field("destination_city")
	assert.True(t, ok)
	assert.True(t, f.CaseFold)

	_, ok = d.Field("origin_city")
	assert.False(t, ok)
}

func TestToolInvocationRequest_DecodeArguments(t *testing.T) {
	tests := map[string]struct {
		raw       string
		want      map[string]any
		wantField bool
		wantErr   bool
	}{
		"object": {
			raw:  `{"destination_city":"London","passengers":2}`,
			want: map[string]any{"destination_city": "London", "passengers": json.Number("2")},
		},
		"empty-payload": {
			raw:  "  ",
			want: map[string]any{},
		},
		"null-payload": {
			raw:  "null",
			want: map[string]any{},
		},
		"array-payload": {
			raw:     `["London"]`,
			wantErr: true,
		},
		"trailing-data": {
			raw:     `{"destination_city":"London"} {}`,
			wantErr: true,
		},
		"broken-json": {
			raw:     `{"destination_city":`,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ToolInvocationRequest{ID: "call-1", Name: "get_ticket_price", Arguments: tt.raw}.DecodeArguments()
			if tt.wantErr {
				require.Error(t, err)
				var schemaErr *SchemaValidationErr
				require.ErrorAs(t, err, &schemaErr)
				assert.Empty(t, schemaErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToolResult_Message(t *testing.T) {
	result := ToolResult{
		CallID:   "call-42",
		ToolName: "get_ticket_price",
		Status:   ToolResultStatus_OK,
		Payload:  map[string]any{"city": "london", "price": 799},
	}

	msg := result.Message()

	assert.Equal(t, ChatRole_Tool, msg.Role)
	require.NotNil(t, msg.ToolCallID)
	assert.Equal(t, "call-42", *msg.ToolCallID)
	assert.Contains(t, msg.Content, "799")
	assert.Contains(t, msg.Content, "london")
	assert.Contains(t, msg.Content, "ok")
}

func TestToolResult_Content_Error(t *testing.T) {
	result := ToolResult{
		CallID: "call-1",
		Status: ToolResultStatus_Error,
		Error:  `tool "book_flight" is not registered`,
	}

	content := result.Content()

	assert.Contains(t, content, "error")
	assert.Contains(t, content, "book_flight")
}

func TestToolResult_Failed(t *testing.T) {
	tests := map[string]struct {
		err           error
		expectedCode  ToolErrorCode
		expectedField string
	}{
		"unknown-tool": {
			err:          NewUnknownToolErr("book_flight"),
			expectedCode: ToolErrorCode_UnknownTool,
		},
		"schema-violation": {
			err:           NewSchemaValidationErr("destination_city", "is required"),
			expectedCode:  ToolErrorCode_SchemaViolation,
			expectedField: "destination_city",
		},
		"malformed-payload": {
			err:          NewSchemaValidationErr("", "arguments must be a JSON object"),
			expectedCode: ToolErrorCode_SchemaViolation,
		},
		"handler-failure": {
			err:          NewToolExecutionErr("get_ticket_price", errors.New("price feed offline")),
			expectedCode: ToolErrorCode_ExecutionFailed,
		},
		"wrapped-schema-violation": {
			err:           fmt.Errorf("dispatch: %w", NewSchemaValidationErr("cabin", "is not declared")),
			expectedCode:  ToolErrorCode_SchemaViolation,
			expectedField: "cabin",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := ToolResult{CallID: "call-1", ToolName: "get_ticket_price", Status: ToolResultStatus_OK}.Failed(tt.err)

			assert.Equal(t, ToolResultStatus_Error, result.Status)
			assert.Equal(t, tt.err.Error(), result.Error)
			assert.Equal(t, tt.expectedCode, result.ErrorCode)
			assert.Equal(t, tt.expectedField, result.ErrorField)
			assert.Equal(t, "call-1", result.CallID)
		})
	}
}
