package assistant

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-fareassist/internal/domain"
)

// validateArguments checks args against the descriptor and returns a normalized copy.
// Undeclared fields are reported first, in alphabetical order, then fields in declaration order.
func validateArguments(descriptor domain.ToolDescriptor, args map[string]any) (map[string]any, error) {
	undeclared := make([]string, 0)
	for key := range args {
		if _, ok := descriptor.Field(key); !ok {
			undeclared = append(undeclared, key)
		}
	}
	if len(undeclared) > 0 {
		sort.Strings(undeclared)
		return nil, domain.NewSchemaValidationErr(undeclared[0], "is not declared by the tool")
	}

	normalized := make(map[string]any, len(args))
	for _, field := range descriptor.Fields {
		value, present := args[field.Name]
		if !present || value == nil {
			if field.Required {
				return nil, domain.NewSchemaValidationErr(field.Name, "is required")
			}
			continue
		}

		v, err := normalizeValue(field, value)
		if err != nil {
			return nil, domain.NewSchemaValidationErr(field.Name, err.Error())
		}
		normalized[field.Name] = v
	}
	return normalized, nil
}

// normalizeValue type-checks one value and converts it to its canonical Go form:
// string, float64, int64 or bool.
func normalizeValue(field domain.ToolField, value any) (any, error) {
	switch field.Type {
	case domain.ToolFieldType_String:
		s, ok := value.(string)
		if !ok {
			return nil, typeMismatch(field.Type, value)
		}
		s = strings.TrimSpace(s)
		if field.CaseFold {
			s = strings.ToLower(s)
		}
		if field.Required && s == "" {
			return nil, fmt.Errorf("must not be empty")
		}
		return s, nil

	case domain.ToolFieldType_Number:
		switch v := value.(type) {
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, typeMismatch(field.Type, value)
			}
			return f, nil
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
		return nil, typeMismatch(field.Type, value)

	case domain.ToolFieldType_Integer:
		switch v := value.(type) {
		case json.Number:
			if i, err := v.Int64(); err == nil {
				return i, nil
			}
			if f, err := v.Float64(); err == nil && math.Trunc(f) == f {
				return int64(f), nil
			}
		case float64:
			if math.Trunc(v) == v {
				return int64(v), nil
			}
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		}
		return nil, typeMismatch(field.Type, value)

	case domain.ToolFieldType_Boolean:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, typeMismatch(field.Type, value)
	}
	return nil, fmt.Errorf("unsupported type %q", field.Type)
}

func typeMismatch(expected domain.ToolFieldType, value any) error {
	return fmt.Errorf("expected %s but got %s", expected, jsonKind(value))
}

func jsonKind(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case json.Number, float64, float32, int, int64:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	return fmt.Sprintf("%T", value)
}
