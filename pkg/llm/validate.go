package llm

import (
	"fmt"
)

// ValidateToolInput checks a tool call's input against the tool's JSON
// Schema before execution. Covers the subset the schemas here use: required
// fields and primitive type checks on declared properties. Unknown fields
// pass through; the executing tool decides what to do with them.
func ValidateToolInput(tool ToolDefinition, input map[string]interface{}) error {
	schema := tool.InputSchema
	if schema == nil {
		return nil
	}

	if required, ok := schema["required"].([]interface{}); ok {
		for _, r := range required {
			name, ok := r.(string)
			if !ok {
				continue
			}
			if _, present := input[name]; !present {
				return fmt.Errorf("tool %s: missing required field %q", tool.Name, name)
			}
		}
	}

	properties, ok := schema["properties"].(map[string]interface{})
	if !ok {
		return nil
	}

	for name, raw := range properties {
		value, present := input[name]
		if !present || value == nil {
			continue
		}
		prop, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		declared, ok := prop["type"].(string)
		if !ok {
			continue
		}
		if err := checkType(declared, value); err != nil {
			return fmt.Errorf("tool %s: field %q: %w", tool.Name, name, err)
		}
	}

	return nil
}

// checkType verifies a decoded JSON value against a schema type keyword.
// JSON numbers decode to float64, so "integer" accepts whole floats.
func checkType(declared string, value interface{}) error {
	switch declared {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case "number":
		if _, ok := value.(float64); !ok {
			return fmt.Errorf("expected number, got %T", value)
		}
	case "integer":
		f, ok := value.(float64)
		if !ok || f != float64(int64(f)) {
			return fmt.Errorf("expected integer, got %v", value)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
	case "array":
		if _, ok := value.([]interface{}); !ok {
			return fmt.Errorf("expected array, got %T", value)
		}
	case "object":
		if _, ok := value.(map[string]interface{}); !ok {
			return fmt.Errorf("expected object, got %T", value)
		}
	}
	return nil
}
