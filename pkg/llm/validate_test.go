package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceTool() ToolDefinition {
	return ToolDefinition{
		Name: "read_invoice",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"invoice_id": map[string]interface{}{"type": "integer"},
				"fields":     map[string]interface{}{"type": "array"},
				"verbose":    map[string]interface{}{"type": "boolean"},
			},
			"required": []interface{}{"invoice_id"},
		},
	}
}

func TestValidateToolInput_Valid(t *testing.T) {
	err := ValidateToolInput(invoiceTool(), map[string]interface{}{
		"invoice_id": float64(42),
		"fields":     []interface{}{"amount_total"},
	})
	require.NoError(t, err)
}

func TestValidateToolInput_MissingRequired(t *testing.T) {
	err := ValidateToolInput(invoiceTool(), map[string]interface{}{
		"verbose": true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoice_id")
}

func TestValidateToolInput_WrongType(t *testing.T) {
	err := ValidateToolInput(invoiceTool(), map[string]interface{}{
		"invoice_id": "42",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected integer")
}

func TestValidateToolInput_FractionalInteger(t *testing.T) {
	err := ValidateToolInput(invoiceTool(), map[string]interface{}{
		"invoice_id": 42.5,
	})
	require.Error(t, err)
}

func TestValidateToolInput_NoSchema(t *testing.T) {
	err := ValidateToolInput(ToolDefinition{Name: "free_form"}, map[string]interface{}{"x": 1})
	assert.NoError(t, err)
}

func TestValidateToolInput_UnknownFieldsPass(t *testing.T) {
	err := ValidateToolInput(invoiceTool(), map[string]interface{}{
		"invoice_id": float64(1),
		"extra":      "ignored",
	})
	assert.NoError(t, err)
}
