package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStatusPayload_JSONShape(t *testing.T) {
	p := RunStatusPayload{
		Type:      EventTypeRunStatus,
		RunID:     "run-1",
		AgentType: "procure_to_pay",
		Status:    "running",
		Timestamp: "2026-08-24T10:00:00Z",
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "run.status", m["type"])
	assert.Equal(t, "run-1", m["run_id"])
	// Empty error is omitted from the wire format
	_, hasError := m["error"]
	assert.False(t, hasError)
}

func TestInjectDBEventID(t *testing.T) {
	payload, err := json.Marshal(StepStatusPayload{
		Type:  EventTypeStepStatus,
		RunID: "run-9",
	})
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "run-9", m["run_id"])
}

func TestTruncateIfNeeded_SmallPayloadUntouched(t *testing.T) {
	in := `{"type":"run.status","run_id":"r1"}`
	out, err := truncateIfNeeded(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTruncateIfNeeded_LargePayloadCollapses(t *testing.T) {
	big := map[string]interface{}{
		"type":   EventTypeRunStatus,
		"run_id": "run-big",
		"blob":   strings.Repeat("x", 9000),
	}
	data, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(data))
	require.NoError(t, err)
	assert.Less(t, len(out), 7900)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "run-big", m["run_id"])
	_, hasBlob := m["blob"]
	assert.False(t, hasBlob)
}
