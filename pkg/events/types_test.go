package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunChannel(t *testing.T) {
	assert.Equal(t, "run:abc-123", RunChannel("abc-123"))
}

func TestClientMessage_Unmarshal(t *testing.T) {
	var msg ClientMessage
	err := json.Unmarshal([]byte(`{"action":"catchup","channel":"runs","last_event_id":17}`), &msg)
	require.NoError(t, err)
	assert.Equal(t, "catchup", msg.Action)
	assert.Equal(t, "runs", msg.Channel)
	require.NotNil(t, msg.LastEventID)
	assert.Equal(t, 17, *msg.LastEventID)
}

func TestClientMessage_OmittedLastEventID(t *testing.T) {
	var msg ClientMessage
	err := json.Unmarshal([]byte(`{"action":"subscribe","channel":"automation"}`), &msg)
	require.NoError(t, err)
	assert.Nil(t, msg.LastEventID)
}
