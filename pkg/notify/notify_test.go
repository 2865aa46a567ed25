package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_Delivered(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewService(srv.URL)
	outcome := svc.Send(context.Background(), Message{
		Title:  "Daily digest (cfo)",
		Text:   "Quiet day",
		Fields: map[string]string{"date": "2026-08-25"},
	})

	assert.Equal(t, StatusDelivered, outcome.Status)
	assert.True(t, outcome.Delivered())
	assert.NoError(t, outcome.Err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Daily digest (cfo)", payload["text"])
	blocks, ok := payload["blocks"].([]interface{})
	require.True(t, ok)
	assert.Len(t, blocks, 2, "title/text block plus the fields block")
}

func TestSend_ChannelDisabled(t *testing.T) {
	outcome := NewService("").Send(context.Background(), Message{Title: "x"})
	assert.Equal(t, StatusChannelDisabled, outcome.Status)
	assert.False(t, outcome.Delivered())

	var nilSvc *Service
	outcome = nilSvc.Send(context.Background(), Message{Title: "x"})
	assert.Equal(t, StatusChannelDisabled, outcome.Status)
}

func TestSend_Failed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	outcome := NewService(srv.URL).Send(context.Background(), Message{Title: "x", Text: "y"})
	assert.Equal(t, StatusFailed, outcome.Status)
	require.Error(t, outcome.Err)
	assert.Contains(t, outcome.Err.Error(), "400")
	assert.Contains(t, outcome.Err.Error(), "invalid_payload")
}
