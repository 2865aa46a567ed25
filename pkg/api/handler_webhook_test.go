package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postWebhook(s *Server, body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/erp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Webhook-Signature", signature)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestWebhook_AcceptsSignedEvent(t *testing.T) {
	s, _ := newTestServer(t)
	body := `{"event_type":"create","model":"crm.lead","record_id":42,"values":{"name":"Acme"}}`

	rec := postWebhook(s, body, signBody(body))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Accepted)
	assert.NotEmpty(t, resp.AuditLogID, "the lead scorer writes an audit row")
}

func TestWebhook_RejectsBadSignature(t *testing.T) {
	s, _ := newTestServer(t)
	body := `{"event_type":"create","model":"crm.lead","record_id":42}`

	rec := postWebhook(s, body, signBody(body+"tampered"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unauthorized", resp.Error)
}

func TestWebhook_RejectsMissingSignature(t *testing.T) {
	s, _ := newTestServer(t)
	body := `{"event_type":"create","model":"crm.lead","record_id":42}`

	rec := postWebhook(s, body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhook_MalformedPayload(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{"event_type":"create"`
	rec := postWebhook(s, body, signBody(body))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body = `{"event_type":"create","model":"crm.lead"}`
	rec = postWebhook(s, body, signBody(body))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "record_id is required")
}

func TestWebhook_DuplicateWithinWindow(t *testing.T) {
	s, _ := newTestServer(t)
	body := `{"event_type":"create","model":"crm.lead","record_id":7,"values":{"name":"Dup"}}`

	rec := postWebhook(s, body, signBody(body))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postWebhook(s, body, signBody(body))
	require.Equal(t, http.StatusConflict, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "duplicate", resp.Error)
}
