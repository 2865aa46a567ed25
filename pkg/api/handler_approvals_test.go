package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
)

// intakePendingLog routes a signed webhook through the server and returns
// the pending audit row it produced.
func intakePendingLog(t *testing.T, s *Server) string {
	t.Helper()
	body := `{"event_type":"create","model":"crm.lead","record_id":99,"values":{"name":"Pending"}}`
	rec := postWebhook(s, body, signBody(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AuditLogID)
	return resp.AuditLogID
}

func TestApprovals_ListShowsPendingRow(t *testing.T) {
	s, _ := newTestServer(t)
	id := intakePendingLog(t, s)

	rec := doJSON(s, http.MethodGet, "/api/approvals", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var queue []*ent.AuditLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &queue))
	require.Len(t, queue, 1)
	assert.Equal(t, id, queue[0].ID)
}

func TestApprovals_ApproveExecutes(t *testing.T) {
	s, _ := newTestServer(t)
	id := intakePendingLog(t, s)

	rec := doJSON(s, http.MethodPost, "/api/approvals",
		`{"audit_log_id":"`+id+`","approved":true,"approved_by":"controller@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var log ent.AuditLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &log))
	assert.Equal(t, "executed", string(log.Status))
	require.NotNil(t, log.ApprovedBy)
	assert.Equal(t, "controller@example.com", *log.ApprovedBy)
}

func TestApprovals_RejectDecisionIsFinal(t *testing.T) {
	s, _ := newTestServer(t)
	id := intakePendingLog(t, s)

	rec := doJSON(s, http.MethodPost, "/api/approvals",
		`{"audit_log_id":"`+id+`","approved":false,"approved_by":"controller@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/approvals",
		`{"audit_log_id":"`+id+`","approved":true,"approved_by":"controller@example.com"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_transition", resp.Error)
}

func TestApprovals_ApproverFallsBackToProxyHeader(t *testing.T) {
	s, _ := newTestServer(t)
	id := intakePendingLog(t, s)

	rec := doJSONReq(s, http.MethodPost, "/api/approvals",
		`{"audit_log_id":"`+id+`","approved":true}`,
		map[string]string{"X-Forwarded-User": "ops@example.com"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var log ent.AuditLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &log))
	require.NotNil(t, log.ApprovedBy)
	assert.Equal(t, "ops@example.com", *log.ApprovedBy)
}

func TestApprovals_MissingLogID(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/approvals", `{"approved":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
