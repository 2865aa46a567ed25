package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/agentrun"
)

func TestStartAgentRun_Enqueues(t *testing.T) {
	s, client := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/agents/run",
		`{"agent_type":"procure_to_pay","initial_state":{"bill_id":77}}`)

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	var run ent.AgentRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, "procure_to_pay", run.AgentType)

	stored, err := client.AgentRun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusPending, stored.Status)
	assert.Equal(t, "api", stored.TriggerType)
	assert.Equal(t, 77.0, stored.InitialState["bill_id"])
}

func TestStartAgentRun_UnknownAgentType(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/agents/run", `{"agent_type":"no_such_agent"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
	assert.Contains(t, resp.Message, "no_such_agent")
}

func TestGetAgentRun_NotFound(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodGet, "/api/agents/runs/2f3cbb6e-0000-0000-0000-000000000000", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error)
}

func TestListAgentRuns_FiltersByStatus(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/agents/run", `{"agent_type":"procure_to_pay"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doJSON(s, http.MethodGet, "/api/agents/runs?agent_type=procure_to_pay&status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []*ent.AgentRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	assert.Len(t, runs, 1)

	rec = doJSON(s, http.MethodGet, "/api/agents/runs?status=completed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	assert.Empty(t, runs)
}

func TestResumeAgentRun_RequiresSuspendedRun(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodPost, "/api/agents/run", `{"agent_type":"procure_to_pay"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	var run ent.AgentRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))

	rec = doJSON(s, http.MethodPost, "/api/agents/runs/"+run.ID+"/resume",
		`{"event_data":{"approved":true}}`)
	assert.Equal(t, http.StatusConflict, rec.Code, "a pending run cannot be resumed")
}
