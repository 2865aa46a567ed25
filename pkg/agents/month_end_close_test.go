package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/notify"
)

func closeReportCompletion() *llm.Completion {
	return &llm.Completion{
		ToolCalls: []llm.ToolCall{{
			ID:   "tc-1",
			Name: "compose_close_report",
			Input: map[string]interface{}{
				"summary":         "Two blocking items remain; close is at risk.",
				"recommendations": []interface{}{"Post the draft journal entry", "Reconcile the open bank line"},
			},
		}},
		TokensIn:  250,
		TokensOut: 60,
	}
}

func TestMonthEndClose_ScoresAndReports(t *testing.T) {
	stub := newStubERP()
	// One unposted entry with an outlier amount, one open bank line.
	stub.stubSearch("account.move", erp.Record{
		"id": float64(601), "amount_total": 150000.0,
	})
	stub.stubSearch("account.bank.statement.line", erp.Record{
		"id": float64(701), "amount": -420.0,
	})
	scripted := llm.NewScriptedClient(closeReportCompletion())
	agent := NewMonthEndClose(stub, scripted, notify.NewService(""))

	_, rt, runs := setupAgentRuntime(t, AgentTypeMonthEndClose, 40, agent.Graph())
	run := startAgentRun(t, runs, AgentTypeMonthEndClose,
		map[string]interface{}{"period": "2026-07"})

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, agentgraph.OutcomeCompleted, outcome.Kind)

	// 100 - 20 (critical) - 10 (high) - 5 (anomaly) - 20 (all pending).
	assert.InDelta(t, 45, outcome.FinalState.Float("readiness_score"), 0.001)
	assert.Equal(t, 1, outcome.FinalState.Int("anomalies"))
	assert.Equal(t, 1, outcome.FinalState.Int("critical"))
	assert.Equal(t, 1, outcome.FinalState.Int("high"))
	assert.Equal(t, 2, outcome.FinalState.Int("pending_review"))
	assert.Equal(t, 0, outcome.FinalState.Int("auto_resolved"))
	assert.Equal(t, "Two blocking items remain; close is at risk.", outcome.FinalState.Str("report_summary"))

	require.Len(t, scripted.Requests, 1)
	require.Len(t, scripted.Requests[0].Tools, 1)
	assert.Equal(t, "compose_close_report", scripted.Requests[0].Tools[0].Name)
}

func TestMonthEndClose_CleanPeriod(t *testing.T) {
	stub := newStubERP()
	scripted := llm.NewScriptedClient(&llm.Completion{
		ToolCalls: []llm.ToolCall{{
			ID:    "tc-1",
			Name:  "compose_close_report",
			Input: map[string]interface{}{"summary": "Nothing open; ready to close."},
		}},
		TokensIn: 100, TokensOut: 20,
	})
	agent := NewMonthEndClose(stub, scripted, notify.NewService(""))

	_, rt, runs := setupAgentRuntime(t, AgentTypeMonthEndClose, 40, agent.Graph())
	run := startAgentRun(t, runs, AgentTypeMonthEndClose,
		map[string]interface{}{"period": "2026-07"})

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, agentgraph.OutcomeCompleted, outcome.Kind)
	assert.InDelta(t, 100, outcome.FinalState.Float("readiness_score"), 0.001)
}

func TestMonthEndClose_BadPeriodFailsRun(t *testing.T) {
	agent := NewMonthEndClose(newStubERP(), llm.NewScriptedClient(), notify.NewService(""))
	_, rt, runs := setupAgentRuntime(t, AgentTypeMonthEndClose, 40, agent.Graph())
	run := startAgentRun(t, runs, AgentTypeMonthEndClose,
		map[string]interface{}{"period": "july"})

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, agentgraph.OutcomeFailed, outcome.Kind)
	assert.Contains(t, outcome.Error, "scan_issues")
}

func TestMonthEndClose_StepLimitStopsRun(t *testing.T) {
	stub := newStubERP()
	agent := NewMonthEndClose(stub, llm.NewScriptedClient(closeReportCompletion()), notify.NewService(""))

	// The graph needs 7 steps; a budget of 3 trips the guardrail.
	_, rt, runs := setupAgentRuntime(t, AgentTypeMonthEndClose, 3, agent.Graph())
	run := startAgentRun(t, runs, AgentTypeMonthEndClose,
		map[string]interface{}{"period": "2026-07"})

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, agentgraph.OutcomeFailed, outcome.Kind)
	assert.Equal(t, agentgraph.GuardrailStepLimit, outcome.Guardrail)
	assert.Contains(t, outcome.Error, "Step limit")
}
