package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/notify"
)

func extractCompletion(poRef string) *llm.Completion {
	return &llm.Completion{
		ToolCalls: []llm.ToolCall{{
			ID:   "tc-1",
			Name: "extract_po_reference",
			Input: map[string]interface{}{
				"po_reference": poRef,
				"confidence":   0.97,
			},
		}},
		TokensIn:  150,
		TokensOut: 20,
	}
}

func seedVendorBill(stub *stubERP, billID int64, amount float64) {
	stub.stubRead("account.move", billID, erp.Record{
		"id":           float64(billID),
		"ref":          "see narration",
		"narration":    "Invoice against order P00042",
		"partner_id":   []any{float64(9), "Vendor Gmbh"},
		"amount_total": amount,
		"invoice_date": "2026-08-20",
	})
}

func TestApprovalRoute(t *testing.T) {
	base := agentgraph.State{
		"po_found": true, "amount_ok": true, "receipt_ok": true, "bill_amount": 5000.0,
	}

	assert.Equal(t, "auto_approve", approvalRoute(base))

	large := base.Clone()
	large["bill_amount"] = 50000.0
	assert.Equal(t, "needs_approval", approvalRoute(large))

	for _, broken := range []string{"po_found", "amount_ok", "receipt_ok"} {
		st := base.Clone()
		st[broken] = false
		assert.Equal(t, "escalate", approvalRoute(st), broken)
	}
}

func TestProcureToPay_AutoApprovePostsBill(t *testing.T) {
	stub := newStubERP()
	seedVendorBill(stub, 77, 4990)
	stub.stubSearch("purchase.order", erp.Record{
		"id": float64(501), "amount_total": 5000.0, "receipt_status": "full",
	})
	scripted := llm.NewScriptedClient(extractCompletion("P00042"))
	agent := NewProcureToPay(stub, scripted, notify.NewService(""))

	_, rt, runs := setupAgentRuntime(t, AgentTypeProcureToPay, 25, agent.Graph())
	run := startAgentRun(t, runs, AgentTypeProcureToPay, map[string]interface{}{"record_id": 77.0})

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, agentgraph.OutcomeCompleted, outcome.Kind)
	assert.Equal(t, "posted", outcome.FinalState.Str("outcome"))
	assert.True(t, outcome.FinalState.Bool("amount_ok"), "a 0.2 percent variance is within tolerance")
	assert.InDelta(t, 0.2, outcome.FinalState.Float("variance_pct"), 0.001)

	require.Len(t, stub.methods, 1)
	assert.Equal(t, "action_post", stub.methods[0].Method)
	assert.Equal(t, []int64{77}, stub.methods[0].IDs)

	// The extract step's model call lands as a persisted decision.
	detail, err := runs.GetRunDetail(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, detail.Status)
	assert.Equal(t, 170, detail.TokenUsage)
}

func TestProcureToPay_LargeBillSuspendsUntilApproved(t *testing.T) {
	stub := newStubERP()
	seedVendorBill(stub, 78, 60000)
	stub.stubSearch("purchase.order", erp.Record{
		"id": float64(502), "amount_total": 60000.0, "receipt_status": "full",
	})
	agent := NewProcureToPay(stub, llm.NewScriptedClient(extractCompletion("P00042")), notify.NewService(""))

	_, rt, runs := setupAgentRuntime(t, AgentTypeProcureToPay, 25, agent.Graph())
	run := startAgentRun(t, runs, AgentTypeProcureToPay, map[string]interface{}{"record_id": 78.0})
	ctx := context.Background()

	outcome := rt.Execute(ctx, run)
	require.Equal(t, agentgraph.OutcomeSuspended, outcome.Kind)
	assert.Empty(t, stub.methods, "nothing posts while approval is pending")

	susp, err := runs.OpenSuspension(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "awaiting_bill_approval", susp.ResumeCondition)
	assert.Equal(t, "request_approval", susp.SuspendedAtStep)

	resumed, err := runs.Resume(ctx, run.ID, map[string]interface{}{"approved": true})
	require.NoError(t, err)
	resumed, err = runs.MarkRunning(ctx, resumed.ID)
	require.NoError(t, err)

	outcome = rt.Execute(ctx, resumed)
	require.Equal(t, agentgraph.OutcomeCompleted, outcome.Kind)
	assert.Equal(t, "posted", outcome.FinalState.Str("outcome"))
	require.Len(t, stub.methods, 1)
	assert.Equal(t, "action_post", stub.methods[0].Method)
}

func TestProcureToPay_RejectionSkipsPosting(t *testing.T) {
	stub := newStubERP()
	seedVendorBill(stub, 79, 55000)
	stub.stubSearch("purchase.order", erp.Record{
		"id": float64(503), "amount_total": 55000.0, "receipt_status": "full",
	})
	agent := NewProcureToPay(stub, llm.NewScriptedClient(extractCompletion("P00042")), notify.NewService(""))

	_, rt, runs := setupAgentRuntime(t, AgentTypeProcureToPay, 25, agent.Graph())
	run := startAgentRun(t, runs, AgentTypeProcureToPay, map[string]interface{}{"record_id": 79.0})
	ctx := context.Background()

	outcome := rt.Execute(ctx, run)
	require.Equal(t, agentgraph.OutcomeSuspended, outcome.Kind)

	resumed, err := runs.Resume(ctx, run.ID, map[string]interface{}{"approved": false})
	require.NoError(t, err)
	resumed, err = runs.MarkRunning(ctx, resumed.ID)
	require.NoError(t, err)

	outcome = rt.Execute(ctx, resumed)
	require.Equal(t, agentgraph.OutcomeCompleted, outcome.Kind)
	assert.Equal(t, "rejected", outcome.FinalState.Str("outcome"))
	assert.Empty(t, stub.methods, "rejected bills never post")
}

func TestProcureToPay_MissingPOEscalates(t *testing.T) {
	stub := newStubERP()
	seedVendorBill(stub, 80, 2000)
	// No purchase orders stubbed: the match comes back empty.
	agent := NewProcureToPay(stub, llm.NewScriptedClient(extractCompletion("P09999")), notify.NewService(""))

	_, rt, runs := setupAgentRuntime(t, AgentTypeProcureToPay, 25, agent.Graph())
	run := startAgentRun(t, runs, AgentTypeProcureToPay, map[string]interface{}{"record_id": 80.0})

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, agentgraph.OutcomeCompleted, outcome.Kind)
	assert.Equal(t, "escalated", outcome.FinalState.Str("outcome"))
	assert.Equal(t, "purchase order not found", outcome.FinalState.Str("escalation_cause"))
	assert.Empty(t, stub.methods)
}
