package agents

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/creditscore"
	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/automations"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/notify"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		days   int
		amount float64
		want   string
	}{
		{3, 1000, StrategyGentleReminder},
		{7, 100000, StrategyGentleReminder},
		{8, 1000, StrategyFirmNotice},
		{30, 49999, StrategyFirmNotice},
		{20, 50000, StrategyEscalate},
		{31, 100, StrategyEscalate},
		{90, 1000, StrategyEscalate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectStrategy(tt.days, tt.amount),
			"days=%d amount=%.0f", tt.days, tt.amount)
	}
}

func TestCreditImpact(t *testing.T) {
	assert.InDelta(t, -1.0, CreditImpact(7), 0.001)
	assert.InDelta(t, -3.0, CreditImpact(8), 0.001)
	assert.InDelta(t, -3.0, CreditImpact(30), 0.001)
	assert.InDelta(t, -8.0, CreditImpact(60), 0.001)
	assert.InDelta(t, -15.0, CreditImpact(61), 0.001)
}

func seedOverdueInvoice(stub *stubERP, invoiceID, customerID int64, amount float64, overdueDays int) {
	stub.stubRead("account.move", invoiceID, erp.Record{
		"id":               float64(invoiceID),
		"name":             "INV/2026/0042",
		"partner_id":       []any{float64(customerID), "Acme"},
		"amount_residual":  amount,
		"invoice_date_due": time.Now().AddDate(0, 0, -overdueDays).Format("2006-01-02"),
	})
}

func seedCustomerScore(t *testing.T, client *ent.Client, customerID int64, score float64) {
	t.Helper()
	_, err := client.CreditScore.Create().
		SetID(uuid.NewString()).
		SetCustomerID(customerID).
		SetScore(score).
		SetRiskTier(creditscore.RiskTierLow).
		SetCreditLimit(100000).
		Save(context.Background())
	require.NoError(t, err)
}

func setupCollection(t *testing.T, stub *stubERP) (*ent.Client, *agentgraph.Runtime, *services.RunService) {
	client, _ := util.SetupTestDatabase(t)
	credit := automations.NewCredit(client, stub)
	agent := NewCollection(stub, credit, notify.NewService(""))
	runs := services.NewRunService(client)
	rt := agentgraph.NewRuntime(runs, agentLimits(AgentTypeCollection, 20), nil)
	require.NoError(t, rt.RegisterAgent(AgentTypeCollection, agent.Graph()))
	return client, rt, runs
}

func TestCollection_FirmNoticeChargesCreditScore(t *testing.T) {
	stub := newStubERP()
	seedOverdueInvoice(stub, 88, 7, 12000, 20)
	client, rt, runs := setupCollection(t, stub)
	seedCustomerScore(t, client, 7, 80)

	run := startAgentRun(t, runs, AgentTypeCollection, map[string]interface{}{"record_id": 88.0})
	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, agentgraph.OutcomeCompleted, outcome.Kind)

	assert.Equal(t, StrategyFirmNotice, outcome.FinalState.Str("strategy"))
	assert.Equal(t, "notice_sent", outcome.FinalState.Str("outcome"))
	require.Len(t, stub.creates, 1)
	assert.Equal(t, "mail.activity", stub.creates[0].Model)
	assert.Equal(t, "account.move", stub.creates[0].Values["res_model"])

	assert.True(t, outcome.FinalState.Bool("credit_adjusted"))
	assert.InDelta(t, 77, outcome.FinalState.Float("credit_score"), 0.001)

	score, err := client.CreditScore.Query().
		Where(creditscore.CustomerID(7)).
		Only(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 77, score.Score, 0.001)
	assert.Equal(t, creditscore.RiskTierLow, score.RiskTier)
}

func TestCollection_GentleReminderWithoutScoreRow(t *testing.T) {
	stub := newStubERP()
	seedOverdueInvoice(stub, 89, 11, 800, 5)
	_, rt, runs := setupCollection(t, stub)

	run := startAgentRun(t, runs, AgentTypeCollection, map[string]interface{}{"record_id": 89.0})
	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, agentgraph.OutcomeCompleted, outcome.Kind)

	assert.Equal(t, StrategyGentleReminder, outcome.FinalState.Str("strategy"))
	assert.Equal(t, "reminder_sent", outcome.FinalState.Str("outcome"))
	require.Len(t, stub.methods, 1)
	assert.Equal(t, "action_send_payment_reminder", stub.methods[0].Method)
	// Unknown customers are skipped, not failed.
	assert.False(t, outcome.FinalState.Bool("credit_adjusted"))
}

func TestCollection_LargeOverdueEscalates(t *testing.T) {
	stub := newStubERP()
	seedOverdueInvoice(stub, 90, 13, 75000, 20)
	client, rt, runs := setupCollection(t, stub)
	seedCustomerScore(t, client, 13, 60)

	run := startAgentRun(t, runs, AgentTypeCollection, map[string]interface{}{"record_id": 90.0})
	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, agentgraph.OutcomeCompleted, outcome.Kind)

	assert.Equal(t, StrategyEscalate, outcome.FinalState.Str("strategy"))
	assert.Equal(t, "escalated", outcome.FinalState.Str("outcome"))
	require.Len(t, stub.creates, 1)
	assert.Contains(t, stub.creates[0].Values["summary"], "Escalation")

	// 20 days overdue costs 3 points.
	assert.InDelta(t, 57, outcome.FinalState.Float("credit_score"), 0.001)
}
