package automations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent/reportjob"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/test/util"
)

func planCompletion(input map[string]interface{}) *llm.Completion {
	return &llm.Completion{
		ToolCalls: []llm.ToolCall{{ID: "tc-1", Name: "plan_report", Input: input}},
		TokensIn:  120,
		TokensOut: 40,
	}
}

func TestParsedQueryColumns(t *testing.T) {
	q := ParsedQuery{
		Fields:  []string{"amount_total", "partner_name", "amount_total"},
		GroupBy: []string{"partner_name"},
	}
	assert.Equal(t, []string{"partner_name", "amount_total"}, q.Columns())
}

func TestExecuteQuery_RowsCarryExactColumnSet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	reports := NewReports(client, fake, llm.NewScriptedClient())
	ctx := context.Background()

	// Records carry fields the plan never asked for; those must not leak
	// into the result rows.
	fake.seed("sale.order",
		map[string]any{
			"id": int64(1), "partner_name": "Acme", "amount_total": 100.0,
			"state": "sale", "internal_note": "do not leak",
		},
		map[string]any{
			"id": int64(2), "partner_name": "Acme", "amount_total": 50.0, "state": "sale",
		},
		map[string]any{
			"id": int64(3), "partner_name": "Globex", "amount_total": 70.0, "state": "sale",
		},
	)

	rows, err := reports.ExecuteQuery(ctx, ParsedQuery{
		Model:   "sale.order",
		Fields:  []string{"amount_total"},
		GroupBy: []string{"partner_name"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		assert.Len(t, row, 2, "each row carries exactly fields plus group-by keys")
		assert.Contains(t, row, "partner_name")
		assert.Contains(t, row, "amount_total")
	}
	assert.Equal(t, "Acme", rows[0]["partner_name"])
	assert.InDelta(t, 150.0, rows[0]["amount_total"].(float64), 0.001)
	assert.Equal(t, "Globex", rows[1]["partner_name"])
	assert.InDelta(t, 70.0, rows[1]["amount_total"].(float64), 0.001)
}

func TestExecuteQuery_UngroupedProjectsColumns(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	reports := NewReports(client, fake, llm.NewScriptedClient())
	ctx := context.Background()

	fake.seed("res.partner", map[string]any{
		"id": int64(1), "name": "Acme", "email": "x@acme.example", "city": "Warsaw",
	})

	rows, err := reports.ExecuteQuery(ctx, ParsedQuery{
		Model:  "res.partner",
		Fields: []string{"name", "vat"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0]["name"])
	assert.Contains(t, rows[0], "vat", "absent fields still appear, as nil")
	assert.Nil(t, rows[0]["vat"])
	assert.NotContains(t, rows[0], "city")
}

func TestReportsRun_CompletesJob(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	scripted := llm.NewScriptedClient(planCompletion(map[string]interface{}{
		"model":    "sale.order",
		"domain":   []interface{}{[]interface{}{"state", "=", "sale"}},
		"fields":   []interface{}{"amount_total"},
		"group_by": []interface{}{"partner_name"},
	}))
	reports := NewReports(client, fake, scripted)
	ctx := context.Background()

	fake.seed("sale.order", map[string]any{
		"id": int64(1), "partner_name": "Acme", "amount_total": 100.0, "state": "sale",
	})

	job, err := reports.Run(ctx, "total confirmed sales by customer", "alice")
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusCompleted, job.Status)
	assert.Equal(t, 160, job.TokensUsed)
	assert.NotNil(t, job.CompletedAt)
	assert.NotEmpty(t, job.Narrative)

	columns, ok := job.Result["columns"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"partner_name", "amount_total"}, columns)
	assert.Equal(t, "sale.order", job.Plan["model"])

	fetched, err := reports.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, fetched.ID)
}

func TestReportsRun_FailsWhenModelSkipsTool(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	scripted := llm.NewScriptedClient(&llm.Completion{Text: "I cannot plan this."})
	reports := NewReports(client, newFakeERP(), scripted)
	ctx := context.Background()

	_, err := reports.Run(ctx, "something unplannable", "bob")
	require.Error(t, err)

	job, err := client.ReportJob.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, reportjob.StatusFailed, job.Status)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "plan_report")
}

func TestReportsRun_EmptyQuery(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	reports := NewReports(client, newFakeERP(), llm.NewScriptedClient())

	_, err := reports.Run(context.Background(), "   ", "alice")
	require.Error(t, err)
}

func TestReportsExecute_NoReplayableActions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	reports := NewReports(client, newFakeERP(), llm.NewScriptedClient())

	_, err := reports.Execute(context.Background(), automation.Action{Name: "anything"})
	require.Error(t, err)
}
