package automations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/pkg/automation"
)

func TestScoreLead(t *testing.T) {
	full := ScoreLead(LeadInput{
		HasEmail:        true,
		HasPhone:        true,
		HasContactName:  true,
		SourceKnown:     true,
		ExpectedRevenue: 40000,
		Probability:     60,
	})
	// 15+10+10+10 contact/source, 40 revenue (capped), 9 probability.
	assert.InDelta(t, 94, full, 0.001)

	assert.Zero(t, ScoreLead(LeadInput{}))
	assert.InDelta(t, 40, ScoreLead(LeadInput{ExpectedRevenue: 1e9}), 0.001)
}

func TestLeadPriority(t *testing.T) {
	assert.Equal(t, "3", leadPriority(80))
	assert.Equal(t, "2", leadPriority(60))
	assert.Equal(t, "1", leadPriority(30))
	assert.Equal(t, "0", leadPriority(10))
}

func TestCRMOnLeadChanged_ScoresFromCurrentRecord(t *testing.T) {
	fake := newFakeERP()
	crm := NewCRM(fake)
	ctx := context.Background()

	fake.seed("crm.lead", map[string]any{
		"id":               int64(31),
		"email_from":       "buyer@example.com",
		"phone":            "+48 600 100 200",
		"contact_name":     "Jan Nowak",
		"partner_name":     "Nowak Sp. z o.o.",
		"expected_revenue": 40000.0,
		"source_id":        []any{float64(2), "Website"},
		"probability":      60.0,
	})

	result, err := crm.Handlers()[automation.HandlerKey{EventType: "create", Model: "crm.lead"}](ctx,
		automation.Event{Type: "create", Model: "crm.lead", RecordID: 31, Values: map[string]interface{}{}})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "score_lead", result.ActionName)
	assert.InDelta(t, 0.93, result.Confidence, 0.001)
	assert.Equal(t, "3", result.ChangesMade["priority"])
	assert.InDelta(t, 94, result.ChangesMade["lead_score"].(float64), 0.001)
}

func TestCRMOnLeadChanged_IgnoresUnrelatedWrites(t *testing.T) {
	crm := NewCRM(newFakeERP())
	ctx := context.Background()

	result, err := crm.onLeadChanged(ctx, automation.Event{
		Type: "write", Model: "crm.lead", RecordID: 31,
		Values: map[string]interface{}{"color": 4},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, result.Confidence, 0.001)
	assert.Empty(t, result.ChangesMade)
}

func TestCRMOnLeadChanged_MissingLead(t *testing.T) {
	crm := NewCRM(newFakeERP())
	ctx := context.Background()

	result, err := crm.onLeadChanged(ctx, automation.Event{
		Type: "create", Model: "crm.lead", RecordID: 999,
		Values: map[string]interface{}{},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, result.Confidence, 0.001)
}

func TestCRMScanStaleLeads(t *testing.T) {
	fake := newFakeERP()
	crm := NewCRM(fake)
	ctx := context.Background()
	day := time.Now()

	fake.seed("crm.lead",
		map[string]any{
			"id": int64(41), "name": "Old lead", "active": true, "probability": 30.0,
			"write_date":       day.AddDate(0, 0, -20).Format("2006-01-02 15:04:05"),
			"expected_revenue": 12000.0,
		},
		map[string]any{
			"id": int64(42), "name": "Fresh lead", "active": true, "probability": 30.0,
			"write_date":       day.AddDate(0, 0, -2).Format("2006-01-02 15:04:05"),
			"expected_revenue": 5000.0,
		},
		map[string]any{
			"id": int64(43), "name": "Won lead", "active": true, "probability": 100.0,
			"write_date":       day.AddDate(0, 0, -60).Format("2006-01-02 15:04:05"),
			"expected_revenue": 9000.0,
		},
	)

	results, err := crm.Scans()["scan_stale_leads"](ctx, day)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.EqualValues(t, 41, results[0].RecordID)
	assert.Equal(t, "schedule_followup", results[0].ActionName)
	assert.Contains(t, results[0].ChangesMade["summary"], "Follow up")
	assert.NotEmpty(t, results[0].ChangesMade["date_deadline"])
}

func TestCRMExecute(t *testing.T) {
	fake := newFakeERP()
	crm := NewCRM(fake)
	ctx := context.Background()

	out, err := crm.Execute(ctx, automation.Action{
		Name: "score_lead", Model: "crm.lead", RecordID: 31,
		Changes: map[string]interface{}{"priority": "2", "lead_score": 55.0},
	})
	require.NoError(t, err)
	assert.Equal(t, "2", out["priority"])
	require.Len(t, fake.writes, 1)
	assert.Equal(t, map[string]any{"priority": "2"}, fake.writes[0].Values,
		"only the priority is written back; the score itself stays internal")

	out, err = crm.Execute(ctx, automation.Action{
		Name: "schedule_followup", Model: "crm.lead", RecordID: 41,
		Changes: map[string]interface{}{
			"summary":       "Follow up: no activity for 20 days",
			"date_deadline": "2026-08-27",
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, out["activity_id"])
	require.Len(t, fake.creates, 1)
	assert.Equal(t, "mail.activity", fake.creates[0].Model)
	assert.Equal(t, "crm.lead", fake.creates[0].Values["res_model"])

	_, err = crm.Execute(ctx, automation.Action{Name: "nope"})
	require.Error(t, err)
}
