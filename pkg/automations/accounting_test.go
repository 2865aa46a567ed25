package automations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/llm"
)

func TestAccountingOnMoveCreated_CodesVendorBill(t *testing.T) {
	fake := newFakeERP()
	scripted := llm.NewScriptedClient(&llm.Completion{
		ToolCalls: []llm.ToolCall{{
			ID:   "tc-1",
			Name: "classify_expense",
			Input: map[string]interface{}{
				"account_code": "620100",
				"confidence":   0.96,
				"reasoning":    "software subscription from a known SaaS vendor",
			},
		}},
		TokensIn:  200,
		TokensOut: 30,
	})
	acc := NewAccounting(fake, scripted, "")
	ctx := context.Background()

	result, err := acc.onMoveCreated(ctx, automation.Event{
		Type: "create", Model: "account.move", RecordID: 77,
		Values: map[string]interface{}{
			"move_type":    "in_invoice",
			"partner_id":   []any{float64(12), "SaaS Vendor"},
			"ref":          "INV-2026-0815",
			"amount_total": 499.0,
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "code_vendor_bill", result.ActionName)
	assert.EqualValues(t, 77, result.RecordID)
	assert.InDelta(t, 0.96, result.Confidence, 0.001)
	assert.Equal(t, "620100", result.ChangesMade["expense_account_code"])
	assert.Equal(t, 230, result.TokensUsed)
	require.Len(t, scripted.Requests, 1)
	require.Len(t, scripted.Requests[0].Tools, 1)
	assert.Equal(t, "classify_expense", scripted.Requests[0].Tools[0].Name)
}

func TestAccountingOnMoveCreated_SkipsOtherMoveTypes(t *testing.T) {
	scripted := llm.NewScriptedClient()
	acc := NewAccounting(newFakeERP(), scripted, "")
	ctx := context.Background()

	result, err := acc.onMoveCreated(ctx, automation.Event{
		Type: "create", Model: "account.move", RecordID: 78,
		Values: map[string]interface{}{"move_type": "out_invoice"},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.InDelta(t, 0.10, result.Confidence, 0.001)
	assert.Empty(t, scripted.Requests, "customer invoices never reach the model")
}

func TestAccountingOnMoveCreated_ToolMissIsFailedResult(t *testing.T) {
	scripted := llm.NewScriptedClient(&llm.Completion{
		Text: "This looks like a travel expense.", TokensIn: 50, TokensOut: 12,
	})
	acc := NewAccounting(newFakeERP(), scripted, "")
	ctx := context.Background()

	result, err := acc.onMoveCreated(ctx, automation.Event{
		Type: "create", Model: "account.move", RecordID: 79,
		Values: map[string]interface{}{"move_type": "in_invoice"},
	})
	require.NoError(t, err, "a model that skips the tool is a failed result, not a handler error")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "classify_expense")
	assert.Equal(t, 62, result.TokensUsed)
}

func TestFirstToolCall_ValidatesInput(t *testing.T) {
	completion := &llm.Completion{
		ToolCalls: []llm.ToolCall{{
			Name: "classify_expense",
			// Missing the required confidence field.
			Input: map[string]interface{}{"account_code": "620100"},
		}},
	}
	_, err := firstToolCall(completion, classifyExpenseTool)
	require.Error(t, err)

	_, err = firstToolCall(&llm.Completion{}, classifyExpenseTool)
	require.Error(t, err)
}

func TestReminderLevel(t *testing.T) {
	assert.Equal(t, 1, reminderLevel(3))
	assert.Equal(t, 1, reminderLevel(7))
	assert.Equal(t, 2, reminderLevel(8))
	assert.Equal(t, 2, reminderLevel(30))
	assert.Equal(t, 3, reminderLevel(31))
}

func TestAccountingScanOverdueInvoices(t *testing.T) {
	fake := newFakeERP()
	acc := NewAccounting(fake, llm.NewScriptedClient(), "")
	ctx := context.Background()
	day := time.Now()

	fake.seed("account.move",
		map[string]any{
			"id": int64(301), "move_type": "out_invoice", "state": "posted",
			"amount_residual": 1200.0, "partner_id": []any{float64(5), "Acme"},
			"invoice_date_due": day.AddDate(0, 0, -45).Format("2006-01-02"),
		},
		map[string]any{
			"id": int64(302), "move_type": "out_invoice", "state": "posted",
			"amount_residual": 300.0, "partner_id": []any{float64(6), "Globex"},
			"invoice_date_due": day.AddDate(0, 0, -3).Format("2006-01-02"),
		},
		map[string]any{
			"id": int64(303), "move_type": "out_invoice", "state": "posted",
			"amount_residual": 0.0, "partner_id": []any{float64(7), "Initech"},
			"invoice_date_due": day.AddDate(0, 0, -90).Format("2006-01-02"),
		},
	)

	results, err := acc.Scans()["scan_overdue_invoices"](ctx, day)
	require.NoError(t, err)
	require.Len(t, results, 2, "settled invoices are not chased")

	byID := map[int64]*automation.Result{}
	for _, r := range results {
		byID[r.RecordID] = r
	}
	require.Contains(t, byID, int64(301))
	require.Contains(t, byID, int64(302))
	assert.Equal(t, 3, byID[301].ChangesMade["reminder_level"])
	assert.Equal(t, 1, byID[302].ChangesMade["reminder_level"])
	assert.InDelta(t, 0.96, byID[301].Confidence, 0.001)
}

func TestAccountingExecute(t *testing.T) {
	fake := newFakeERP()
	acc := NewAccounting(fake, llm.NewScriptedClient(), "")
	ctx := context.Background()

	out, err := acc.Execute(ctx, automation.Action{
		Name: "code_vendor_bill", Model: "account.move", RecordID: 77,
		Changes: map[string]interface{}{"expense_account_code": "620100"},
	})
	require.NoError(t, err)
	assert.Equal(t, true, out["coded"])
	require.Len(t, fake.writes, 1)

	out, err = acc.Execute(ctx, automation.Action{
		Name: "send_payment_reminder", Model: "account.move", RecordID: 301,
		Changes: map[string]interface{}{"reminder_level": 2},
	})
	require.NoError(t, err)
	assert.Equal(t, true, out["reminder_sent"])
	require.Len(t, fake.methods, 1)
	assert.Equal(t, "action_send_payment_reminder", fake.methods[0].Method)

	_, err = acc.Execute(ctx, automation.Action{Name: "unknown"})
	require.Error(t, err)
}
