package automations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/pkg/automation"
)

func TestHROnExpenseCreated_AutoApprovesWithinPolicy(t *testing.T) {
	hr := NewHR(newFakeERP())
	ctx := context.Background()

	result, err := hr.onExpenseCreated(ctx, automation.Event{
		Type: "create", Model: "hr.expense", RecordID: 300,
		Values: map[string]interface{}{
			"total_amount":     62.0,
			"product_code":     "EXP_MEAL",
			"attachment_count": int64(1),
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "approve_expense", result.ActionName)
	assert.InDelta(t, 0.96, result.Confidence, 0.001)
	assert.False(t, result.NeedsApproval)
}

func TestHROnExpenseCreated_OverCapNeedsManager(t *testing.T) {
	hr := NewHR(newFakeERP())
	ctx := context.Background()

	result, err := hr.onExpenseCreated(ctx, automation.Event{
		Type: "create", Model: "hr.expense", RecordID: 301,
		Values: map[string]interface{}{
			"total_amount":     145.0,
			"product_code":     "EXP_MEAL",
			"attachment_count": int64(1),
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.88, result.Confidence, 0.001)
	assert.True(t, result.NeedsApproval)
	assert.Contains(t, result.Reasoning, "145.00")
}

func TestHROnExpenseCreated_MissingReceiptNeedsManager(t *testing.T) {
	hr := NewHR(newFakeERP())
	ctx := context.Background()

	result, err := hr.onExpenseCreated(ctx, automation.Event{
		Type: "create", Model: "hr.expense", RecordID: 302,
		Values: map[string]interface{}{
			"total_amount": 20.0,
			"product_code": "EXP_MEAL",
		},
	})
	require.NoError(t, err)
	assert.True(t, result.NeedsApproval)
	assert.Contains(t, result.Reasoning, "no receipt")
}

func TestHROnExpenseCreated_UnknownCategoryUsesDefaultCap(t *testing.T) {
	hr := NewHR(newFakeERP())
	ctx := context.Background()

	result, err := hr.onExpenseCreated(ctx, automation.Event{
		Type: "create", Model: "hr.expense", RecordID: 303,
		Values: map[string]interface{}{
			"total_amount":     250.0,
			"product_code":     "EXP_MISC",
			"attachment_count": int64(1),
		},
	})
	require.NoError(t, err)
	assert.True(t, result.NeedsApproval, "250 exceeds the 200 default cap")
}

func TestHRScanStaleLeaveRequests(t *testing.T) {
	fake := newFakeERP()
	hr := NewHR(fake)
	ctx := context.Background()
	day := time.Now()

	fake.seed("hr.leave",
		map[string]any{
			"id": int64(10), "state": "confirm", "number_of_days": 3.0,
			"create_date": day.AddDate(0, 0, -8).Format("2006-01-02 15:04:05"),
		},
		map[string]any{
			"id": int64(11), "state": "confirm", "number_of_days": 1.0,
			"create_date": day.AddDate(0, 0, -2).Format("2006-01-02 15:04:05"),
		},
		map[string]any{
			"id": int64(12), "state": "validate", "number_of_days": 5.0,
			"create_date": day.AddDate(0, 0, -20).Format("2006-01-02 15:04:05"),
		},
	)

	results, err := hr.Scans()["scan_stale_leave_requests"](ctx, day)
	require.NoError(t, err)
	require.Len(t, results, 1, "recent and already-validated requests are not chased")
	assert.EqualValues(t, 10, results[0].RecordID)
	assert.Equal(t, "chase_leave_approval", results[0].ActionName)
}

func TestHRExecute(t *testing.T) {
	fake := newFakeERP()
	hr := NewHR(fake)
	ctx := context.Background()

	out, err := hr.Execute(ctx, automation.Action{
		Name: "approve_expense", Model: "hr.expense", RecordID: 300,
	})
	require.NoError(t, err)
	assert.Equal(t, true, out["approved"])
	require.Len(t, fake.methods, 1)
	assert.Equal(t, "action_approve", fake.methods[0].Method)
	assert.Equal(t, []int64{300}, fake.methods[0].IDs)

	out, err = hr.Execute(ctx, automation.Action{
		Name: "chase_leave_approval", Model: "hr.leave", RecordID: 10,
		Changes: map[string]interface{}{
			"summary":       "Leave request pending 8 days",
			"date_deadline": "2026-08-27",
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, out["activity_id"])
	require.Len(t, fake.creates, 1)
	assert.Equal(t, "hr.leave", fake.creates[0].Values["res_model"])

	_, err = hr.Execute(ctx, automation.Action{Name: "nope"})
	require.Error(t, err)
}
