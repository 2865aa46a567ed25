package automations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/pkg/automation"
)

func TestPurchaseOnOrderChanged_FlagsPriceVariance(t *testing.T) {
	fake := newFakeERP()
	purchase := NewPurchase(fake)
	ctx := context.Background()

	fake.seed("purchase.order.line",
		map[string]any{"id": int64(1), "order_id": int64(40), "product_id": int64(501), "price_unit": 130.0, "name": "Steel bracket"},
		map[string]any{"id": int64(2), "order_id": int64(40), "product_id": int64(502), "price_unit": 9.5, "name": "Bolt M8"},
	)
	fake.seed("product.product",
		map[string]any{"id": int64(501), "standard_price": 100.0},
		map[string]any{"id": int64(502), "standard_price": 9.0},
	)

	result, err := purchase.onOrderChanged(ctx, automation.Event{
		Type: "create", Model: "purchase.order", RecordID: 40,
		Values: map[string]interface{}{},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "flag_price_variance", result.ActionName)
	assert.InDelta(t, 0.88, result.Confidence, 0.001)
	assert.InDelta(t, 0.30, result.ChangesMade["variance"].(float64), 0.001)
	assert.Contains(t, result.ChangesMade["summary"], "Steel bracket")
}

func TestPurchaseOnOrderChanged_WithinPolicyIsANote(t *testing.T) {
	fake := newFakeERP()
	purchase := NewPurchase(fake)
	ctx := context.Background()

	fake.seed("purchase.order.line",
		map[string]any{"id": int64(1), "order_id": int64(41), "product_id": int64(501), "price_unit": 105.0, "name": "Steel bracket"},
	)
	fake.seed("product.product",
		map[string]any{"id": int64(501), "standard_price": 100.0},
	)

	result, err := purchase.onOrderChanged(ctx, automation.Event{
		Type: "create", Model: "purchase.order", RecordID: 41,
		Values: map[string]interface{}{},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, result.Confidence, 0.001)
	assert.Empty(t, result.ChangesMade)
}

func TestPurchaseOnOrderChanged_IgnoresUnrelatedWrites(t *testing.T) {
	purchase := NewPurchase(newFakeERP())
	ctx := context.Background()

	result, err := purchase.onOrderChanged(ctx, automation.Event{
		Type: "write", Model: "purchase.order", RecordID: 40,
		Values: map[string]interface{}{"notes": "deliver to dock 2"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, result.Confidence, 0.001)
	assert.Empty(t, result.ChangesMade)
}

func TestPurchaseScanOverdueReceipts(t *testing.T) {
	fake := newFakeERP()
	purchase := NewPurchase(fake)
	ctx := context.Background()
	day := time.Now()

	fake.seed("purchase.order",
		map[string]any{
			"id": int64(91), "name": "P00091", "state": "purchase", "receipt_status": "pending",
			"date_planned": day.AddDate(0, 0, -4).Format("2006-01-02 15:04:05"),
		},
		map[string]any{
			"id": int64(92), "name": "P00092", "state": "purchase", "receipt_status": "full",
			"date_planned": day.AddDate(0, 0, -10).Format("2006-01-02 15:04:05"),
		},
		map[string]any{
			"id": int64(93), "name": "P00093", "state": "draft", "receipt_status": "pending",
			"date_planned": day.AddDate(0, 0, -10).Format("2006-01-02 15:04:05"),
		},
	)

	results, err := purchase.Scans()["scan_overdue_receipts"](ctx, day)
	require.NoError(t, err)
	require.Len(t, results, 1, "received and unconfirmed orders are not chased")
	assert.EqualValues(t, 91, results[0].RecordID)
	assert.Equal(t, "chase_receipt", results[0].ActionName)
	assert.Contains(t, results[0].ChangesMade["summary"], "Chase receipt")
}

func TestPurchaseExecute(t *testing.T) {
	fake := newFakeERP()
	purchase := NewPurchase(fake)
	ctx := context.Background()

	out, err := purchase.Execute(ctx, automation.Action{
		Name: "chase_receipt", Model: "purchase.order", RecordID: 91,
		Changes: map[string]interface{}{
			"summary":       "Chase receipt: 4 days past planned date",
			"date_deadline": "2026-08-27",
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, out["activity_id"])
	require.Len(t, fake.creates, 1)
	assert.Equal(t, "mail.activity", fake.creates[0].Model)
	assert.Equal(t, "purchase.order", fake.creates[0].Values["res_model"])

	_, err = purchase.Execute(ctx, automation.Action{Name: "nope"})
	require.Error(t, err)
}
