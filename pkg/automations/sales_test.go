package automations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/pkg/automation"
)

func TestSalesOnOrderChanged_FlagsHeavyDiscount(t *testing.T) {
	fake := newFakeERP()
	sales := NewSales(fake)
	ctx := context.Background()

	fake.seed("sale.order.line",
		map[string]any{"id": int64(1), "order_id": int64(70), "discount": 5.0, "price_subtotal": 950.0, "name": "Widget"},
		map[string]any{"id": int64(2), "order_id": int64(70), "discount": 35.0, "price_subtotal": 650.0, "name": "Gadget"},
	)

	result, err := sales.onOrderChanged(ctx, automation.Event{
		Type: "create", Model: "sale.order", RecordID: 70,
		Values: map[string]interface{}{},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "flag_discount_review", result.ActionName)
	assert.InDelta(t, 0.90, result.Confidence, 0.001)
	assert.InDelta(t, 35.0, result.ChangesMade["max_discount"].(float64), 0.001)
	assert.Contains(t, result.ChangesMade["summary"], "Gadget")
}

func TestSalesOnOrderChanged_WithinPolicyIsANote(t *testing.T) {
	fake := newFakeERP()
	sales := NewSales(fake)
	ctx := context.Background()

	fake.seed("sale.order.line",
		map[string]any{"id": int64(1), "order_id": int64(71), "discount": 10.0, "price_subtotal": 900.0, "name": "Widget"},
	)

	result, err := sales.onOrderChanged(ctx, automation.Event{
		Type: "create", Model: "sale.order", RecordID: 71,
		Values: map[string]interface{}{},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, result.Confidence, 0.001)
	assert.Empty(t, result.ChangesMade)
}

func TestSalesOnOrderChanged_IgnoresUnrelatedWrites(t *testing.T) {
	sales := NewSales(newFakeERP())
	ctx := context.Background()

	result, err := sales.onOrderChanged(ctx, automation.Event{
		Type: "write", Model: "sale.order", RecordID: 70,
		Values: map[string]interface{}{"note": "call back Tuesday"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, result.Confidence, 0.001)
	assert.Empty(t, result.ChangesMade)
}

func TestSalesScanStaleQuotes(t *testing.T) {
	fake := newFakeERP()
	sales := NewSales(fake)
	ctx := context.Background()
	day := time.Now()

	fake.seed("sale.order",
		map[string]any{
			"id": int64(81), "name": "S00081", "state": "sent",
			"write_date":   day.AddDate(0, 0, -15).Format("2006-01-02 15:04:05"),
			"amount_total": 7500.0,
		},
		map[string]any{
			"id": int64(82), "name": "S00082", "state": "sent",
			"write_date":   day.AddDate(0, 0, -3).Format("2006-01-02 15:04:05"),
			"amount_total": 1200.0,
		},
		map[string]any{
			"id": int64(83), "name": "S00083", "state": "sale",
			"write_date":   day.AddDate(0, 0, -30).Format("2006-01-02 15:04:05"),
			"amount_total": 9900.0,
		},
	)

	results, err := sales.Scans()["scan_stale_quotes"](ctx, day)
	require.NoError(t, err)
	require.Len(t, results, 1, "only the idle quotation is chased; confirmed orders are not")
	assert.EqualValues(t, 81, results[0].RecordID)
	assert.Equal(t, "chase_quote", results[0].ActionName)
	assert.Contains(t, results[0].ChangesMade["summary"], "Chase quotation")
}

func TestSalesExecute(t *testing.T) {
	fake := newFakeERP()
	sales := NewSales(fake)
	ctx := context.Background()

	out, err := sales.Execute(ctx, automation.Action{
		Name: "chase_quote", Model: "sale.order", RecordID: 81,
		Changes: map[string]interface{}{
			"summary":       "Chase quotation: idle for 15 days",
			"date_deadline": "2026-08-27",
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, out["activity_id"])
	require.Len(t, fake.creates, 1)
	assert.Equal(t, "mail.activity", fake.creates[0].Model)
	assert.Equal(t, "sale.order", fake.creates[0].Values["res_model"])

	_, err = sales.Execute(ctx, automation.Action{Name: "nope"})
	require.Error(t, err)
}
