package automations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

func TestCollectProbability(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		horizon int
		want    float64
	}{
		{"due now", 0, 90, 1.0},
		{"due within a month", 30, 90, 1.0},
		{"due within two months", 45, 90, 0.95},
		{"due near horizon", 80, 90, 0.85},
		{"past horizon", 91, 90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, collectProbability(tt.days, tt.horizon), 0.001)
		})
	}
}

func TestCashflowForecast_PersistsProjection(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	cashflow := NewCashflow(client, fake, 90)
	ctx := context.Background()

	fake.seed("account.journal", map[string]any{
		"id": int64(1), "type": "bank", "current_statement_balance": 100000.0,
	})
	fake.seed("account.move",
		map[string]any{
			"id": int64(10), "move_type": "out_invoice", "state": "posted",
			"amount_residual": 10000.0, "partner_id": []any{float64(42), "Customer 42"},
			"invoice_date_due": time.Now().AddDate(0, 0, 5).Format("2006-01-02"),
		},
		map[string]any{
			"id": int64(11), "move_type": "in_invoice", "state": "posted",
			"amount_residual": 4000.0, "partner_id": []any{float64(80), "Vendor"},
			"invoice_date_due": time.Now().AddDate(0, 0, 10).Format("2006-01-02"),
		},
	)

	forecast, err := cashflow.Forecast(ctx, 90)
	require.NoError(t, err)
	assert.InDelta(t, 100000, forecast.OpeningBalance, 0.001)
	assert.InDelta(t, 10000, forecast.ExpectedInflows, 0.001)
	assert.InDelta(t, 4000, forecast.ExpectedOutflows, 0.001)
	assert.InDelta(t, 106000, forecast.ProjectedBalance, 0.001)

	latest, err := cashflow.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, forecast.ID, latest.ID)
}

func TestCashflowLatest_Empty(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cashflow := NewCashflow(client, newFakeERP(), 0)

	_, err := cashflow.Latest(context.Background())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCashflowScenario_DelayReducesEndBalance(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	cashflow := NewCashflow(client, fake, 90)
	ctx := context.Background()

	fake.seed("account.journal", map[string]any{
		"id": int64(1), "type": "bank", "current_statement_balance": 100000.0,
	})
	// One receivable due in 5 days. A 30-day payment delay keeps it inside
	// the horizon but drops its collection probability.
	fake.seed("account.move", map[string]any{
		"id": int64(10), "move_type": "out_invoice", "state": "posted",
		"amount_residual": 10000.0, "partner_id": []any{float64(42), "Customer 42"},
		"invoice_date_due": time.Now().AddDate(0, 0, 5).Format("2006-01-02"),
	})

	scenario, impact, err := cashflow.Scenario(ctx, "customer 42 pays late",
		map[string]interface{}{"delay_customer_42": 30})
	require.NoError(t, err)

	assert.Negative(t, impact.EndBalanceChange)
	assert.InDelta(t, -500, impact.EndBalanceChange, 0.001)
	assert.InDelta(t, impact.BaseBalance+impact.EndBalanceChange, impact.ScenarioBalance, 0.001)
	assert.InDelta(t, impact.EndBalanceChange, scenario.Delta, 0.001)
	assert.Equal(t, "customer 42 pays late", scenario.Name)
}

func TestCashflowScenario_BadAdjustments(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	cashflow := NewCashflow(client, newFakeERP(), 0)
	ctx := context.Background()

	var verr *services.ValidationError

	_, _, err := cashflow.Scenario(ctx, "x", map[string]interface{}{"speed_up_vendor_1": 10})
	require.ErrorAs(t, err, &verr)

	_, _, err = cashflow.Scenario(ctx, "x", map[string]interface{}{"delay_customer_abc": 10})
	require.ErrorAs(t, err, &verr)

	_, _, err = cashflow.Scenario(ctx, "x", map[string]interface{}{"delay_customer_42": 0})
	require.ErrorAs(t, err, &verr)

	_, _, err = cashflow.Scenario(ctx, "x", map[string]interface{}{})
	require.ErrorAs(t, err, &verr)

	_, _, err = cashflow.Scenario(ctx, "", map[string]interface{}{"delay_customer_42": 10})
	require.ErrorAs(t, err, &verr)
}

func TestCashflowAccuracy_BacktestsMaturedForecasts(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	cashflow := NewCashflow(client, fake, 90)
	ctx := context.Background()

	fake.seed("account.journal", map[string]any{
		"id": int64(1), "type": "bank", "current_statement_balance": 50000.0,
	})

	// A forecast whose target date has passed.
	_, err := client.CashForecast.Create().
		SetID("matured-forecast").
		SetForecastDate(time.Now().AddDate(0, 0, -100)).
		SetTargetDate(time.Now().AddDate(0, 0, -10)).
		SetOpeningBalance(40000).
		SetExpectedInflows(20000).
		SetExpectedOutflows(5000).
		SetProjectedBalance(55000).
		Save(ctx)
	require.NoError(t, err)

	logs, err := cashflow.Accuracy(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "matured-forecast", logs[0].ForecastID)
	assert.InDelta(t, 55000, logs[0].ProjectedBalance, 0.001)
	assert.InDelta(t, 50000, logs[0].ActualBalance, 0.001)
	assert.InDelta(t, 0.1, logs[0].ErrorPct, 0.001)
}
