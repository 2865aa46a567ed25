package automations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent/supplierriskscore"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

func TestCompositeRiskScore(t *testing.T) {
	score := CompositeRiskScore([]RiskFactorInput{
		{Name: "late_deliveries", Weight: 0.45, Value: 100},
		{Name: "price_volatility", Weight: 0.30, Value: 50},
		{Name: "concentration", Weight: 0.25, Value: 20},
	})
	assert.InDelta(t, 45+15+5, score, 0.001)

	assert.Zero(t, CompositeRiskScore(nil))
	assert.InDelta(t, 100, CompositeRiskScore([]RiskFactorInput{
		{Weight: 0.45, Value: 500}, // out-of-range values clamp
		{Weight: 0.30, Value: 100},
		{Weight: 0.25, Value: 100},
	}), 0.001)
}

func TestRiskTier(t *testing.T) {
	assert.Equal(t, supplierriskscore.RiskTierLow, riskTier(10))
	assert.Equal(t, supplierriskscore.RiskTierMedium, riskTier(30))
	assert.Equal(t, supplierriskscore.RiskTierHigh, riskTier(60))
	assert.Equal(t, supplierriskscore.RiskTierCritical, riskTier(80))
}

func TestCoefficientOfVariation(t *testing.T) {
	assert.Zero(t, coefficientOfVariation(nil))
	assert.Zero(t, coefficientOfVariation([]float64{100}))
	assert.Zero(t, coefficientOfVariation([]float64{100, 100, 100}))
	assert.Greater(t, coefficientOfVariation([]float64{100, 10000}), 0.9)
}

// seedRiskySupplier seeds purchase history that lands supplier 9 in the
// critical tier: every receipt late and all spend concentrated on it.
func seedRiskySupplier(fake *fakeERP) {
	recent := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	fake.seed("purchase.order",
		map[string]any{
			"id": int64(501), "partner_id": []any{float64(9), "Initech"}, "state": "done",
			"date_order": recent, "amount_total": 1000.0,
			"date_planned": "2026-07-01 00:00:00", "effective_date": "2026-07-20 00:00:00",
		},
		map[string]any{
			"id": int64(502), "partner_id": []any{float64(9), "Initech"}, "state": "done",
			"date_order": recent, "amount_total": 90000.0,
			"date_planned": "2026-07-05 00:00:00", "effective_date": "2026-08-01 00:00:00",
		},
		map[string]any{
			"id": int64(503), "partner_id": []any{float64(9), "Initech"}, "state": "purchase",
			"date_order": recent, "amount_total": 5000.0,
			"date_planned": time.Now().AddDate(0, 0, 14).Format("2006-01-02 15:04:05"),
		},
	)
}

func TestSupplyChainRescore_UpsertsScoreAndFactors(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	sc := NewSupplyChain(client, fake)
	ctx := context.Background()

	seedRiskySupplier(fake)

	score, err := sc.Rescore(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, supplierriskscore.RiskTierCritical, score.RiskTier)
	assert.Greater(t, score.Score, 75.0)

	stored, err := sc.Get(ctx, 9)
	require.NoError(t, err)
	require.Len(t, stored.Edges.Factors, 3)
	names := make(map[string]bool)
	for _, f := range stored.Edges.Factors {
		names[f.FactorName] = true
	}
	assert.True(t, names["late_deliveries"])
	assert.True(t, names["price_volatility"])
	assert.True(t, names["concentration"])

	// A second rescore replaces factors instead of accumulating them.
	_, err = sc.Rescore(ctx, 9)
	require.NoError(t, err)
	stored, err = sc.Get(ctx, 9)
	require.NoError(t, err)
	assert.Len(t, stored.Edges.Factors, 3)

	total, err := client.SupplierRiskScore.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total, "one score row per supplier")
}

func TestSupplyChainGet_Unknown(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sc := NewSupplyChain(client, newFakeERP())

	_, err := sc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestScanSupplierRisk_RaisesAlertOnce(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	sc := NewSupplyChain(client, fake)
	ctx := context.Background()

	seedRiskySupplier(fake)
	fake.seed("res.partner", map[string]any{
		"id": int64(9), "name": "Initech", "supplier_rank": int64(3), "active": true,
	})

	results, err := sc.Scans()["scan_supplier_risk"](ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, "rescore_supplier", results[0].ActionName)

	predictions, err := client.DisruptionPrediction.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, predictions, 1, "one prediction per open order")
	assert.EqualValues(t, 9, predictions[0].SupplierID)
	assert.Greater(t, predictions[0].Probability, 0.75)

	alerts, err := sc.ListAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].Title, "Initech")

	// Rescanning with the prediction still open must not duplicate alerts.
	_, err = sc.Scans()["scan_supplier_risk"](ctx, time.Now())
	require.NoError(t, err)
	alerts, err = sc.ListAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestAcknowledgeAlert(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	sc := NewSupplyChain(client, fake)
	ctx := context.Background()

	seedRiskySupplier(fake)
	fake.seed("res.partner", map[string]any{
		"id": int64(9), "name": "Initech", "supplier_rank": int64(3), "active": true,
	})
	_, err := sc.Scans()["scan_supplier_risk"](ctx, time.Now())
	require.NoError(t, err)

	alerts, err := sc.ListAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	require.NoError(t, sc.AcknowledgeAlert(ctx, alerts[0].ID, "ops-lead"))

	remaining, err := sc.ListAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// Already acknowledged.
	assert.ErrorIs(t, sc.AcknowledgeAlert(ctx, alerts[0].ID, "ops-lead"), services.ErrNotFound)
}
