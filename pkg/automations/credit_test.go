package automations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/creditscore"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

func seedCreditScore(t *testing.T, client *ent.Client, customerID int64, limit, outstanding float64) *ent.CreditScore {
	t.Helper()
	score, err := client.CreditScore.Create().
		SetID(uuid.NewString()).
		SetCustomerID(customerID).
		SetScore(80).
		SetRiskTier(creditscore.RiskTierLow).
		SetCreditLimit(limit).
		SetOutstandingBalance(outstanding).
		SetFactors(map[string]interface{}{}).
		SetCalculatedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return score
}

func TestCreditCheck_OverLimit(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	credit := NewCredit(client, newFakeERP())
	ctx := context.Background()

	seedCreditScore(t, client, 7, 50000, 48000)

	check, err := credit.Check(ctx, 7, 5000)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.InDelta(t, 3000, check.OverLimitBy, 0.001)
	assert.False(t, check.HoldActive)
	assert.Contains(t, check.Reason, "exceed")
}

func TestCreditCheck_WithinLimit(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	credit := NewCredit(client, newFakeERP())
	ctx := context.Background()

	seedCreditScore(t, client, 7, 50000, 10000)

	check, err := credit.Check(ctx, 7, 5000)
	require.NoError(t, err)
	assert.True(t, check.Allowed)
	assert.Zero(t, check.OverLimitBy)
}

func TestCreditCheck_HoldBlocksRegardlessOfLimit(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	credit := NewCredit(client, newFakeERP())
	ctx := context.Background()

	seedCreditScore(t, client, 12, 50000, 0)
	require.NoError(t, credit.PlaceHold(ctx, 12, "manual review"))

	check, err := credit.Check(ctx, 12, 100)
	require.NoError(t, err)
	assert.False(t, check.Allowed)
	assert.True(t, check.HoldActive)
	assert.Contains(t, check.Reason, "credit hold")
}

func TestCreditCheck_InvalidInput(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	credit := NewCredit(client, newFakeERP())
	ctx := context.Background()

	_, err := credit.Check(ctx, 0, 100)
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = credit.Check(ctx, 5, -1)
	require.ErrorAs(t, err, &verr)
}

func TestCreditRecalculate_LowScorePlacesHold(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	credit := NewCredit(client, fake)
	ctx := context.Background()

	// Everything about this customer is bad: the one paid invoice was paid
	// late, all outstanding balance is overdue, and the account is brand new.
	fake.seed("account.move",
		map[string]any{
			"id": int64(1), "partner_id": int64(55), "move_type": "out_invoice", "state": "posted",
			"amount_total": 500.0, "amount_residual": 0.0,
			"invoice_date_due": "2020-01-01", "payment_state": "paid",
		},
		map[string]any{
			"id": int64(2), "partner_id": int64(55), "move_type": "out_invoice", "state": "posted",
			"amount_total": 800.0, "amount_residual": 800.0,
			"invoice_date_due": "2020-02-01", "payment_state": "not_paid",
		},
	)
	fake.seed("res.partner", map[string]any{
		"id": int64(55), "credit_limit": 1000.0,
		"create_date": time.Now().Format("2006-01-02 15:04:05"),
	})

	score, err := credit.Recalculate(ctx, 55)
	require.NoError(t, err)
	assert.Less(t, score.Score, holdScoreThreshold)
	assert.Equal(t, creditscore.RiskTierCritical, score.RiskTier)
	assert.True(t, score.HoldActive)
	require.NotNil(t, score.HoldReason)
	assert.InDelta(t, 800, score.OutstandingBalance, 0.001)
	assert.InDelta(t, 1000, score.CreditLimit, 0.001)
}

func TestCreditRecalculate_NeverReleasesHold(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	credit := NewCredit(client, fake)
	ctx := context.Background()

	seedCreditScore(t, client, 9, 10000, 0)
	require.NoError(t, credit.PlaceHold(ctx, 9, "fraud review"))

	// A spotless history would otherwise produce a high score.
	fake.seed("res.partner", map[string]any{
		"id": int64(9), "credit_limit": 10000.0, "create_date": "2015-03-01 00:00:00",
	})

	score, err := credit.Recalculate(ctx, 9)
	require.NoError(t, err)
	assert.True(t, score.HoldActive, "recalculation must not release an operator hold")

	require.NoError(t, credit.ReleaseHold(ctx, 9))
	score, err = credit.Get(ctx, 9)
	require.NoError(t, err)
	assert.False(t, score.HoldActive)
	assert.Nil(t, score.HoldReason)
}

func TestCreditHold_UnknownCustomer(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	credit := NewCredit(client, newFakeERP())
	ctx := context.Background()

	assert.ErrorIs(t, credit.PlaceHold(ctx, 999, "x"), services.ErrNotFound)
	assert.ErrorIs(t, credit.ReleaseHold(ctx, 999), services.ErrNotFound)
}

func TestCreditTier(t *testing.T) {
	assert.Equal(t, creditscore.RiskTierLow, creditTier(80))
	assert.Equal(t, creditscore.RiskTierMedium, creditTier(60))
	assert.Equal(t, creditscore.RiskTierHigh, creditTier(30))
	assert.Equal(t, creditscore.RiskTierCritical, creditTier(10))
}
