package automations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/reconciliationsession"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

func seedStatementLines(fake *fakeERP, journalID int64, count int) {
	for i := 0; i < count; i++ {
		fake.seed("account.bank.statement.line", map[string]any{
			"id":            int64(100 + i),
			"journal_id":    []any{float64(journalID), "Bank"},
			"is_reconciled": false,
			"payment_ref":   "INV/2026/000" + string(rune('1'+i)),
			"amount":        float64(100 * (i + 1)),
			"partner_name":  "Acme Corp",
			"date":          "2026-08-01",
		})
	}
}

func sessionInvariant(t *testing.T, sess *ent.ReconciliationSession) {
	t.Helper()
	assert.Equal(t, sess.TotalLines,
		sess.AutoMatched+sess.ManuallyMatched+sess.Skipped+sess.Remaining,
		"session counters must always account for every line")
}

func TestReconciliationSession_CountersPreserveTotal(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	recon := NewReconciliation(client, fake, 0)
	ctx := context.Background()

	seedStatementLines(fake, 5, 3)
	fake.seed("account.move.line", map[string]any{
		"id":              int64(900),
		"ref":             "INV/2026/0001",
		"amount_residual": 100.0,
		"partner_id":      []any{float64(42), "Acme Corp"},
	})

	sess, err := recon.StartSession(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, sess.TotalLines)
	assert.Equal(t, 3, sess.Remaining)
	sessionInvariant(t, sess)

	sess, err = recon.Match(ctx, sess.ID, 100, 900)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.ManuallyMatched)
	assert.Equal(t, 2, sess.Remaining)
	sessionInvariant(t, sess)
	require.Len(t, sess.LearnedRules, 1, "manual match derives a learned rule")

	// The match was applied in the ERP.
	require.Len(t, fake.methods, 1)
	assert.Equal(t, "reconcile", fake.methods[0].Method)
	assert.Equal(t, []int64{100}, fake.methods[0].IDs)

	sess, err = recon.Skip(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Skipped)
	assert.Equal(t, 1, sess.Remaining)
	sessionInvariant(t, sess)

	sess, err = recon.Skip(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, sess.Remaining)
	sessionInvariant(t, sess)

	// No lines left: further progress is a transition error.
	_, err = recon.Skip(ctx, sess.ID)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	_, err = recon.Match(ctx, sess.ID, 101, 900)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	sess, err = recon.Complete(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, reconciliationsession.StatusCompleted, sess.Status)
	assert.NotNil(t, sess.CompletedAt)

	// Completed sessions take no further operations.
	_, err = recon.Skip(ctx, sess.ID)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestReconciliationExecute_AttributesAutoMatchToSession(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	recon := NewReconciliation(client, fake, 0)
	ctx := context.Background()

	seedStatementLines(fake, 5, 3)

	sess, err := recon.StartSession(ctx, 1, 5)
	require.NoError(t, err)
	require.Equal(t, 3, sess.Remaining)

	// A gated auto-reconcile executing against line 100 lands in the
	// session covering journal 5.
	out, err := recon.Execute(ctx, automation.Action{
		Name:     "reconcile_match",
		Model:    "account.bank.statement.line",
		RecordID: 100,
		Changes:  map[string]interface{}{"entry_id": int64(900)},
	})
	require.NoError(t, err)
	assert.Equal(t, true, out["reconciled"])

	sess, err = recon.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.AutoMatched)
	assert.Equal(t, 0, sess.ManuallyMatched)
	assert.Equal(t, 2, sess.Remaining)
	sessionInvariant(t, sess)
}

func TestReconciliationExecute_NoSessionStillReconciles(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	recon := NewReconciliation(client, fake, 0)
	ctx := context.Background()

	seedStatementLines(fake, 9, 1)

	out, err := recon.Execute(ctx, automation.Action{
		Name:     "reconcile_match",
		Model:    "account.bank.statement.line",
		RecordID: 100,
		Changes:  map[string]interface{}{"entry_id": int64(900)},
	})
	require.NoError(t, err)
	assert.Equal(t, true, out["reconciled"])
	require.Len(t, fake.methods, 1)
	assert.Equal(t, "reconcile", fake.methods[0].Method)
}

func TestReconciliationSession_Validation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	recon := NewReconciliation(client, newFakeERP(), 0)
	ctx := context.Background()

	var verr *services.ValidationError
	_, err := recon.StartSession(ctx, 0, 5)
	require.ErrorAs(t, err, &verr)
	_, err = recon.StartSession(ctx, 1, 0)
	require.ErrorAs(t, err, &verr)

	_, err = recon.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestReconciliationScan_OnlyHighConfidence(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	recon := NewReconciliation(client, fake, 0.90)
	ctx := context.Background()

	// An exact ref+amount pair and a line with no plausible counterpart.
	fake.seed("account.bank.statement.line",
		map[string]any{
			"id": int64(201), "journal_id": []any{float64(5), "Bank"}, "is_reconciled": false,
			"payment_ref": "INV/2026/0042", "amount": 250.0, "partner_name": "Globex", "date": "2026-08-10",
		},
		map[string]any{
			"id": int64(202), "journal_id": []any{float64(5), "Bank"}, "is_reconciled": false,
			"payment_ref": "UNKNOWN WIRE", "amount": 77.31, "partner_name": "", "date": "2026-08-10",
		},
	)
	fake.seed("account.move.line", map[string]any{
		"id": int64(901), "ref": "INV/2026/0042", "amount_residual": 250.0,
		"partner_id": []any{float64(7), "Globex"}, "reconciled": false,
		"parent_state": "posted", "account_id.reconcile": true,
	})

	results, err := recon.Scans()["scan_auto_reconcile"](ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, results, 1, "only the exact pair clears the auto threshold")
	assert.Equal(t, int64(201), results[0].RecordID)
	assert.Equal(t, "reconcile_match", results[0].ActionName)
	assert.GreaterOrEqual(t, results[0].Confidence, 0.90)
	assert.EqualValues(t, 901, results[0].ChangesMade["entry_id"])
}
