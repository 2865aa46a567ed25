package services

import (
	"context"
	"testing"
	"time"

	"github.com/steward-ai/steward/ent/auditlog"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() *config.Defaults {
	return &config.Defaults{
		ConfidenceThreshold:  0.85,
		AutoApproveThreshold: 0.95,
	}
}

func TestAuditService_CreateLog(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAuditService(client, testDefaults())
	ctx := context.Background()

	log, err := svc.CreateLog(ctx, CreateAuditInput{
		AutomationType: "accounting",
		ActionName:     "validate_invoice",
		Model:          "account.move",
		RecordID:       101,
		Confidence:     0.91,
		Reasoning:      "totals match the purchase order",
		OutputSnapshot: map[string]interface{}{"state": "posted"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, log.ID)
	assert.Equal(t, auditlog.StatusPending, log.Status)
	assert.Nil(t, log.ExecutedAt)

	t.Run("executed status stamps executed_at", func(t *testing.T) {
		log, err := svc.CreateLog(ctx, CreateAuditInput{
			AutomationType: "accounting",
			ActionName:     "validate_invoice",
			Model:          "account.move",
			RecordID:       102,
			Status:         auditlog.StatusExecuted,
			Confidence:     0.97,
		})
		require.NoError(t, err)
		require.NotNil(t, log.ExecutedAt)
	})

	t.Run("rejects out-of-range confidence", func(t *testing.T) {
		_, err := svc.CreateLog(ctx, CreateAuditInput{
			AutomationType: "accounting",
			ActionName:     "validate_invoice",
			Model:          "account.move",
			RecordID:       103,
			Confidence:     1.2,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing automation type", func(t *testing.T) {
		_, err := svc.CreateLog(ctx, CreateAuditInput{
			ActionName: "validate_invoice",
			Model:      "account.move",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestAuditService_DecideAndExecute(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAuditService(client, testDefaults())
	ctx := context.Background()

	log, err := svc.CreateLog(ctx, CreateAuditInput{
		AutomationType: "credit",
		ActionName:     "apply_hold",
		Model:          "res.partner",
		RecordID:       7,
		Confidence:     0.88,
		ChangesMade:    map[string]interface{}{"credit_hold": true},
	})
	require.NoError(t, err)

	approved, err := svc.Decide(ctx, log.ID, true, "cfo@example.com")
	require.NoError(t, err)
	assert.Equal(t, auditlog.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "cfo@example.com", *approved.ApprovedBy)

	// A second decision on the same row is an invalid transition.
	_, err = svc.Decide(ctx, log.ID, false, "cfo@example.com")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	executed, err := svc.MarkExecuted(ctx, log.ID, map[string]interface{}{"credit_hold": true})
	require.NoError(t, err)
	assert.Equal(t, auditlog.StatusExecuted, executed.Status)
	require.NotNil(t, executed.ExecutedAt)
}

func TestAuditService_Reject(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAuditService(client, testDefaults())
	ctx := context.Background()

	log, err := svc.CreateLog(ctx, CreateAuditInput{
		AutomationType: "dedup",
		ActionName:     "merge_partners",
		Model:          "res.partner",
		RecordID:       12,
		Confidence:     0.86,
	})
	require.NoError(t, err)

	rejected, err := svc.Decide(ctx, log.ID, false, "ops@example.com")
	require.NoError(t, err)
	assert.Equal(t, auditlog.StatusRejected, rejected.Status)

	// A rejected row never executes.
	_, err = svc.MarkExecuted(ctx, log.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAuditService_MarkFailed(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAuditService(client, testDefaults())
	ctx := context.Background()

	log, err := svc.CreateLog(ctx, CreateAuditInput{
		AutomationType: "accounting",
		ActionName:     "post_invoice",
		Model:          "account.move",
		RecordID:       55,
		Confidence:     0.96,
	})
	require.NoError(t, err)

	failed, err := svc.MarkFailed(ctx, log.ID, "erp returned 400: invalid journal")
	require.NoError(t, err)
	assert.Equal(t, auditlog.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "invalid journal")
}

func TestAuditService_ResolveRule(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAuditService(client, testDefaults())
	ctx := context.Background()

	t.Run("defaults when no rule exists", func(t *testing.T) {
		rule, err := svc.ResolveRule(ctx, "accounting", "validate_invoice")
		require.NoError(t, err)
		assert.True(t, rule.Enabled)
		assert.Equal(t, 0.85, rule.ConfidenceThreshold)
		assert.Equal(t, 0.95, rule.AutoApproveThreshold)
	})

	// Automation-wide row.
	_, err := svc.UpsertRule(ctx, "accounting", "", true, 0.80, 0.90, nil)
	require.NoError(t, err)

	t.Run("automation-wide rule applies to any action", func(t *testing.T) {
		rule, err := svc.ResolveRule(ctx, "accounting", "validate_invoice")
		require.NoError(t, err)
		assert.Equal(t, 0.80, rule.ConfidenceThreshold)
		assert.Equal(t, 0.90, rule.AutoApproveThreshold)
	})

	// Exact action override wins over the automation-wide row.
	_, err = svc.UpsertRule(ctx, "accounting", "validate_invoice", false, 0.70, 0.99, map[string]interface{}{"journal": "BNK1"})
	require.NoError(t, err)

	t.Run("exact action rule wins", func(t *testing.T) {
		rule, err := svc.ResolveRule(ctx, "accounting", "validate_invoice")
		require.NoError(t, err)
		assert.False(t, rule.Enabled)
		assert.Equal(t, 0.70, rule.ConfidenceThreshold)
		assert.Equal(t, 0.99, rule.AutoApproveThreshold)
		assert.Equal(t, "BNK1", rule.Config["journal"])
	})

	t.Run("other actions keep the automation-wide rule", func(t *testing.T) {
		rule, err := svc.ResolveRule(ctx, "accounting", "post_invoice")
		require.NoError(t, err)
		assert.True(t, rule.Enabled)
		assert.Equal(t, 0.80, rule.ConfidenceThreshold)
	})

	t.Run("inverted thresholds rejected", func(t *testing.T) {
		_, err := svc.UpsertRule(ctx, "credit", "", true, 0.95, 0.85, nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestAuditService_ScanIdempotency(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAuditService(client, testDefaults())
	ctx := context.Background()

	day := time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC)

	logged, err := svc.ScanAlreadyLogged(ctx, "credit", "scan_overdue", "account.move", 300, day)
	require.NoError(t, err)
	assert.False(t, logged)

	_, err = svc.CreateLog(ctx, CreateAuditInput{
		AutomationType: "credit",
		ActionName:     "scan_overdue",
		Model:          "account.move",
		RecordID:       300,
		Confidence:     0.9,
		ScanDay:        &day,
	})
	require.NoError(t, err)

	// Same day, any time of day: already logged.
	laterSameDay := day.Add(9 * time.Hour)
	logged, err = svc.ScanAlreadyLogged(ctx, "credit", "scan_overdue", "account.move", 300, laterSameDay)
	require.NoError(t, err)
	assert.True(t, logged)

	// Next day: fresh.
	logged, err = svc.ScanAlreadyLogged(ctx, "credit", "scan_overdue", "account.move", 300, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, logged)

	// Different target record the same day: fresh.
	logged, err = svc.ScanAlreadyLogged(ctx, "credit", "scan_overdue", "account.move", 301, day)
	require.NoError(t, err)
	assert.False(t, logged)
}

func TestAuditService_ListLogs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAuditService(client, testDefaults())
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		_, err := svc.CreateLog(ctx, CreateAuditInput{
			AutomationType: "accounting",
			ActionName:     "validate_invoice",
			Model:          "account.move",
			RecordID:       i,
			Confidence:     0.9,
		})
		require.NoError(t, err)
	}
	_, err := svc.CreateLog(ctx, CreateAuditInput{
		AutomationType: "credit",
		ActionName:     "apply_hold",
		Model:          "res.partner",
		RecordID:       9,
		Status:         auditlog.StatusExecuted,
		Confidence:     0.97,
	})
	require.NoError(t, err)

	byType, err := svc.ListLogs(ctx, AuditFilter{AutomationType: "accounting"})
	require.NoError(t, err)
	assert.Len(t, byType, 3)

	byStatus, err := svc.ListLogs(ctx, AuditFilter{Status: "executed"})
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	pending, err := svc.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
	// Approval queue is oldest first.
	assert.Equal(t, int64(1), pending[0].RecordID)
}
