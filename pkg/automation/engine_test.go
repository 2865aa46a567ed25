package automation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/steward-ai/steward/ent/auditlog"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gateAutomation returns a fixed handler result and records Execute calls.
type gateAutomation struct {
	result   *Result
	execErr  error
	executed []Action
	scans    map[string]ScanFunc
}

func (g *gateAutomation) Type() string            { return "credit" }
func (g *gateAutomation) WatchedModels() []string { return []string{"account.move"} }
func (g *gateAutomation) Handlers() map[HandlerKey]Handler {
	return map[HandlerKey]Handler{
		{EventType: "write", Model: "account.move"}: func(context.Context, Event) (*Result, error) {
			return g.result, nil
		},
	}
}
func (g *gateAutomation) Scans() map[string]ScanFunc { return g.scans }
func (g *gateAutomation) Execute(_ context.Context, action Action) (map[string]interface{}, error) {
	g.executed = append(g.executed, action)
	if g.execErr != nil {
		return nil, g.execErr
	}
	return map[string]interface{}{"applied": true}, nil
}

func setupEngine(t *testing.T) (*Engine, *services.AuditService) {
	client, _ := util.SetupTestDatabase(t)
	audit := services.NewAuditService(client, &config.Defaults{
		ConfidenceThreshold:  0.85,
		AutoApproveThreshold: 0.95,
	})
	return NewEngine(audit, nil), audit
}

func writeEvent() Event {
	return Event{Type: "write", Model: "account.move", RecordID: 42}
}

func result(confidence float64) *Result {
	return &Result{
		Success:     true,
		ActionName:  "apply_hold",
		Model:       "account.move",
		RecordID:    42,
		Confidence:  confidence,
		ChangesMade: map[string]interface{}{"credit_hold": true},
	}
}

func TestEngine_AutoExecute(t *testing.T) {
	engine, _ := setupEngine(t)
	a := &gateAutomation{result: result(0.97)}

	outcome, err := engine.HandleEvent(context.Background(), a, writeEvent())
	require.NoError(t, err)
	assert.Equal(t, DispositionExecuted, outcome.Disposition)
	assert.Equal(t, auditlog.StatusExecuted, outcome.AuditLog.Status)
	require.NotNil(t, outcome.AuditLog.ExecutedAt)
	require.Len(t, a.executed, 1)
	assert.Equal(t, "apply_hold", a.executed[0].Name)
	assert.Equal(t, true, a.executed[0].Changes["credit_hold"])
	assert.Equal(t, true, outcome.AuditLog.OutputSnapshot["applied"])
}

func TestEngine_BoundaryThresholds(t *testing.T) {
	engine, _ := setupEngine(t)

	t.Run("exactly auto-approve threshold executes", func(t *testing.T) {
		a := &gateAutomation{result: result(0.95)}
		outcome, err := engine.HandleEvent(context.Background(), a, writeEvent())
		require.NoError(t, err)
		assert.Equal(t, DispositionExecuted, outcome.Disposition)
		assert.Len(t, a.executed, 1)
	})

	t.Run("exactly confidence threshold stays pending", func(t *testing.T) {
		a := &gateAutomation{result: result(0.85)}
		outcome, err := engine.HandleEvent(context.Background(), a, writeEvent())
		require.NoError(t, err)
		assert.Equal(t, DispositionPending, outcome.Disposition)
		assert.Equal(t, auditlog.StatusPending, outcome.AuditLog.Status)
		assert.Empty(t, a.executed)
	})
}

func TestEngine_PendingHoldsSideEffects(t *testing.T) {
	engine, _ := setupEngine(t)
	a := &gateAutomation{result: result(0.90)}

	outcome, err := engine.HandleEvent(context.Background(), a, writeEvent())
	require.NoError(t, err)
	assert.Equal(t, DispositionPending, outcome.Disposition)
	assert.Equal(t, auditlog.StatusPending, outcome.AuditLog.Status)
	// changes_made is stored for the approval replay.
	assert.Equal(t, true, outcome.AuditLog.ChangesMade["credit_hold"])
	assert.Empty(t, a.executed)
}

func TestEngine_LowConfidenceNote(t *testing.T) {
	engine, _ := setupEngine(t)
	a := &gateAutomation{result: result(0.60)}

	outcome, err := engine.HandleEvent(context.Background(), a, writeEvent())
	require.NoError(t, err)
	assert.Equal(t, DispositionNote, outcome.Disposition)
	assert.Equal(t, auditlog.StatusExecuted, outcome.AuditLog.Status)
	assert.Empty(t, outcome.AuditLog.ChangesMade)
	assert.Empty(t, a.executed)
}

func TestEngine_AuditRowCarriesSnapshots(t *testing.T) {
	engine, _ := setupEngine(t)
	ev := Event{
		Type: "write", Model: "account.move", RecordID: 42,
		Values:    map[string]interface{}{"amount_total": 1200.0},
		OldValues: map[string]interface{}{"amount_total": 800.0},
	}

	t.Run("executed row snapshots input and final output", func(t *testing.T) {
		a := &gateAutomation{result: result(0.97)}
		outcome, err := engine.HandleEvent(context.Background(), a, ev)
		require.NoError(t, err)
		require.Equal(t, DispositionExecuted, outcome.Disposition)

		values, ok := outcome.AuditLog.InputSnapshot["values"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 1200.0, values["amount_total"])
		old, ok := outcome.AuditLog.InputSnapshot["old_values"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 800.0, old["amount_total"])
		// Execution output replaces the proposed changes.
		assert.Equal(t, true, outcome.AuditLog.OutputSnapshot["applied"])
	})

	t.Run("pending row snapshots the proposed changes", func(t *testing.T) {
		a := &gateAutomation{result: result(0.90)}
		outcome, err := engine.HandleEvent(context.Background(), a, ev)
		require.NoError(t, err)
		require.Equal(t, DispositionPending, outcome.Disposition)
		require.NotNil(t, outcome.AuditLog.InputSnapshot)
		assert.Equal(t, true, outcome.AuditLog.OutputSnapshot["credit_hold"])
	})

	t.Run("note row snapshots the reasoning", func(t *testing.T) {
		res := result(0.60)
		res.Reasoning = "amount change is routine"
		a := &gateAutomation{result: res}
		outcome, err := engine.HandleEvent(context.Background(), a, ev)
		require.NoError(t, err)
		require.Equal(t, DispositionNote, outcome.Disposition)
		assert.Equal(t, "amount change is routine", outcome.AuditLog.OutputSnapshot["note"])
	})
}

func TestEngine_ScanRowsCarryOutputSnapshot(t *testing.T) {
	engine, _ := setupEngine(t)
	a := &gateAutomation{
		scans: map[string]ScanFunc{
			"scan_overdue": func(context.Context, time.Time) ([]*Result, error) {
				// No proposed changes at all: the snapshot must still be set.
				return []*Result{
					{Success: true, ActionName: "scan_overdue", Model: "account.move", RecordID: 10, Confidence: 0.9},
				}, nil
			},
		},
	}

	outcomes, err := engine.RunScan(context.Background(), a, "scan_overdue", time.Now())
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Equal(t, DispositionPending, outcomes[0].Disposition)
	assert.NotNil(t, outcomes[0].AuditLog.OutputSnapshot)
}

func TestEngine_NeedsApprovalOverridesConfidence(t *testing.T) {
	engine, _ := setupEngine(t)
	res := result(0.99)
	res.NeedsApproval = true
	a := &gateAutomation{result: res}

	outcome, err := engine.HandleEvent(context.Background(), a, writeEvent())
	require.NoError(t, err)
	assert.Equal(t, DispositionPending, outcome.Disposition)
	assert.Empty(t, a.executed)
}

func TestEngine_FailedResult(t *testing.T) {
	engine, _ := setupEngine(t)
	a := &gateAutomation{result: &Result{
		ActionName: "apply_hold",
		Model:      "account.move",
		RecordID:   42,
		Error:      "partner has no credit profile",
	}}

	outcome, err := engine.HandleEvent(context.Background(), a, writeEvent())
	require.NoError(t, err)
	assert.Equal(t, DispositionFailed, outcome.Disposition)
	assert.Equal(t, auditlog.StatusFailed, outcome.AuditLog.Status)
	require.NotNil(t, outcome.AuditLog.ErrorMessage)
	assert.Contains(t, *outcome.AuditLog.ErrorMessage, "credit profile")
}

func TestEngine_ExecutionFailureMarksFailed(t *testing.T) {
	engine, _ := setupEngine(t)
	a := &gateAutomation{result: result(0.99), execErr: errors.New("erp returned 400")}

	outcome, err := engine.HandleEvent(context.Background(), a, writeEvent())
	require.NoError(t, err)
	assert.Equal(t, DispositionFailed, outcome.Disposition)
	assert.Equal(t, auditlog.StatusFailed, outcome.AuditLog.Status)
	// The audit row was written before the side effect was attempted.
	require.Len(t, a.executed, 1)
}

func TestEngine_NoHandler(t *testing.T) {
	engine, _ := setupEngine(t)
	a := &gateAutomation{result: result(0.99)}

	outcome, err := engine.HandleEvent(context.Background(), a,
		Event{Type: "unlink", Model: "account.move", RecordID: 1})
	require.NoError(t, err)
	assert.Equal(t, DispositionNoHandler, outcome.Disposition)
	assert.Nil(t, outcome.AuditLog)
}

func TestEngine_DisabledByRule(t *testing.T) {
	engine, audit := setupEngine(t)
	_, err := audit.UpsertRule(context.Background(), "credit", "", false, 0.85, 0.95, nil)
	require.NoError(t, err)

	a := &gateAutomation{result: result(0.99)}
	outcome, err := engine.HandleEvent(context.Background(), a, writeEvent())
	require.NoError(t, err)
	assert.Equal(t, DispositionDisabled, outcome.Disposition)
	assert.Empty(t, a.executed)
}

func TestEngine_PerRuleThresholdOverride(t *testing.T) {
	engine, audit := setupEngine(t)
	// Stricter auto-approve for this action.
	_, err := audit.UpsertRule(context.Background(), "credit", "apply_hold", true, 0.85, 0.99, nil)
	require.NoError(t, err)

	a := &gateAutomation{result: result(0.97)}
	outcome, err := engine.HandleEvent(context.Background(), a, writeEvent())
	require.NoError(t, err)
	assert.Equal(t, DispositionPending, outcome.Disposition)
	assert.Empty(t, a.executed)
}

func TestEngine_RunScan_Idempotent(t *testing.T) {
	engine, _ := setupEngine(t)
	day := time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC)

	a := &gateAutomation{
		scans: map[string]ScanFunc{
			"scan_overdue": func(context.Context, time.Time) ([]*Result, error) {
				return []*Result{
					{Success: true, ActionName: "scan_overdue", Model: "account.move", RecordID: 10, Confidence: 0.9},
					{Success: true, ActionName: "scan_overdue", Model: "account.move", RecordID: 11, Confidence: 0.9},
				}, nil
			},
		},
	}

	first, err := engine.RunScan(context.Background(), a, "scan_overdue", day)
	require.NoError(t, err)
	require.Len(t, first, 2)
	for _, o := range first {
		assert.Equal(t, DispositionPending, o.Disposition)
	}

	// Second run the same day: both targets skipped, no new audit rows.
	second, err := engine.RunScan(context.Background(), a, "scan_overdue", day)
	require.NoError(t, err)
	require.Len(t, second, 2)
	for _, o := range second {
		assert.Equal(t, DispositionSkipped, o.Disposition)
		assert.Nil(t, o.AuditLog)
	}

	// Next day the targets are fresh again.
	third, err := engine.RunScan(context.Background(), a, "scan_overdue", day.AddDate(0, 0, 1))
	require.NoError(t, err)
	for _, o := range third {
		assert.Equal(t, DispositionPending, o.Disposition)
	}
}

func TestEngine_RunScan_UnknownScan(t *testing.T) {
	engine, _ := setupEngine(t)
	a := &gateAutomation{}
	_, err := engine.RunScan(context.Background(), a, "scan_missing", time.Now())
	assert.Error(t, err)
}

func TestEngine_ExecuteApproved(t *testing.T) {
	engine, audit := setupEngine(t)
	ctx := context.Background()
	a := &gateAutomation{result: result(0.90)}

	outcome, err := engine.HandleEvent(ctx, a, writeEvent())
	require.NoError(t, err)
	require.Equal(t, DispositionPending, outcome.Disposition)

	t.Run("replay requires an approved row", func(t *testing.T) {
		_, err := engine.ExecuteApproved(ctx, a, outcome.AuditLog)
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})

	approved, err := audit.Decide(ctx, outcome.AuditLog.ID, true, "cfo@example.com")
	require.NoError(t, err)

	executed, err := engine.ExecuteApproved(ctx, a, approved)
	require.NoError(t, err)
	assert.Equal(t, auditlog.StatusExecuted, executed.Status)
	require.Len(t, a.executed, 1)
	assert.Equal(t, true, a.executed[0].Changes["credit_hold"])

	t.Run("apply failure marks the row failed", func(t *testing.T) {
		failing := &gateAutomation{result: result(0.90), execErr: errors.New("erp unreachable")}
		o, err := engine.HandleEvent(ctx, failing, writeEvent())
		require.NoError(t, err)
		approved, err := audit.Decide(ctx, o.AuditLog.ID, true, "cfo@example.com")
		require.NoError(t, err)

		failed, err := engine.ExecuteApproved(ctx, failing, approved)
		require.NoError(t, err)
		assert.Equal(t, auditlog.StatusFailed, failed.Status)
	})
}
