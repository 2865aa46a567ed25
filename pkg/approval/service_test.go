package approval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent/auditlog"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

// holdAutomation records Execute calls and can fail them.
type holdAutomation struct {
	executed []automation.Action
	execErr  error
}

func (h *holdAutomation) Type() string                                      { return "credit" }
func (h *holdAutomation) WatchedModels() []string                           { return []string{"sale.order"} }
func (h *holdAutomation) Handlers() map[automation.HandlerKey]automation.Handler { return nil }
func (h *holdAutomation) Scans() map[string]automation.ScanFunc             { return nil }
func (h *holdAutomation) Execute(_ context.Context, action automation.Action) (map[string]interface{}, error) {
	h.executed = append(h.executed, action)
	if h.execErr != nil {
		return nil, h.execErr
	}
	return map[string]interface{}{"hold_placed": true}, nil
}

func setupApproval(t *testing.T, a automation.Automation) (*Service, *services.AuditService) {
	client, _ := util.SetupTestDatabase(t)
	audit := services.NewAuditService(client, &config.Defaults{
		ConfidenceThreshold:  0.85,
		AutoApproveThreshold: 0.95,
	})
	registry := automation.NewRegistry()
	require.NoError(t, registry.Register(a))
	svc := NewService(audit, registry, automation.NewEngine(audit, nil), nil)
	return svc, audit
}

func pendingLog(t *testing.T, audit *services.AuditService) string {
	t.Helper()
	log, err := audit.CreateLog(context.Background(), services.CreateAuditInput{
		AutomationType: "credit",
		ActionName:     "place_credit_hold",
		Model:          "sale.order",
		RecordID:       42,
		Confidence:     0.90,
		Status:         auditlog.StatusPending,
		Reasoning:      "critical tier without a hold",
		ChangesMade:    map[string]interface{}{"credit_hold": true},
	})
	require.NoError(t, err)
	return log.ID
}

func TestDecide_ApproveReplaysAction(t *testing.T) {
	a := &holdAutomation{}
	svc, audit := setupApproval(t, a)
	id := pendingLog(t, audit)

	log, err := svc.Decide(context.Background(), id, true, "cfo@example.com")
	require.NoError(t, err)
	assert.Equal(t, auditlog.StatusExecuted, log.Status)
	require.NotNil(t, log.ExecutedAt)
	assert.Equal(t, true, log.OutputSnapshot["hold_placed"])

	require.Len(t, a.executed, 1)
	assert.Equal(t, "place_credit_hold", a.executed[0].Name)
	assert.Equal(t, true, a.executed[0].Changes["credit_hold"])
	require.NotNil(t, log.ApprovedBy)
	assert.Equal(t, "cfo@example.com", *log.ApprovedBy)
}

func TestDecide_RejectLeavesERPUntouched(t *testing.T) {
	a := &holdAutomation{}
	svc, audit := setupApproval(t, a)
	id := pendingLog(t, audit)

	log, err := svc.Decide(context.Background(), id, false, "cfo@example.com")
	require.NoError(t, err)
	assert.Equal(t, auditlog.StatusRejected, log.Status)
	assert.Empty(t, a.executed)
}

func TestDecide_ReplayFailureMarksFailed(t *testing.T) {
	a := &holdAutomation{execErr: errors.New("erp unavailable")}
	svc, audit := setupApproval(t, a)
	id := pendingLog(t, audit)

	log, err := svc.Decide(context.Background(), id, true, "cfo@example.com")
	require.NoError(t, err, "a failed replay is recorded on the row, not returned")
	assert.Equal(t, auditlog.StatusFailed, log.Status)
	require.NotNil(t, log.ErrorMessage)
	assert.Contains(t, *log.ErrorMessage, "erp unavailable")
}

func TestDecide_NonPendingIsInvalidTransition(t *testing.T) {
	a := &holdAutomation{}
	svc, audit := setupApproval(t, a)
	id := pendingLog(t, audit)

	_, err := svc.Decide(context.Background(), id, false, "cfo@example.com")
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), id, true, "cfo@example.com")
	require.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestDecide_UnknownLog(t *testing.T) {
	svc, _ := setupApproval(t, &holdAutomation{})
	_, err := svc.Decide(context.Background(), "7b0d2f3e-0000-0000-0000-000000000000", true, "cfo@example.com")
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestDecide_MissingApprover(t *testing.T) {
	svc, audit := setupApproval(t, &holdAutomation{})
	id := pendingLog(t, audit)

	var verr *services.ValidationError
	_, err := svc.Decide(context.Background(), id, true, "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "approved_by", verr.Field)
}

func TestListPending(t *testing.T) {
	svc, audit := setupApproval(t, &holdAutomation{})
	first := pendingLog(t, audit)
	second := pendingLog(t, audit)

	queue, err := svc.ListPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, first, queue[0].ID, "oldest first")
	assert.Equal(t, second, queue[1].ID)
}
