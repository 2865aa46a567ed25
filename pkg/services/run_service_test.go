package services

import (
	"context"
	"testing"
	"time"

	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/ent/agentstep"
	"github.com/steward-ai/steward/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunService_CreateAndList(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewRunService(client)
	ctx := context.Background()

	run, err := svc.CreateRun(ctx, CreateRunInput{
		AgentType:    "procure_to_pay",
		TriggerType:  "webhook",
		TriggerID:    "evt-1",
		InitialState: map[string]interface{}{"bill_id": 77.0},
	})
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusPending, run.Status)
	assert.Nil(t, run.StartedAt)

	_, err = svc.CreateRun(ctx, CreateRunInput{AgentType: "collection", TriggerType: "scheduler"})
	require.NoError(t, err)

	byType, err := svc.ListRuns(ctx, RunFilter{AgentType: "procure_to_pay"})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, run.ID, byType[0].ID)

	pending, err := svc.ListRuns(ctx, RunFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	t.Run("missing agent type rejected", func(t *testing.T) {
		_, err := svc.CreateRun(ctx, CreateRunInput{TriggerType: "api"})
		assert.True(t, IsValidationError(err))
	})
}

func TestRunService_StepBookkeeping(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewRunService(client)
	ctx := context.Background()

	run, err := svc.CreateRun(ctx, CreateRunInput{AgentType: "collection", TriggerType: "api"})
	require.NoError(t, err)

	_, err = svc.MarkRunning(ctx, run.ID)
	require.NoError(t, err)

	for i, name := range []string{"assess_debtor", "select_strategy", "send_notice"} {
		step, err := svc.RecordStep(ctx, RecordStepInput{
			RunID:          run.ID,
			StepName:       name,
			StepIndex:      i,
			InputSnapshot:  map[string]interface{}{"step": name},
			OutputSnapshot: map[string]interface{}{"ok": true},
			Duration:       25 * time.Millisecond,
			Tokens:         100,
		})
		require.NoError(t, err)
		assert.Equal(t, agentstep.StatusCompleted, step.Status)

		_, err = svc.RecordDecision(ctx, RecordDecisionInput{
			StepID:            step.ID,
			RunID:             run.ID,
			PromptFingerprint: "fp-" + name,
			Confidence:        0.9,
			TokensIn:          60,
			TokensOut:         40,
			ToolsInvoked:      []string{"erp_search"},
		})
		require.NoError(t, err)
	}

	detail, err := svc.GetRunDetail(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, detail.Edges.Steps, 3)
	assert.Equal(t, 3, detail.TotalSteps)
	assert.Equal(t, 300, detail.TokenUsage)
	require.NotNil(t, detail.CurrentStep)
	assert.Equal(t, "send_notice", *detail.CurrentStep)

	// step_index values are 0..total_steps-1 in order.
	for i, step := range detail.Edges.Steps {
		assert.Equal(t, i, step.StepIndex)
		require.Len(t, step.Edges.Decisions, 1)
	}

	// Duplicate step_index within a run violates the unique index.
	_, err = svc.RecordStep(ctx, RecordStepInput{
		RunID:     run.ID,
		StepName:  "send_notice_again",
		StepIndex: 2,
	})
	assert.Error(t, err)
}

func TestRunService_Lifecycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewRunService(client)
	ctx := context.Background()

	t.Run("complete", func(t *testing.T) {
		run, err := svc.CreateRun(ctx, CreateRunInput{AgentType: "collection", TriggerType: "api"})
		require.NoError(t, err)
		_, err = svc.MarkRunning(ctx, run.ID)
		require.NoError(t, err)

		done, err := svc.Complete(ctx, run.ID, map[string]interface{}{"notified": true})
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusCompleted, done.Status)
		require.NotNil(t, done.CompletedAt)
		assert.Equal(t, true, done.FinalState["notified"])
	})

	t.Run("fail preserves partial state", func(t *testing.T) {
		run, err := svc.CreateRun(ctx, CreateRunInput{AgentType: "collection", TriggerType: "api"})
		require.NoError(t, err)

		failed, err := svc.Fail(ctx, run.ID, "Step limit exceeded: 25", map[string]interface{}{"last_step": "po_match"})
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusFailed, failed.Status)
		require.NotNil(t, failed.ErrorMessage)
		assert.Contains(t, *failed.ErrorMessage, "Step limit")
		assert.Equal(t, "po_match", failed.FinalState["last_step"])
	})

	t.Run("cancel terminal run rejected", func(t *testing.T) {
		run, err := svc.CreateRun(ctx, CreateRunInput{AgentType: "collection", TriggerType: "api"})
		require.NoError(t, err)
		_, err = svc.Complete(ctx, run.ID, nil)
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, run.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestRunService_SuspendResume(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewRunService(client)
	ctx := context.Background()

	run, err := svc.CreateRun(ctx, CreateRunInput{AgentType: "procure_to_pay", TriggerType: "webhook"})
	require.NoError(t, err)
	_, err = svc.MarkRunning(ctx, run.ID)
	require.NoError(t, err)

	timeout := time.Now().Add(72 * time.Hour)
	susp, err := svc.Suspend(ctx, run.ID, "awaiting_bill_approval", "route_for_approval", timeout,
		map[string]interface{}{"bill_id": 9.0, "amount": 1200.0})
	require.NoError(t, err)
	assert.Nil(t, susp.ResumedAt)

	suspended, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusSuspended, suspended.Status)
	require.NotNil(t, suspended.CurrentStep)
	assert.Equal(t, "route_for_approval", *suspended.CurrentStep)
	assert.Equal(t, 9.0, suspended.FinalState["bill_id"])

	// A second open suspension on the same run is rejected.
	_, err = svc.Suspend(ctx, run.ID, "awaiting_payment", "route_for_approval", timeout, nil)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Resume merges event data over the frozen state and re-enqueues.
	resumed, err := svc.Resume(ctx, run.ID, map[string]interface{}{"approved": true, "amount": 1150.0})
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusPending, resumed.Status)
	assert.Equal(t, true, resumed.FinalState["approved"])
	assert.Equal(t, 1150.0, resumed.FinalState["amount"])
	assert.Equal(t, 9.0, resumed.FinalState["bill_id"])
	require.NotNil(t, resumed.CurrentStep)
	assert.Equal(t, "route_for_approval", *resumed.CurrentStep)

	closed, err := client.AgentSuspension.Get(ctx, susp.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.ResumedAt)
	assert.Equal(t, true, closed.ResumeData["approved"])

	// Resuming a non-suspended run is an invalid transition.
	_, err = svc.Resume(ctx, run.ID, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRunService_ExpireSuspensions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewRunService(client)
	ctx := context.Background()

	expired, err := svc.CreateRun(ctx, CreateRunInput{AgentType: "procure_to_pay", TriggerType: "webhook"})
	require.NoError(t, err)
	_, err = svc.Suspend(ctx, expired.ID, "awaiting_bill_approval", "route_for_approval",
		time.Now().Add(-time.Minute), nil)
	require.NoError(t, err)

	alive, err := svc.CreateRun(ctx, CreateRunInput{AgentType: "procure_to_pay", TriggerType: "webhook"})
	require.NoError(t, err)
	_, err = svc.Suspend(ctx, alive.ID, "awaiting_bill_approval", "route_for_approval",
		time.Now().Add(time.Hour), nil)
	require.NoError(t, err)

	failed, err := svc.ExpireSuspensions(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, expired.ID, failed[0])

	run, err := svc.GetRun(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, run.Status)
	require.NotNil(t, run.ErrorMessage)
	assert.Equal(t, "suspension_timeout", *run.ErrorMessage)

	// The expired suspension row stays open as the record of the wait.
	susp, err := svc.OpenSuspension(ctx, expired.ID)
	require.NoError(t, err)
	assert.Nil(t, susp.ResumedAt)

	// The healthy run is untouched.
	healthy, err := svc.GetRun(ctx, alive.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusSuspended, healthy.Status)
}
