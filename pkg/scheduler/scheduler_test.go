package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

// scanCounter counts scan invocations per scan name.
type scanCounter struct {
	counts map[string]int
}

func (c *scanCounter) Type() string            { return "crm" }
func (c *scanCounter) WatchedModels() []string { return nil }
func (c *scanCounter) Handlers() map[automation.HandlerKey]automation.Handler {
	return nil
}
func (c *scanCounter) Scans() map[string]automation.ScanFunc {
	count := func(name string) automation.ScanFunc {
		return func(context.Context, time.Time) ([]*automation.Result, error) {
			c.counts[name]++
			return nil, nil
		}
	}
	return map[string]automation.ScanFunc{
		"scan_stale_leads":  count("scan_stale_leads"),
		"scan_daily_digest": count("scan_daily_digest"),
	}
}
func (c *scanCounter) Execute(context.Context, automation.Action) (map[string]interface{}, error) {
	return nil, nil
}

func setupScheduler(t *testing.T, autos ...automation.Automation) (*Scheduler, *ent.Client, *services.RunService) {
	client, _ := util.SetupTestDatabase(t)
	audit := services.NewAuditService(client, &config.Defaults{
		ConfidenceThreshold:  0.85,
		AutoApproveThreshold: 0.95,
	})
	registry := automation.NewRegistry()
	for _, a := range autos {
		require.NoError(t, registry.Register(a))
	}
	runs := services.NewRunService(client)
	s := New(config.DefaultSchedulerConfig(), registry, automation.NewEngine(audit, nil), nil, runs)
	return s, client, runs
}

func TestRunDailyScans_SkipsDedicatedCadences(t *testing.T) {
	counter := &scanCounter{counts: map[string]int{}}
	s, _, _ := setupScheduler(t, counter)

	s.RunDailyScans(context.Background())

	assert.Equal(t, 1, counter.counts["scan_stale_leads"])
	assert.Zero(t, counter.counts["scan_daily_digest"], "digest runs on its own cadence")
}

func TestSweepSuspensions_FailsTimedOutRuns(t *testing.T) {
	s, _, runs := setupScheduler(t)
	ctx := context.Background()

	run, err := runs.CreateRun(ctx, services.CreateRunInput{
		AgentType:   "procure_to_pay",
		TriggerType: "webhook",
	})
	require.NoError(t, err)
	_, err = runs.MarkRunning(ctx, run.ID)
	require.NoError(t, err)
	_, err = runs.Suspend(ctx, run.ID, "awaiting_bill_approval", "request_approval",
		time.Now().Add(-time.Minute), map[string]interface{}{"bill_id": 7.0})
	require.NoError(t, err)

	s.SweepSuspensions(ctx)

	reloaded, err := runs.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Equal(t, "suspension_timeout", *reloaded.ErrorMessage)
}

func TestSweepSuspensions_LeavesLiveSuspensionsAlone(t *testing.T) {
	s, _, runs := setupScheduler(t)
	ctx := context.Background()

	run, err := runs.CreateRun(ctx, services.CreateRunInput{
		AgentType:   "collection",
		TriggerType: "api",
	})
	require.NoError(t, err)
	_, err = runs.MarkRunning(ctx, run.ID)
	require.NoError(t, err)
	_, err = runs.Suspend(ctx, run.ID, "awaiting_payment", "wait", time.Now().Add(time.Hour), nil)
	require.NoError(t, err)

	s.SweepSuspensions(ctx)

	reloaded, err := runs.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusSuspended, reloaded.Status)
}

func TestStart_RejectsBadCadence(t *testing.T) {
	counter := &scanCounter{counts: map[string]int{}}
	s, _, _ := setupScheduler(t, counter)
	s.cfg = &config.SchedulerConfig{OverdueScan: "not a cron spec"}

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily_scans")
}
