package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/test/util"
)

type noopExecutor struct{}

func (noopExecutor) Execute(context.Context, *ent.AgentRun) *agentgraph.RunOutcome {
	return &agentgraph.RunOutcome{Kind: agentgraph.OutcomeCompleted}
}

func createRunningRun(t *testing.T, client *ent.Client, podID string, heartbeat *time.Time) *ent.AgentRun {
	t.Helper()
	create := client.AgentRun.Create().
		SetID(uuid.NewString()).
		SetAgentType("procure_to_pay").
		SetTriggerType("webhook").
		SetStatus(agentrun.StatusRunning).
		SetPodID(podID).
		SetStartedAt(time.Now().Add(-time.Hour))
	if heartbeat != nil {
		create.SetLastHeartbeatAt(*heartbeat)
	}
	run, err := create.Save(context.Background())
	require.NoError(t, err)
	return run
}

func TestDetectOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	cfg := config.DefaultQueueConfig()
	cfg.OrphanThreshold = time.Minute
	pool := NewWorkerPool("pod-self", client, cfg, noopExecutor{}, nil)

	stale := time.Now().Add(-10 * time.Minute)
	fresh := time.Now()

	orphan := createRunningRun(t, client, "pod-dead", &stale)
	neverBeat := createRunningRun(t, client, "pod-silent", nil)
	healthy := createRunningRun(t, client, "pod-other", &fresh)
	ownRun := createRunningRun(t, client, "pod-self", &stale)

	recovered, err := pool.detectOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, recovered)

	got, err := client.AgentRun.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "orphaned")
	assert.Contains(t, *got.ErrorMessage, "pod-dead")
	assert.NotNil(t, got.CompletedAt)

	got, err = client.AgentRun.Get(ctx, neverBeat.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, got.Status)

	// Fresh heartbeat: untouched.
	got, err = client.AgentRun.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusRunning, got.Status)

	// This pod's own runs are never swept by the periodic scan.
	got, err = client.AgentRun.Get(ctx, ownRun.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusRunning, got.Status)

	_, total := pool.orphanState.snapshot()
	assert.Equal(t, 0, total) // detectOrphans itself does not record; the loop does
}

func TestCleanupStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	cfg := config.DefaultQueueConfig()
	pool := NewWorkerPool("pod-reborn", client, cfg, noopExecutor{}, nil)

	stale := time.Now().Add(-time.Hour)
	mine := createRunningRun(t, client, "pod-reborn", &stale)
	theirs := createRunningRun(t, client, "pod-alive", &stale)

	require.NoError(t, pool.cleanupStartupOrphans(ctx))

	got, err := client.AgentRun.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "restarted mid-run")

	got, err = client.AgentRun.Get(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusRunning, got.Status)

	_, recovered := pool.orphanState.snapshot()
	assert.Equal(t, 1, recovered)
}
