package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/steward-ai/steward/ent/agentrun"
)

// orphanState tracks orphan detection metrics for health reporting.
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

func (s *orphanState) record(scanTime time.Time, recovered int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastScan = scanTime
	s.recovered += recovered
}

func (s *orphanState) snapshot() (time.Time, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastScan, s.recovered
}

// runOrphanDetection periodically sweeps for runs whose owning pod stopped
// heartbeating and marks them failed so their work is visibly lost rather
// than silently stuck in running.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	slog.Info("Orphan detection started",
		"interval", p.config.OrphanDetectionInterval,
		"threshold", p.config.OrphanThreshold)

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			recovered, err := p.detectOrphans(ctx)
			if err != nil {
				slog.Error("Orphan detection sweep failed", "error", err)
			}
			p.orphanState.record(time.Now(), recovered)
		}
	}
}

// detectOrphans marks running runs with stale heartbeats as failed.
// Runs on this pod are skipped: their heartbeats are our own responsibility
// and a local stall is better diagnosed than force-failed.
func (p *WorkerPool) detectOrphans(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.AgentRun.Query().
		Where(
			agentrun.StatusEQ(agentrun.StatusRunning),
			agentrun.Or(
				agentrun.PodIDNEQ(p.podID),
				agentrun.PodIDIsNil(),
			),
			agentrun.Or(
				agentrun.LastHeartbeatAtLT(cutoff),
				agentrun.LastHeartbeatAtIsNil(),
			),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("querying orphaned runs: %w", err)
	}

	recovered := 0
	for _, run := range orphans {
		heartbeat := "never"
		if run.LastHeartbeatAt != nil {
			heartbeat = run.LastHeartbeatAt.Format(time.RFC3339)
		}
		ownerPod := "unknown"
		if run.PodID != nil {
			ownerPod = *run.PodID
		}
		reason := fmt.Sprintf("orphaned: pod %s stopped heartbeating (last heartbeat %s)",
			ownerPod, heartbeat)

		// Conditional update: only fail the run if it is still running,
		// so a pod that comes back and finishes wins the race.
		n, err := p.client.AgentRun.Update().
			Where(
				agentrun.ID(run.ID),
				agentrun.StatusEQ(agentrun.StatusRunning),
			).
			SetStatus(agentrun.StatusFailed).
			SetErrorMessage(reason).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to mark orphaned run", "run_id", run.ID, "error", err)
			continue
		}
		if n > 0 {
			slog.Warn("Recovered orphaned run",
				"run_id", run.ID, "agent_type", run.AgentType, "owner_pod", ownerPod)
			recovered++
		}
	}

	return recovered, nil
}

// cleanupStartupOrphans fails runs still marked running under this pod ID.
// They belong to a previous incarnation of this pod that died mid-run.
func (p *WorkerPool) cleanupStartupOrphans(ctx context.Context) error {
	n, err := p.client.AgentRun.Update().
		Where(
			agentrun.StatusEQ(agentrun.StatusRunning),
			agentrun.PodID(p.podID),
		).
		SetStatus(agentrun.StatusFailed).
		SetErrorMessage(fmt.Sprintf("orphaned: pod %s restarted mid-run", p.podID)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cleaning up startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Recovered runs from previous pod incarnation", "pod_id", p.podID, "count", n)
		p.orphanState.record(time.Now(), n)
	}
	return nil
}
