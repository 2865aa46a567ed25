package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/events"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and executes agent runs.
type Worker struct {
	id             string
	podID          string
	client         *ent.Client
	config         *config.QueueConfig
	executor       RunExecutor
	eventPublisher *events.EventPublisher
	pool           RunRegistry
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// NewWorker creates a new queue worker.
// eventPublisher may be nil (live feed disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry, eventPublisher *events.EventPublisher) *Worker {
	return &Worker{
		id:             id,
		podID:          podID,
		client:         client,
		config:         cfg,
		executor:       executor,
		eventPublisher: eventPublisher,
		pool:           pool,
		stopCh:         make(chan struct{}),
		status:         WorkerStatusIdle,
		lastActivity:   time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and executes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	// 2. Claim next run
	run, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	log := slog.With("run_id", run.ID, "agent_type", run.AgentType, "worker_id", w.id)
	log.Info("Run claimed", "trigger_type", run.TriggerType, "resumed", run.TotalSteps > 0)

	w.publishRunStatus(ctx, run, agentrun.StatusRunning)

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create run context with timeout
	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	go w.runHeartbeat(heartbeatCtx, run.ID)

	// 6. Execute. The executor persists steps, suspensions and the terminal
	// status itself; a guardrail stop is a normal failed outcome.
	outcome := w.executor.Execute(runCtx, run)

	// 7. Stop heartbeat
	cancelHeartbeat()

	if outcome == nil {
		outcome = &agentgraph.RunOutcome{Kind: agentgraph.OutcomeFailed, Error: "executor returned nil outcome"}
		w.markFailed(run.ID, outcome.Error)
	}

	// 8. A deadline-exceeded cancellation is a timeout, not an operator
	// cancel; rewrite the terminal status accordingly.
	if outcome.Kind == agentgraph.OutcomeCancelled && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		reason := fmt.Sprintf("run timed out after %v", w.config.RunTimeout)
		w.markFailed(run.ID, reason)
		outcome = &agentgraph.RunOutcome{Kind: agentgraph.OutcomeFailed, Error: reason, FinalState: outcome.FinalState}
		w.publishRunStatus(context.Background(), run, agentrun.StatusFailed)
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run processing complete", "outcome", outcome.Kind, "error", outcome.Error)
	return nil
}

// claimNextRun atomically claims the next pending run using FOR UPDATE SKIP LOCKED.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.AgentRun, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED, ordered by created_at for FIFO.
	// Resumed runs re-enter as pending and are claimed the same way.
	run, err := tx.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusPending)).
		Order(ent.Asc(agentrun.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	now := time.Now()
	update := run.Update().
		SetStatus(agentrun.StatusRunning).
		SetPodID(w.podID).
		SetLastHeartbeatAt(now)
	if run.StartedAt == nil {
		update.SetStartedAt(now)
	}
	run, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return run, nil
}

// runHeartbeat periodically updates last_heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, runID string) {
	interval := w.config.OrphanThreshold / 5
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.AgentRun.UpdateOneID(runID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "run_id", runID, "error", err)
			}
		}
	}
}

// markFailed force-writes a failed terminal status. Used for the timeout
// boundary where the executor saw only a context cancellation.
func (w *Worker) markFailed(runID, reason string) {
	err := w.client.AgentRun.UpdateOneID(runID).
		SetStatus(agentrun.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(reason).
		Exec(context.Background())
	if err != nil {
		slog.Error("Failed to write terminal run status", "run_id", runID, "error", err)
	}
}

// publishRunStatus publishes a run status event to the run-specific and
// global channels for real-time delivery. Non-blocking: errors are logged.
func (w *Worker) publishRunStatus(ctx context.Context, run *ent.AgentRun, status agentrun.Status) {
	if w.eventPublisher == nil {
		return
	}
	if err := w.eventPublisher.PublishRunStatus(ctx, run.ID, events.RunStatusPayload{
		Type:      events.EventTypeRunStatus,
		RunID:     run.ID,
		AgentType: run.AgentType,
		Status:    string(status),
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish run status",
			"run_id", run.ID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = runID
	w.lastActivity = time.Now()
}
