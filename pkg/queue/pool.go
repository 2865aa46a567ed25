package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/events"
)

// WorkerPool manages a set of queue workers that claim and execute agent
// runs. Multiple pods can run pools against the same database; SKIP LOCKED
// claiming and heartbeat-based orphan detection keep them from stepping on
// each other.
type WorkerPool struct {
	podID          string
	client         *ent.Client
	config         *config.QueueConfig
	executor       RunExecutor
	eventPublisher *events.EventPublisher
	workers        []*Worker
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	// activeRuns maps run ID to the cancel function of its run context,
	// allowing API-triggered cancellation of in-flight runs on this pod.
	runsMu     sync.RWMutex
	activeRuns map[string]context.CancelFunc

	orphanState *orphanState
}

// NewWorkerPool creates a worker pool. eventPublisher may be nil.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, eventPublisher *events.EventPublisher) *WorkerPool {
	if client == nil {
		panic("NewWorkerPool: ent client must not be nil")
	}
	if cfg == nil {
		panic("NewWorkerPool: queue config must not be nil")
	}
	if executor == nil {
		panic("NewWorkerPool: executor must not be nil")
	}
	return &WorkerPool{
		podID:          podID,
		client:         client,
		config:         cfg,
		executor:       executor,
		eventPublisher: eventPublisher,
		stopCh:         make(chan struct{}),
		activeRuns:     make(map[string]context.CancelFunc),
		orphanState:    &orphanState{},
	}
}

// Start launches the configured number of workers and the orphan detection
// loop. It recovers runs this pod abandoned in a previous life first.
func (p *WorkerPool) Start(ctx context.Context) error {
	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"workers", p.config.WorkerCount,
		"max_concurrent", p.config.MaxConcurrentRuns)

	if err := p.cleanupStartupOrphans(ctx); err != nil {
		// Startup cleanup failing should not block the pool; the periodic
		// sweep will catch anything missed.
		slog.Warn("Startup orphan cleanup failed", "error", err)
	}

	for i := 0; i < p.config.WorkerCount; i++ {
		worker := NewWorker(
			fmt.Sprintf("%s-worker-%d", p.podID, i),
			p.podID,
			p.client,
			p.config,
			p.executor,
			p,
			p.eventPublisher,
		)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go p.runOrphanDetection(ctx)

	return nil
}

// Stop gracefully shuts down the pool: workers stop claiming new runs, and
// in-flight runs get up to GracefulShutdownTimeout to finish before their
// contexts are cancelled. It is safe to call Stop multiple times.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		slog.Info("Stopping worker pool", "pod_id", p.podID)
		close(p.stopCh)

		done := make(chan struct{})
		go func() {
			for _, w := range p.workers {
				w.Stop()
			}
			close(done)
		}()

		select {
		case <-done:
			slog.Info("All workers stopped cleanly")
		case <-time.After(p.config.GracefulShutdownTimeout):
			slog.Warn("Graceful shutdown timeout reached, cancelling in-flight runs")
			p.cancelAllRuns()
			<-done
		}

		p.wg.Wait()
		slog.Info("Worker pool stopped", "pod_id", p.podID)
	})
}

// RegisterRun records the cancel function for an in-flight run.
func (p *WorkerPool) RegisterRun(runID string, cancel context.CancelFunc) {
	p.runsMu.Lock()
	defer p.runsMu.Unlock()
	p.activeRuns[runID] = cancel
}

// UnregisterRun removes a run from the active registry.
func (p *WorkerPool) UnregisterRun(runID string) {
	p.runsMu.Lock()
	defer p.runsMu.Unlock()
	delete(p.activeRuns, runID)
}

// CancelRun cancels an in-flight run on this pod. Returns false if the run
// is not executing here (it may be pending, finished, or on another pod).
func (p *WorkerPool) CancelRun(runID string) bool {
	p.runsMu.RLock()
	cancel, ok := p.activeRuns[runID]
	p.runsMu.RUnlock()
	if !ok {
		return false
	}
	cancel()
	return true
}

// cancelAllRuns cancels every in-flight run context.
func (p *WorkerPool) cancelAllRuns() {
	p.runsMu.RLock()
	defer p.runsMu.RUnlock()
	for runID, cancel := range p.activeRuns {
		slog.Info("Cancelling in-flight run", "run_id", runID)
		cancel()
	}
}

// Health reports the pool's health, including database reachability, queue
// depth and per-worker statistics.
func (p *WorkerPool) Health(ctx context.Context) PoolHealth {
	health := PoolHealth{
		PodID:         p.podID,
		TotalWorkers:  len(p.workers),
		MaxConcurrent: p.config.MaxConcurrentRuns,
	}

	queueDepth, err := p.client.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusPending)).
		Count(ctx)
	if err != nil {
		health.DBReachable = false
		health.DBError = err.Error()
		return health
	}
	health.DBReachable = true
	health.QueueDepth = queueDepth

	p.runsMu.RLock()
	health.ActiveRuns = len(p.activeRuns)
	p.runsMu.RUnlock()

	for _, w := range p.workers {
		wh := w.Health()
		health.WorkerStats = append(health.WorkerStats, wh)
		if wh.Status == string(WorkerStatusWorking) {
			health.ActiveWorkers++
		}
	}

	health.LastOrphanScan, health.OrphansRecovered = p.orphanState.snapshot()
	health.IsHealthy = health.DBReachable
	return health
}
