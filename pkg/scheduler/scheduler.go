// Package scheduler drives the time-based side of the service: daily scans
// across the automation registry, digest generation, batch recalculations
// and the suspension-timeout sweep. Cadences come from SchedulerConfig as
// standard cron expressions.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/automations"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/services"
)

// dedicatedScans are scan names driven by their own cadence entry; the
// daily sweep skips them so they never run twice a day.
var dedicatedScans = map[string]bool{
	"scan_daily_digest":  true,
	"scan_supplier_risk": true,
	"scan_cash_forecast": true,
}

// Scheduler owns the cron table. Jobs run in cron's own goroutines; each
// job derives a fresh context per invocation.
type Scheduler struct {
	cfg      *config.SchedulerConfig
	registry *automation.Registry
	engine   *automation.Engine
	credit   *automations.Credit
	runs     *services.RunService
	cron     *cron.Cron
	logger   *slog.Logger
}

// New creates a Scheduler. Start must be called to arm the cron table.
func New(cfg *config.SchedulerConfig, registry *automation.Registry, engine *automation.Engine,
	credit *automations.Credit, runs *services.RunService) *Scheduler {
	if cfg == nil {
		cfg = config.DefaultSchedulerConfig()
	}
	if registry == nil {
		panic("scheduler.New: automation registry must not be nil")
	}
	if engine == nil {
		panic("scheduler.New: engine must not be nil")
	}
	if runs == nil {
		panic("scheduler.New: run service must not be nil")
	}
	return &Scheduler{
		cfg:      cfg,
		registry: registry,
		engine:   engine,
		credit:   credit,
		runs:     runs,
		cron:     cron.New(),
		logger:   slog.With("component", "scheduler"),
	}
}

// Start arms the cron table and starts it. Returns an error when a cron
// expression does not parse.
func (s *Scheduler) Start(ctx context.Context) error {
	jobs := []struct {
		name string
		spec string
		fn   func(context.Context)
	}{
		{"daily_scans", s.cfg.OverdueScan, s.RunDailyScans},
		{"digest_generation", s.cfg.DigestGeneration, func(ctx context.Context) {
			s.runScan(ctx, "digest", "scan_daily_digest")
		}},
		{"credit_recalc", s.cfg.CreditRecalc, s.RunCreditRecalc},
		{"supplier_risk_rescore", s.cfg.SupplierRiskRescore, func(ctx context.Context) {
			s.runScan(ctx, "supplychain", "scan_supplier_risk")
		}},
		{"cash_forecast", s.cfg.CashForecast, func(ctx context.Context) {
			s.runScan(ctx, "cashflow", "scan_cash_forecast")
		}},
		{"suspension_sweep", s.cfg.SuspensionSweep, s.SweepSuspensions},
	}

	for _, job := range jobs {
		job := job
		if job.spec == "" {
			s.logger.Info("job disabled, no cadence configured", "job", job.name)
			continue
		}
		_, err := s.cron.AddFunc(job.spec, func() {
			jobCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
			defer cancel()
			started := time.Now()
			job.fn(jobCtx)
			s.logger.Info("scheduled job finished", "job", job.name, "duration", time.Since(started))
		})
		if err != nil {
			return fmt.Errorf("bad cadence for %s (%q): %w", job.name, job.spec, err)
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(jobs))
	return nil
}

// Stop stops the cron table and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// RunDailyScans sweeps every registered automation scan that is not driven
// by a dedicated cadence. Scan failures are logged per automation and never
// stop the sweep.
func (s *Scheduler) RunDailyScans(ctx context.Context) {
	day := time.Now()
	for _, a := range s.registry.All() {
		for name := range a.Scans() {
			if dedicatedScans[name] {
				continue
			}
			outcomes, err := s.engine.RunScan(ctx, a, name, day)
			if err != nil {
				s.logger.Error("scan failed", "automation", a.Type(), "scan", name, "error", err)
				continue
			}
			s.logger.Info("scan finished", "automation", a.Type(), "scan", name, "results", len(outcomes))
		}
	}
}

// RunCreditRecalc recalculates credit scores for all active customers.
func (s *Scheduler) RunCreditRecalc(ctx context.Context) {
	if s.credit == nil {
		return
	}
	processed, errs := s.credit.BatchRecalculate(ctx)
	for _, err := range errs {
		s.logger.Warn("credit recalculation error", "error", err)
	}
	s.logger.Info("credit recalculation finished", "processed", processed, "errors", len(errs))
}

// SweepSuspensions fails suspended runs whose timeout has passed.
func (s *Scheduler) SweepSuspensions(ctx context.Context) {
	expired, err := s.runs.ExpireSuspensions(ctx, time.Now())
	if err != nil {
		s.logger.Error("suspension sweep failed", "error", err)
		return
	}
	if len(expired) > 0 {
		s.logger.Warn("suspended runs timed out", "count", len(expired), "run_ids", expired)
	}
}

// runScan runs one named scan on one automation type.
func (s *Scheduler) runScan(ctx context.Context, automationType, scanName string) {
	a, err := s.registry.Get(automationType)
	if err != nil {
		s.logger.Warn("scan target not registered", "automation", automationType, "scan", scanName)
		return
	}
	outcomes, err := s.engine.RunScan(ctx, a, scanName, time.Now())
	if err != nil {
		s.logger.Error("scan failed", "automation", automationType, "scan", scanName, "error", err)
		return
	}
	s.logger.Info("scan finished", "automation", automationType, "scan", scanName, "results", len(outcomes))
}
