package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// ConfigValidator validates configuration with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateAutomations(); err != nil {
		return fmt.Errorf("automation validation failed: %w", err)
	}

	if err := v.validateAgents(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateScheduler(); err != nil {
		return fmt.Errorf("scheduler validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults
	if err := validateThresholdPair(d.ConfidenceThreshold, d.AutoApproveThreshold); err != nil {
		return NewValidationError("defaults", "system", "", err)
	}
	return nil
}

func (v *ConfigValidator) validateAutomations() error {
	for name, a := range v.cfg.AutomationRegistry.GetAll() {
		ct := a.ConfidenceThreshold
		at := a.AutoApproveThreshold
		if ct == 0 {
			ct = v.cfg.Defaults.ConfidenceThreshold
		}
		if at == 0 {
			at = v.cfg.Defaults.AutoApproveThreshold
		}
		if err := validateThresholdPair(ct, at); err != nil {
			return NewValidationError("automation", name, "", err)
		}
	}
	return nil
}

func (v *ConfigValidator) validateAgents() error {
	for name, a := range v.cfg.AgentRegistry.GetAll() {
		if a.MaxSteps < 1 {
			return NewValidationError("agent", name, "max_steps", fmt.Errorf("must be at least 1"))
		}
		if a.MaxTokens < 1 {
			return NewValidationError("agent", name, "max_tokens", fmt.Errorf("must be at least 1"))
		}
		if a.LoopThreshold < 2 {
			return NewValidationError("agent", name, "loop_threshold", fmt.Errorf("must be at least 2"))
		}
		if a.SuspensionTimeout <= 0 {
			return NewValidationError("agent", name, "suspension_timeout", fmt.Errorf("must be positive"))
		}
	}
	return nil
}

func (v *ConfigValidator) validateScheduler() error {
	s := v.cfg.Scheduler
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

	specs := map[string]string{
		"overdue_scan":          s.OverdueScan,
		"digest_generation":     s.DigestGeneration,
		"credit_recalc":         s.CreditRecalc,
		"supplier_risk_rescore": s.SupplierRiskRescore,
		"cash_forecast":         s.CashForecast,
		"suspension_sweep":      s.SuspensionSweep,
	}

	for field, spec := range specs {
		if spec == "" {
			continue // empty disables the job
		}
		if _, err := parser.Parse(spec); err != nil {
			return NewValidationError("scheduler", "system", field, fmt.Errorf("invalid cron spec %q: %v", spec, err))
		}
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "system", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if q.MaxConcurrentRuns < 1 {
		return NewValidationError("queue", "system", "max_concurrent_runs", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "system", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.OrphanThreshold <= 0 {
		return NewValidationError("queue", "system", "orphan_threshold", fmt.Errorf("must be positive"))
	}
	return nil
}

func validateThresholdPair(confidence, autoApprove float64) error {
	if confidence < 0 || confidence > 1 {
		return fmt.Errorf("confidence_threshold must be in [0, 1], got %v", confidence)
	}
	if autoApprove < 0 || autoApprove > 1 {
		return fmt.Errorf("auto_approve_threshold must be in [0, 1], got %v", autoApprove)
	}
	if autoApprove < confidence {
		return fmt.Errorf("auto_approve_threshold (%v) must not be below confidence_threshold (%v)", autoApprove, confidence)
	}
	return nil
}
