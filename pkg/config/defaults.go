package config

// Defaults contains system-wide default thresholds applied to automations
// that do not declare their own.
type Defaults struct {
	// ConfidenceThreshold is the floor below which a decision is logged
	// as a note and never surfaced for approval.
	ConfidenceThreshold float64 `yaml:"confidence_threshold,omitempty"`

	// AutoApproveThreshold is the floor at or above which a decision
	// executes without human approval.
	AutoApproveThreshold float64 `yaml:"auto_approve_threshold,omitempty"`
}

// builtinDefaults are used when steward.yaml leaves a value unset.
func builtinDefaults() *Defaults {
	return &Defaults{
		ConfidenceThreshold:  0.85,
		AutoApproveThreshold: 0.95,
	}
}
