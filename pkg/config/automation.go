package config

import "sort"

// AutomationConfig holds per-automation settings from steward.yaml.
// Zero thresholds mean "inherit from defaults".
type AutomationConfig struct {
	Enabled              *bool                  `yaml:"enabled,omitempty"`
	ConfidenceThreshold  float64                `yaml:"confidence_threshold,omitempty"`
	AutoApproveThreshold float64                `yaml:"auto_approve_threshold,omitempty"`
	Settings             map[string]interface{} `yaml:"settings,omitempty"`
}

// IsEnabled returns the effective enabled flag (default true).
func (a *AutomationConfig) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// AutomationRegistry provides lookup of automation configurations by type
// name. Read-only after construction.
type AutomationRegistry struct {
	automations map[string]*AutomationConfig
}

// NewAutomationRegistry creates a registry from merged configurations.
func NewAutomationRegistry(automations map[string]*AutomationConfig) *AutomationRegistry {
	return &AutomationRegistry{automations: automations}
}

// Get retrieves an automation configuration by type name.
func (r *AutomationRegistry) Get(name string) (*AutomationConfig, error) {
	a, ok := r.automations[name]
	if !ok {
		return nil, ErrAutomationNotFound
	}
	return a, nil
}

// Has reports whether the named automation exists.
func (r *AutomationRegistry) Has(name string) bool {
	_, ok := r.automations[name]
	return ok
}

// GetAll returns the full map. Callers must not mutate it.
func (r *AutomationRegistry) GetAll() map[string]*AutomationConfig {
	return r.automations
}

// Names returns all automation type names, sorted.
func (r *AutomationRegistry) Names() []string {
	names := make([]string, 0, len(r.automations))
	for name := range r.automations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered automations.
func (r *AutomationRegistry) Len() int {
	return len(r.automations)
}
