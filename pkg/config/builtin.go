package config

import "time"

// BuiltinConfig contains the automation and agent definitions compiled into
// the binary. steward.yaml entries override these per key.
type BuiltinConfig struct {
	Automations map[string]AutomationConfig
	Agents      map[string]AgentConfig
}

// GetBuiltinConfig returns the built-in component definitions.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		Automations: map[string]AutomationConfig{
			"accounting": {},
			"reconciliation": {
				Settings: map[string]interface{}{
					"auto_match_threshold": 0.90,
				},
			},
			"dedup": {
				Settings: map[string]interface{}{
					"cluster_threshold": 0.65,
				},
			},
			"credit": {},
			"cashflow": {
				Settings: map[string]interface{}{
					"horizon_days": 90,
				},
			},
			"documents":   {},
			"monthend":    {},
			"digest":      {},
			"reports":     {},
			"supplychain": {},
			"crm":         {},
			"sales":       {},
			"purchase":    {},
			"hr":          {},
			"project":     {},
		},
		Agents: map[string]AgentConfig{
			"procure_to_pay": {
				MaxSteps:          25,
				MaxTokens:         100_000,
				LoopThreshold:     3,
				SuspensionTimeout: 72 * time.Hour,
			},
			"collection": {
				MaxSteps:          20,
				MaxTokens:         80_000,
				LoopThreshold:     3,
				SuspensionTimeout: 7 * 24 * time.Hour,
			},
			"month_end_close": {
				MaxSteps:          40,
				MaxTokens:         150_000,
				LoopThreshold:     3,
				SuspensionTimeout: 48 * time.Hour,
			},
		},
	}
}
