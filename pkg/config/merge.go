package config

// mergeAutomations merges built-in and user-defined automation
// configurations. User entries override built-ins with the same name.
func mergeAutomations(builtin map[string]AutomationConfig, user map[string]AutomationConfig) map[string]*AutomationConfig {
	result := make(map[string]*AutomationConfig)

	for name, b := range builtin {
		bCopy := b
		result[name] = &bCopy
	}

	for name, u := range user {
		uCopy := u
		result[name] = &uCopy
	}

	return result
}

// mergeAgents merges built-in and user-defined agent limits. User entries
// override per field: zero values fall back to the built-in value so a user
// can raise max_steps without restating every limit.
func mergeAgents(builtin map[string]AgentConfig, user map[string]AgentConfig) map[string]*AgentConfig {
	result := make(map[string]*AgentConfig)

	for name, b := range builtin {
		bCopy := b
		result[name] = &bCopy
	}

	for name, u := range user {
		merged := u
		if b, ok := builtin[name]; ok {
			if merged.MaxSteps == 0 {
				merged.MaxSteps = b.MaxSteps
			}
			if merged.MaxTokens == 0 {
				merged.MaxTokens = b.MaxTokens
			}
			if merged.LoopThreshold == 0 {
				merged.LoopThreshold = b.LoopThreshold
			}
			if merged.SuspensionTimeout == 0 {
				merged.SuspensionTimeout = b.SuspensionTimeout
			}
		}
		result[name] = &merged
	}

	return result
}
