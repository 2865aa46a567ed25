package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application.
type Config struct {
	configDir string

	// System-wide defaults for automations without an explicit rule
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Scheduler cron entries
	Scheduler *SchedulerConfig

	// Data retention and cleanup
	Retention *RetentionConfig

	// Outbound integrations
	ERP   *ERPConfig
	LLM   *LLMConfig
	Slack *SlackConfig

	// HTTP API settings
	API *APIConfig

	// Component registries
	AutomationRegistry *AutomationRegistry
	AgentRegistry      *AgentRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Automations int
	Agents      int
}

// Stats returns configuration statistics for logging
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.AutomationRegistry != nil {
		s.Automations = c.AutomationRegistry.Len()
	}
	if c.AgentRegistry != nil {
		s.Agents = c.AgentRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAutomation retrieves an automation configuration by type name.
func (c *Config) GetAutomation(name string) (*AutomationConfig, error) {
	return c.AutomationRegistry.Get(name)
}

// GetAgent retrieves agent limits by agent type.
func (c *Config) GetAgent(agentType string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(agentType)
}
