package config

import (
	"sort"
	"time"
)

// AgentConfig holds per-agent-type runtime limits from steward.yaml.
// Zero values mean "inherit from built-in limits".
type AgentConfig struct {
	// MaxSteps caps executed graph nodes per run.
	MaxSteps int `yaml:"max_steps,omitempty"`

	// MaxTokens caps cumulative LLM tokens per run.
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// LoopThreshold is how many times the same node may repeat
	// consecutively before the run is stopped.
	LoopThreshold int `yaml:"loop_threshold,omitempty"`

	// SuspensionTimeout bounds how long a run may wait suspended.
	SuspensionTimeout time.Duration `yaml:"suspension_timeout,omitempty"`
}

// AgentRegistry provides lookup of agent limits by agent type.
// Read-only after construction.
type AgentRegistry struct {
	agents map[string]*AgentConfig
}

// NewAgentRegistry creates a registry from merged configurations.
func NewAgentRegistry(agents map[string]*AgentConfig) *AgentRegistry {
	return &AgentRegistry{agents: agents}
}

// Get retrieves agent limits by agent type.
func (r *AgentRegistry) Get(agentType string) (*AgentConfig, error) {
	a, ok := r.agents[agentType]
	if !ok {
		return nil, ErrAgentNotFound
	}
	return a, nil
}

// Has reports whether the agent type exists.
func (r *AgentRegistry) Has(agentType string) bool {
	_, ok := r.agents[agentType]
	return ok
}

// GetAll returns the full map. Callers must not mutate it.
func (r *AgentRegistry) GetAll() map[string]*AgentConfig {
	return r.agents
}

// Names returns all agent type names, sorted.
func (r *AgentRegistry) Names() []string {
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered agent types.
func (r *AgentRegistry) Len() int {
	return len(r.agents)
}
