package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAutomations_UserOverridesBuiltin(t *testing.T) {
	builtin := map[string]AutomationConfig{
		"credit": {Settings: map[string]interface{}{"a": 1}},
		"dedup":  {},
	}
	disabled := false
	user := map[string]AutomationConfig{
		"credit": {Enabled: &disabled, ConfidenceThreshold: 0.9},
		"custom": {},
	}

	merged := mergeAutomations(builtin, user)

	require.Len(t, merged, 3)
	assert.False(t, merged["credit"].IsEnabled())
	assert.Equal(t, 0.9, merged["credit"].ConfidenceThreshold)
	assert.True(t, merged["dedup"].IsEnabled())
	assert.True(t, merged["custom"].IsEnabled())
}

func TestMergeAgents_ZeroFieldsInherit(t *testing.T) {
	builtin := map[string]AgentConfig{
		"collection": {
			MaxSteps:          20,
			MaxTokens:         80_000,
			LoopThreshold:     3,
			SuspensionTimeout: time.Hour,
		},
	}
	user := map[string]AgentConfig{
		"collection": {MaxTokens: 200_000},
	}

	merged := mergeAgents(builtin, user)

	require.Contains(t, merged, "collection")
	got := merged["collection"]
	assert.Equal(t, 20, got.MaxSteps)
	assert.Equal(t, 200_000, got.MaxTokens)
	assert.Equal(t, 3, got.LoopThreshold)
	assert.Equal(t, time.Hour, got.SuspensionTimeout)
}

func TestMergeAgents_NewAgentKeepsOwnValues(t *testing.T) {
	user := map[string]AgentConfig{
		"bespoke": {MaxSteps: 5, MaxTokens: 1000, LoopThreshold: 2, SuspensionTimeout: time.Minute},
	}

	merged := mergeAgents(nil, user)

	require.Contains(t, merged, "bespoke")
	assert.Equal(t, 5, merged["bespoke"].MaxSteps)
}
