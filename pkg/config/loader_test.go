package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "steward.yaml"), []byte(content), 0o600))
	return dir
}

func TestInitialize_MinimalConfig(t *testing.T) {
	dir := writeConfig(t, `
system:
  erp:
    url: http://localhost:8069
    database: production
    user_id: 2
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Built-in defaults fill everything else
	assert.Equal(t, 0.85, cfg.Defaults.ConfidenceThreshold)
	assert.Equal(t, 0.95, cfg.Defaults.AutoApproveThreshold)
	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, ":8080", cfg.API.ListenAddr)
	assert.Equal(t, "http://localhost:8069", cfg.ERP.URL)
	assert.Equal(t, 30*time.Second, cfg.ERP.Timeout)
	assert.False(t, cfg.Slack.Enabled)
	assert.True(t, cfg.AutomationRegistry.Has("reconciliation"))
	assert.True(t, cfg.AgentRegistry.Has("procure_to_pay"))
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "automations:\n  - not: [a map\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_UserOverrides(t *testing.T) {
	dir := writeConfig(t, `
system:
  erp:
    url: http://erp:8069
    database: prod
    user_id: 7
    timeout: 45s
  slack:
    enabled: true
    channel: "#finance-ops"
defaults:
  confidence_threshold: 0.80
  auto_approve_threshold: 0.92
queue:
  worker_count: 10
automations:
  credit:
    confidence_threshold: 0.90
    auto_approve_threshold: 0.98
agents:
  procure_to_pay:
    max_steps: 50
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 0.80, cfg.Defaults.ConfidenceThreshold)
	assert.Equal(t, 0.92, cfg.Defaults.AutoApproveThreshold)
	assert.Equal(t, 10, cfg.Queue.WorkerCount)
	// Unset queue fields keep defaults after the merge
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.Equal(t, 45*time.Second, cfg.ERP.Timeout)
	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "#finance-ops", cfg.Slack.Channel)

	credit, err := cfg.GetAutomation("credit")
	require.NoError(t, err)
	assert.Equal(t, 0.90, credit.ConfidenceThreshold)

	p2p, err := cfg.GetAgent("procure_to_pay")
	require.NoError(t, err)
	assert.Equal(t, 50, p2p.MaxSteps)
	// Unset limits inherit the built-in values
	assert.Equal(t, 100_000, p2p.MaxTokens)
	assert.Equal(t, 3, p2p.LoopThreshold)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_ERP_URL", "http://expanded:8069")

	dir := writeConfig(t, `
system:
  erp:
    url: "{{.TEST_ERP_URL}}"
    database: prod
    user_id: 2
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://expanded:8069", cfg.ERP.URL)
}

func TestInitialize_RejectsInvertedThresholds(t *testing.T) {
	dir := writeConfig(t, `
system:
  erp:
    url: http://erp:8069
    database: prod
    user_id: 2
automations:
  credit:
    confidence_threshold: 0.95
    auto_approve_threshold: 0.85
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auto_approve_threshold")
}

func TestInitialize_RejectsBadCron(t *testing.T) {
	dir := writeConfig(t, `
system:
  erp:
    url: http://erp:8069
    database: prod
    user_id: 2
scheduler:
  overdue_scan: "not a cron line"
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overdue_scan")
}

func TestGetAutomation_NotFound(t *testing.T) {
	dir := writeConfig(t, `
system:
  erp:
    url: http://erp:8069
    database: prod
    user_id: 2
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	_, err = cfg.GetAutomation("no_such_automation")
	assert.ErrorIs(t, err, ErrAutomationNotFound)
}
