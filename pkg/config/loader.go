package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// StewardYAMLConfig represents the complete steward.yaml file structure
type StewardYAMLConfig struct {
	System      *SystemYAMLConfig           `yaml:"system"`
	LLM         *LLMConfig                  `yaml:"llm"`
	Queue       *QueueConfig                `yaml:"queue"`
	Scheduler   *SchedulerConfig            `yaml:"scheduler"`
	Defaults    *Defaults                   `yaml:"defaults"`
	Automations map[string]AutomationConfig `yaml:"automations"`
	Agents      map[string]AgentConfig      `yaml:"agents"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	API       *APIYAMLConfig   `yaml:"api"`
	ERP       *ERPYAMLConfig   `yaml:"erp"`
	Slack     *SlackYAMLConfig `yaml:"slack"`
	Retention *RetentionConfig `yaml:"retention"`
}

// APIYAMLConfig holds HTTP API settings from YAML.
type APIYAMLConfig struct {
	ListenAddr       string `yaml:"listen_addr,omitempty"`
	APIKeyEnv        string `yaml:"api_key_env,omitempty"`
	WebhookSecretEnv string `yaml:"webhook_secret_env,omitempty"`
}

// ERPYAMLConfig holds ERP connection settings from YAML.
type ERPYAMLConfig struct {
	URL         string `yaml:"url"`
	Database    string `yaml:"database"`
	UserID      int    `yaml:"user_id"`
	APIKeyEnv   string `yaml:"api_key_env,omitempty"`
	Timeout     string `yaml:"timeout,omitempty"`      // Parsed to time.Duration
	WebhookSkew string `yaml:"webhook_skew,omitempty"` // Parsed to time.Duration
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled       *bool  `yaml:"enabled,omitempty"`
	WebhookURLEnv string `yaml:"webhook_url_env,omitempty"`
	Channel       string `yaml:"channel,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"automations", stats.Automations,
		"agents", stats.Agents)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	stewardConfig, err := loader.loadStewardYAML()
	if err != nil {
		return nil, NewLoadError("steward.yaml", err)
	}

	builtin := GetBuiltinConfig()

	// Merge built-in + user-defined components (user overrides built-in)
	automations := mergeAutomations(builtin.Automations, stewardConfig.Automations)
	agents := mergeAgents(builtin.Agents, stewardConfig.Agents)

	automationRegistry := NewAutomationRegistry(automations)
	agentRegistry := NewAgentRegistry(agents)

	// Resolve defaults (YAML overrides built-in)
	defaults := builtinDefaults()
	if d := stewardConfig.Defaults; d != nil {
		if d.ConfidenceThreshold > 0 {
			defaults.ConfidenceThreshold = d.ConfidenceThreshold
		}
		if d.AutoApproveThreshold > 0 {
			defaults.AutoApproveThreshold = d.AutoApproveThreshold
		}
	}

	// Resolve queue config: start with defaults, merge user values on top so
	// unset fields keep their defaults.
	queueConfig := DefaultQueueConfig()
	if stewardConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, stewardConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	schedulerConfig := DefaultSchedulerConfig()
	if stewardConfig.Scheduler != nil {
		if err := mergo.Merge(schedulerConfig, stewardConfig.Scheduler, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge scheduler config: %w", err)
		}
	}

	llmConfig := DefaultLLMConfig()
	if stewardConfig.LLM != nil {
		if err := mergo.Merge(llmConfig, stewardConfig.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	return &Config{
		configDir:          configDir,
		Defaults:           defaults,
		Queue:              queueConfig,
		Scheduler:          schedulerConfig,
		Retention:          resolveRetentionConfig(stewardConfig.System),
		ERP:                resolveERPConfig(stewardConfig.System),
		LLM:                llmConfig,
		Slack:              resolveSlackConfig(stewardConfig.System),
		API:                resolveAPIConfig(stewardConfig.System),
		AutomationRegistry: automationRegistry,
		AgentRegistry:      agentRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadStewardYAML() (*StewardYAMLConfig, error) {
	var config StewardYAMLConfig

	// Initialize maps to avoid nil maps
	config.Automations = make(map[string]AutomationConfig)
	config.Agents = make(map[string]AgentConfig)

	if err := l.loadYAML("steward.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveAPIConfig resolves HTTP API configuration, applying defaults.
func resolveAPIConfig(sys *SystemYAMLConfig) *APIConfig {
	cfg := &APIConfig{
		ListenAddr:       ":8080",
		APIKeyEnv:        "STEWARD_API_KEY",
		WebhookSecretEnv: "STEWARD_WEBHOOK_SECRET",
	}

	if sys == nil || sys.API == nil {
		return cfg
	}

	a := sys.API
	if a.ListenAddr != "" {
		cfg.ListenAddr = a.ListenAddr
	}
	if a.APIKeyEnv != "" {
		cfg.APIKeyEnv = a.APIKeyEnv
	}
	if a.WebhookSecretEnv != "" {
		cfg.WebhookSecretEnv = a.WebhookSecretEnv
	}

	return cfg
}

// resolveERPConfig resolves ERP configuration, applying defaults.
func resolveERPConfig(sys *SystemYAMLConfig) *ERPConfig {
	cfg := &ERPConfig{
		APIKeyEnv:   "ERP_API_KEY",
		Timeout:     30 * time.Second,
		WebhookSkew: 5 * time.Minute,
	}

	if sys == nil || sys.ERP == nil {
		return cfg
	}

	e := sys.ERP
	cfg.URL = e.URL
	cfg.Database = e.Database
	cfg.UserID = e.UserID
	if e.APIKeyEnv != "" {
		cfg.APIKeyEnv = e.APIKeyEnv
	}
	if e.Timeout != "" {
		if d, err := time.ParseDuration(e.Timeout); err == nil {
			cfg.Timeout = d
		} else {
			slog.Warn("Invalid timeout in erp config, using default",
				"value", e.Timeout, "default", cfg.Timeout, "error", err)
		}
	}
	if e.WebhookSkew != "" {
		if d, err := time.ParseDuration(e.WebhookSkew); err == nil {
			cfg.WebhookSkew = d
		} else {
			slog.Warn("Invalid webhook_skew in erp config, using default",
				"value", e.WebhookSkew, "default", cfg.WebhookSkew, "error", err)
		}
	}

	return cfg
}

// resolveSlackConfig resolves Slack configuration, applying defaults.
func resolveSlackConfig(sys *SystemYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:       false,
		WebhookURLEnv: "SLACK_WEBHOOK_URL",
	}

	if sys == nil || sys.Slack == nil {
		return cfg
	}

	s := sys.Slack
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.WebhookURLEnv != "" {
		cfg.WebhookURLEnv = s.WebhookURLEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.WebhookRetentionDays > 0 {
		cfg.WebhookRetentionDays = r.WebhookRetentionDays
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}
