package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// WebhookRetentionDays is how many days processed webhook events are
	// kept before deletion.
	WebhookRetentionDays int `yaml:"webhook_retention_days"`

	// EventTTL is the maximum age of Event rows before deletion. Listeners
	// only need the catchup window, not history.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		WebhookRetentionDays: 30,
		EventTTL:             1 * time.Hour,
		CleanupInterval:      12 * time.Hour,
	}
}
