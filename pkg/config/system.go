package config

import "time"

// APIConfig holds resolved HTTP API configuration.
type APIConfig struct {
	ListenAddr       string // host:port the HTTP server binds (default ":8080")
	APIKeyEnv        string // Env var name holding the operator API key (default "STEWARD_API_KEY")
	WebhookSecretEnv string // Env var name holding the webhook HMAC secret (default "STEWARD_WEBHOOK_SECRET")
}

// ERPConfig holds resolved ERP connection configuration.
type ERPConfig struct {
	URL         string        // Base URL of the ERP JSON-RPC endpoint
	Database    string        // ERP database name
	UserID      int           // Authenticated ERP user id
	APIKeyEnv   string        // Env var name for the ERP API key (default "ERP_API_KEY")
	Timeout     time.Duration // Per-call timeout (default 30s)
	WebhookSkew time.Duration // Accepted clock skew on signed webhooks (default 5m)
}

// SlackConfig holds resolved Slack notification configuration.
type SlackConfig struct {
	Enabled       bool
	WebhookURLEnv string // Env var name for the incoming-webhook URL (default "SLACK_WEBHOOK_URL")
	Channel       string // Channel override, e.g. "#finance-ops"
}
