package config

import "time"

// LLMConfig holds resolved LLM side-car configuration. The side-car speaks
// gRPC and owns provider credentials; this service only needs its address.
type LLMConfig struct {
	Address        string        `yaml:"address"`         // gRPC address of the side-car (default "localhost:9090")
	Model          string        `yaml:"model"`           // Model identifier passed on every request
	RequestTimeout time.Duration `yaml:"request_timeout"` // Per-call deadline (default 120s)
	MaxRetries     int           `yaml:"max_retries"`     // Retries on transient gRPC errors (default 2)
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Address:        "localhost:9090",
		Model:          "default",
		RequestTimeout: 120 * time.Second,
		MaxRetries:     2,
	}
}
