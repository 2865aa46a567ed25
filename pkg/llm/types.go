// Package llm defines the model-client port and its gRPC implementation.
// All prompts in the service go through the Client interface so tests can
// substitute a scripted fake.
package llm

import "context"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
	// ToolCallID links a RoleTool message to the call it answers.
	ToolCallID string
}

// ToolDefinition describes a tool the model may invoke. InputSchema is a
// JSON Schema object (type, properties, required).
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID    string
	Name  string
	Input map[string]interface{}
}

// Request is a complete prompt: system context, conversation so far, and
// the tools available on this turn.
type Request struct {
	RequestID   string
	System      string
	Messages    []Message
	Tools       []ToolDefinition
	Temperature *float32
	MaxTokens   *int32
}

// StopReason reports why generation ended.
type StopReason string

const (
	StopEndTurn   StopReason = "end_turn"
	StopToolUse   StopReason = "tool_use"
	StopMaxTokens StopReason = "max_tokens"
)

// Completion is the model's answer plus token accounting.
type Completion struct {
	Text       string
	ToolCalls  []ToolCall
	TokensIn   int
	TokensOut  int
	StopReason StopReason
}

// Client is the model port. Implementations must be safe for concurrent use.
type Client interface {
	Complete(ctx context.Context, req Request) (*Completion, error)
	Close() error
}
