package llm

import (
	"context"
	"fmt"
	"sync"
)

// ScriptedClient returns canned completions in order. Used by tests across
// the codebase; lives here so they all share one fake.
type ScriptedClient struct {
	mu          sync.Mutex
	completions []*Completion
	next        int

	// Requests records every request received, in order.
	Requests []Request

	// Err, when set, is returned instead of a completion.
	Err error
}

// NewScriptedClient creates a fake that replays the given completions.
func NewScriptedClient(completions ...*Completion) *ScriptedClient {
	return &ScriptedClient{completions: completions}
}

// Complete returns the next scripted completion.
func (s *ScriptedClient) Complete(_ context.Context, req Request) (*Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Requests = append(s.Requests, req)
	if s.Err != nil {
		return nil, s.Err
	}
	if s.next >= len(s.completions) {
		return nil, fmt.Errorf("scripted client exhausted after %d completions", len(s.completions))
	}
	c := s.completions[s.next]
	s.next++
	return c, nil
}

// Close implements Client.
func (s *ScriptedClient) Close() error { return nil }
