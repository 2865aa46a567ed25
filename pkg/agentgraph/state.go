package agentgraph

// State is the mutable working state of one agent run. Nodes return partial
// updates that the runtime merges in; per-run counters (node visits) are
// carried inside the state so nothing lives on the agent instance.
type State map[string]interface{}

// visitsKey holds the per-node visit counters inside the state.
const visitsKey = "_node_visits"

// Clone returns a shallow copy.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge applies a partial update, overwriting existing keys.
func (s State) Merge(updates State) {
	for k, v := range updates {
		s[k] = v
	}
}

// Float reads a numeric value; JSON round trips turn numbers into float64.
func (s State) Float(key string) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Int reads an integer value.
func (s State) Int(key string) int {
	return int(s.Float(key))
}

// Str reads a string value, or "".
func (s State) Str(key string) string {
	v, _ := s[key].(string)
	return v
}

// Bool reads a boolean value, or false.
func (s State) Bool(key string) bool {
	v, _ := s[key].(bool)
	return v
}

// visit increments and returns the visit count for a node.
func (s State) visit(node string) int {
	visits, ok := s[visitsKey].(map[string]interface{})
	if !ok {
		visits = make(map[string]interface{})
		s[visitsKey] = visits
	}
	count := 0
	switch v := visits[node].(type) {
	case float64:
		count = int(v)
	case int:
		count = v
	}
	count++
	visits[node] = count
	return count
}
