package automation

import (
	"fmt"
	"sort"
)

// Registry holds all automations, populated once at startup and read-only
// afterwards.
type Registry struct {
	byType  map[string]Automation
	byModel map[string][]Automation
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byType:  make(map[string]Automation),
		byModel: make(map[string][]Automation),
	}
}

// Register adds an automation. Duplicate types are a programming error.
func (r *Registry) Register(a Automation) error {
	t := a.Type()
	if t == "" {
		return fmt.Errorf("automation has empty type")
	}
	if _, exists := r.byType[t]; exists {
		return fmt.Errorf("automation type %q registered twice", t)
	}
	r.byType[t] = a
	for _, model := range a.WatchedModels() {
		r.byModel[model] = append(r.byModel[model], a)
	}
	return nil
}

// Get returns the automation of the given type.
func (r *Registry) Get(automationType string) (Automation, error) {
	a, ok := r.byType[automationType]
	if !ok {
		return nil, fmt.Errorf("unknown automation type %q", automationType)
	}
	return a, nil
}

// ForModel returns every automation watching the model, in registration order.
func (r *Registry) ForModel(model string) []Automation {
	return r.byModel[model]
}

// All returns every registered automation, sorted by type for stable
// iteration (scheduler scans, startup logging).
func (r *Registry) All() []Automation {
	types := make([]string, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	sort.Strings(types)
	out := make([]Automation, 0, len(types))
	for _, t := range types {
		out = append(out, r.byType[t])
	}
	return out
}

// ResolveHandler finds the handler for an event: first the exact
// (event_type, model) key, then the event-type-wide fallback.
func ResolveHandler(a Automation, eventType, model string) (Handler, bool) {
	handlers := a.Handlers()
	if h, ok := handlers[HandlerKey{EventType: eventType, Model: model}]; ok {
		return h, true
	}
	if h, ok := handlers[HandlerKey{EventType: eventType}]; ok {
		return h, true
	}
	return nil, false
}
