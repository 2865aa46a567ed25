// Package automation provides the registry and execution engine for
// event-driven automations: handler resolution by (event_type, model),
// confidence-gated execution and the audit-logged decision lifecycle.
package automation

import (
	"context"
	"time"
)

// Event is an inbound ERP change event in domain form, decoded from the
// webhook payload.
type Event struct {
	Type      string // create, write, unlink
	Model     string
	RecordID  int64
	Values    map[string]interface{}
	OldValues map[string]interface{}
}

// Result is what every handler returns. The engine persists exactly one
// audit row per Result before committing any side effect.
type Result struct {
	Success       bool
	ActionName    string
	Model         string
	RecordID      int64
	Confidence    float64
	Reasoning     string
	ChangesMade   map[string]interface{}
	NeedsApproval bool
	TokensUsed    int
	Error         string
}

// Failed builds a failed Result for a handler-level error.
func Failed(actionName, model string, recordID int64, err error) *Result {
	return &Result{
		ActionName: actionName,
		Model:      model,
		RecordID:   recordID,
		Error:      err.Error(),
	}
}

// HandlerKey addresses one handler. Model is empty for the event-type-wide
// fallback handler.
type HandlerKey struct {
	EventType string
	Model     string
}

// Handler processes one event and returns a Result. Handlers never mutate
// the ERP; side effects go through Automation.Execute after gating.
type Handler func(ctx context.Context, ev Event) (*Result, error)

// ScanFunc is a scheduled scan. It receives the scan day and returns one
// Result per affected target; the engine drops targets already scanned
// that day.
type ScanFunc func(ctx context.Context, day time.Time) ([]*Result, error)

// Action is a gated side effect: the changes_made map of an audit row,
// replayed against the ERP on auto-execution or approval.
type Action struct {
	Name     string
	Model    string
	RecordID int64
	Changes  map[string]interface{}
}

// Automation is one registered automation: a bundle of event handlers plus
// optional scheduled scans specialised to one domain.
type Automation interface {
	// Type is the unique automation type, e.g. "accounting".
	Type() string

	// WatchedModels lists the ERP models whose events this automation wants.
	WatchedModels() []string

	// Handlers returns the handler table, keyed by (event_type, model).
	Handlers() map[HandlerKey]Handler

	// Scans returns the scheduled scans by name, e.g. "scan_overdue".
	Scans() map[string]ScanFunc

	// Execute applies a gated side effect to the ERP and returns an output
	// snapshot. Called once on auto-execution or approval replay.
	Execute(ctx context.Context, action Action) (map[string]interface{}, error)
}
