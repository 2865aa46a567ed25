// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Persistent events are written to the events table and broadcast via
// NOTIFY in the same transaction, so a reconnecting client can catch up
// from the table using the last db_event_id it saw. Transient events
// (progress ticks) are NOTIFY-only and lost on disconnect.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Run lifecycle
	EventTypeRunStatus = "run.status"

	// Step lifecycle inside a run
	EventTypeStepStatus = "step.status"

	// A new audit log entry was written
	EventTypeAuditCreated = "audit.created"

	// A pending action was approved or rejected
	EventTypeApprovalDecided = "approval.decided"

	// A daily digest finished generating
	EventTypeDigestReady = "digest.ready"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Per-run progress ticks while a step executes.
	EventTypeRunProgress = "run.progress"
)

// GlobalRunsChannel carries run-level status events. The runs list view
// subscribes here for live updates.
const GlobalRunsChannel = "runs"

// AutomationChannel carries audit, approval, and digest events.
const AutomationChannel = "automation"

// RunChannel returns the channel name for a specific run's events.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "run:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
