package events

// RunStatusPayload is the payload for run.status events.
// Published when a run transitions between lifecycle states.
type RunStatusPayload struct {
	Type      string `json:"type"`       // always EventTypeRunStatus
	RunID     string `json:"run_id"`     // run UUID
	AgentType string `json:"agent_type"` // procure_to_pay, collection, ...
	Status    string `json:"status"`     // pending, running, suspended, completed, failed, cancelled
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// StepStatusPayload is the payload for step.status events.
type StepStatusPayload struct {
	Type      string `json:"type"`    // always EventTypeStepStatus
	RunID     string `json:"run_id"`  // owning run UUID
	StepID    string `json:"step_id"` // step UUID
	StepName  string `json:"step_name"`
	StepIndex int    `json:"step_index"` // 0-based
	Status    string `json:"status"`     // running, completed, failed, skipped
	Timestamp string `json:"timestamp"`  // RFC3339Nano
}

// RunProgressPayload is the payload for run.progress transient events.
// High-frequency, ephemeral; lost on disconnect.
type RunProgressPayload struct {
	Type      string `json:"type"`   // always EventTypeRunProgress
	RunID     string `json:"run_id"` // owning run UUID
	StepName  string `json:"step_name"`
	Detail    string `json:"detail,omitempty"` // e.g. "calling model", "writing bill"
	Timestamp string `json:"timestamp"`        // RFC3339Nano
}

// AuditCreatedPayload is the payload for audit.created events.
// Published whenever an automation writes an audit log entry.
type AuditCreatedPayload struct {
	Type           string  `json:"type"`     // always EventTypeAuditCreated
	AuditLogID     string  `json:"audit_log_id"`
	AutomationType string  `json:"automation_type"`
	ActionName     string  `json:"action_name"`
	Model          string  `json:"model"`
	RecordID       int64   `json:"record_id"`
	Status         string  `json:"status"` // pending, executed, ...
	Confidence     float64 `json:"confidence"`
	Timestamp      string  `json:"timestamp"` // RFC3339Nano
}

// ApprovalDecidedPayload is the payload for approval.decided events.
type ApprovalDecidedPayload struct {
	Type       string `json:"type"` // always EventTypeApprovalDecided
	AuditLogID string `json:"audit_log_id"`
	Decision   string `json:"decision"` // approved, rejected
	DecidedBy  string `json:"decided_by"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}

// DigestReadyPayload is the payload for digest.ready events.
type DigestReadyPayload struct {
	Type       string `json:"type"` // always EventTypeDigestReady
	DigestID   string `json:"digest_id"`
	DigestDate string `json:"digest_date"` // YYYY-MM-DD
	UserRole   string `json:"user_role"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}
