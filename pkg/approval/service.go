// Package approval implements the human decision point for pending audit
// rows: approve replays the stored action against the ERP, reject closes
// the row without side effects.
package approval

import (
	"context"
	"log/slog"
	"time"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/events"
	"github.com/steward-ai/steward/pkg/services"
)

// Service decides pending audit rows.
type Service struct {
	audit     *services.AuditService
	registry  *automation.Registry
	engine    *automation.Engine
	publisher *events.EventPublisher
	logger    *slog.Logger
}

// NewService creates an approval service. The publisher may be nil.
func NewService(audit *services.AuditService, registry *automation.Registry,
	engine *automation.Engine, publisher *events.EventPublisher) *Service {
	if audit == nil {
		panic("approval.NewService: audit service must not be nil")
	}
	if registry == nil {
		panic("approval.NewService: automation registry must not be nil")
	}
	if engine == nil {
		panic("approval.NewService: engine must not be nil")
	}
	return &Service{
		audit:     audit,
		registry:  registry,
		engine:    engine,
		publisher: publisher,
		logger:    slog.With("component", "approval"),
	}
}

// ListPending returns the approval queue, oldest first.
func (s *Service) ListPending(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	return s.audit.ListPending(ctx, limit)
}

// Decide resolves one pending audit row. On approval the stored changes are
// replayed through the owning automation; the row ends executed or failed.
// On rejection the row simply closes. Non-pending rows are an invalid
// transition.
func (s *Service) Decide(ctx context.Context, auditLogID string, approved bool, approvedBy string) (*ent.AuditLog, error) {
	log, err := s.audit.Decide(ctx, auditLogID, approved, approvedBy)
	if err != nil {
		return nil, err
	}

	decision := "rejected"
	if approved {
		decision = "approved"
	}
	s.publishDecision(log.ID, decision, approvedBy)

	if !approved {
		s.logger.Info("action rejected",
			"audit_log_id", log.ID, "automation", log.AutomationType,
			"action", log.ActionName, "decided_by", approvedBy)
		return log, nil
	}

	a, err := s.registry.Get(log.AutomationType)
	if err != nil {
		// The automation vanished between logging and approval (config
		// change). Record the failure on the row.
		return s.audit.MarkFailed(ctx, log.ID, err.Error())
	}

	executed, err := s.engine.ExecuteApproved(ctx, a, log)
	if err != nil {
		return nil, err
	}
	s.logger.Info("approved action replayed",
		"audit_log_id", executed.ID, "automation", executed.AutomationType,
		"action", executed.ActionName, "status", executed.Status, "decided_by", approvedBy)
	return executed, nil
}

func (s *Service) publishDecision(auditLogID, decision, decidedBy string) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.publisher.PublishApprovalDecided(ctx, events.ApprovalDecidedPayload{
		Type:       events.EventTypeApprovalDecided,
		AuditLogID: auditLogID,
		Decision:   decision,
		DecidedBy:  decidedBy,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		s.logger.Warn("failed to publish approval decision", "audit_log_id", auditLogID, "error", err)
	}
}
