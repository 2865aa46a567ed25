package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/auditlog"
	"github.com/steward-ai/steward/ent/automationrule"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/period"
)

// CreateAuditInput contains the domain-level data persisted for every
// handler return, before any approval request or ERP side effect.
type CreateAuditInput struct {
	AutomationType string
	ActionName     string
	Model          string
	RecordID       int64
	Status         auditlog.Status
	Confidence     float64
	Reasoning      string
	InputSnapshot  map[string]interface{}
	OutputSnapshot map[string]interface{}
	ChangesMade    map[string]interface{}
	TokensUsed     int
	ScanDay        *time.Time
}

// AuditFilter narrows ListLogs queries. Zero values mean "no filter".
type AuditFilter struct {
	AutomationType string
	Status         string
	Model          string
	RecordID       int64
	Since          *time.Time
	Limit          int
	Offset         int
}

// EffectiveRule is the merged gating configuration for one
// (automation_type, action_name) pair: a stored AutomationRule row when one
// exists, system defaults otherwise.
type EffectiveRule struct {
	Enabled              bool
	ConfidenceThreshold  float64
	AutoApproveThreshold float64
	Config               map[string]interface{}
}

// AuditService owns the audit-log lifecycle and automation-rule resolution.
type AuditService struct {
	client   *ent.Client
	defaults *config.Defaults
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client, defaults *config.Defaults) *AuditService {
	if client == nil {
		panic("NewAuditService: client must not be nil")
	}
	if defaults == nil {
		panic("NewAuditService: defaults must not be nil")
	}
	return &AuditService{client: client, defaults: defaults}
}

// CreateLog persists one audit record. Called for every handler return.
func (s *AuditService) CreateLog(ctx context.Context, input CreateAuditInput) (*ent.AuditLog, error) {
	if input.AutomationType == "" {
		return nil, NewValidationError("automation_type", "automation type is required")
	}
	if input.ActionName == "" {
		return nil, NewValidationError("action_name", "action name is required")
	}
	if input.Model == "" {
		return nil, NewValidationError("model", "target model is required")
	}
	if input.Confidence < 0 || input.Confidence > 1 {
		return nil, NewValidationError("confidence", "confidence must be in [0, 1]")
	}

	status := input.Status
	if status == "" {
		status = auditlog.StatusPending
	}

	builder := s.client.AuditLog.Create().
		SetID(uuid.New().String()).
		SetAutomationType(input.AutomationType).
		SetActionName(input.ActionName).
		SetModel(input.Model).
		SetRecordID(input.RecordID).
		SetStatus(status).
		SetConfidence(input.Confidence).
		SetTokensUsed(input.TokensUsed)

	if input.Reasoning != "" {
		builder.SetReasoning(input.Reasoning)
	}
	if input.InputSnapshot != nil {
		builder.SetInputSnapshot(input.InputSnapshot)
	}
	if input.OutputSnapshot != nil {
		builder.SetOutputSnapshot(input.OutputSnapshot)
	}
	if input.ChangesMade != nil {
		builder.SetChangesMade(input.ChangesMade)
	}
	if input.ScanDay != nil {
		builder.SetScanDay(period.DayBucket(*input.ScanDay))
	}
	if status == auditlog.StatusExecuted {
		builder.SetExecutedAt(time.Now())
	}

	log, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit log: %w", err)
	}
	return log, nil
}

// GetLog returns one audit row by id.
func (s *AuditService) GetLog(ctx context.Context, id string) (*ent.AuditLog, error) {
	log, err := s.client.AuditLog.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("audit log %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get audit log: %w", err)
	}
	return log, nil
}

// ListLogs returns audit rows matching the filter, newest first.
func (s *AuditService) ListLogs(ctx context.Context, filter AuditFilter) ([]*ent.AuditLog, error) {
	q := s.client.AuditLog.Query()
	if filter.AutomationType != "" {
		q = q.Where(auditlog.AutomationTypeEQ(filter.AutomationType))
	}
	if filter.Status != "" {
		q = q.Where(auditlog.StatusEQ(auditlog.Status(filter.Status)))
	}
	if filter.Model != "" {
		q = q.Where(auditlog.ModelEQ(filter.Model))
	}
	if filter.RecordID != 0 {
		q = q.Where(auditlog.RecordIDEQ(filter.RecordID))
	}
	if filter.Since != nil {
		q = q.Where(auditlog.CreatedAtGTE(*filter.Since))
	}
	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	logs, err := q.
		Order(ent.Desc(auditlog.FieldCreatedAt)).
		Limit(limit).
		Offset(filter.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, nil
}

// ListPending returns pending audit rows, oldest first (approval queue order).
func (s *AuditService) ListPending(ctx context.Context, limit int) ([]*ent.AuditLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	logs, err := s.client.AuditLog.Query().
		Where(auditlog.StatusEQ(auditlog.StatusPending)).
		Order(ent.Asc(auditlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending audit logs: %w", err)
	}
	return logs, nil
}

// Decide transitions a pending row to approved or rejected. Any other
// current status is an invalid transition.
func (s *AuditService) Decide(ctx context.Context, id string, approved bool, approvedBy string) (*ent.AuditLog, error) {
	if approvedBy == "" {
		return nil, NewValidationError("approved_by", "approver identity is required")
	}

	log, err := s.GetLog(ctx, id)
	if err != nil {
		return nil, err
	}
	if log.Status != auditlog.StatusPending {
		return nil, fmt.Errorf("audit log %s is %s, not pending: %w", id, log.Status, ErrInvalidTransition)
	}

	status := auditlog.StatusRejected
	if approved {
		status = auditlog.StatusApproved
	}
	updated, err := log.Update().
		SetStatus(status).
		SetApprovedBy(approvedBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update audit log %s: %w", id, err)
	}
	return updated, nil
}

// MarkExecuted transitions an approved (or pending, for auto-approve) row to
// executed, recording the output of the replayed action.
func (s *AuditService) MarkExecuted(ctx context.Context, id string, output map[string]interface{}) (*ent.AuditLog, error) {
	log, err := s.GetLog(ctx, id)
	if err != nil {
		return nil, err
	}
	if log.Status != auditlog.StatusApproved && log.Status != auditlog.StatusPending {
		return nil, fmt.Errorf("audit log %s is %s: %w", id, log.Status, ErrInvalidTransition)
	}

	builder := log.Update().
		SetStatus(auditlog.StatusExecuted).
		SetExecutedAt(time.Now())
	if output != nil {
		builder.SetOutputSnapshot(output)
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark audit log %s executed: %w", id, err)
	}
	return updated, nil
}

// MarkFailed records a terminal failure. Approval-apply failures land here;
// the row is never re-opened as pending.
func (s *AuditService) MarkFailed(ctx context.Context, id, reason string) (*ent.AuditLog, error) {
	log, err := s.GetLog(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := log.Update().
		SetStatus(auditlog.StatusFailed).
		SetErrorMessage(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark audit log %s failed: %w", id, err)
	}
	return updated, nil
}

// ResolveRule returns the effective gating rule for an automation action:
// the exact (automation_type, action_name) row if present, else the
// automation-wide row (action_name = ''), else system defaults.
func (s *AuditService) ResolveRule(ctx context.Context, automationType, actionName string) (*EffectiveRule, error) {
	rule, err := s.client.AutomationRule.Query().
		Where(
			automationrule.AutomationTypeEQ(automationType),
			automationrule.ActionNameIn(actionName, ""),
		).
		// Exact action match sorts after the automation-wide row; take the last.
		Order(ent.Asc(automationrule.FieldActionName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query automation rules: %w", err)
	}

	effective := &EffectiveRule{
		Enabled:              true,
		ConfidenceThreshold:  s.defaults.ConfidenceThreshold,
		AutoApproveThreshold: s.defaults.AutoApproveThreshold,
	}
	for _, r := range rule {
		effective.Enabled = r.Enabled
		effective.ConfidenceThreshold = r.ConfidenceThreshold
		effective.AutoApproveThreshold = r.AutoApproveThreshold
		if r.Config != nil {
			effective.Config = r.Config
		}
	}
	return effective, nil
}

// UpsertRule creates or updates the rule row for the pair.
func (s *AuditService) UpsertRule(ctx context.Context, automationType, actionName string, enabled bool, confidenceThreshold, autoApproveThreshold float64, cfg map[string]interface{}) (*ent.AutomationRule, error) {
	if automationType == "" {
		return nil, NewValidationError("automation_type", "automation type is required")
	}
	if confidenceThreshold < 0 || confidenceThreshold > 1 {
		return nil, NewValidationError("confidence_threshold", "must be in [0, 1]")
	}
	if autoApproveThreshold < confidenceThreshold || autoApproveThreshold > 1 {
		return nil, NewValidationError("auto_approve_threshold", "must be in [confidence_threshold, 1]")
	}

	existing, err := s.client.AutomationRule.Query().
		Where(
			automationrule.AutomationTypeEQ(automationType),
			automationrule.ActionNameEQ(actionName),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query automation rule: %w", err)
	}

	if existing != nil {
		builder := existing.Update().
			SetEnabled(enabled).
			SetConfidenceThreshold(confidenceThreshold).
			SetAutoApproveThreshold(autoApproveThreshold)
		if cfg != nil {
			builder.SetConfig(cfg)
		}
		updated, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update automation rule: %w", err)
		}
		return updated, nil
	}

	builder := s.client.AutomationRule.Create().
		SetID(uuid.New().String()).
		SetAutomationType(automationType).
		SetActionName(actionName).
		SetEnabled(enabled).
		SetConfidenceThreshold(confidenceThreshold).
		SetAutoApproveThreshold(autoApproveThreshold)
	if cfg != nil {
		builder.SetConfig(cfg)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create automation rule: %w", err)
	}
	return created, nil
}

// ScanAlreadyLogged reports whether a scheduled scan already wrote an audit
// row for this target today. Keeps scan_* methods idempotent per day.
func (s *AuditService) ScanAlreadyLogged(ctx context.Context, automationType, actionName, model string, recordID int64, day time.Time) (bool, error) {
	exists, err := s.client.AuditLog.Query().
		Where(
			auditlog.AutomationTypeEQ(automationType),
			auditlog.ActionNameEQ(actionName),
			auditlog.ModelEQ(model),
			auditlog.RecordIDEQ(recordID),
			auditlog.ScanDayEQ(period.DayBucket(day)),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to probe scan idempotency: %w", err)
	}
	return exists, nil
}

