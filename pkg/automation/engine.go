package automation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/auditlog"
	"github.com/steward-ai/steward/pkg/events"
	"github.com/steward-ai/steward/pkg/services"
)

// Disposition classifies what the gate did with a handler result.
type Disposition string

const (
	// DispositionExecuted: confidence cleared the auto-approve threshold,
	// the side effect was applied in the same invocation.
	DispositionExecuted Disposition = "executed"
	// DispositionPending: confidence cleared the approval threshold only;
	// side effects are held for a human decision.
	DispositionPending Disposition = "pending"
	// DispositionNote: confidence below the approval threshold; logged
	// with no side effect and no approval request.
	DispositionNote Disposition = "note"
	// DispositionFailed: the handler or the side effect failed.
	DispositionFailed Disposition = "failed"
	// DispositionNoHandler: the automation has no handler for the event.
	DispositionNoHandler Disposition = "no_handler"
	// DispositionDisabled: the automation or action is switched off by rule.
	DispositionDisabled Disposition = "disabled"
	// DispositionSkipped: a scan target already processed today.
	DispositionSkipped Disposition = "skipped"
)

// Outcome is the gate's verdict on one handler result.
type Outcome struct {
	Disposition Disposition
	Result      *Result
	AuditLog    *ent.AuditLog
}

// Engine wraps automations with confidence gating and audit logging.
// Exactly one audit row is written per handler return, before any ERP
// side effect.
type Engine struct {
	audit     *services.AuditService
	publisher *events.EventPublisher
	logger    *slog.Logger
}

// NewEngine creates an Engine. The publisher may be nil; lifecycle events
// are then skipped.
func NewEngine(audit *services.AuditService, publisher *events.EventPublisher) *Engine {
	if audit == nil {
		panic("NewEngine: audit service must not be nil")
	}
	return &Engine{
		audit:     audit,
		publisher: publisher,
		logger:    slog.With("component", "automation.engine"),
	}
}

// HandleEvent resolves the handler for the event, runs it, and applies the
// confidence gate to its result.
func (e *Engine) HandleEvent(ctx context.Context, a Automation, ev Event) (*Outcome, error) {
	enabled, err := e.enabled(ctx, a.Type())
	if err != nil {
		return nil, err
	}
	if !enabled {
		return &Outcome{Disposition: DispositionDisabled}, nil
	}

	handler, ok := ResolveHandler(a, ev.Type, ev.Model)
	if !ok {
		e.logger.Debug("no handler for event",
			"automation", a.Type(), "event_type", ev.Type, "model", ev.Model)
		return &Outcome{Disposition: DispositionNoHandler}, nil
	}

	res, err := handler(ctx, ev)
	if err != nil {
		res = Failed(fmt.Sprintf("on_%s", ev.Type), ev.Model, ev.RecordID, err)
	}
	if res == nil {
		return &Outcome{Disposition: DispositionNoHandler}, nil
	}
	if res.Model == "" {
		res.Model = ev.Model
	}
	if res.RecordID == 0 {
		res.RecordID = ev.RecordID
	}

	return e.gate(ctx, a, res, &ev, nil)
}

// RunScan runs one scheduled scan and gates each returned result. Targets
// that already have an audit row for the scan day are skipped, keeping
// scans idempotent per (automation, action, target, day).
func (e *Engine) RunScan(ctx context.Context, a Automation, scanName string, day time.Time) ([]*Outcome, error) {
	enabled, err := e.enabled(ctx, a.Type())
	if err != nil {
		return nil, err
	}
	if !enabled {
		return []*Outcome{{Disposition: DispositionDisabled}}, nil
	}

	scan, ok := a.Scans()[scanName]
	if !ok {
		return nil, fmt.Errorf("automation %q has no scan %q", a.Type(), scanName)
	}

	results, err := scan(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("scan %s.%s failed: %w", a.Type(), scanName, err)
	}

	outcomes := make([]*Outcome, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		logged, err := e.audit.ScanAlreadyLogged(ctx, a.Type(), res.ActionName, res.Model, res.RecordID, day)
		if err != nil {
			return outcomes, err
		}
		if logged {
			outcomes = append(outcomes, &Outcome{Disposition: DispositionSkipped, Result: res})
			continue
		}
		outcome, err := e.gate(ctx, a, res, nil, &day)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

// ExecuteApproved replays the stored changes of an approved audit row.
// The row transitions to executed or failed; a failed apply never re-opens
// it as pending.
func (e *Engine) ExecuteApproved(ctx context.Context, a Automation, log *ent.AuditLog) (*ent.AuditLog, error) {
	if log.Status != auditlog.StatusApproved {
		return nil, fmt.Errorf("audit log %s is %s, not approved: %w",
			log.ID, log.Status, services.ErrInvalidTransition)
	}

	output, err := a.Execute(ctx, Action{
		Name:     log.ActionName,
		Model:    log.Model,
		RecordID: log.RecordID,
		Changes:  log.ChangesMade,
	})
	if err != nil {
		e.logger.Error("approved action failed",
			"audit_log_id", log.ID, "action", log.ActionName, "error", err)
		return e.audit.MarkFailed(ctx, log.ID, err.Error())
	}
	return e.audit.MarkExecuted(ctx, log.ID, output)
}

// gate persists the audit row for a result and, when confidence clears the
// auto-approve threshold, applies the side effect. ev is nil for scan
// results, which have no triggering event to snapshot.
func (e *Engine) gate(ctx context.Context, a Automation, res *Result, ev *Event, scanDay *time.Time) (*Outcome, error) {
	rule, err := e.audit.ResolveRule(ctx, a.Type(), res.ActionName)
	if err != nil {
		return nil, err
	}
	if !rule.Enabled {
		return &Outcome{Disposition: DispositionDisabled, Result: res}, nil
	}

	input := services.CreateAuditInput{
		AutomationType: a.Type(),
		ActionName:     res.ActionName,
		Model:          res.Model,
		RecordID:       res.RecordID,
		Confidence:     res.Confidence,
		Reasoning:      res.Reasoning,
		TokensUsed:     res.TokensUsed,
		ScanDay:        scanDay,
	}
	if ev != nil {
		input.InputSnapshot = eventSnapshot(ev)
	}

	var disposition Disposition
	switch {
	case !res.Success:
		disposition = DispositionFailed
		input.Status = auditlog.StatusFailed
	case res.Confidence >= rule.AutoApproveThreshold && !res.NeedsApproval:
		// Audit row first, side effect second. The output snapshot starts
		// as the proposed changes; MarkExecuted overwrites it with the
		// actual output once the side effect lands.
		disposition = DispositionExecuted
		input.Status = auditlog.StatusPending
		input.ChangesMade = res.ChangesMade
		input.OutputSnapshot = proposedSnapshot(res)
	case res.Confidence >= rule.ConfidenceThreshold:
		disposition = DispositionPending
		input.Status = auditlog.StatusPending
		input.ChangesMade = res.ChangesMade
		input.OutputSnapshot = proposedSnapshot(res)
	default:
		// Below the approval threshold: a note. No side effect, no
		// approval request, empty changes.
		disposition = DispositionNote
		input.Status = auditlog.StatusExecuted
		input.ChangesMade = map[string]interface{}{}
		input.OutputSnapshot = map[string]interface{}{"note": res.Reasoning}
	}

	log, err := e.audit.CreateLog(ctx, input)
	if err != nil {
		return nil, err
	}
	if disposition == DispositionFailed && res.Error != "" {
		if log, err = e.audit.MarkFailed(ctx, log.ID, res.Error); err != nil {
			return nil, err
		}
	}

	if disposition == DispositionExecuted {
		output, execErr := a.Execute(ctx, Action{
			Name:     res.ActionName,
			Model:    res.Model,
			RecordID: res.RecordID,
			Changes:  res.ChangesMade,
		})
		if execErr != nil {
			e.logger.Error("auto-execution failed",
				"automation", a.Type(), "action", res.ActionName, "error", execErr)
			disposition = DispositionFailed
			if log, err = e.audit.MarkFailed(ctx, log.ID, execErr.Error()); err != nil {
				return nil, err
			}
		} else {
			if log, err = e.audit.MarkExecuted(ctx, log.ID, output); err != nil {
				return nil, err
			}
		}
	}

	e.publishAudit(ctx, log)
	return &Outcome{Disposition: disposition, Result: res, AuditLog: log}, nil
}

// eventSnapshot captures the triggering event's payload for the audit row.
func eventSnapshot(ev *Event) map[string]interface{} {
	snap := map[string]interface{}{"values": ev.Values}
	if ev.OldValues != nil {
		snap["old_values"] = ev.OldValues
	}
	return snap
}

// proposedSnapshot is the output snapshot recorded before execution: the
// changes the handler proposed. Non-failed rows always carry one.
func proposedSnapshot(res *Result) map[string]interface{} {
	if res.ChangesMade == nil {
		return map[string]interface{}{}
	}
	return res.ChangesMade
}

// enabled checks the automation-wide rule row.
func (e *Engine) enabled(ctx context.Context, automationType string) (bool, error) {
	rule, err := e.audit.ResolveRule(ctx, automationType, "")
	if err != nil {
		return false, err
	}
	return rule.Enabled, nil
}

// publishAudit broadcasts the audit row to the live feed. Best effort.
func (e *Engine) publishAudit(ctx context.Context, log *ent.AuditLog) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishAuditCreated(ctx, events.AuditCreatedPayload{
		Type:           events.EventTypeAuditCreated,
		AuditLogID:     log.ID,
		AutomationType: log.AutomationType,
		ActionName:     log.ActionName,
		Model:          log.Model,
		RecordID:       log.RecordID,
		Status:         string(log.Status),
		Confidence:     log.Confidence,
		Timestamp:      time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		e.logger.Warn("failed to publish audit event", "audit_log_id", log.ID, "error", err)
	}
}
