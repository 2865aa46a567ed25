package automations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/closingstep"
	"github.com/steward-ai/steward/ent/monthendclosing"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/period"
	"github.com/steward-ai/steward/pkg/services"
)

// Severity of a close issue.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// closeChecklist is the ordered default checklist for a close cycle, with
// the severity an open issue on that step carries.
var closeChecklist = []struct {
	Name     string
	Severity Severity
}{
	{"unposted_entries", SeverityCritical},
	{"bank_reconciliation", SeverityHigh},
	{"vat_review", SeverityHigh},
	{"accruals", SeverityMedium},
	{"depreciation", SeverityMedium},
	{"intercompany", SeverityMedium},
	{"reporting", SeverityLow},
}

// ReadinessInput feeds the close readiness score.
type ReadinessInput struct {
	TotalIssues   int
	PendingReview int
	Anomalies     int
	Critical      int
	High          int
}

// ReadinessScore computes the 0-100 close readiness score: base 100 minus
// 20 per critical issue, 10 per high issue, 5 per anomaly, and 20 scaled
// by the pending-review share.
func ReadinessScore(in ReadinessInput) float64 {
	score := 100.0
	score -= 20.0 * float64(in.Critical)
	score -= 10.0 * float64(in.High)
	score -= 5.0 * float64(in.Anomalies)
	if in.TotalIssues > 0 {
		score -= 20.0 * float64(in.PendingReview) / float64(in.TotalIssues)
	}
	return clamp(score, 0, 100)
}

// StepSeverity classifies an issue on a checklist step.
func StepSeverity(stepName string) Severity {
	for _, s := range closeChecklist {
		if s.Name == stepName {
			return s.Severity
		}
	}
	return SeverityMedium
}

// MonthEnd runs month-end close cycles: checklist creation, progress
// tracking, and readiness scoring.
type MonthEnd struct {
	client *ent.Client
	erp    erp.Client
}

// NewMonthEnd creates the month-end automation.
func NewMonthEnd(client *ent.Client, erpClient erp.Client) *MonthEnd {
	if client == nil {
		panic("NewMonthEnd: ent client must not be nil")
	}
	if erpClient == nil {
		panic("NewMonthEnd: erp client must not be nil")
	}
	return &MonthEnd{client: client, erp: erpClient}
}

// Type implements automation.Automation.
func (m *MonthEnd) Type() string { return "monthend" }

// WatchedModels implements automation.Automation.
func (m *MonthEnd) WatchedModels() []string { return []string{"account.move"} }

// Handlers implements automation.Automation. Postings into a period being
// closed need review.
func (m *MonthEnd) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "account.move"}: m.onMovePosted,
	}
}

// Scans implements automation.Automation.
func (m *MonthEnd) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_close_progress": m.scanCloseProgress,
	}
}

// Execute implements automation.Automation. Close decisions are reviewed in
// the close workflow itself; nothing replays against the ERP.
func (m *MonthEnd) Execute(_ context.Context, action automation.Action) (map[string]interface{}, error) {
	return nil, fmt.Errorf("monthend: unknown action %q", action.Name)
}

// onMovePosted flags journal entries dated into a period with an active
// close cycle.
func (m *MonthEnd) onMovePosted(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	date, ok := parseERPDate(erp.Str(ev.Values["date"]))
	if !ok {
		return &automation.Result{
			Success:     true,
			ActionName:  "close_period_guard",
			Confidence:  0.10,
			Reasoning:   "journal entry has no date; nothing to guard",
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	p := period.Of(date)
	closing, err := m.client.MonthEndClosing.Query().
		Where(
			monthendclosing.Period(p.String()),
			monthendclosing.StatusIn(monthendclosing.StatusInProgress, monthendclosing.StatusReview),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &automation.Result{
				Success:     true,
				ActionName:  "close_period_guard",
				Confidence:  0.10,
				Reasoning:   fmt.Sprintf("no active close for period %s", p),
				ChangesMade: map[string]interface{}{},
			}, nil
		}
		return nil, err
	}

	return &automation.Result{
		Success:    true,
		ActionName: "close_period_guard",
		RecordID:   ev.RecordID,
		Confidence: 0.88, // needs a human look, not automatic reversal
		Reasoning: fmt.Sprintf("journal entry %d posted into period %s while close %s is %s",
			ev.RecordID, p, closing.ID, closing.Status),
		ChangesMade: map[string]interface{}{
			"closing_id": closing.ID,
			"period":     p.String(),
		},
		NeedsApproval: true,
	}, nil
}

// StartClose opens a close cycle for a YYYY-MM period with the default
// checklist. One cycle per period.
func (m *MonthEnd) StartClose(ctx context.Context, periodStr string) (*ent.MonthEndClosing, error) {
	p, err := period.Parse(periodStr)
	if err != nil {
		return nil, services.NewValidationError("period", err.Error())
	}

	exists, err := m.client.MonthEndClosing.Query().
		Where(monthendclosing.Period(p.String())).
		Exist(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("close cycle for %s already exists: %w", p, services.ErrAlreadyExists)
	}

	closing, err := m.client.MonthEndClosing.Create().
		SetID(uuid.NewString()).
		SetPeriod(p.String()).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	for i, step := range closeChecklist {
		_, err := m.client.ClosingStep.Create().
			SetID(uuid.NewString()).
			SetClosingID(closing.ID).
			SetStepName(step.Name).
			SetStepIndex(i).
			Save(ctx)
		if err != nil {
			return nil, err
		}
	}
	return closing, nil
}

// Status returns a close cycle with its checklist for a period.
func (m *MonthEnd) Status(ctx context.Context, periodStr string) (*ent.MonthEndClosing, error) {
	p, err := period.Parse(periodStr)
	if err != nil {
		return nil, services.NewValidationError("period", err.Error())
	}
	closing, err := m.client.MonthEndClosing.Query().
		Where(monthendclosing.Period(p.String())).
		WithSteps(func(q *ent.ClosingStepQuery) {
			q.Order(ent.Asc(closingstep.FieldStepIndex))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return closing, nil
}

// CompleteStep marks one checklist step completed and refreshes readiness.
func (m *MonthEnd) CompleteStep(ctx context.Context, closingID, stepName string) (*ent.MonthEndClosing, error) {
	n, err := m.client.ClosingStep.Update().
		Where(
			closingstep.ClosingID(closingID),
			closingstep.StepName(stepName),
			closingstep.StatusNEQ(closingstep.StatusCompleted),
		).
		SetStatus(closingstep.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, services.ErrNotFound
	}
	return m.refreshReadiness(ctx, closingID)
}

// BlockStep marks one checklist step blocked with a reason.
func (m *MonthEnd) BlockStep(ctx context.Context, closingID, stepName, reason string) error {
	n, err := m.client.ClosingStep.Update().
		Where(
			closingstep.ClosingID(closingID),
			closingstep.StepName(stepName),
		).
		SetStatus(closingstep.StatusBlocked).
		SetBlockedReason(reason).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return services.ErrNotFound
	}
	_, err = m.refreshReadiness(ctx, closingID)
	return err
}

// refreshReadiness recomputes the readiness score from the checklist state
// and promotes the cycle to review once every step is completed or skipped.
func (m *MonthEnd) refreshReadiness(ctx context.Context, closingID string) (*ent.MonthEndClosing, error) {
	steps, err := m.client.ClosingStep.Query().
		Where(closingstep.ClosingID(closingID)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	var in ReadinessInput
	done := 0
	for _, s := range steps {
		switch s.Status {
		case closingstep.StatusCompleted, closingstep.StatusSkipped:
			done++
		case closingstep.StatusBlocked:
			in.TotalIssues++
			switch StepSeverity(s.StepName) {
			case SeverityCritical:
				in.Critical++
			case SeverityHigh:
				in.High++
			}
		default:
			in.TotalIssues++
			in.PendingReview++
		}
	}

	update := m.client.MonthEndClosing.UpdateOneID(closingID).
		SetReadinessScore(ReadinessScore(in)).
		SetSummary(map[string]interface{}{
			"steps_total":    len(steps),
			"steps_done":     done,
			"open_issues":    in.TotalIssues,
			"pending_review": in.PendingReview,
		})
	if done == len(steps) {
		update.SetStatus(monthendclosing.StatusReview)
	}
	closing, err := update.Save(ctx)
	if err != nil {
		return nil, err
	}
	return closing, nil
}

// CompleteClose finishes a cycle that is in review.
func (m *MonthEnd) CompleteClose(ctx context.Context, closingID string) (*ent.MonthEndClosing, error) {
	closing, err := m.client.MonthEndClosing.Get(ctx, closingID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	if closing.Status != monthendclosing.StatusReview {
		return nil, fmt.Errorf("close %s is %s, not review: %w", closingID, closing.Status, services.ErrInvalidTransition)
	}
	return closing.Update().
		SetStatus(monthendclosing.StatusCompleted).
		SetCompletedAt(time.Now()).
		Save(ctx)
}

// scanCloseProgress refreshes readiness for active cycles and reports low
// scores.
func (m *MonthEnd) scanCloseProgress(ctx context.Context, _ time.Time) ([]*automation.Result, error) {
	active, err := m.client.MonthEndClosing.Query().
		Where(monthendclosing.StatusEQ(monthendclosing.StatusInProgress)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	var results []*automation.Result
	for _, closing := range active {
		refreshed, err := m.refreshReadiness(ctx, closing.ID)
		if err != nil {
			return results, err
		}
		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "close_progress",
			Confidence: 0.40,
			Reasoning: fmt.Sprintf("close %s readiness %.1f for period %s",
				closing.ID, refreshed.ReadinessScore, closing.Period),
			ChangesMade: map[string]interface{}{},
		})
	}
	return results, nil
}
