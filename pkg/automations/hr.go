package automations

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
)

// expensePolicyLimits caps what an expense may claim per category before a
// manager has to look at it. Categories come from the expense product code.
var expensePolicyLimits = map[string]float64{
	"EXP_TRAVEL": 500.0,
	"EXP_MEAL":   80.0,
	"EXP_COMM":   120.0,
}

// expenseDefaultLimit applies when the category has no explicit cap.
const expenseDefaultLimit = 200.0

// staleLeaveDays is how long a leave request may wait for its manager
// before the scan chases the approval.
const staleLeaveDays = 5

// HR watches employee expenses: claims within policy are approved
// automatically, the rest go to a manager. A scan chases leave requests
// stuck waiting for approval.
type HR struct {
	erp erp.Client
}

// NewHR creates the HR automation.
func NewHR(erpClient erp.Client) *HR {
	if erpClient == nil {
		panic("NewHR: erp client must not be nil")
	}
	return &HR{erp: erpClient}
}

// Type implements automation.Automation.
func (h *HR) Type() string { return "hr" }

// WatchedModels implements automation.Automation.
func (h *HR) WatchedModels() []string { return []string{"hr.expense", "hr.leave"} }

// Handlers implements automation.Automation.
func (h *HR) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "hr.expense"}: h.onExpenseCreated,
	}
}

// Scans implements automation.Automation.
func (h *HR) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_stale_leave_requests": h.scanStaleLeaveRequests,
	}
}

// Execute implements automation.Automation.
func (h *HR) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	switch action.Name {
	case "approve_expense":
		_, err := h.erp.ExecuteMethod(ctx, "hr.expense", "action_approve", []int64{action.RecordID})
		if err != nil {
			return nil, fmt.Errorf("approving expense %d: %w", action.RecordID, err)
		}
		return map[string]interface{}{"approved": true, "expense_id": action.RecordID}, nil
	case "chase_leave_approval":
		activityID, err := h.erp.Create(ctx, "mail.activity", map[string]interface{}{
			"res_model":     action.Model,
			"res_id":        action.RecordID,
			"summary":       action.Changes["summary"],
			"date_deadline": action.Changes["date_deadline"],
		})
		if err != nil {
			return nil, fmt.Errorf("creating activity on leave %d: %w", action.RecordID, err)
		}
		return map[string]interface{}{"activity_id": activityID, "leave_id": action.RecordID}, nil
	default:
		return nil, fmt.Errorf("hr: unknown action %q", action.Name)
	}
}

// onExpenseCreated checks a fresh claim against the category policy. A
// claim under the cap with a receipt attached approves itself; everything
// else waits for the manager.
func (h *HR) onExpenseCreated(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	amount := erp.Float(ev.Values["total_amount"])
	category := erp.Str(ev.Values["product_code"])
	limit, ok := expensePolicyLimits[category]
	if !ok {
		limit = expenseDefaultLimit
	}

	if erp.Int(ev.Values["attachment_count"]) == 0 {
		return &automation.Result{
			Success:       true,
			ActionName:    "approve_expense",
			Model:         "hr.expense",
			RecordID:      ev.RecordID,
			Confidence:    0.88,
			Reasoning:     fmt.Sprintf("expense %d has no receipt attached", ev.RecordID),
			ChangesMade:   map[string]interface{}{"amount": amount, "category": category},
			NeedsApproval: true,
		}, nil
	}

	if amount > limit {
		return &automation.Result{
			Success:    true,
			ActionName: "approve_expense",
			Model:      "hr.expense",
			RecordID:   ev.RecordID,
			Confidence: 0.88,
			Reasoning: fmt.Sprintf("expense %d claims %.2f against a %.2f cap for %s",
				ev.RecordID, amount, limit, categoryLabel(category)),
			ChangesMade:   map[string]interface{}{"amount": amount, "category": category},
			NeedsApproval: true,
		}, nil
	}

	return &automation.Result{
		Success:    true,
		ActionName: "approve_expense",
		Model:      "hr.expense",
		RecordID:   ev.RecordID,
		Confidence: 0.96,
		Reasoning: fmt.Sprintf("expense %d claims %.2f, within the %.2f cap for %s, receipt attached",
			ev.RecordID, amount, limit, categoryLabel(category)),
		ChangesMade: map[string]interface{}{"amount": amount, "category": category},
	}, nil
}

// scanStaleLeaveRequests chases leave requests waiting on a manager for
// more than staleLeaveDays.
func (h *HR) scanStaleLeaveRequests(ctx context.Context, day time.Time) ([]*automation.Result, error) {
	cutoff := day.AddDate(0, 0, -staleLeaveDays)

	stale, err := h.erp.SearchRead(ctx, "hr.leave",
		erp.NewDomain(
			erp.Condition("state", "=", "confirm"),
			erp.Condition("create_date", "<", cutoff.Format("2006-01-02 15:04:05")),
		),
		erp.SearchOptions{Fields: []string{"id", "employee_id", "create_date", "number_of_days"}})
	if err != nil {
		return nil, fmt.Errorf("finding stale leave requests: %w", err)
	}

	results := make([]*automation.Result, 0, len(stale))
	for _, leave := range stale {
		id := erp.Int(leave["id"])
		waiting := staleLeaveDays
		if created, ok := parseERPDate(erp.Str(leave["create_date"])); ok {
			waiting = int(day.Sub(created).Hours() / 24)
		}

		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "chase_leave_approval",
			Model:      "hr.leave",
			RecordID:   id,
			Confidence: 0.90,
			Reasoning:  fmt.Sprintf("leave request %d waiting %d days for approval", id, waiting),
			ChangesMade: map[string]interface{}{
				"summary":       fmt.Sprintf("Leave request pending %d days", waiting),
				"date_deadline": day.AddDate(0, 0, 1).Format("2006-01-02"),
			},
		})
	}
	return results, nil
}

func categoryLabel(code string) string {
	if code == "" {
		return "uncategorised expenses"
	}
	return code
}
