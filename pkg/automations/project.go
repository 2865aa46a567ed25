package automations

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
)

// hoursOverrunThreshold is the ratio of logged to planned hours above
// which a task is flagged.
const hoursOverrunThreshold = 1.2

// Project watches project tasks: hour overruns are flagged when a task
// moves stage, and a scan chases tasks past their deadline.
type Project struct {
	erp erp.Client
}

// NewProject creates the project automation.
func NewProject(erpClient erp.Client) *Project {
	if erpClient == nil {
		panic("NewProject: erp client must not be nil")
	}
	return &Project{erp: erpClient}
}

// Type implements automation.Automation.
func (p *Project) Type() string { return "project" }

// WatchedModels implements automation.Automation.
func (p *Project) WatchedModels() []string { return []string{"project.task"} }

// Handlers implements automation.Automation.
func (p *Project) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "write", Model: "project.task"}: p.onTaskWritten,
	}
}

// Scans implements automation.Automation.
func (p *Project) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_overdue_tasks": p.scanOverdueTasks,
	}
}

// Execute implements automation.Automation. Both actions materialise as a
// follow-up activity on the task.
func (p *Project) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	switch action.Name {
	case "flag_hours_overrun", "chase_overdue_task":
		activityID, err := p.erp.Create(ctx, "mail.activity", map[string]interface{}{
			"res_model":     action.Model,
			"res_id":        action.RecordID,
			"summary":       action.Changes["summary"],
			"date_deadline": action.Changes["date_deadline"],
		})
		if err != nil {
			return nil, fmt.Errorf("creating activity on task %d: %w", action.RecordID, err)
		}
		return map[string]interface{}{"activity_id": activityID, "task_id": action.RecordID}, nil
	default:
		return nil, fmt.Errorf("project: unknown action %q", action.Name)
	}
}

// onTaskWritten checks logged hours against the plan whenever a task moves
// stage. Other writes pass through as notes.
func (p *Project) onTaskWritten(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	if _, ok := ev.Values["stage_id"]; !ok {
		return &automation.Result{
			Success:     true,
			ActionName:  "flag_hours_overrun",
			Confidence:  0.10,
			Reasoning:   "task update does not move stage",
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	task, err := p.erp.Read(ctx, "project.task", ev.RecordID,
		[]string{"name", "planned_hours", "effective_hours"})
	if err != nil {
		return nil, fmt.Errorf("reading task %d: %w", ev.RecordID, err)
	}

	planned := erp.Float(task["planned_hours"])
	logged := erp.Float(task["effective_hours"])
	if planned <= 0 || logged <= planned*hoursOverrunThreshold {
		return &automation.Result{
			Success:     true,
			ActionName:  "flag_hours_overrun",
			Model:       "project.task",
			RecordID:    ev.RecordID,
			Confidence:  0.10,
			Reasoning:   fmt.Sprintf("task %d hours within plan", ev.RecordID),
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	return &automation.Result{
		Success:    true,
		ActionName: "flag_hours_overrun",
		Model:      "project.task",
		RecordID:   ev.RecordID,
		Confidence: 0.88,
		Reasoning: fmt.Sprintf("task %d (%s) logged %.1fh against %.1fh planned",
			ev.RecordID, erp.Str(task["name"]), logged, planned),
		ChangesMade: map[string]interface{}{
			"summary":       fmt.Sprintf("Hours overrun: %.1fh logged vs %.1fh planned", logged, planned),
			"date_deadline": time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
			"logged_hours":  logged,
			"planned_hours": planned,
		},
	}, nil
}

// scanOverdueTasks chases open tasks whose deadline has passed.
func (p *Project) scanOverdueTasks(ctx context.Context, day time.Time) ([]*automation.Result, error) {
	overdue, err := p.erp.SearchRead(ctx, "project.task",
		erp.NewDomain(
			erp.Condition("is_closed", "=", false),
			erp.Condition("date_deadline", "<", day.Format("2006-01-02")),
		),
		erp.SearchOptions{Fields: []string{"id", "name", "date_deadline", "user_ids"}})
	if err != nil {
		return nil, fmt.Errorf("finding overdue tasks: %w", err)
	}

	results := make([]*automation.Result, 0, len(overdue))
	for _, task := range overdue {
		id := erp.Int(task["id"])
		daysLate := 0
		if deadline, ok := parseERPDate(erp.Str(task["date_deadline"])); ok {
			daysLate = int(day.Sub(deadline).Hours() / 24)
		}

		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "chase_overdue_task",
			Model:      "project.task",
			RecordID:   id,
			Confidence: 0.90,
			Reasoning: fmt.Sprintf("task %d (%s) is %d days past its deadline",
				id, erp.Str(task["name"]), daysLate),
			ChangesMade: map[string]interface{}{
				"summary":       fmt.Sprintf("Task overdue by %d days", daysLate),
				"date_deadline": day.AddDate(0, 0, 1).Format("2006-01-02"),
			},
		})
	}
	return results, nil
}
