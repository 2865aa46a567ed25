package automations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/pkg/automation"
)

func TestProjectOnTaskWritten_FlagsHoursOverrun(t *testing.T) {
	fake := newFakeERP()
	project := NewProject(fake)
	ctx := context.Background()

	fake.seed("project.task",
		map[string]any{"id": int64(55), "name": "API migration", "planned_hours": 20.0, "effective_hours": 31.0},
	)

	result, err := project.onTaskWritten(ctx, automation.Event{
		Type: "write", Model: "project.task", RecordID: 55,
		Values: map[string]interface{}{"stage_id": int64(4)},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "flag_hours_overrun", result.ActionName)
	assert.InDelta(t, 0.88, result.Confidence, 0.001)
	assert.InDelta(t, 31.0, result.ChangesMade["logged_hours"].(float64), 0.001)
	assert.Contains(t, result.Reasoning, "API migration")
}

func TestProjectOnTaskWritten_WithinPlanIsANote(t *testing.T) {
	fake := newFakeERP()
	project := NewProject(fake)
	ctx := context.Background()

	fake.seed("project.task",
		map[string]any{"id": int64(56), "name": "Docs", "planned_hours": 10.0, "effective_hours": 11.0},
	)

	result, err := project.onTaskWritten(ctx, automation.Event{
		Type: "write", Model: "project.task", RecordID: 56,
		Values: map[string]interface{}{"stage_id": int64(4)},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, result.Confidence, 0.001)
	assert.Empty(t, result.ChangesMade)
}

func TestProjectOnTaskWritten_IgnoresNonStageWrites(t *testing.T) {
	project := NewProject(newFakeERP())
	ctx := context.Background()

	result, err := project.onTaskWritten(ctx, automation.Event{
		Type: "write", Model: "project.task", RecordID: 55,
		Values: map[string]interface{}{"description": "updated"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, result.Confidence, 0.001)
	assert.Empty(t, result.ChangesMade)
}

func TestProjectScanOverdueTasks(t *testing.T) {
	fake := newFakeERP()
	project := NewProject(fake)
	ctx := context.Background()
	day := time.Now()

	fake.seed("project.task",
		map[string]any{
			"id": int64(60), "name": "Late task", "is_closed": false,
			"date_deadline": day.AddDate(0, 0, -6).Format("2006-01-02"),
		},
		map[string]any{
			"id": int64(61), "name": "Done task", "is_closed": true,
			"date_deadline": day.AddDate(0, 0, -6).Format("2006-01-02"),
		},
		map[string]any{
			"id": int64(62), "name": "Future task", "is_closed": false,
			"date_deadline": day.AddDate(0, 0, 6).Format("2006-01-02"),
		},
	)

	results, err := project.Scans()["scan_overdue_tasks"](ctx, day)
	require.NoError(t, err)
	require.Len(t, results, 1, "closed and future tasks are not chased")
	assert.EqualValues(t, 60, results[0].RecordID)
	assert.Equal(t, "chase_overdue_task", results[0].ActionName)
	assert.Contains(t, results[0].ChangesMade["summary"], "overdue")
}

func TestProjectExecute(t *testing.T) {
	fake := newFakeERP()
	project := NewProject(fake)
	ctx := context.Background()

	out, err := project.Execute(ctx, automation.Action{
		Name: "chase_overdue_task", Model: "project.task", RecordID: 60,
		Changes: map[string]interface{}{
			"summary":       "Task overdue by 6 days",
			"date_deadline": "2026-08-27",
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, out["activity_id"])
	require.Len(t, fake.creates, 1)
	assert.Equal(t, "project.task", fake.creates[0].Values["res_model"])

	_, err = project.Execute(ctx, automation.Action{Name: "nope"})
	require.Error(t, err)
}
