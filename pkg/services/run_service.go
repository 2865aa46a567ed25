package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/agentdecision"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/ent/agentstep"
	"github.com/steward-ai/steward/ent/agentsuspension"
)

// CreateRunInput enqueues one agent run. The worker pool claims pending rows.
type CreateRunInput struct {
	AgentType    string
	TriggerType  string
	TriggerID    string
	InitialState map[string]interface{}
}

// RecordStepInput persists one completed (or failed) node execution.
type RecordStepInput struct {
	RunID          string
	StepName       string
	StepIndex      int
	Status         agentstep.Status
	InputSnapshot  map[string]interface{}
	OutputSnapshot map[string]interface{}
	Duration       time.Duration
	Tokens         int
}

// RecordDecisionInput persists one LLM call made inside a step.
type RecordDecisionInput struct {
	StepID            string
	RunID             string
	PromptFingerprint string
	ResponsePayload   map[string]interface{}
	Confidence        float64
	TokensIn          int
	TokensOut         int
	ToolsInvoked      []string
}

// RunFilter narrows ListRuns queries. Zero values mean "no filter".
type RunFilter struct {
	AgentType string
	Status    string
	Limit     int
	Offset    int
}

// RunService owns agent run, step, decision and suspension persistence.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	if client == nil {
		panic("NewRunService: client must not be nil")
	}
	return &RunService{client: client}
}

// CreateRun enqueues a run in "pending" status.
func (s *RunService) CreateRun(ctx context.Context, input CreateRunInput) (*ent.AgentRun, error) {
	if input.AgentType == "" {
		return nil, NewValidationError("agent_type", "agent type is required")
	}
	if input.TriggerType == "" {
		return nil, NewValidationError("trigger_type", "trigger type is required")
	}

	builder := s.client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetAgentType(input.AgentType).
		SetTriggerType(input.TriggerType).
		SetStatus(agentrun.StatusPending)
	if input.TriggerID != "" {
		builder.SetTriggerID(input.TriggerID)
	}
	if input.InitialState != nil {
		builder.SetInitialState(input.InitialState)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent run: %w", err)
	}
	return run, nil
}

// GetRun returns one run by id.
func (s *RunService) GetRun(ctx context.Context, id string) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent run %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent run: %w", err)
	}
	return run, nil
}

// GetRunDetail returns the run with its steps (ordered by step_index, each
// with its decisions) and suspensions eager-loaded.
func (s *RunService) GetRunDetail(ctx context.Context, id string) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Query().
		Where(agentrun.IDEQ(id)).
		WithSteps(func(q *ent.AgentStepQuery) {
			q.Order(ent.Asc(agentstep.FieldStepIndex)).
				WithDecisions(func(dq *ent.AgentDecisionQuery) {
					dq.Order(ent.Asc(agentdecision.FieldCreatedAt))
				})
		}).
		WithSuspensions(func(q *ent.AgentSuspensionQuery) {
			q.Order(ent.Asc(agentsuspension.FieldSuspendedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent run %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent run detail: %w", err)
	}
	return run, nil
}

// ListRuns returns runs matching the filter, newest first.
func (s *RunService) ListRuns(ctx context.Context, filter RunFilter) ([]*ent.AgentRun, error) {
	q := s.client.AgentRun.Query()
	if filter.AgentType != "" {
		q = q.Where(agentrun.AgentTypeEQ(filter.AgentType))
	}
	if filter.Status != "" {
		q = q.Where(agentrun.StatusEQ(agentrun.Status(filter.Status)))
	}
	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	runs, err := q.
		Order(ent.Desc(agentrun.FieldCreatedAt)).
		Limit(limit).
		Offset(filter.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent runs: %w", err)
	}
	return runs, nil
}

// RecordStep appends one step row and rolls the run's step/token counters
// forward in the same transaction.
func (s *RunService) RecordStep(ctx context.Context, input RecordStepInput) (*ent.AgentStep, error) {
	if input.RunID == "" {
		return nil, NewValidationError("run_id", "run id is required")
	}
	if input.StepName == "" {
		return nil, NewValidationError("step_name", "step name is required")
	}
	status := input.Status
	if status == "" {
		status = agentstep.StatusCompleted
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.AgentStep.Create().
		SetID(uuid.New().String()).
		SetRunID(input.RunID).
		SetStepName(input.StepName).
		SetStepIndex(input.StepIndex).
		SetStatus(status).
		SetDurationMs(int(input.Duration.Milliseconds())).
		SetTokens(input.Tokens)
	if input.InputSnapshot != nil {
		builder.SetInputSnapshot(input.InputSnapshot)
	}
	if input.OutputSnapshot != nil {
		builder.SetOutputSnapshot(input.OutputSnapshot)
	}
	step, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent step: %w", err)
	}

	// total_steps must equal the count of step rows; step_index is 0-based.
	_, err = tx.AgentRun.UpdateOneID(input.RunID).
		SetTotalSteps(input.StepIndex + 1).
		SetCurrentStep(input.StepName).
		AddTokenUsage(input.Tokens).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update run counters: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit step record: %w", err)
	}
	return step, nil
}

// RecordDecision appends one LLM decision row under a step.
func (s *RunService) RecordDecision(ctx context.Context, input RecordDecisionInput) (*ent.AgentDecision, error) {
	if input.StepID == "" {
		return nil, NewValidationError("step_id", "step id is required")
	}
	if input.RunID == "" {
		return nil, NewValidationError("run_id", "run id is required")
	}

	builder := s.client.AgentDecision.Create().
		SetID(uuid.New().String()).
		SetStepID(input.StepID).
		SetRunID(input.RunID).
		SetPromptFingerprint(input.PromptFingerprint).
		SetConfidence(input.Confidence).
		SetTokensIn(input.TokensIn).
		SetTokensOut(input.TokensOut)
	if input.ResponsePayload != nil {
		builder.SetResponsePayload(input.ResponsePayload)
	}
	if input.ToolsInvoked != nil {
		builder.SetToolsInvoked(input.ToolsInvoked)
	}

	decision, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent decision: %w", err)
	}
	return decision, nil
}

// MarkRunning transitions a claimed run to running and stamps started_at
// on first claim only (resumed runs keep the original start time).
func (s *RunService) MarkRunning(ctx context.Context, id string) (*ent.AgentRun, error) {
	run, err := s.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	builder := run.Update().
		SetStatus(agentrun.StatusRunning).
		SetLastHeartbeatAt(time.Now())
	if run.StartedAt == nil {
		builder.SetStartedAt(time.Now())
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark run %s running: %w", id, err)
	}
	return updated, nil
}

// Complete terminates the run successfully with its final state snapshot.
func (s *RunService) Complete(ctx context.Context, id string, finalState map[string]interface{}) (*ent.AgentRun, error) {
	builder := s.client.AgentRun.UpdateOneID(id).
		SetStatus(agentrun.StatusCompleted).
		SetCompletedAt(time.Now())
	if finalState != nil {
		builder.SetFinalState(finalState)
	}
	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent run %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to complete run %s: %w", id, err)
	}
	return run, nil
}

// Fail terminates the run with an error, preserving the partial state.
func (s *RunService) Fail(ctx context.Context, id, reason string, partialState map[string]interface{}) (*ent.AgentRun, error) {
	builder := s.client.AgentRun.UpdateOneID(id).
		SetStatus(agentrun.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(reason)
	if partialState != nil {
		builder.SetFinalState(partialState)
	}
	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent run %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fail run %s: %w", id, err)
	}
	return run, nil
}

// Cancel terminates a pending, running or suspended run.
func (s *RunService) Cancel(ctx context.Context, id string) (*ent.AgentRun, error) {
	run, err := s.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	switch run.Status {
	case agentrun.StatusPending, agentrun.StatusRunning, agentrun.StatusSuspended:
	default:
		return nil, fmt.Errorf("agent run %s is %s: %w", id, run.Status, ErrInvalidTransition)
	}
	updated, err := run.Update().
		SetStatus(agentrun.StatusCancelled).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel run %s: %w", id, err)
	}
	return updated, nil
}

// Suspend freezes the run at a wait point: the state snapshot is stored on
// the run, a suspension row with its timeout is opened, and the run leaves
// the worker.
func (s *RunService) Suspend(ctx context.Context, runID, condition, atStep string, timeoutAt time.Time, frozenState map[string]interface{}) (*ent.AgentSuspension, error) {
	if condition == "" {
		return nil, NewValidationError("resume_condition", "resume condition is required")
	}

	open, err := s.openSuspension(ctx, runID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, fmt.Errorf("run %s already has an open suspension: %w", runID, ErrAlreadyExists)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	suspension, err := tx.AgentSuspension.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetResumeCondition(condition).
		SetSuspendedAtStep(atStep).
		SetTimeoutAt(timeoutAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create suspension: %w", err)
	}

	builder := tx.AgentRun.UpdateOneID(runID).
		SetStatus(agentrun.StatusSuspended).
		SetCurrentStep(atStep).
		ClearPodID().
		ClearLastHeartbeatAt()
	if frozenState != nil {
		builder.SetFinalState(frozenState)
	}
	if _, err := builder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to suspend run %s: %w", runID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit suspension: %w", err)
	}
	return suspension, nil
}

// Resume validates the run is suspended, merges event data into the frozen
// state, closes the suspension row and re-enqueues the run as pending. The
// worker pool picks it up and execution continues from current_step.
func (s *RunService) Resume(ctx context.Context, runID string, eventData map[string]interface{}) (*ent.AgentRun, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != agentrun.StatusSuspended {
		return nil, fmt.Errorf("agent run %s is %s, not suspended: %w", runID, run.Status, ErrInvalidTransition)
	}

	open, err := s.openSuspension(ctx, runID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("run %s has no open suspension: %w", runID, ErrNotFound)
	}

	merged := make(map[string]interface{}, len(run.FinalState)+len(eventData))
	for k, v := range run.FinalState {
		merged[k] = v
	}
	for k, v := range eventData {
		merged[k] = v
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.AgentSuspension.UpdateOneID(open.ID).
		SetResumedAt(time.Now())
	if eventData != nil {
		builder.SetResumeData(eventData)
	}
	if _, err := builder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to close suspension: %w", err)
	}

	updated, err := tx.AgentRun.UpdateOneID(runID).
		SetStatus(agentrun.StatusPending).
		SetFinalState(merged).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to re-enqueue run %s: %w", runID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit resume: %w", err)
	}
	return updated, nil
}

// ExpireSuspensions fails every suspended run whose open suspension timed
// out before now. The suspension row stays open (resumed_at null) as the
// record of the unanswered wait. Returns the ids of failed runs.
func (s *RunService) ExpireSuspensions(ctx context.Context, now time.Time) ([]string, error) {
	expired, err := s.client.AgentSuspension.Query().
		Where(
			agentsuspension.ResumedAtIsNil(),
			agentsuspension.TimeoutAtLT(now),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired suspensions: %w", err)
	}

	var failed []string
	for _, susp := range expired {
		n, err := s.client.AgentRun.Update().
			Where(
				agentrun.IDEQ(susp.RunID),
				agentrun.StatusEQ(agentrun.StatusSuspended),
			).
			SetStatus(agentrun.StatusFailed).
			SetCompletedAt(now).
			SetErrorMessage("suspension_timeout").
			Save(ctx)
		if err != nil {
			return failed, fmt.Errorf("failed to expire run %s: %w", susp.RunID, err)
		}
		if n > 0 {
			failed = append(failed, susp.RunID)
		}
	}
	return failed, nil
}

// OpenSuspension returns the run's open suspension row, or ErrNotFound.
func (s *RunService) OpenSuspension(ctx context.Context, runID string) (*ent.AgentSuspension, error) {
	open, err := s.openSuspension(ctx, runID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, fmt.Errorf("run %s has no open suspension: %w", runID, ErrNotFound)
	}
	return open, nil
}

func (s *RunService) openSuspension(ctx context.Context, runID string) (*ent.AgentSuspension, error) {
	open, err := s.client.AgentSuspension.Query().
		Where(
			agentsuspension.RunIDEQ(runID),
			agentsuspension.ResumedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query open suspension: %w", err)
	}
	return open, nil
}
