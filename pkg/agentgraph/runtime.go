package agentgraph

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/agentstep"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/events"
	"github.com/steward-ai/steward/pkg/services"
)

// Runtime executes compiled agent graphs with guardrail enforcement, step
// persistence and suspend/resume. Graphs are registered once at startup;
// compilation happens exactly once per process.
type Runtime struct {
	runs      *services.RunService
	limits    *config.AgentRegistry
	publisher *events.EventPublisher
	graphs    map[string]*CompiledGraph
	logger    *slog.Logger
}

// NewRuntime creates an empty Runtime. Register agents before Execute.
func NewRuntime(runs *services.RunService, limits *config.AgentRegistry, publisher *events.EventPublisher) *Runtime {
	if runs == nil {
		panic("NewRuntime: run service must not be nil")
	}
	if limits == nil {
		panic("NewRuntime: agent registry must not be nil")
	}
	return &Runtime{
		runs:      runs,
		limits:    limits,
		publisher: publisher,
		graphs:    make(map[string]*CompiledGraph),
		logger:    slog.With("component", "agentgraph.runtime"),
	}
}

// RegisterAgent compiles and caches the graph for an agent type.
func (r *Runtime) RegisterAgent(agentType string, g *Graph) error {
	if _, exists := r.graphs[agentType]; exists {
		return fmt.Errorf("agent type %q registered twice", agentType)
	}
	if !r.limits.Has(agentType) {
		return fmt.Errorf("agent type %q has no configured limits", agentType)
	}
	compiled, err := g.Compile()
	if err != nil {
		return fmt.Errorf("agent %q: %w", agentType, err)
	}
	r.graphs[agentType] = compiled
	return nil
}

// Has reports whether an agent type is registered.
func (r *Runtime) Has(agentType string) bool {
	_, ok := r.graphs[agentType]
	return ok
}

// Execute drives one claimed run to a terminal or suspended state. The run
// must already be marked running by the caller (the worker pool). Fresh
// runs start at the graph's start node; resumed runs continue past the
// node they suspended at, with the resume data merged into the state.
func (r *Runtime) Execute(ctx context.Context, run *ent.AgentRun) *RunOutcome {
	logger := r.logger.With("run_id", run.ID, "agent_type", run.AgentType)

	graph, ok := r.graphs[run.AgentType]
	if !ok {
		return r.failRun(ctx, run, nil, "", fmt.Sprintf("unknown agent type %q", run.AgentType))
	}
	limits, err := r.limits.Get(run.AgentType)
	if err != nil {
		return r.failRun(ctx, run, nil, "", fmt.Sprintf("no limits for agent type %q", run.AgentType))
	}

	// Resumed runs carry their frozen state in final_state; fresh runs
	// start from initial_state.
	var state State
	if len(run.FinalState) > 0 {
		state = State(run.FinalState).Clone()
	} else {
		state = State(run.InitialState).Clone()
	}
	if state == nil {
		state = make(State)
	}

	node := graph.start
	if run.CurrentStep != nil && *run.CurrentStep != "" && run.TotalSteps > 0 {
		// The suspended node already ran; continue along its outgoing edge
		// with the merged resume data in the state.
		node, err = graph.next(*run.CurrentStep, state)
		if err != nil {
			return r.failRun(ctx, run, state, "", err.Error())
		}
	}

	stepCount := run.TotalSteps
	tokenCount := run.TokenUsage

	// Terminal bookkeeping must land even when the run context is
	// cancelled mid-node.
	persistCtx := context.WithoutCancel(ctx)

	for {
		if err := ctx.Err(); err != nil {
			logger.Info("run cancelled", "at_node", node)
			if _, cerr := r.runs.Cancel(persistCtx, run.ID); cerr != nil {
				logger.Error("failed to mark run cancelled", "error", cerr)
			}
			r.publishRunStatus(run, "cancelled", "")
			return &RunOutcome{Kind: OutcomeCancelled, FinalState: state}
		}

		if node == END {
			if _, err := r.runs.Complete(persistCtx, run.ID, state); err != nil {
				logger.Error("failed to mark run completed", "error", err)
			}
			r.publishRunStatus(run, "completed", "")
			return &RunOutcome{Kind: OutcomeCompleted, FinalState: state}
		}

		fn, ok := graph.nodes[node]
		if !ok {
			return r.failRun(ctx, run, state, "", fmt.Sprintf("graph routed to unknown node %q", node))
		}

		input := state.Clone()
		started := time.Now()
		res, err := fn(ctx, state)
		duration := time.Since(started)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("run cancelled inside node", "at_node", node)
				if _, cerr := r.runs.Cancel(persistCtx, run.ID); cerr != nil {
					logger.Error("failed to mark run cancelled", "error", cerr)
				}
				r.publishRunStatus(run, "cancelled", "")
				return &RunOutcome{Kind: OutcomeCancelled, FinalState: state}
			}
			// Persist the failed step, then fail the run with the partial
			// state preserved.
			r.recordStep(persistCtx, logger, run.ID, node, stepCount, agentstep.StatusFailed,
				input, nil, duration, 0, nil)
			return r.failRun(persistCtx, run, state, "", fmt.Sprintf("node %q failed: %v", node, err))
		}
		if res == nil {
			res = &NodeResult{}
		}

		if res.Updates != nil {
			state.Merge(res.Updates)
		}
		visits := state.visit(node)

		stepTokens := res.Tokens
		for _, d := range res.Decisions {
			stepTokens += d.TokensIn + d.TokensOut
		}
		stepCount++
		tokenCount += stepTokens

		r.recordStep(persistCtx, logger, run.ID, node, stepCount-1, agentstep.StatusCompleted,
			input, res.Updates, duration, stepTokens, res.Decisions)

		if stepCount > limits.MaxSteps {
			return r.guardrail(persistCtx, run, state, GuardrailStepLimit,
				fmt.Sprintf("Step limit exceeded: %d steps (max %d)", stepCount, limits.MaxSteps))
		}
		if tokenCount > limits.MaxTokens {
			return r.guardrail(persistCtx, run, state, GuardrailTokenBudget,
				fmt.Sprintf("Token budget exceeded: %d tokens (max %d)", tokenCount, limits.MaxTokens))
		}
		if visits > limits.LoopThreshold {
			return r.guardrail(persistCtx, run, state, GuardrailLoop,
				fmt.Sprintf("Loop detected: node %q visited %d times (max %d)", node, visits, limits.LoopThreshold))
		}

		if res.NeedsSuspension {
			condition := res.ResumeCondition
			if condition == "" {
				condition = "awaiting_external_event"
			}
			timeoutAt := time.Now().Add(limits.SuspensionTimeout)
			if _, err := r.runs.Suspend(persistCtx, run.ID, condition, node, timeoutAt, state); err != nil {
				return r.failRun(persistCtx, run, state, "", fmt.Sprintf("failed to suspend: %v", err))
			}
			logger.Info("run suspended", "at_node", node, "condition", condition, "timeout_at", timeoutAt)
			r.publishRunStatus(run, "suspended", "")
			return &RunOutcome{Kind: OutcomeSuspended, FinalState: state}
		}

		node, err = graph.next(node, state)
		if err != nil {
			return r.failRun(persistCtx, run, state, "", err.Error())
		}
	}
}

// recordStep persists one step row plus its decisions. Persistence failures
// are logged, not fatal: losing a step record must not kill the run.
func (r *Runtime) recordStep(ctx context.Context, logger *slog.Logger, runID, name string, index int,
	status agentstep.Status, input, output State, duration time.Duration, tokens int, decisions []DecisionDraft) {

	step, err := r.runs.RecordStep(ctx, services.RecordStepInput{
		RunID:          runID,
		StepName:       name,
		StepIndex:      index,
		Status:         status,
		InputSnapshot:  input,
		OutputSnapshot: output,
		Duration:       duration,
		Tokens:         tokens,
	})
	if err != nil {
		logger.Error("failed to record step", "step_name", name, "step_index", index, "error", err)
		return
	}

	for _, d := range decisions {
		_, err := r.runs.RecordDecision(ctx, services.RecordDecisionInput{
			StepID:            step.ID,
			RunID:             runID,
			PromptFingerprint: d.PromptFingerprint,
			ResponsePayload:   d.ResponsePayload,
			Confidence:        d.Confidence,
			TokensIn:          d.TokensIn,
			TokensOut:         d.TokensOut,
			ToolsInvoked:      d.ToolsInvoked,
		})
		if err != nil {
			logger.Error("failed to record decision", "step_id", step.ID, "error", err)
		}
	}

	r.publishStepStatus(runID, step, status)
}

func (r *Runtime) guardrail(ctx context.Context, run *ent.AgentRun, state State, kind GuardrailKind, detail string) *RunOutcome {
	r.logger.Warn("guardrail violation",
		"run_id", run.ID, "agent_type", run.AgentType, "guardrail", kind, "detail", detail)
	outcome := r.failRun(ctx, run, state, kind, detail)
	return outcome
}

func (r *Runtime) failRun(ctx context.Context, run *ent.AgentRun, state State, guardrail GuardrailKind, reason string) *RunOutcome {
	if _, err := r.runs.Fail(ctx, run.ID, reason, state); err != nil {
		r.logger.Error("failed to mark run failed", "run_id", run.ID, "error", err)
	}
	r.publishRunStatus(run, "failed", reason)
	return &RunOutcome{Kind: OutcomeFailed, Guardrail: guardrail, Error: reason, FinalState: state}
}

func (r *Runtime) publishRunStatus(run *ent.AgentRun, status, errMsg string) {
	if r.publisher == nil {
		return
	}
	// Publishing is decoupled from the run's own lifecycle writes; use a
	// short independent context so a dying caller still emits the event.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := r.publisher.PublishRunStatus(ctx, run.ID, events.RunStatusPayload{
		Type:      events.EventTypeRunStatus,
		RunID:     run.ID,
		AgentType: run.AgentType,
		Status:    status,
		Error:     errMsg,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		r.logger.Warn("failed to publish run status", "run_id", run.ID, "error", err)
	}
}

func (r *Runtime) publishStepStatus(runID string, step *ent.AgentStep, status agentstep.Status) {
	if r.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := r.publisher.PublishStepStatus(ctx, runID, events.StepStatusPayload{
		Type:      events.EventTypeStepStatus,
		RunID:     runID,
		StepID:    step.ID,
		StepName:  step.StepName,
		StepIndex: step.StepIndex,
		Status:    string(status),
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		r.logger.Warn("failed to publish step status", "run_id", runID, "error", err)
	}
}
