package agentgraph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/ent/agentstep"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLimits(agentType string, maxSteps int) *config.AgentRegistry {
	return config.NewAgentRegistry(map[string]*config.AgentConfig{
		agentType: {
			MaxSteps:          maxSteps,
			MaxTokens:         10_000,
			LoopThreshold:     3,
			SuspensionTimeout: time.Hour,
		},
	})
}

func setupRuntime(t *testing.T, agentType string, maxSteps int, g *Graph) (*Runtime, *services.RunService) {
	client, _ := util.SetupTestDatabase(t)
	runs := services.NewRunService(client)
	rt := NewRuntime(runs, testLimits(agentType, maxSteps), nil)
	require.NoError(t, rt.RegisterAgent(agentType, g))
	return rt, runs
}

func startRun(t *testing.T, runs *services.RunService, agentType string, initial map[string]interface{}) *ent.AgentRun {
	run, err := runs.CreateRun(context.Background(), services.CreateRunInput{
		AgentType:    agentType,
		TriggerType:  "api",
		InitialState: initial,
	})
	require.NoError(t, err)
	run, err = runs.MarkRunning(context.Background(), run.ID)
	require.NoError(t, err)
	return run
}

func linearGraph(names ...string) *Graph {
	g := NewGraph("test")
	for i, name := range names {
		name := name
		g.AddNode(name, func(_ context.Context, s State) (*NodeResult, error) {
			return &NodeResult{Updates: State{name + "_done": true}, Tokens: 10}, nil
		})
		if i > 0 {
			g.AddEdge(names[i-1], name)
		}
	}
	g.AddEdge(names[len(names)-1], END)
	g.SetStart(names[0])
	return g
}

func TestRuntime_CompletesLinearGraph(t *testing.T) {
	rt, runs := setupRuntime(t, "test_agent", 10, linearGraph("extract", "validate", "post"))
	run := startRun(t, runs, "test_agent", map[string]interface{}{"bill_id": 7.0})

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, OutcomeCompleted, outcome.Kind)
	assert.True(t, outcome.FinalState.Bool("post_done"))
	assert.Equal(t, 7.0, outcome.FinalState.Float("bill_id"))

	detail, err := runs.GetRunDetail(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, detail.Status)
	assert.Equal(t, 3, detail.TotalSteps)
	assert.Equal(t, 30, detail.TokenUsage)
	require.Len(t, detail.Edges.Steps, 3)
	for i, step := range detail.Edges.Steps {
		assert.Equal(t, i, step.StepIndex)
		assert.Equal(t, agentstep.StatusCompleted, step.Status)
	}
}

func TestRuntime_StepLimitGuardrail(t *testing.T) {
	// 3-node linear graph with max_steps=2: the run must fail on the
	// third node with a step-limit violation.
	rt, runs := setupRuntime(t, "test_agent", 2, linearGraph("a", "b", "c"))
	run := startRun(t, runs, "test_agent", nil)

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, OutcomeFailed, outcome.Kind)
	assert.Equal(t, GuardrailStepLimit, outcome.Guardrail)
	assert.Contains(t, outcome.Error, "Step limit")

	reloaded, err := runs.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Contains(t, *reloaded.ErrorMessage, "Step limit")
	// The partial state survives.
	assert.Equal(t, true, reloaded.FinalState["c_done"])
}

func TestRuntime_TokenBudgetGuardrail(t *testing.T) {
	g := NewGraph("test").
		AddNode("burn", func(context.Context, State) (*NodeResult, error) {
			return &NodeResult{Decisions: []DecisionDraft{{
				PromptFingerprint: "fp", TokensIn: 9_000, TokensOut: 2_000,
			}}}, nil
		}).
		AddEdge("burn", END).
		SetStart("burn")

	rt, runs := setupRuntime(t, "test_agent", 10, g)
	run := startRun(t, runs, "test_agent", nil)

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, OutcomeFailed, outcome.Kind)
	assert.Equal(t, GuardrailTokenBudget, outcome.Guardrail)
	assert.Contains(t, outcome.Error, "Token budget")

	// The decision was still recorded under the step.
	detail, err := runs.GetRunDetail(context.Background(), run.ID)
	require.NoError(t, err)
	require.Len(t, detail.Edges.Steps, 1)
	require.Len(t, detail.Edges.Steps[0].Edges.Decisions, 1)
	assert.Equal(t, 11_000, detail.TokenUsage)
}

func TestRuntime_LoopGuardrail(t *testing.T) {
	g := NewGraph("test").
		AddNode("retry", func(context.Context, State) (*NodeResult, error) {
			return &NodeResult{}, nil
		}).
		AddConditionalEdge("retry", func(State) string { return "again" },
			map[string]string{"again": "retry", "done": END}).
		SetStart("retry")

	rt, runs := setupRuntime(t, "test_agent", 100, g)
	run := startRun(t, runs, "test_agent", nil)

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, OutcomeFailed, outcome.Kind)
	assert.Equal(t, GuardrailLoop, outcome.Guardrail)
	assert.Contains(t, outcome.Error, "Loop detected")
}

func TestRuntime_NodeErrorFailsRun(t *testing.T) {
	g := NewGraph("test").
		AddNode("ok", func(context.Context, State) (*NodeResult, error) {
			return &NodeResult{Updates: State{"reached": true}}, nil
		}).
		AddNode("boom", func(context.Context, State) (*NodeResult, error) {
			return nil, errors.New("erp unreachable")
		}).
		AddEdge("ok", "boom").
		AddEdge("boom", END).
		SetStart("ok")

	rt, runs := setupRuntime(t, "test_agent", 10, g)
	run := startRun(t, runs, "test_agent", nil)

	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, OutcomeFailed, outcome.Kind)
	assert.Empty(t, outcome.Guardrail)
	assert.Contains(t, outcome.Error, "erp unreachable")
	// Partial state from the completed node is preserved.
	assert.True(t, outcome.FinalState.Bool("reached"))

	detail, err := runs.GetRunDetail(context.Background(), run.ID)
	require.NoError(t, err)
	require.Len(t, detail.Edges.Steps, 2)
	assert.Equal(t, agentstep.StatusCompleted, detail.Edges.Steps[0].Status)
	assert.Equal(t, agentstep.StatusFailed, detail.Edges.Steps[1].Status)
}

func TestRuntime_SuspendAndResume(t *testing.T) {
	approvalRouter := func(s State) string {
		if s.Bool("approved") {
			return "approved"
		}
		return "wait"
	}
	g := NewGraph("test").
		AddNode("draft", func(context.Context, State) (*NodeResult, error) {
			return &NodeResult{Updates: State{"bill_id": 9.0}}, nil
		}).
		AddNode("wait_approval", func(_ context.Context, s State) (*NodeResult, error) {
			return &NodeResult{
				NeedsSuspension: true,
				ResumeCondition: "awaiting_bill_approval",
			}, nil
		}).
		AddNode("post", func(context.Context, State) (*NodeResult, error) {
			return &NodeResult{Updates: State{"posted": true}}, nil
		}).
		AddEdge("draft", "wait_approval").
		AddConditionalEdge("wait_approval", approvalRouter,
			map[string]string{"approved": "post", "wait": "wait_approval"}).
		AddEdge("post", END).
		SetStart("draft")

	rt, runs := setupRuntime(t, "test_agent", 10, g)
	run := startRun(t, runs, "test_agent", nil)
	ctx := context.Background()

	outcome := rt.Execute(ctx, run)
	require.Equal(t, OutcomeSuspended, outcome.Kind)

	suspended, err := runs.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusSuspended, suspended.Status)
	susp, err := runs.OpenSuspension(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "awaiting_bill_approval", susp.ResumeCondition)
	assert.Equal(t, "wait_approval", susp.SuspendedAtStep)

	// External approval arrives; the run re-enqueues and a worker claims it.
	resumed, err := runs.Resume(ctx, run.ID, map[string]interface{}{"approved": true})
	require.NoError(t, err)
	resumed, err = runs.MarkRunning(ctx, resumed.ID)
	require.NoError(t, err)

	outcome = rt.Execute(ctx, resumed)
	require.Equal(t, OutcomeCompleted, outcome.Kind)
	assert.True(t, outcome.FinalState.Bool("posted"))
	assert.Equal(t, 9.0, outcome.FinalState.Float("bill_id"))

	detail, err := runs.GetRunDetail(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, detail.Status)
	// draft, wait_approval before suspension; post after resume.
	assert.Equal(t, 3, detail.TotalSteps)
	names := make([]string, 0, 3)
	for _, s := range detail.Edges.Steps {
		names = append(names, s.StepName)
	}
	assert.Equal(t, []string{"draft", "wait_approval", "post"}, names)
}

func TestRuntime_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := NewGraph("test").
		AddNode("first", func(context.Context, State) (*NodeResult, error) {
			cancel()
			return &NodeResult{}, nil
		}).
		AddNode("never", func(context.Context, State) (*NodeResult, error) {
			return &NodeResult{Updates: State{"ran": true}}, nil
		}).
		AddEdge("first", "never").
		AddEdge("never", END).
		SetStart("first")

	rt, runs := setupRuntime(t, "test_agent", 10, g)
	run := startRun(t, runs, "test_agent", nil)

	outcome := rt.Execute(ctx, run)
	require.Equal(t, OutcomeCancelled, outcome.Kind)
	assert.False(t, outcome.FinalState.Bool("ran"))

	reloaded, err := runs.GetRun(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCancelled, reloaded.Status)
}

func TestRuntime_UnknownAgentType(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	runs := services.NewRunService(client)
	rt := NewRuntime(runs, testLimits("known", 10), nil)

	run := startRun(t, runs, "mystery", nil)
	outcome := rt.Execute(context.Background(), run)
	require.Equal(t, OutcomeFailed, outcome.Kind)
	assert.Contains(t, outcome.Error, "unknown agent type")
}

func TestRuntime_RegisterAgent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	runs := services.NewRunService(client)
	rt := NewRuntime(runs, testLimits("test_agent", 10), nil)

	require.NoError(t, rt.RegisterAgent("test_agent", linearGraph("a")))
	assert.True(t, rt.Has("test_agent"))

	t.Run("duplicate registration rejected", func(t *testing.T) {
		assert.Error(t, rt.RegisterAgent("test_agent", linearGraph("a")))
	})

	t.Run("unconfigured agent rejected", func(t *testing.T) {
		assert.Error(t, rt.RegisterAgent("ghost", linearGraph("a")))
	})

	t.Run("invalid graph rejected", func(t *testing.T) {
		client2, _ := util.SetupTestDatabase(t)
		rt2 := NewRuntime(services.NewRunService(client2), testLimits("test_agent", 10), nil)
		bad := NewGraph("bad").AddNode("a", noop).SetStart("a")
		assert.Error(t, rt2.RegisterAgent("test_agent", bad))
	})
}
