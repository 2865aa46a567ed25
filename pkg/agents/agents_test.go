package agents

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

// stubERP answers reads and searches from canned data and records every
// mutation. Searches return the canned rows for the model; the agents under
// test never need domain evaluation.
type stubERP struct {
	mu      sync.Mutex
	reads   map[string]map[int64]erp.Record
	results map[string][]erp.Record
	nextID  int64
	writes  []stubWrite
	creates []stubCreate
	methods []stubMethod
}

type stubWrite struct {
	Model  string
	IDs    []int64
	Values map[string]any
}

type stubCreate struct {
	Model  string
	Values map[string]any
}

type stubMethod struct {
	Model  string
	Method string
	IDs    []int64
}

func newStubERP() *stubERP {
	return &stubERP{
		reads:   make(map[string]map[int64]erp.Record),
		results: make(map[string][]erp.Record),
		nextID:  1000,
	}
}

func (s *stubERP) stubRead(model string, id int64, rec erp.Record) {
	if s.reads[model] == nil {
		s.reads[model] = make(map[int64]erp.Record)
	}
	s.reads[model][id] = rec
}

func (s *stubERP) stubSearch(model string, recs ...erp.Record) {
	s.results[model] = recs
}

func (s *stubERP) Search(_ context.Context, model string, _ erp.Domain, _ int) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.results[model]))
	for _, rec := range s.results[model] {
		ids = append(ids, erp.Int(rec["id"]))
	}
	return ids, nil
}

func (s *stubERP) Read(_ context.Context, model string, id int64, _ []string) (erp.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.reads[model][id]
	if !ok {
		return nil, fmt.Errorf("%s record %d not found", model, id)
	}
	return rec, nil
}

func (s *stubERP) SearchRead(_ context.Context, model string, _ erp.Domain, _ erp.SearchOptions) ([]erp.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results[model], nil
}

func (s *stubERP) SearchCount(_ context.Context, model string, _ erp.Domain) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results[model]), nil
}

func (s *stubERP) Create(_ context.Context, model string, values map[string]any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.creates = append(s.creates, stubCreate{Model: model, Values: values})
	return s.nextID, nil
}

func (s *stubERP) Write(_ context.Context, model string, ids []int64, values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, stubWrite{Model: model, IDs: ids, Values: values})
	return nil
}

func (s *stubERP) ExecuteMethod(_ context.Context, model, method string, ids []int64, _ ...any) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods = append(s.methods, stubMethod{Model: model, Method: method, IDs: ids})
	return true, nil
}

func agentLimits(agentType string, maxSteps int) *config.AgentRegistry {
	return config.NewAgentRegistry(map[string]*config.AgentConfig{
		agentType: {
			MaxSteps:          maxSteps,
			MaxTokens:         100_000,
			LoopThreshold:     3,
			SuspensionTimeout: time.Hour,
		},
	})
}

func setupAgentRuntime(t *testing.T, agentType string, maxSteps int, g *agentgraph.Graph) (*ent.Client, *agentgraph.Runtime, *services.RunService) {
	client, _ := util.SetupTestDatabase(t)
	runs := services.NewRunService(client)
	rt := agentgraph.NewRuntime(runs, agentLimits(agentType, maxSteps), nil)
	require.NoError(t, rt.RegisterAgent(agentType, g))
	return client, rt, runs
}

func startAgentRun(t *testing.T, runs *services.RunService, agentType string, initial map[string]interface{}) *ent.AgentRun {
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
