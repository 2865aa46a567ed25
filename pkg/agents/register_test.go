package agents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/automations"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

func TestRegisterBuiltin(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	stub := newStubERP()

	limits := map[string]*config.AgentConfig{}
	for _, agentType := range []string{AgentTypeProcureToPay, AgentTypeCollection, AgentTypeMonthEndClose} {
		limits[agentType] = &config.AgentConfig{
			MaxSteps:          25,
			MaxTokens:         100_000,
			LoopThreshold:     3,
			SuspensionTimeout: time.Hour,
		}
	}
	rt := agentgraph.NewRuntime(services.NewRunService(client), config.NewAgentRegistry(limits), nil)

	err := RegisterBuiltin(rt, Deps{
		ERP:    stub,
		LLM:    llm.NewScriptedClient(),
		Credit: automations.NewCredit(client, stub),
	})
	require.NoError(t, err)

	assert.True(t, rt.Has(AgentTypeProcureToPay))
	assert.True(t, rt.Has(AgentTypeCollection))
	assert.True(t, rt.Has(AgentTypeMonthEndClose))
}

func TestBuiltinGraphsCompile(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	stub := newStubERP()
	scripted := llm.NewScriptedClient()
	credit := automations.NewCredit(client, stub)

	graphs := []*agentgraph.Graph{
		NewProcureToPay(stub, scripted, nil).Graph(),
		NewCollection(stub, credit, nil).Graph(),
		NewMonthEndClose(stub, scripted, nil).Graph(),
	}
	for _, g := range graphs {
		_, err := g.Compile()
		assert.NoError(t, err)
	}
}
