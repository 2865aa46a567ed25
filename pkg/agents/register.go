package agents

import (
	"fmt"

	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/automations"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/notify"
	"github.com/steward-ai/steward/pkg/orchestrator"
)

// Deps are the shared ports the built-in agents draw on.
type Deps struct {
	ERP      erp.Client
	LLM      llm.Client
	Credit   *automations.Credit
	Notifier *notify.Service
}

// RegisterBuiltin compiles and registers the built-in agent graphs on the
// runtime. Call once at startup, after the runtime's limits are loaded.
func RegisterBuiltin(rt *agentgraph.Runtime, deps Deps) error {
	register := []struct {
		agentType string
		graph     *agentgraph.Graph
	}{
		{AgentTypeProcureToPay, NewProcureToPay(deps.ERP, deps.LLM, deps.Notifier).Graph()},
		{AgentTypeCollection, NewCollection(deps.ERP, deps.Credit, deps.Notifier).Graph()},
		{AgentTypeMonthEndClose, NewMonthEndClose(deps.ERP, deps.LLM, deps.Notifier).Graph()},
	}
	for _, r := range register {
		if err := rt.RegisterAgent(r.agentType, r.graph); err != nil {
			return fmt.Errorf("registering agent %q: %w", r.agentType, err)
		}
	}
	return nil
}

// RegisterTriggers wires the webhook events that spawn agent runs. Vendor
// bill creation starts a procure-to-pay run; collection and close runs are
// started by the scheduler and the operator API, not by webhooks.
func RegisterTriggers(o *orchestrator.Orchestrator) {
	o.RegisterAgentTrigger(AgentTypeProcureToPay, "create", "account.move",
		func(ev automation.Event) (map[string]interface{}, bool) {
			if ev.Values["move_type"] != "in_invoice" {
				return nil, false
			}
			return nil, true
		})
}
