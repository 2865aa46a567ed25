// Package orchestrator is the intake side of the service: it records
// inbound ERP webhook events, serialises work per record, dispatches cheap
// handlers synchronously through the automation engine, and enqueues agent
// runs for multi-step workflows.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/services"
)

// TriggerFunc inspects an event and decides whether it should spawn an
// agent run, returning the run's initial state.
type TriggerFunc func(ev automation.Event) (map[string]interface{}, bool)

type triggerKey struct {
	EventType string
	Model     string
}

type agentTrigger struct {
	agentType string
	match     TriggerFunc
}

// Outcome summarises what one webhook event caused.
type Outcome struct {
	WebhookEventID string
	// Automations holds the gate verdict per automation that handled the
	// event, keyed by automation type.
	Automations map[string]*automation.Outcome
	// RunIDs are the agent runs enqueued for this event.
	RunIDs []string
}

// Orchestrator wires webhook intake to the automation engine and the agent
// run queue.
type Orchestrator struct {
	webhooks *services.WebhookService
	registry *automation.Registry
	engine   *automation.Engine
	runs     *services.RunService
	locks    *recordLocks
	triggers map[triggerKey][]agentTrigger
	logger   *slog.Logger
}

// New creates an Orchestrator.
func New(webhooks *services.WebhookService, registry *automation.Registry,
	engine *automation.Engine, runs *services.RunService) *Orchestrator {
	if webhooks == nil {
		panic("orchestrator.New: webhook service must not be nil")
	}
	if registry == nil {
		panic("orchestrator.New: automation registry must not be nil")
	}
	if engine == nil {
		panic("orchestrator.New: engine must not be nil")
	}
	if runs == nil {
		panic("orchestrator.New: run service must not be nil")
	}
	return &Orchestrator{
		webhooks: webhooks,
		registry: registry,
		engine:   engine,
		runs:     runs,
		locks:    newRecordLocks(),
		triggers: make(map[triggerKey][]agentTrigger),
		logger:   slog.With("component", "orchestrator"),
	}
}

// RegisterAgentTrigger routes matching events into an agent run instead of
// (in addition to) the synchronous handlers. Call during startup only.
func (o *Orchestrator) RegisterAgentTrigger(agentType, eventType, model string, match TriggerFunc) {
	key := triggerKey{EventType: eventType, Model: model}
	o.triggers[key] = append(o.triggers[key], agentTrigger{agentType: agentType, match: match})
}

// Ingest records one webhook event and dispatches it. Duplicate events
// (identical payload inside the dedup window) return ErrAlreadyExists
// untouched so the transport can answer with a conflict.
func (o *Orchestrator) Ingest(ctx context.Context, ev automation.Event) (*Outcome, error) {
	row, err := o.webhooks.Record(ctx, services.RecordWebhookInput{
		EventType: ev.Type,
		Model:     ev.Model,
		RecordID:  ev.RecordID,
		Payload:   ev.Values,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			o.logger.Info("duplicate webhook event dropped",
				"model", ev.Model, "record_id", ev.RecordID, "event_type", ev.Type)
		}
		return nil, err
	}

	outcome, dispatchErr := o.dispatch(ctx, ev, row.ID)
	outcome.WebhookEventID = row.ID
	if dispatchErr != nil {
		if markErr := o.webhooks.MarkFailed(ctx, row.ID, dispatchErr.Error()); markErr != nil {
			o.logger.Error("failed to mark webhook event failed", "id", row.ID, "error", markErr)
		}
		return outcome, dispatchErr
	}
	if err := o.webhooks.MarkProcessed(ctx, row.ID); err != nil {
		o.logger.Error("failed to mark webhook event processed", "id", row.ID, "error", err)
	}
	return outcome, nil
}

// dispatch fans the event out under the record lock: synchronous handlers
// first, then agent enqueues. Events on the same record serialise; events on
// different records run concurrently.
func (o *Orchestrator) dispatch(ctx context.Context, ev automation.Event, webhookID string) (*Outcome, error) {
	unlock := o.locks.acquire(ev.Model, ev.RecordID)
	defer unlock()

	outcome := &Outcome{Automations: make(map[string]*automation.Outcome)}
	var errs []error

	for _, a := range o.registry.ForModel(ev.Model) {
		res, err := o.engine.HandleEvent(ctx, a, ev)
		if err != nil {
			errs = append(errs, fmt.Errorf("automation %s: %w", a.Type(), err))
			continue
		}
		outcome.Automations[a.Type()] = res
	}

	for _, trig := range o.triggers[triggerKey{EventType: ev.Type, Model: ev.Model}] {
		initial, ok := trig.match(ev)
		if !ok {
			continue
		}
		run, err := o.enqueueRun(ctx, trig.agentType, ev, webhookID, initial)
		if err != nil {
			errs = append(errs, fmt.Errorf("agent %s: %w", trig.agentType, err))
			continue
		}
		outcome.RunIDs = append(outcome.RunIDs, run.ID)
	}

	return outcome, errors.Join(errs...)
}

func (o *Orchestrator) enqueueRun(ctx context.Context, agentType string, ev automation.Event,
	webhookID string, initial map[string]interface{}) (*ent.AgentRun, error) {

	if initial == nil {
		initial = make(map[string]interface{})
	}
	if _, ok := initial["record_id"]; !ok {
		initial["record_id"] = float64(ev.RecordID)
	}
	if _, ok := initial["model"]; !ok {
		initial["model"] = ev.Model
	}

	run, err := o.runs.CreateRun(ctx, services.CreateRunInput{
		AgentType:    agentType,
		TriggerType:  "webhook",
		TriggerID:    webhookID,
		InitialState: initial,
	})
	if err != nil {
		return nil, err
	}
	o.logger.Info("agent run enqueued",
		"run_id", run.ID, "agent_type", agentType, "model", ev.Model, "record_id", ev.RecordID)
	return run, nil
}
