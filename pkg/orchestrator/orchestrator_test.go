package orchestrator

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

// leadAutomation is a minimal automation watching crm.lead; its handler
// counts invocations and can overlap-check concurrent calls.
type leadAutomation struct {
	calls    atomic.Int64
	inFlight atomic.Int64
	overlap  atomic.Bool
	handler  automation.Handler
}

func (l *leadAutomation) Type() string            { return "crm" }
func (l *leadAutomation) WatchedModels() []string { return []string{"crm.lead"} }
func (l *leadAutomation) Handlers() map[automation.HandlerKey]automation.Handler {
	h := func(ctx context.Context, ev automation.Event) (*automation.Result, error) {
		l.calls.Add(1)
		if l.inFlight.Add(1) > 1 {
			l.overlap.Store(true)
		}
		defer l.inFlight.Add(-1)
		if l.handler != nil {
			return l.handler(ctx, ev)
		}
		return &automation.Result{
			Success:    true,
			ActionName: "score_lead",
			Confidence: 0.90,
			ChangesMade: map[string]interface{}{
				"priority": "2",
			},
		}, nil
	}
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "crm.lead"}: h,
		{EventType: "write", Model: "crm.lead"}:  h,
	}
}
func (l *leadAutomation) Scans() map[string]automation.ScanFunc { return nil }
func (l *leadAutomation) Execute(context.Context, automation.Action) (map[string]interface{}, error) {
	return map[string]interface{}{"applied": true}, nil
}

func setupOrchestrator(t *testing.T, autos ...automation.Automation) (*Orchestrator, *ent.Client, *services.RunService) {
	client, _ := util.SetupTestDatabase(t)
	audit := services.NewAuditService(client, &config.Defaults{
		ConfidenceThreshold:  0.85,
		AutoApproveThreshold: 0.95,
	})
	registry := automation.NewRegistry()
	for _, a := range autos {
		require.NoError(t, registry.Register(a))
	}
	runs := services.NewRunService(client)
	o := New(services.NewWebhookService(client), registry, automation.NewEngine(audit, nil), runs)
	return o, client, runs
}

func leadEvent(eventType string, recordID int64, values map[string]interface{}) automation.Event {
	return automation.Event{Type: eventType, Model: "crm.lead", RecordID: recordID, Values: values}
}

func TestIngest_DispatchesAndMarksProcessed(t *testing.T) {
	lead := &leadAutomation{}
	o, client, _ := setupOrchestrator(t, lead)
	ctx := context.Background()

	outcome, err := o.Ingest(ctx, leadEvent("create", 31, map[string]interface{}{"probability": 60.0}))
	require.NoError(t, err)
	require.Contains(t, outcome.Automations, "crm")
	// 0.90 clears the approval threshold but not auto-approve.
	assert.Equal(t, automation.DispositionPending, outcome.Automations["crm"].Disposition)
	assert.EqualValues(t, 1, lead.calls.Load())

	row, err := client.WebhookEvent.Get(ctx, outcome.WebhookEventID)
	require.NoError(t, err)
	assert.True(t, row.Processed)
	assert.Empty(t, row.ErrorMessage)
}

func TestIngest_DuplicateWithinWindowIsRejected(t *testing.T) {
	lead := &leadAutomation{}
	o, _, _ := setupOrchestrator(t, lead)
	ctx := context.Background()
	ev := leadEvent("create", 32, map[string]interface{}{"probability": 40.0})

	_, err := o.Ingest(ctx, ev)
	require.NoError(t, err)

	_, err = o.Ingest(ctx, ev)
	require.ErrorIs(t, err, services.ErrAlreadyExists)
	assert.EqualValues(t, 1, lead.calls.Load(), "duplicates never reach the handlers")
}

func TestIngest_AgentTriggerEnqueuesRun(t *testing.T) {
	o, _, runs := setupOrchestrator(t)
	o.RegisterAgentTrigger("procure_to_pay", "create", "account.move",
		func(ev automation.Event) (map[string]interface{}, bool) {
			if ev.Values["move_type"] != "in_invoice" {
				return nil, false
			}
			return nil, true
		})
	ctx := context.Background()

	outcome, err := o.Ingest(ctx, automation.Event{
		Type: "create", Model: "account.move", RecordID: 77,
		Values: map[string]interface{}{"move_type": "in_invoice"},
	})
	require.NoError(t, err)
	require.Len(t, outcome.RunIDs, 1)

	run, err := runs.GetRun(ctx, outcome.RunIDs[0])
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusPending, run.Status)
	assert.Equal(t, "procure_to_pay", run.AgentType)
	assert.Equal(t, "webhook", run.TriggerType)
	assert.Equal(t, 77.0, run.InitialState["record_id"])
	assert.Equal(t, "account.move", run.InitialState["model"])

	// A customer invoice does not match the trigger.
	outcome, err = o.Ingest(ctx, automation.Event{
		Type: "create", Model: "account.move", RecordID: 78,
		Values: map[string]interface{}{"move_type": "out_invoice"},
	})
	require.NoError(t, err)
	assert.Empty(t, outcome.RunIDs)
}

func TestIngest_SerialisesPerRecord(t *testing.T) {
	lead := &leadAutomation{}
	o, _, _ := setupOrchestrator(t, lead)
	ctx := context.Background()

	// Same record, different payloads so dedup lets both through.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := o.Ingest(ctx, leadEvent("write", 40, map[string]interface{}{"probability": float64(i)}))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 8, lead.calls.Load())
	assert.False(t, lead.overlap.Load(), "handlers on one record must never overlap")
}
