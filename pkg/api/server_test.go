package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/pkg/approval"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/automations"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/orchestrator"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

const (
	testAPIKey        = "test-operator-key"
	testWebhookSecret = "test-webhook-secret"
)

// staticERP is a canned-response ERP client for handler tests.
type staticERP struct {
	searchResults []int64
	records       []erp.Record
	count         int
	nextID        int64
}

func (e *staticERP) Search(context.Context, string, erp.Domain, int) ([]int64, error) {
	return e.searchResults, nil
}

func (e *staticERP) Read(_ context.Context, _ string, id int64, _ []string) (erp.Record, error) {
	if len(e.records) > 0 {
		return e.records[0], nil
	}
	return erp.Record{"id": float64(id)}, nil
}

func (e *staticERP) SearchRead(context.Context, string, erp.Domain, erp.SearchOptions) ([]erp.Record, error) {
	return e.records, nil
}

func (e *staticERP) SearchCount(context.Context, string, erp.Domain) (int, error) {
	return e.count, nil
}

func (e *staticERP) Create(context.Context, string, map[string]any) (int64, error) {
	e.nextID++
	return 1000 + e.nextID, nil
}

func (e *staticERP) Write(context.Context, string, []int64, map[string]any) error { return nil }

func (e *staticERP) ExecuteMethod(context.Context, string, string, []int64, ...any) (any, error) {
	return true, nil
}

// leadScorer is a minimal automation for intake tests: every lead create
// yields one pending audit row.
type leadScorer struct{}

func (l *leadScorer) Type() string            { return "crm" }
func (l *leadScorer) WatchedModels() []string { return []string{"crm.lead"} }
func (l *leadScorer) Handlers() map[automation.HandlerKey]automation.Handler {
	score := func(_ context.Context, ev automation.Event) (*automation.Result, error) {
		return &automation.Result{
			Success:     true,
			ActionName:  "score_lead",
			Model:       ev.Model,
			RecordID:    ev.RecordID,
			Confidence:  0.90,
			Reasoning:   "routine lead scoring",
			ChangesMade: map[string]interface{}{"score": 72.0},
		}, nil
	}
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "crm.lead"}: score,
	}
}
func (l *leadScorer) Scans() map[string]automation.ScanFunc { return nil }
func (l *leadScorer) Execute(context.Context, automation.Action) (map[string]interface{}, error) {
	return map[string]interface{}{"scored": true}, nil
}

// newTestServer wires a Server onto a fresh test database with a stub ERP.
func newTestServer(t *testing.T) (*Server, *ent.Client) {
	t.Helper()
	t.Setenv("STEWARD_API_KEY", testAPIKey)
	t.Setenv("STEWARD_WEBHOOK_SECRET", testWebhookSecret)

	client, _ := util.SetupTestDatabase(t)
	stub := &staticERP{}

	audit := services.NewAuditService(client, &config.Defaults{
		ConfidenceThreshold:  0.85,
		AutoApproveThreshold: 0.95,
	})
	webhooks := services.NewWebhookService(client)
	runs := services.NewRunService(client)

	registry := automation.NewRegistry()
	require.NoError(t, registry.Register(&leadScorer{}))
	engine := automation.NewEngine(audit, nil)

	orch := orchestrator.New(webhooks, registry, engine, runs)
	approvals := approval.NewService(audit, registry, engine, nil)

	agents := config.NewAgentRegistry(map[string]*config.AgentConfig{
		"procure_to_pay": {MaxSteps: 25, MaxTokens: 100_000, LoopThreshold: 3, SuspensionTimeout: time.Hour},
	})

	s := NewServer(&config.APIConfig{
		ListenAddr:       ":0",
		APIKeyEnv:        "STEWARD_API_KEY",
		WebhookSecretEnv: "STEWARD_WEBHOOK_SECRET",
	}, Deps{
		Orchestrator:   orch,
		Approvals:      approvals,
		Runs:           runs,
		Audit:          audit,
		Agents:         agents,
		ERP:            stub,
		MonthEnd:       automations.NewMonthEnd(client, stub),
		Reconciliation: automations.NewReconciliation(client, stub, 0.95),
		Dedup:          automations.NewDedup(client, stub, nil),
		Credit:         automations.NewCredit(client, stub),
		Cashflow:       automations.NewCashflow(client, stub, 30),
	})
	return s, client
}

// doJSON performs an authenticated JSON request against the router.
func doJSON(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// doJSONReq is doJSON with extra request headers.
func doJSONReq(s *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// signBody returns the hex HMAC-SHA256 webhook signature for a body.
func signBody(body string) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}
