// Package api exposes the HTTP surface: ERP webhook intake, the operator
// API, the live event WebSocket and the health endpoint.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-ai/steward/pkg/approval"
	"github.com/steward-ai/steward/pkg/automations"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/database"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/events"
	"github.com/steward-ai/steward/pkg/orchestrator"
	"github.com/steward-ai/steward/pkg/queue"
	"github.com/steward-ai/steward/pkg/services"
)

// Deps bundles everything the HTTP layer delegates to. Nil entries disable
// the routes that need them; the webhook route and /health are always on.
type Deps struct {
	DB           *database.Client
	Orchestrator *orchestrator.Orchestrator
	Approvals    *approval.Service
	Runs         *services.RunService
	Audit        *services.AuditService
	Agents       *config.AgentRegistry
	WorkerPool   *queue.WorkerPool
	ConnManager  *events.Hub
	ERP          erp.Client

	MonthEnd       *automations.MonthEnd
	Reconciliation *automations.Reconciliation
	Dedup          *automations.Dedup
	Credit         *automations.Credit
	Cashflow       *automations.Cashflow
	Documents      *automations.Documents
	Reports        *automations.Reports
	SupplyChain    *automations.SupplyChain
}

// Server is the HTTP server. Operator routes under /api require the
// X-API-Key header; webhook intake is authenticated by HMAC signature.
type Server struct {
	cfg  *config.APIConfig
	deps Deps
	echo *echo.Echo
	http *http.Server

	apiKey        string
	webhookSecret string

	logger *slog.Logger
}

// NewServer builds the server and registers all routes. Secrets are read
// from the env vars named in cfg at construction time.
func NewServer(cfg *config.APIConfig, deps Deps) *Server {
	if cfg == nil {
		cfg = &config.APIConfig{
			ListenAddr:       ":8080",
			APIKeyEnv:        "STEWARD_API_KEY",
			WebhookSecretEnv: "STEWARD_WEBHOOK_SECRET",
		}
	}
	s := &Server{
		cfg:           cfg,
		deps:          deps,
		echo:          echo.New(),
		apiKey:        os.Getenv(cfg.APIKeyEnv),
		webhookSecret: os.Getenv(cfg.WebhookSecretEnv),
		logger:        slog.With("component", "api"),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	e.POST("/webhooks/erp", s.webhookHandler)

	api := e.Group("/api", s.requireAPIKey())

	api.POST("/close/start", s.startCloseHandler)
	api.GET("/close/:period/status", s.closeStatusHandler)
	api.POST("/close/:id/steps/:step/complete", s.completeCloseStepHandler)
	api.POST("/close/:id/complete", s.completeCloseHandler)

	api.POST("/reconciliation/start", s.startReconciliationHandler)
	api.GET("/reconciliation/:id/suggestions", s.reconciliationSuggestionsHandler)
	api.POST("/reconciliation/:id/match", s.reconciliationMatchHandler)
	api.POST("/reconciliation/:id/skip", s.reconciliationSkipHandler)
	api.POST("/reconciliation/:id/complete", s.reconciliationCompleteHandler)

	api.POST("/dedup/scan", s.dedupScanHandler)
	api.GET("/dedup/scans", s.dedupListScansHandler)
	api.GET("/dedup/groups/:id", s.dedupGroupHandler)
	api.POST("/dedup/groups/:id/merge", s.dedupMergeHandler)
	api.POST("/dedup/groups/:id/dismiss", s.dedupDismissHandler)

	api.GET("/credit/:customer_id", s.creditGetHandler)
	api.POST("/credit/check", s.creditCheckHandler)
	api.POST("/credit/batch-recalculate", s.creditBatchRecalculateHandler)
	api.POST("/credit/:customer_id/hold", s.creditHoldHandler)
	api.POST("/credit/:customer_id/release", s.creditReleaseHandler)

	api.GET("/forecast/cashflow", s.cashForecastHandler)
	api.POST("/forecast/scenario", s.forecastScenarioHandler)
	api.GET("/forecast/accuracy", s.forecastAccuracyHandler)

	api.POST("/documents/process", s.documentProcessHandler)
	api.GET("/documents/:id", s.documentGetHandler)
	api.POST("/documents/:id/correct", s.documentCorrectHandler)
	api.POST("/documents/:id/validate", s.documentValidateHandler)

	api.POST("/agents/run", s.startAgentRunHandler)
	api.GET("/agents/runs", s.listAgentRunsHandler)
	api.GET("/agents/runs/:id", s.getAgentRunHandler)
	api.POST("/agents/runs/:id/resume", s.resumeAgentRunHandler)
	api.POST("/agents/runs/:id/cancel", s.cancelAgentRunHandler)

	api.GET("/approvals", s.listApprovalsHandler)
	api.POST("/approvals", s.decideApprovalHandler)

	api.GET("/audit", s.listAuditHandler)

	api.GET("/supply-chain/suppliers/:id", s.supplierRiskHandler)
	api.GET("/supply-chain/alerts", s.supplyChainAlertsHandler)
	api.POST("/supply-chain/alerts/:id/acknowledge", s.acknowledgeAlertHandler)

	api.POST("/reports", s.runReportHandler)
	api.GET("/reports/:id", s.getReportHandler)
}

// Start blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("HTTP server listening", "addr", s.cfg.ListenAddr)
	err := s.http.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Handler exposes the routing tree, used by tests.
func (s *Server) Handler() http.Handler { return s.echo }
