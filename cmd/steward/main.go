// Steward server — ERP webhook intake, confidence-gated automations, agent
// runtime, scheduler and the operator HTTP API in one process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/agents"
	"github.com/steward-ai/steward/pkg/api"
	"github.com/steward-ai/steward/pkg/approval"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/automations"
	"github.com/steward-ai/steward/pkg/cleanup"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/database"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/events"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/notify"
	"github.com/steward-ai/steward/pkg/orchestrator"
	"github.com/steward-ai/steward/pkg/queue"
	"github.com/steward-ai/steward/pkg/scheduler"
	"github.com/steward-ai/steward/pkg/services"
)

// Exit codes. Automation wrappers key off these.
const (
	exitOK      = 0
	exitConfig  = 1
	exitAuth    = 2
	exitRuntime = 3
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	os.Exit(run())
}

func run() int {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting steward", "pod_id", podID, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return exitConfig
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded", "automations", stats.Automations, "agents", stats.Agents)

	// Secrets are fatal up front: a pod without them can only reject traffic.
	erpAPIKey := os.Getenv(cfg.ERP.APIKeyEnv)
	if erpAPIKey == "" {
		slog.Error("ERP API key not set", "env", cfg.ERP.APIKeyEnv)
		return exitAuth
	}
	if os.Getenv(cfg.API.APIKeyEnv) == "" {
		slog.Error("Operator API key not set", "env", cfg.API.APIKeyEnv)
		return exitAuth
	}
	if os.Getenv(cfg.API.WebhookSecretEnv) == "" {
		slog.Error("Webhook HMAC secret not set", "env", cfg.API.WebhookSecretEnv)
		return exitAuth
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		return exitConfig
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitRuntime
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Outbound clients
	erpClient := erp.NewJSONRPCClient(erp.JSONRPCConfig{
		URL:      cfg.ERP.URL,
		Database: cfg.ERP.Database,
		UserID:   int64(cfg.ERP.UserID),
		APIKey:   erpAPIKey,
		Timeout:  cfg.ERP.Timeout,
	})

	llmClient, err := llm.NewGRPCClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Address, "error", err)
		return exitRuntime
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	var notifier *notify.Service
	if cfg.Slack != nil && cfg.Slack.Enabled {
		notifier = notify.NewService(os.Getenv(cfg.Slack.WebhookURLEnv))
	}

	// 4. Streaming infrastructure
	eventStore := events.NewEventStore(dbClient.DB())
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	feedHub := events.NewHub(eventStore, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), feedHub)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		return exitRuntime
	}
	defer notifyListener.Stop(ctx)
	feedHub.AttachListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Domain services, automations and the gate
	audit := services.NewAuditService(dbClient.Client, cfg.Defaults)
	webhooks := services.NewWebhookService(dbClient.Client)
	runs := services.NewRunService(dbClient.Client)

	// Typed handles serve the operator API directly; the gate registry only
	// carries the automations the configuration enables.
	credit := automations.NewCredit(dbClient.Client, erpClient)
	monthEnd := automations.NewMonthEnd(dbClient.Client, erpClient)
	reconciliation := automations.NewReconciliation(dbClient.Client, erpClient, cfg.Defaults.AutoApproveThreshold)
	dedup := automations.NewDedup(dbClient.Client, erpClient, llmClient)
	cashflow := automations.NewCashflow(dbClient.Client, erpClient, 0)
	documents := automations.NewDocuments(dbClient.Client, erpClient, llmClient, "")
	reports := automations.NewReports(dbClient.Client, erpClient, llmClient)
	supplyChain := automations.NewSupplyChain(dbClient.Client, erpClient)

	registry := automation.NewRegistry()
	all := []automation.Automation{
		automations.NewAccounting(erpClient, llmClient, ""),
		automations.NewCRM(erpClient),
		automations.NewSales(erpClient),
		automations.NewPurchase(erpClient),
		automations.NewHR(erpClient),
		automations.NewProject(erpClient),
		automations.NewDigest(dbClient.Client, erpClient, llmClient, notifier),
		credit, monthEnd, reconciliation, dedup, cashflow, documents, reports, supplyChain,
	}
	for _, a := range all {
		if rule, err := cfg.AutomationRegistry.Get(a.Type()); err != nil || !rule.IsEnabled() {
			slog.Info("Automation disabled", "type", a.Type())
			continue
		}
		if err := registry.Register(a); err != nil {
			slog.Error("Failed to register automation", "type", a.Type(), "error", err)
			return exitConfig
		}
	}
	engine := automation.NewEngine(audit, eventPublisher)

	// 6. Agent runtime and run queue
	runtime := agentgraph.NewRuntime(runs, cfg.AgentRegistry, eventPublisher)
	if err := agents.RegisterBuiltin(runtime, agents.Deps{
		ERP:      erpClient,
		LLM:      llmClient,
		Credit:   credit,
		Notifier: notifier,
	}); err != nil {
		slog.Error("Failed to register agent graphs", "error", err)
		return exitConfig
	}

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, runtime, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		return exitRuntime
	}

	// 7. Intake, approvals, scheduler, retention
	orch := orchestrator.New(webhooks, registry, engine, runs)
	agents.RegisterTriggers(orch)

	approvals := approval.NewService(audit, registry, engine, eventPublisher)

	sched := scheduler.New(cfg.Scheduler, registry, engine, credit, runs)
	if err := sched.Start(ctx); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		return exitConfig
	}
	defer sched.Stop()

	retention := cleanup.NewService(cfg.Retention, webhooks, eventStore)
	retention.Start(ctx)
	defer retention.Stop()

	// 8. HTTP server
	httpServer := api.NewServer(cfg.API, api.Deps{
		DB:             dbClient,
		Orchestrator:   orch,
		Approvals:      approvals,
		Runs:           runs,
		Audit:          audit,
		Agents:         cfg.AgentRegistry,
		WorkerPool:     workerPool,
		ConnManager:    feedHub,
		ERP:            erpClient,
		MonthEnd:       monthEnd,
		Reconciliation: reconciliation,
		Dedup:          dedup,
		Credit:         credit,
		Cashflow:       cashflow,
		Documents:      documents,
		Reports:        reports,
		SupplyChain:    supplyChain,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	slog.Info("Steward started", "pod_id", podID, "listen_addr", cfg.API.ListenAddr)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	exitCode := exitOK
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
		exitCode = exitRuntime
	}

	// 10. Graceful shutdown: drain workers first so in-flight runs finish
	// or suspend cleanly, then stop accepting HTTP.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return exitCode
}
