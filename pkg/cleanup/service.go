// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/events"
	"github.com/steward-ai/steward/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes processed webhook events past the retention window
//   - Removes broadcast Event rows past their TTL (listeners only need
//     the catchup window)
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config   *config.RetentionConfig
	webhooks *services.WebhookService
	events   *events.EventStore

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, webhooks *services.WebhookService, eventStore *events.EventStore) *Service {
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}
	return &Service{
		config:   cfg,
		webhooks: webhooks,
		events:   eventStore,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"webhook_retention_days", s.config.WebhookRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunAll(ctx)
		}
	}
}

// RunAll applies every retention policy once.
func (s *Service) RunAll(ctx context.Context) {
	s.cleanupWebhookEvents(ctx)
	s.cleanupBroadcastEvents(ctx)
}

func (s *Service) cleanupWebhookEvents(ctx context.Context) {
	if s.webhooks == nil {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.WebhookRetentionDays)
	count, err := s.webhooks.DeleteProcessedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: webhook event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted processed webhook events", "count", count)
	}
}

func (s *Service) cleanupBroadcastEvents(ctx context.Context) {
	if s.events == nil {
		return
	}
	cutoff := time.Now().Add(-s.config.EventTTL)
	count, err := s.events.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: broadcast event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old broadcast events", "count", count)
	}
}
