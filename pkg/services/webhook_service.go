package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/webhookevent"
)

// DefaultDedupWindow is how far back the duplicate probe looks. Identical
// events further apart than this are treated as distinct.
const DefaultDedupWindow = 10 * time.Minute

// RecordWebhookInput is the parsed inbound ERP event.
type RecordWebhookInput struct {
	EventType string
	Model     string
	RecordID  int64
	Payload   map[string]interface{}
}

// WebhookService records inbound ERP events for replay and deduplication.
type WebhookService struct {
	client      *ent.Client
	dedupWindow time.Duration
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client) *WebhookService {
	if client == nil {
		panic("NewWebhookService: client must not be nil")
	}
	return &WebhookService{client: client, dedupWindow: DefaultDedupWindow}
}

// HashPayload computes the canonical payload hash used by the dedup probe.
// json.Marshal sorts map keys, so equal payloads hash equally.
func HashPayload(payload map[string]interface{}) string {
	data, err := json.Marshal(payload)
	if err != nil {
		// Maps of JSON-decoded values always marshal; an error here means
		// the caller handed us something that never came off the wire.
		data = []byte(fmt.Sprintf("%v", payload))
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Record persists the event unless an identical one arrived within the dedup
// window. On a duplicate it returns the existing row and ErrAlreadyExists.
func (s *WebhookService) Record(ctx context.Context, input RecordWebhookInput) (*ent.WebhookEvent, error) {
	eventType := webhookevent.EventType(input.EventType)
	if err := webhookevent.EventTypeValidator(eventType); err != nil {
		return nil, NewValidationError("event_type", fmt.Sprintf("unknown event type %q", input.EventType))
	}
	if input.Model == "" {
		return nil, NewValidationError("model", "model is required")
	}
	if input.RecordID <= 0 {
		return nil, NewValidationError("record_id", "record id must be positive")
	}

	hash := HashPayload(input.Payload)
	cutoff := time.Now().Add(-s.dedupWindow)

	existing, err := s.client.WebhookEvent.Query().
		Where(
			webhookevent.EventTypeEQ(eventType),
			webhookevent.ModelEQ(input.Model),
			webhookevent.RecordIDEQ(input.RecordID),
			webhookevent.PayloadHashEQ(hash),
			webhookevent.ReceivedAtGTE(cutoff),
		).
		Order(ent.Desc(webhookevent.FieldReceivedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to probe webhook duplicates: %w", err)
	}
	if existing != nil {
		return existing, fmt.Errorf("event already recorded as %s: %w", existing.ID, ErrAlreadyExists)
	}

	builder := s.client.WebhookEvent.Create().
		SetID(uuid.New().String()).
		SetEventType(eventType).
		SetModel(input.Model).
		SetRecordID(input.RecordID).
		SetPayloadHash(hash)
	if input.Payload != nil {
		builder.SetPayload(input.Payload)
	}

	event, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record webhook event: %w", err)
	}
	return event, nil
}

// MarkProcessed flags the event as handled.
func (s *WebhookService) MarkProcessed(ctx context.Context, id string) error {
	n, err := s.client.WebhookEvent.Update().
		Where(webhookevent.IDEQ(id)).
		SetProcessed(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark webhook event processed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("webhook event %s: %w", id, ErrNotFound)
	}
	return nil
}

// MarkFailed flags the event as handled with an error; the row stays for replay.
func (s *WebhookService) MarkFailed(ctx context.Context, id, reason string) error {
	n, err := s.client.WebhookEvent.Update().
		Where(webhookevent.IDEQ(id)).
		SetProcessed(true).
		SetErrorMessage(reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark webhook event failed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("webhook event %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteProcessedBefore removes processed events received before the cutoff.
// Called by the retention cleanup loop.
func (s *WebhookService) DeleteProcessedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.WebhookEvent.Delete().
		Where(
			webhookevent.ProcessedEQ(true),
			webhookevent.ReceivedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old webhook events: %w", err)
	}
	return n, nil
}
