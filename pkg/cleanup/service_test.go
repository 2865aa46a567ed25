package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent/webhookevent"
	"github.com/steward-ai/steward/pkg/config"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

func TestRunAll_DeletesOldProcessedWebhookEvents(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	webhooks := services.NewWebhookService(client)
	ctx := context.Background()

	old, err := webhooks.Record(ctx, services.RecordWebhookInput{
		EventType: "create", Model: "crm.lead", RecordID: 1,
		Payload: map[string]interface{}{"probability": 10.0},
	})
	require.NoError(t, err)
	require.NoError(t, webhooks.MarkProcessed(ctx, old.ID))
	// Age the row past the retention window. received_at is immutable in
	// the ent schema, so the setup goes through raw SQL.
	_, err = db.ExecContext(ctx,
		"UPDATE "+webhookevent.Table+" SET received_at = $1 WHERE "+webhookevent.FieldID+" = $2",
		time.Now().AddDate(0, 0, -60), old.ID)
	require.NoError(t, err)

	fresh, err := webhooks.Record(ctx, services.RecordWebhookInput{
		EventType: "create", Model: "crm.lead", RecordID: 2,
		Payload: map[string]interface{}{"probability": 20.0},
	})
	require.NoError(t, err)
	require.NoError(t, webhooks.MarkProcessed(ctx, fresh.ID))

	unprocessed, err := webhooks.Record(ctx, services.RecordWebhookInput{
		EventType: "create", Model: "crm.lead", RecordID: 3,
		Payload: map[string]interface{}{"probability": 30.0},
	})
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		"UPDATE "+webhookevent.Table+" SET received_at = $1 WHERE "+webhookevent.FieldID+" = $2",
		time.Now().AddDate(0, 0, -60), unprocessed.ID)
	require.NoError(t, err)

	svc := NewService(config.DefaultRetentionConfig(), webhooks, nil)
	svc.RunAll(ctx)

	remaining, err := client.WebhookEvent.Query().All(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(remaining))
	for _, row := range remaining {
		ids = append(ids, row.ID)
	}
	assert.NotContains(t, ids, old.ID, "old processed rows are deleted")
	assert.Contains(t, ids, fresh.ID, "recent rows survive")
	assert.Contains(t, ids, unprocessed.ID, "unprocessed rows survive regardless of age")
}

func TestStartStop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(&config.RetentionConfig{
		WebhookRetentionDays: 30,
		EventTTL:             time.Hour,
		CleanupInterval:      time.Hour,
	}, services.NewWebhookService(client), nil)

	svc.Start(context.Background())
	svc.Stop()
}
