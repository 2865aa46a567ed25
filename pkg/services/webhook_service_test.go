package services

import (
	"context"
	"testing"
	"time"

	"github.com/steward-ai/steward/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookService_RecordAndDedup(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewWebhookService(client)
	ctx := context.Background()

	input := RecordWebhookInput{
		EventType: "write",
		Model:     "account.move",
		RecordID:  42,
		Payload:   map[string]interface{}{"state": "posted", "amount_total": 1500.0},
	}

	event, err := svc.Record(ctx, input)
	require.NoError(t, err)
	assert.False(t, event.Processed)
	assert.NotEmpty(t, event.PayloadHash)

	// Identical event inside the window is a duplicate.
	dup, err := svc.Record(ctx, input)
	require.ErrorIs(t, err, ErrAlreadyExists)
	require.NotNil(t, dup)
	assert.Equal(t, event.ID, dup.ID)

	// Same record, different payload: not a duplicate.
	changed := input
	changed.Payload = map[string]interface{}{"state": "draft"}
	other, err := svc.Record(ctx, changed)
	require.NoError(t, err)
	assert.NotEqual(t, event.ID, other.ID)

	// Same payload on a different record: not a duplicate.
	otherRecord := input
	otherRecord.RecordID = 43
	_, err = svc.Record(ctx, otherRecord)
	require.NoError(t, err)
}

func TestWebhookService_Validation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewWebhookService(client)
	ctx := context.Background()

	_, err := svc.Record(ctx, RecordWebhookInput{EventType: "upsert", Model: "account.move", RecordID: 1})
	assert.True(t, IsValidationError(err))

	_, err = svc.Record(ctx, RecordWebhookInput{EventType: "create", RecordID: 1})
	assert.True(t, IsValidationError(err))

	_, err = svc.Record(ctx, RecordWebhookInput{EventType: "create", Model: "account.move"})
	assert.True(t, IsValidationError(err))
}

func TestWebhookService_MarkProcessed(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewWebhookService(client)
	ctx := context.Background()

	event, err := svc.Record(ctx, RecordWebhookInput{
		EventType: "create",
		Model:     "res.partner",
		RecordID:  5,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkProcessed(ctx, event.ID))
	reloaded, err := client.WebhookEvent.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Processed)
	assert.Nil(t, reloaded.ErrorMessage)

	assert.ErrorIs(t, svc.MarkProcessed(ctx, "missing"), ErrNotFound)
}

func TestWebhookService_MarkFailed(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewWebhookService(client)
	ctx := context.Background()

	event, err := svc.Record(ctx, RecordWebhookInput{
		EventType: "unlink",
		Model:     "res.partner",
		RecordID:  6,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkFailed(ctx, event.ID, "no handler registered"))
	reloaded, err := client.WebhookEvent.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Processed)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Equal(t, "no handler registered", *reloaded.ErrorMessage)
}

func TestWebhookService_DeleteProcessedBefore(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewWebhookService(client)
	ctx := context.Background()

	old, err := svc.Record(ctx, RecordWebhookInput{
		EventType: "write",
		Model:     "account.move",
		RecordID:  1,
	})
	require.NoError(t, err)
	require.NoError(t, svc.MarkProcessed(ctx, old.ID))

	unprocessed, err := svc.Record(ctx, RecordWebhookInput{
		EventType: "write",
		Model:     "account.move",
		RecordID:  2,
	})
	require.NoError(t, err)

	// Cutoff in the future: the processed row goes, the unprocessed one stays.
	n, err := svc.DeleteProcessedBefore(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = client.WebhookEvent.Get(ctx, old.ID)
	assert.Error(t, err)
	_, err = client.WebhookEvent.Get(ctx, unprocessed.ID)
	assert.NoError(t, err)
}

func TestHashPayload_Deterministic(t *testing.T) {
	a := HashPayload(map[string]interface{}{"b": 2.0, "a": "x"})
	b := HashPayload(map[string]interface{}{"a": "x", "b": 2.0})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, HashPayload(map[string]interface{}{"a": "x"}))
}
