package automations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent/dailydigest"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/notify"
	"github.com/steward-ai/steward/test/util"
)

func digestCompletion() *llm.Completion {
	return &llm.Completion{
		ToolCalls: []llm.ToolCall{{
			ID:   "tc-1",
			Name: "compose_digest",
			Input: map[string]interface{}{
				"headline": "Quiet day: 2 decisions, nothing pending",
				"sections": []interface{}{
					map[string]interface{}{"title": "Decisions", "body": "2 automated decisions in the last 24h."},
				},
			},
		}},
		TokensIn:  300,
		TokensOut: 80,
	}
}

func TestDigestGenerate_PersistsAndRecordsDelivery(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	scripted := llm.NewScriptedClient(digestCompletion())
	digest := NewDigest(client, fake, scripted, notify.NewService(""))
	ctx := context.Background()

	generated, err := digest.Generate(ctx, dailydigest.UserRoleCfo, time.Now())
	require.NoError(t, err)
	assert.Equal(t, dailydigest.UserRoleCfo, generated.UserRole)
	assert.Equal(t, "Quiet day: 2 decisions, nothing pending", generated.Headline)
	require.Len(t, generated.Sections, 1)
	assert.Equal(t, 380, generated.TokensUsed)
	// No webhook configured: the outcome is recorded, not treated as an error.
	assert.Equal(t, dailydigest.DeliveryStatusChannelDisabled, generated.DeliveryStatus)
	assert.Nil(t, generated.DeliveredAt)
}

func TestDigestGenerate_IdempotentPerRoleAndDay(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	scripted := llm.NewScriptedClient(digestCompletion())
	digest := NewDigest(client, fake, scripted, notify.NewService(""))
	ctx := context.Background()

	day := time.Now()
	first, err := digest.Generate(ctx, dailydigest.UserRoleAccountant, day)
	require.NoError(t, err)

	second, err := digest.Generate(ctx, dailydigest.UserRoleAccountant, day)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, scripted.Requests, 1, "the second call returns the stored digest without a model call")

	count, err := client.DailyDigest.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDigestScan_OneDigestPerRole(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	scripted := llm.NewScriptedClient(
		digestCompletion(), digestCompletion(), digestCompletion(), digestCompletion())
	digest := NewDigest(client, fake, scripted, notify.NewService(""))
	ctx := context.Background()

	results, err := digest.Scans()["scan_daily_digest"](ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, results, len(digestRoles))
	for _, r := range results {
		assert.True(t, r.Success)
		assert.Equal(t, "generate_digest", r.ActionName)
	}

	count, err := client.DailyDigest.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(digestRoles), count)
}
