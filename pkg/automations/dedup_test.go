package automations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent/dedupscan"
	"github.com/steward-ai/steward/ent/duplicategroup"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

func seedDuplicatePartners(fake *fakeERP) {
	fake.seed("res.partner",
		map[string]any{
			"id": int64(1), "active": true, "name": "Acme Corporation",
			"email": "billing@acme.example", "phone": "+48 22 123 45 67", "vat": "PL5260001246",
		},
		map[string]any{
			"id": int64(2), "active": true, "name": "Acme Corporation",
			"email": "billing@acme.example", "phone": "+48 22 123 45 67", "vat": "PL5260001246",
		},
		map[string]any{
			"id": int64(3), "active": true, "name": "Globex Industries",
			"email": "ap@globex.example", "phone": "+48 61 999 00 11", "vat": "PL7791011327",
		},
	)
}

func TestDedupRunScan_FindsAndPersistsGroups(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	dedup := NewDedup(client, fake, nil)
	ctx := context.Background()

	seedDuplicatePartners(fake)

	scan, err := dedup.RunScan(ctx, "res.partner")
	require.NoError(t, err)
	assert.Equal(t, dedupscan.StatusCompleted, scan.Status)
	assert.Equal(t, 3, scan.RecordsScanned)
	assert.Equal(t, 1, scan.GroupsFound)

	groups, err := client.DuplicateGroup.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.ElementsMatch(t, []int64{1, 2}, groups[0].RecordIds)
	assert.Equal(t, duplicategroup.ResolutionPending, groups[0].Resolution)
	assert.Greater(t, groups[0].SimilarityScore, 0.9)
}

func TestDedupRunScan_IdempotentOnUnchangedPopulation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	dedup := NewDedup(client, fake, nil)
	ctx := context.Background()

	seedDuplicatePartners(fake)

	first, err := dedup.RunScan(ctx, "res.partner")
	require.NoError(t, err)
	assert.Equal(t, 1, first.GroupsFound)

	second, err := dedup.RunScan(ctx, "res.partner")
	require.NoError(t, err)
	assert.Equal(t, 0, second.GroupsFound, "pending groups are not re-created on rescan")

	total, err := client.DuplicateGroup.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestDedupRunScan_AdvisorOverridesMaster(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	scripted := llm.NewScriptedClient(&llm.Completion{
		ToolCalls: []llm.ToolCall{{
			ID:   "tc-1",
			Name: "recommend_master",
			Input: map[string]interface{}{
				"master_record_id": float64(2),
				"reasoning":        "record 2 carries the registered company name",
			},
		}},
	})
	dedup := NewDedup(client, fake, scripted)
	ctx := context.Background()

	seedDuplicatePartners(fake)

	_, err := dedup.RunScan(ctx, "res.partner")
	require.NoError(t, err)

	group, err := client.DuplicateGroup.Query().Only(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, group.MasterRecordID, "advisor nomination replaces the heuristic master")
	require.Len(t, scripted.Requests, 1)
	require.Len(t, scripted.Requests[0].Tools, 1)
	assert.Equal(t, "recommend_master", scripted.Requests[0].Tools[0].Name)
}

func TestDedupRunScan_AdvisorOutsideGroupIgnored(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	scripted := llm.NewScriptedClient(&llm.Completion{
		ToolCalls: []llm.ToolCall{{
			ID:   "tc-1",
			Name: "recommend_master",
			Input: map[string]interface{}{
				"master_record_id": float64(3),
			},
		}},
	})
	dedup := NewDedup(client, fake, scripted)
	ctx := context.Background()

	seedDuplicatePartners(fake)

	_, err := dedup.RunScan(ctx, "res.partner")
	require.NoError(t, err)

	group, err := client.DuplicateGroup.Query().Only(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, group.MasterRecordID, "non-member nomination keeps the heuristic master")
}

func TestDedupRunScan_UnknownType(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	dedup := NewDedup(client, newFakeERP(), nil)

	var verr *services.ValidationError
	_, err := dedup.RunScan(context.Background(), "stock.picking")
	require.ErrorAs(t, err, &verr)
}

func TestDedupMerge_ArchivesLosers(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	dedup := NewDedup(client, fake, nil)
	ctx := context.Background()

	seedDuplicatePartners(fake)
	_, err := dedup.RunScan(ctx, "res.partner")
	require.NoError(t, err)

	group, err := client.DuplicateGroup.Query().Only(ctx)
	require.NoError(t, err)

	merged, err := dedup.Merge(ctx, group.ID, 0, "alice")
	require.NoError(t, err)
	assert.Equal(t, duplicategroup.ResolutionMerged, merged.Resolution)
	require.NotNil(t, merged.ResolvedBy)
	assert.Equal(t, "alice", *merged.ResolvedBy)

	require.Len(t, fake.writes, 1)
	write := fake.writes[0]
	assert.Equal(t, "res.partner", write.Model)
	assert.Len(t, write.IDs, 1)
	assert.NotContains(t, write.IDs, merged.MasterRecordID)
	assert.Equal(t, false, write.Values["active"])
	assert.EqualValues(t, merged.MasterRecordID, write.Values["merged_into"])

	// A resolved group cannot be resolved twice.
	_, err = dedup.Merge(ctx, group.ID, 0, "bob")
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	_, err = dedup.Dismiss(ctx, group.ID, "bob")
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestDedupMerge_MasterMustBeMember(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	dedup := NewDedup(client, fake, nil)
	ctx := context.Background()

	seedDuplicatePartners(fake)
	_, err := dedup.RunScan(ctx, "res.partner")
	require.NoError(t, err)

	group, err := client.DuplicateGroup.Query().Only(ctx)
	require.NoError(t, err)

	var verr *services.ValidationError
	_, err = dedup.Merge(ctx, group.ID, 3, "alice")
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, fake.writes, "a rejected merge must not touch the ERP")
}

func TestDedupDismiss(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	fake := newFakeERP()
	dedup := NewDedup(client, fake, nil)
	ctx := context.Background()

	seedDuplicatePartners(fake)
	_, err := dedup.RunScan(ctx, "res.partner")
	require.NoError(t, err)

	group, err := client.DuplicateGroup.Query().Only(ctx)
	require.NoError(t, err)

	dismissed, err := dedup.Dismiss(ctx, group.ID, "carol")
	require.NoError(t, err)
	assert.Equal(t, duplicategroup.ResolutionDismissed, dismissed.Resolution)
	assert.Empty(t, fake.writes)
}
