package automations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/dedupscan"
	"github.com/steward-ai/steward/ent/duplicategroup"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/matching"
	"github.com/steward-ai/steward/pkg/services"
)

// dedupConfigs declares the match fields per scannable entity type.
var dedupConfigs = map[string]matching.DedupConfig{
	"res.partner": {
		EntityType: "res.partner",
		Fields: []matching.MatchField{
			{Name: "name", Kind: matching.FieldName, Weight: 0.40},
			{Name: "email", Kind: matching.FieldEmail, Weight: 0.30},
			{Name: "phone", Kind: matching.FieldPhone, Weight: 0.15},
			{Name: "vat", Kind: matching.FieldIdentifier, Weight: 0.15},
		},
	},
	"product.template": {
		EntityType: "product.template",
		Fields: []matching.MatchField{
			{Name: "name", Kind: matching.FieldName, Weight: 0.50},
			{Name: "default_code", Kind: matching.FieldIdentifier, Weight: 0.30},
			{Name: "barcode", Kind: matching.FieldIdentifier, Weight: 0.20},
		},
	},
}

// recommendMasterTool is the structured output contract for the AI master
// nomination. master_record_id must be a member of the group.
var recommendMasterTool = llm.ToolDefinition{
	Name:        "recommend_master",
	Description: "Pick the record that should survive a duplicate merge",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"master_record_id": map[string]interface{}{"type": "integer"},
			"reasoning":        map[string]interface{}{"type": "string"},
		},
		"required": []interface{}{"master_record_id"},
	},
}

// Dedup finds likely-duplicate partners and products, persists them as
// reviewable groups, and merges confirmed groups in the ERP.
type Dedup struct {
	client *ent.Client
	erp    erp.Client
	llm    llm.Client
}

// NewDedup creates the deduplication automation. llmClient may be nil, in
// which case master nomination stays purely heuristic.
func NewDedup(client *ent.Client, erpClient erp.Client, llmClient llm.Client) *Dedup {
	if client == nil {
		panic("NewDedup: ent client must not be nil")
	}
	if erpClient == nil {
		panic("NewDedup: erp client must not be nil")
	}
	return &Dedup{client: client, erp: erpClient, llm: llmClient}
}

// Type implements automation.Automation.
func (d *Dedup) Type() string { return "dedup" }

// WatchedModels implements automation.Automation.
func (d *Dedup) WatchedModels() []string {
	return []string{"res.partner", "product.template"}
}

// Handlers implements automation.Automation.
func (d *Dedup) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "res.partner"}:      d.onRecordCreated,
		{EventType: "create", Model: "product.template"}: d.onRecordCreated,
	}
}

// Scans implements automation.Automation.
func (d *Dedup) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_partner_dedup": func(ctx context.Context, day time.Time) ([]*automation.Result, error) {
			return d.scanEntity(ctx, "res.partner")
		},
		"scan_product_dedup": func(ctx context.Context, day time.Time) ([]*automation.Result, error) {
			return d.scanEntity(ctx, "product.template")
		},
	}
}

// Execute implements automation.Automation.
func (d *Dedup) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	if action.Name != "merge_duplicates" {
		return nil, fmt.Errorf("dedup: unknown action %q", action.Name)
	}
	groupID := erp.Str(action.Changes["group_id"])
	masterID := erp.Int(action.Changes["master_record_id"])
	group, err := d.Merge(ctx, groupID, masterID, "automation")
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"group_id":         group.ID,
		"master_record_id": group.MasterRecordID,
		"merged_count":     len(group.RecordIds) - 1,
	}, nil
}

// onRecordCreated compares a fresh record against the existing population
// and reports an immediate duplicate when one is found.
func (d *Dedup) onRecordCreated(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	cfg, ok := dedupConfigs[ev.Model]
	if !ok {
		return nil, fmt.Errorf("dedup: no config for model %q", ev.Model)
	}

	records, err := d.fetchRecords(ctx, cfg)
	if err != nil {
		return nil, err
	}

	created := matching.DedupRecord{ID: ev.RecordID, Fields: projectFields(cfg, ev.Values)}
	var best matching.PairScore
	var bestID int64
	for _, existing := range records {
		if existing.ID == ev.RecordID {
			continue
		}
		ps := matching.ComparePair(cfg, created, existing)
		if ps.Score > best.Score {
			best = ps
			bestID = existing.ID
		}
	}

	if bestID == 0 || best.Score < defaultDedupThreshold(cfg) {
		return &automation.Result{
			Success:     true,
			ActionName:  "duplicate_check",
			Confidence:  0.10,
			Reasoning:   fmt.Sprintf("no likely duplicate for new %s %d", ev.Model, ev.RecordID),
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	return &automation.Result{
		Success:    true,
		ActionName: "duplicate_check",
		Confidence: best.Score,
		Reasoning: fmt.Sprintf("new %s %d resembles record %d (score %.2f, fields %v)",
			ev.Model, ev.RecordID, bestID, best.Score, best.MatchedFields),
		ChangesMade:   map[string]interface{}{},
		NeedsApproval: true, // merging is never automatic on a create event
	}, nil
}

// RunScan clusters the current population of an entity type and persists a
// scan with one group per cluster. Clusters identical to an unresolved
// group from an earlier scan are skipped, so rescanning an unchanged
// snapshot adds nothing.
func (d *Dedup) RunScan(ctx context.Context, scanType string) (*ent.DedupScan, error) {
	cfg, ok := dedupConfigs[scanType]
	if !ok {
		return nil, services.NewValidationError("scan_type", fmt.Sprintf("unknown scan type %q", scanType))
	}

	scan, err := d.client.DedupScan.Create().
		SetID(uuid.NewString()).
		SetScanType(scanType).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	records, err := d.fetchRecords(ctx, cfg)
	if err != nil {
		return d.failScan(ctx, scan, err)
	}

	clusters := matching.Cluster(cfg, records)

	pending, err := d.pendingGroupKeys(ctx, scanType)
	if err != nil {
		return d.failScan(ctx, scan, err)
	}

	byID := make(map[int64]matching.DedupRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	created := 0
	for _, cluster := range clusters {
		if pending[groupKey(cluster.RecordIDs)] {
			continue
		}
		master := cluster.MasterID
		if recommended, ok := d.adviseMaster(ctx, cluster, byID); ok {
			master = recommended
		}
		_, err := d.client.DuplicateGroup.Create().
			SetID(uuid.NewString()).
			SetScanID(scan.ID).
			SetEntityType(scanType).
			SetRecordIds(cluster.RecordIDs).
			SetMasterRecordID(master).
			SetSimilarityScore(cluster.Score).
			SetMatchedFields(cluster.MatchedFields).
			Save(ctx)
		if err != nil {
			return d.failScan(ctx, scan, err)
		}
		created++
	}

	return scan.Update().
		SetStatus(dedupscan.StatusCompleted).
		SetRecordsScanned(len(records)).
		SetGroupsFound(created).
		SetCompletedAt(time.Now()).
		Save(ctx)
}

// ListScans returns scans, newest first.
func (d *Dedup) ListScans(ctx context.Context, limit int) ([]*ent.DedupScan, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return d.client.DedupScan.Query().
		Order(ent.Desc(dedupscan.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

// GetGroup returns one group or ErrNotFound.
func (d *Dedup) GetGroup(ctx context.Context, groupID string) (*ent.DuplicateGroup, error) {
	group, err := d.client.DuplicateGroup.Get(ctx, groupID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return group, nil
}

// Merge archives the losing records in the ERP and marks the group merged.
// The caller may override the nominated master; it must be a group member.
func (d *Dedup) Merge(ctx context.Context, groupID string, masterRecordID int64, resolvedBy string) (*ent.DuplicateGroup, error) {
	group, err := d.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.Resolution != duplicategroup.ResolutionPending {
		return nil, fmt.Errorf("group %s already %s: %w", groupID, group.Resolution, services.ErrInvalidTransition)
	}

	if masterRecordID == 0 {
		masterRecordID = group.MasterRecordID
	}
	var losers []int64
	found := false
	for _, id := range group.RecordIds {
		if id == masterRecordID {
			found = true
			continue
		}
		losers = append(losers, id)
	}
	if !found {
		return nil, services.NewValidationError("master_record_id",
			fmt.Sprintf("record %d is not a member of group %s", masterRecordID, groupID))
	}

	if err := d.erp.Write(ctx, group.EntityType, losers, map[string]any{
		"active":      false,
		"merged_into": masterRecordID,
	}); err != nil {
		return nil, fmt.Errorf("archiving merged records: %w", err)
	}

	return group.Update().
		SetResolution(duplicategroup.ResolutionMerged).
		SetMasterRecordID(masterRecordID).
		SetResolvedBy(resolvedBy).
		SetResolvedAt(time.Now()).
		Save(ctx)
}

// Dismiss marks a group as not-a-duplicate.
func (d *Dedup) Dismiss(ctx context.Context, groupID, resolvedBy string) (*ent.DuplicateGroup, error) {
	group, err := d.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.Resolution != duplicategroup.ResolutionPending {
		return nil, fmt.Errorf("group %s already %s: %w", groupID, group.Resolution, services.ErrInvalidTransition)
	}
	return group.Update().
		SetResolution(duplicategroup.ResolutionDismissed).
		SetResolvedBy(resolvedBy).
		SetResolvedAt(time.Now()).
		Save(ctx)
}

// scanEntity runs one scheduled scan and reports each new group through
// the gate as a pending review item.
func (d *Dedup) scanEntity(ctx context.Context, scanType string) ([]*automation.Result, error) {
	scan, err := d.RunScan(ctx, scanType)
	if err != nil {
		return nil, err
	}
	groups, err := scan.QueryGroups().All(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*automation.Result, 0, len(groups))
	for _, g := range groups {
		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "merge_duplicates",
			Model:      scanType,
			RecordID:   g.MasterRecordID,
			Confidence: g.SimilarityScore,
			Reasoning: fmt.Sprintf("%d likely duplicates of %s %d (score %.2f, fields %v)",
				len(g.RecordIds)-1, scanType, g.MasterRecordID, g.SimilarityScore, g.MatchedFields),
			ChangesMade: map[string]interface{}{
				"group_id":         g.ID,
				"master_record_id": g.MasterRecordID,
			},
			NeedsApproval: true, // merges always go through a human
		})
	}
	return results, nil
}

// adviseMaster asks the model which group member should survive the merge.
// Best-effort: on any error, a missing tool call, or a recommendation
// outside the group, the heuristic master stands. The API caller can still
// override the nomination on merge.
func (d *Dedup) adviseMaster(ctx context.Context, cluster matching.DuplicateCluster, byID map[int64]matching.DedupRecord) (int64, bool) {
	if d.llm == nil {
		return 0, false
	}

	members := make([]map[string]interface{}, 0, len(cluster.RecordIDs))
	for _, id := range cluster.RecordIDs {
		members = append(members, map[string]interface{}{
			"id":     id,
			"fields": byID[id].Fields,
		})
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"matched_fields": cluster.MatchedFields,
		"records":        members,
	})

	completion, err := d.llm.Complete(ctx, llm.Request{
		System: "You review duplicate business records. Pick the most complete, " +
			"most authoritative record to keep using the recommend_master tool.",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: string(payload)}},
		Tools:    []llm.ToolDefinition{recommendMasterTool},
	})
	if err != nil {
		return 0, false
	}
	call, err := firstToolCall(completion, recommendMasterTool)
	if err != nil {
		return 0, false
	}

	recommended := erp.Int(call.Input["master_record_id"])
	for _, id := range cluster.RecordIDs {
		if id == recommended {
			return recommended, true
		}
	}
	return 0, false
}

func (d *Dedup) fetchRecords(ctx context.Context, cfg matching.DedupConfig) ([]matching.DedupRecord, error) {
	fields := make([]string, 0, len(cfg.Fields)+1)
	fields = append(fields, "id")
	for _, f := range cfg.Fields {
		fields = append(fields, f.Name)
	}

	records, err := d.erp.SearchRead(ctx, cfg.EntityType,
		erp.NewDomain(erp.Condition("active", "=", true)),
		erp.SearchOptions{Fields: fields, Order: "id asc"})
	if err != nil {
		return nil, fmt.Errorf("reading %s records: %w", cfg.EntityType, err)
	}

	out := make([]matching.DedupRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, matching.DedupRecord{
			ID:     erp.Int(rec["id"]),
			Fields: projectFields(cfg, rec),
		})
	}
	return out, nil
}

// pendingGroupKeys returns the member-set keys of unresolved groups for an
// entity type, so a rescan does not duplicate them.
func (d *Dedup) pendingGroupKeys(ctx context.Context, entityType string) (map[string]bool, error) {
	groups, err := d.client.DuplicateGroup.Query().
		Where(
			duplicategroup.EntityType(entityType),
			duplicategroup.ResolutionEQ(duplicategroup.ResolutionPending),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	keys := make(map[string]bool, len(groups))
	for _, g := range groups {
		keys[groupKey(g.RecordIds)] = true
	}
	return keys, nil
}

func (d *Dedup) failScan(ctx context.Context, scan *ent.DedupScan, cause error) (*ent.DedupScan, error) {
	_, uerr := scan.Update().
		SetStatus(dedupscan.StatusFailed).
		SetErrorMessage(cause.Error()).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if uerr != nil {
		return nil, fmt.Errorf("scan failed (%v); marking failed also failed: %w", cause, uerr)
	}
	return nil, cause
}

func projectFields(cfg matching.DedupConfig, values map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(cfg.Fields))
	for _, f := range cfg.Fields {
		fields[f.Name] = erp.Str(values[f.Name])
	}
	return fields
}

// groupKey is a canonical key over a sorted member list.
func groupKey(ids []int64) string {
	key := ""
	for _, id := range ids {
		key += fmt.Sprintf("%d,", id)
	}
	return key
}

func defaultDedupThreshold(cfg matching.DedupConfig) float64 {
	if cfg.PairThreshold > 0 {
		return cfg.PairThreshold
	}
	return 0.65
}
