package automations

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/reportjob"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/services"
)

// planReportTool is the structured output contract for query planning.
var planReportTool = llm.ToolDefinition{
	Name:        "plan_report",
	Description: "Translate a natural-language question into an ERP read plan",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"model":    map[string]interface{}{"type": "string"},
			"domain":   map[string]interface{}{"type": "array"},
			"fields":   map[string]interface{}{"type": "array"},
			"group_by": map[string]interface{}{"type": "array"},
			"limit":    map[string]interface{}{"type": "integer"},
		},
		"required": []interface{}{"model", "fields"},
	},
}

// ParsedQuery is the model-produced read plan for one report.
type ParsedQuery struct {
	Model   string
	Domain  erp.Domain
	Fields  []string
	GroupBy []string
	Limit   int
}

// Columns returns the column set of the report: fields plus group-by keys.
func (q ParsedQuery) Columns() []string {
	seen := make(map[string]bool, len(q.Fields)+len(q.GroupBy))
	cols := make([]string, 0, len(q.Fields)+len(q.GroupBy))
	for _, f := range append(append([]string{}, q.GroupBy...), q.Fields...) {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		cols = append(cols, f)
	}
	return cols
}

// Reports answers natural-language questions about ERP data: a model call
// plans the read, the plan executes against the ERP, and the rows come back
// with a short narrative.
type Reports struct {
	client *ent.Client
	erp    erp.Client
	llm    llm.Client
}

// NewReports creates the report-builder automation.
func NewReports(client *ent.Client, erpClient erp.Client, llmClient llm.Client) *Reports {
	if client == nil {
		panic("NewReports: ent client must not be nil")
	}
	if erpClient == nil {
		panic("NewReports: erp client must not be nil")
	}
	if llmClient == nil {
		panic("NewReports: llm client must not be nil")
	}
	return &Reports{client: client, erp: erpClient, llm: llmClient}
}

// Type implements automation.Automation.
func (r *Reports) Type() string { return "reports" }

// WatchedModels implements automation.Automation. Reports are on-demand.
func (r *Reports) WatchedModels() []string { return nil }

// Handlers implements automation.Automation.
func (r *Reports) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{}
}

// Scans implements automation.Automation.
func (r *Reports) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{}
}

// Execute implements automation.Automation. Reports are read-only.
func (r *Reports) Execute(_ context.Context, action automation.Action) (map[string]interface{}, error) {
	return nil, fmt.Errorf("reports: unknown action %q", action.Name)
}

// Run executes one report job end to end.
func (r *Reports) Run(ctx context.Context, query, requestedBy string) (*ent.ReportJob, error) {
	if strings.TrimSpace(query) == "" {
		return nil, services.NewValidationError("query", "must not be empty")
	}

	job, err := r.client.ReportJob.Create().
		SetID(uuid.NewString()).
		SetQuery(query).
		SetRequestedBy(requestedBy).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	job, err = job.Update().SetStatus(reportjob.StatusPlanning).Save(ctx)
	if err != nil {
		return nil, err
	}

	plan, tokens, err := r.ParseQuery(ctx, query)
	if err != nil {
		return r.failJob(ctx, job, err)
	}

	job, err = job.Update().
		SetStatus(reportjob.StatusRunning).
		SetPlan(map[string]interface{}{
			"model":    plan.Model,
			"domain":   []any(plan.Domain),
			"fields":   plan.Fields,
			"group_by": plan.GroupBy,
			"limit":    plan.Limit,
		}).
		SetTokensUsed(tokens).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.ExecuteQuery(ctx, plan)
	if err != nil {
		return r.failJob(ctx, job, err)
	}

	narrative := fmt.Sprintf("%d rows from %s over columns %s",
		len(rows), plan.Model, strings.Join(plan.Columns(), ", "))

	return job.Update().
		SetStatus(reportjob.StatusCompleted).
		SetResult(map[string]interface{}{
			"columns": plan.Columns(),
			"rows":    rows,
		}).
		SetNarrative(narrative).
		SetCompletedAt(time.Now()).
		Save(ctx)
}

// GetJob returns one report job or ErrNotFound.
func (r *Reports) GetJob(ctx context.Context, jobID string) (*ent.ReportJob, error) {
	job, err := r.client.ReportJob.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

// ParseQuery turns a natural-language question into a read plan.
func (r *Reports) ParseQuery(ctx context.Context, query string) (ParsedQuery, int, error) {
	completion, err := r.llm.Complete(ctx, llm.Request{
		System: "Translate the question into an ERP read plan using the plan_report tool.",
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: query},
		},
		Tools: []llm.ToolDefinition{planReportTool},
	})
	if err != nil {
		return ParsedQuery{}, 0, fmt.Errorf("planning report: %w", err)
	}
	tokens := completion.TokensIn + completion.TokensOut

	call, err := firstToolCall(completion, planReportTool)
	if err != nil {
		return ParsedQuery{}, tokens, err
	}

	plan := ParsedQuery{
		Model:   erp.Str(call.Input["model"]),
		Fields:  stringSlice(call.Input["fields"]),
		GroupBy: stringSlice(call.Input["group_by"]),
		Limit:   int(erp.Float(call.Input["limit"])),
	}
	if raw, ok := call.Input["domain"].([]interface{}); ok {
		plan.Domain = erp.Domain(raw)
	}
	if plan.Model == "" || len(plan.Fields) == 0 {
		return ParsedQuery{}, tokens, fmt.Errorf("model produced an empty read plan")
	}
	return plan, tokens, nil
}

// ExecuteQuery runs a plan against the ERP. Every returned row carries
// exactly the plan's column set (fields plus group-by keys); grouped plans
// aggregate numeric fields by sum within each group.
func (r *Reports) ExecuteQuery(ctx context.Context, plan ParsedQuery) ([]map[string]interface{}, error) {
	readFields := plan.Columns()
	records, err := r.erp.SearchRead(ctx, plan.Model, plan.Domain,
		erp.SearchOptions{Fields: readFields, Limit: plan.Limit})
	if err != nil {
		return nil, fmt.Errorf("executing report query on %s: %w", plan.Model, err)
	}

	if len(plan.GroupBy) == 0 {
		rows := make([]map[string]interface{}, 0, len(records))
		for _, rec := range records {
			rows = append(rows, projectRow(rec, readFields))
		}
		return rows, nil
	}
	return groupRows(records, plan), nil
}

func (r *Reports) failJob(ctx context.Context, job *ent.ReportJob, cause error) (*ent.ReportJob, error) {
	_, uerr := job.Update().
		SetStatus(reportjob.StatusFailed).
		SetErrorMessage(cause.Error()).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if uerr != nil {
		return nil, fmt.Errorf("report failed (%v); marking failed also failed: %w", cause, uerr)
	}
	return nil, cause
}

// groupRows aggregates records by the group-by key tuple: numeric fields
// sum, non-numeric fields keep the first value seen. Output order is
// deterministic by group key.
func groupRows(records []erp.Record, plan ParsedQuery) []map[string]interface{} {
	type group struct {
		row   map[string]interface{}
		count int
	}
	groups := make(map[string]*group)

	for _, rec := range records {
		key := ""
		for _, g := range plan.GroupBy {
			key += fmt.Sprintf("%v|", rec[g])
		}
		entry, ok := groups[key]
		if !ok {
			row := make(map[string]interface{}, len(plan.GroupBy)+len(plan.Fields))
			for _, g := range plan.GroupBy {
				row[g] = rec[g]
			}
			for _, f := range plan.Fields {
				row[f] = rec[f]
			}
			groups[key] = &group{row: row, count: 1}
			continue
		}
		entry.count++
		for _, f := range plan.Fields {
			if _, isNum := numeric(rec[f]); !isNum {
				continue
			}
			prev, _ := numeric(entry.row[f])
			cur, _ := numeric(rec[f])
			entry.row[f] = prev + cur
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]map[string]interface{}, 0, len(groups))
	for _, k := range keys {
		rows = append(rows, groups[k].row)
	}
	return rows
}

// projectRow restricts a record to the report columns, filling absent
// fields with nil so every row has the full column set.
func projectRow(rec erp.Record, columns []string) map[string]interface{} {
	row := make(map[string]interface{}, len(columns))
	for _, c := range columns {
		v, ok := rec[c]
		if !ok {
			row[c] = nil
			continue
		}
		row[c] = v
	}
	return row
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func stringSlice(raw interface{}) []string {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
