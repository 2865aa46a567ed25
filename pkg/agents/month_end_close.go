package agents

import (
	"context"
	"fmt"
	"math"

	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/automations"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/notify"
	"github.com/steward-ai/steward/pkg/period"
)

// AgentTypeMonthEndClose is the registry key for the close assistant.
const AgentTypeMonthEndClose = "month_end_close"

// anomalyAmountThreshold flags journal entries whose amount is an outlier
// for the period.
const anomalyAmountThreshold = 100000.0

// composeCloseReportTool produces the narrative close report.
var composeCloseReportTool = llm.ToolDefinition{
	Name:        "compose_close_report",
	Description: "Write a short close readiness report from the issue summary",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"summary": map[string]interface{}{"type": "string"},
			"recommendations": map[string]interface{}{
				"type":  "array",
				"items": map[string]interface{}{"type": "string"},
			},
		},
		"required": []interface{}{"summary"},
	},
}

// closeIssue is one open item found while scanning the period.
type closeIssue struct {
	Kind     string  `json:"kind"`
	RecordID int64   `json:"record_id"`
	Amount   float64 `json:"amount"`
	Severity string  `json:"severity"`
	Resolved bool    `json:"resolved"`
}

// MonthEndClose sweeps a fiscal period for open items, classifies them,
// auto-resolves the trivial ones, scores close readiness and writes a
// report for the controller.
type MonthEndClose struct {
	erp      erp.Client
	llm      llm.Client
	notifier *notify.Service
}

// NewMonthEndClose creates the close assistant agent.
func NewMonthEndClose(erpClient erp.Client, llmClient llm.Client, notifier *notify.Service) *MonthEndClose {
	if erpClient == nil {
		panic("NewMonthEndClose: erp client must not be nil")
	}
	if llmClient == nil {
		panic("NewMonthEndClose: llm client must not be nil")
	}
	return &MonthEndClose{erp: erpClient, llm: llmClient, notifier: notifier}
}

// Graph builds the agent graph.
func (m *MonthEndClose) Graph() *agentgraph.Graph {
	return agentgraph.NewGraph(AgentTypeMonthEndClose).
		AddNode("scan_issues", m.scanIssues).
		AddNode("detect_anomalies", m.detectAnomalies).
		AddNode("classify_severity", m.classifySeverity).
		AddNode("auto_resolve", m.autoResolve).
		AddNode("compute_readiness", m.computeReadiness).
		AddNode("generate_report", m.generateReport).
		AddNode("notify", m.notify).
		SetStart("scan_issues").
		AddEdge("scan_issues", "detect_anomalies").
		AddEdge("detect_anomalies", "classify_severity").
		AddEdge("classify_severity", "auto_resolve").
		AddEdge("auto_resolve", "compute_readiness").
		AddEdge("compute_readiness", "generate_report").
		AddEdge("generate_report", "notify").
		AddEdge("notify", agentgraph.END)
}

// scanIssues collects unposted journal entries and unreconciled bank lines
// for the period.
func (m *MonthEndClose) scanIssues(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	p, err := period.Parse(state.Str("period"))
	if err != nil {
		return nil, fmt.Errorf("bad period in initial state: %w", err)
	}
	first, last := p.Start(), p.End()

	var issues []closeIssue

	drafts, err := m.erp.SearchRead(ctx, "account.move",
		erp.NewDomain(
			erp.Condition("state", "=", "draft"),
			erp.Condition("date", ">=", first.Format("2006-01-02")),
			erp.Condition("date", "<=", last.Format("2006-01-02")),
		),
		erp.SearchOptions{Fields: []string{"id", "amount_total"}})
	if err != nil {
		return nil, fmt.Errorf("scanning unposted entries: %w", err)
	}
	for _, rec := range drafts {
		issues = append(issues, closeIssue{
			Kind:     "unposted_entries",
			RecordID: erp.Int(rec["id"]),
			Amount:   erp.Float(rec["amount_total"]),
		})
	}

	unreconciled, err := m.erp.SearchRead(ctx, "account.bank.statement.line",
		erp.NewDomain(
			erp.Condition("is_reconciled", "=", false),
			erp.Condition("date", ">=", first.Format("2006-01-02")),
			erp.Condition("date", "<=", last.Format("2006-01-02")),
		),
		erp.SearchOptions{Fields: []string{"id", "amount"}})
	if err != nil {
		return nil, fmt.Errorf("scanning unreconciled lines: %w", err)
	}
	for _, rec := range unreconciled {
		issues = append(issues, closeIssue{
			Kind:     "bank_reconciliation",
			RecordID: erp.Int(rec["id"]),
			Amount:   erp.Float(rec["amount"]),
		})
	}

	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"period": p.String(),
			"issues": encodeIssues(issues),
		},
	}, nil
}

// detectAnomalies flags outlier amounts among the issues.
func (m *MonthEndClose) detectAnomalies(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	issues := decodeIssues(state["issues"])
	anomalies := 0
	for _, issue := range issues {
		if math.Abs(issue.Amount) >= anomalyAmountThreshold {
			anomalies++
		}
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"anomalies": anomalies},
	}, nil
}

// classifySeverity assigns each issue the severity of its checklist step.
func (m *MonthEndClose) classifySeverity(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	issues := decodeIssues(state["issues"])
	critical, high := 0, 0
	for i := range issues {
		sev := automations.StepSeverity(issues[i].Kind)
		issues[i].Severity = string(sev)
		switch sev {
		case automations.SeverityCritical:
			critical++
		case automations.SeverityHigh:
			high++
		}
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"issues":   encodeIssues(issues),
			"critical": critical,
			"high":     high,
		},
	}, nil
}

// autoResolve clears low-severity issues without human review. Everything
// else stays pending.
func (m *MonthEndClose) autoResolve(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	issues := decodeIssues(state["issues"])
	resolved, pending := 0, 0
	for i := range issues {
		if issues[i].Severity == string(automations.SeverityLow) {
			issues[i].Resolved = true
			resolved++
			continue
		}
		pending++
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"issues":         encodeIssues(issues),
			"auto_resolved":  resolved,
			"pending_review": pending,
		},
	}, nil
}

// computeReadiness scores the close from the classified issues.
func (m *MonthEndClose) computeReadiness(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	issues := decodeIssues(state["issues"])
	score := automations.ReadinessScore(automations.ReadinessInput{
		TotalIssues:   len(issues),
		PendingReview: state.Int("pending_review"),
		Anomalies:     state.Int("anomalies"),
		Critical:      state.Int("critical"),
		High:          state.Int("high"),
	})
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"readiness_score": score},
	}, nil
}

// generateReport asks the model for a narrative summary of the close state.
func (m *MonthEndClose) generateReport(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	completion, err := m.llm.Complete(ctx, llm.Request{
		System: "Summarize the month-end close state for the controller using the compose_close_report tool.",
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Content: fmt.Sprintf(
				"period %s: %d open issues (%d critical, %d high), %d anomalies, %d auto-resolved, readiness %.1f",
				state.Str("period"), state.Int("pending_review"), state.Int("critical"),
				state.Int("high"), state.Int("anomalies"), state.Int("auto_resolved"),
				state.Float("readiness_score")),
		}},
		Tools: []llm.ToolDefinition{composeCloseReportTool},
	})
	if err != nil {
		return nil, fmt.Errorf("composing close report: %w", err)
	}

	summary := completion.Text
	var recommendations []string
	var decisions []agentgraph.DecisionDraft
	for i := range completion.ToolCalls {
		call := &completion.ToolCalls[i]
		if call.Name != composeCloseReportTool.Name {
			continue
		}
		if err := llm.ValidateToolInput(composeCloseReportTool, call.Input); err != nil {
			return nil, err
		}
		summary = erp.Str(call.Input["summary"])
		if raw, ok := call.Input["recommendations"].([]interface{}); ok {
			for _, r := range raw {
				if s, ok := r.(string); ok {
					recommendations = append(recommendations, s)
				}
			}
		}
		break
	}
	decisions = append(decisions, agentgraph.DecisionDraft{
		PromptFingerprint: "month_end_close/compose_close_report",
		ResponsePayload:   map[string]interface{}{"summary": summary},
		Confidence:        1.0,
		TokensIn:          completion.TokensIn,
		TokensOut:         completion.TokensOut,
		ToolsInvoked:      []string{composeCloseReportTool.Name},
	})

	updates := agentgraph.State{"report_summary": summary}
	if len(recommendations) > 0 {
		updates["recommendations"] = recommendations
	}
	return &agentgraph.NodeResult{Updates: updates, Decisions: decisions}, nil
}

// notify delivers the report headline to the controller channel.
func (m *MonthEndClose) notify(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	outcome := m.notifier.Send(ctx, notify.Message{
		Title: fmt.Sprintf("Close readiness for %s", state.Str("period")),
		Text:  state.Str("report_summary"),
		Fields: map[string]string{
			"readiness": fmt.Sprintf("%.1f", state.Float("readiness_score")),
			"pending":   fmt.Sprintf("%d", state.Int("pending_review")),
		},
	})
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"notified": outcome.Delivered()},
	}, nil
}

// encodeIssues/decodeIssues keep the issue list representable as plain JSON
// so it survives state snapshots.
func encodeIssues(issues []closeIssue) []interface{} {
	out := make([]interface{}, 0, len(issues))
	for _, issue := range issues {
		out = append(out, map[string]interface{}{
			"kind":      issue.Kind,
			"record_id": float64(issue.RecordID),
			"amount":    issue.Amount,
			"severity":  issue.Severity,
			"resolved":  issue.Resolved,
		})
	}
	return out
}

func decodeIssues(raw interface{}) []closeIssue {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := make([]closeIssue, 0, len(list))
	for _, item := range list {
		fields, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, closeIssue{
			Kind:     erp.Str(fields["kind"]),
			RecordID: erp.Int(fields["record_id"]),
			Amount:   erp.Float(fields["amount"]),
			Severity: erp.Str(fields["severity"]),
			Resolved: fields["resolved"] == true,
		})
	}
	return out
}
