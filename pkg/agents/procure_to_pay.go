// Package agents defines the built-in agent graphs: multi-step workflows
// executed by the agentgraph runtime. Each agent wires its nodes from the
// ERP, LLM and notification ports; limits come from the agent registry.
package agents

import (
	"context"
	"fmt"
	"math"

	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/notify"
)

// AgentTypeProcureToPay is the registry key for the vendor bill workflow.
const AgentTypeProcureToPay = "procure_to_pay"

// amountTolerancePct is the allowed bill/PO variance before a human looks.
const amountTolerancePct = 2.0

// autoApproveLimit is the bill amount under which a clean three-way match
// posts without approval.
const autoApproveLimit = 10000.0

// extractPOReferenceTool pulls the purchase order reference out of free-form
// bill text.
var extractPOReferenceTool = llm.ToolDefinition{
	Name:        "extract_po_reference",
	Description: "Extract the purchase order reference from vendor bill text",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"po_reference": map[string]interface{}{"type": "string"},
			"confidence":   map[string]interface{}{"type": "number"},
		},
		"required": []interface{}{"po_reference", "confidence"},
	},
}

// ProcureToPay drives a vendor bill from intake to posting: extract, match
// against the purchase order, three-way validation, then an approval route
// that may suspend the run until a human decides.
type ProcureToPay struct {
	erp      erp.Client
	llm      llm.Client
	notifier *notify.Service
}

// NewProcureToPay creates the procure-to-pay agent.
func NewProcureToPay(erpClient erp.Client, llmClient llm.Client, notifier *notify.Service) *ProcureToPay {
	if erpClient == nil {
		panic("NewProcureToPay: erp client must not be nil")
	}
	if llmClient == nil {
		panic("NewProcureToPay: llm client must not be nil")
	}
	return &ProcureToPay{erp: erpClient, llm: llmClient, notifier: notifier}
}

// Graph builds the agent graph. Compiled once by the runtime at registration.
func (p *ProcureToPay) Graph() *agentgraph.Graph {
	return agentgraph.NewGraph(AgentTypeProcureToPay).
		AddNode("extract", p.extract).
		AddNode("po_match", p.poMatch).
		AddNode("validate_amounts", p.validateAmounts).
		AddNode("check_receipt", p.checkReceipt).
		AddNode("create_draft_bill", p.createDraftBill).
		AddNode("request_approval", p.requestApproval).
		AddNode("escalate", p.escalate).
		AddNode("reject_bill", p.rejectBill).
		AddNode("post_bill", p.postBill).
		AddNode("update_vendor_score", p.updateVendorScore).
		AddNode("notify", p.notify).
		SetStart("extract").
		AddEdge("extract", "po_match").
		AddEdge("po_match", "validate_amounts").
		AddEdge("validate_amounts", "check_receipt").
		AddEdge("check_receipt", "create_draft_bill").
		AddConditionalEdge("create_draft_bill", approvalRoute, map[string]string{
			"auto_approve":   "post_bill",
			"needs_approval": "request_approval",
			"escalate":       "escalate",
		}).
		AddConditionalEdge("request_approval", approvalDecision, map[string]string{
			"approved": "post_bill",
			"rejected": "reject_bill",
		}).
		AddEdge("post_bill", "update_vendor_score").
		AddEdge("update_vendor_score", "notify").
		AddEdge("escalate", "notify").
		AddEdge("reject_bill", "notify").
		AddEdge("notify", agentgraph.END)
}

// approvalRoute decides how a draft bill proceeds. Anything that failed the
// three-way match escalates; clean small bills post directly; the rest wait
// for approval.
func approvalRoute(state agentgraph.State) string {
	if !state.Bool("po_found") || !state.Bool("amount_ok") || !state.Bool("receipt_ok") {
		return "escalate"
	}
	if state.Float("bill_amount") < autoApproveLimit {
		return "auto_approve"
	}
	return "needs_approval"
}

// approvalDecision routes the resumed run on the human's verdict.
func approvalDecision(state agentgraph.State) string {
	if state.Bool("approved") {
		return "approved"
	}
	return "rejected"
}

// extract reads the inbound bill and pulls the PO reference out of its
// free-form text with one model call.
func (p *ProcureToPay) extract(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	billID := int64(state.Int("record_id"))
	if billID == 0 {
		return nil, fmt.Errorf("no record_id in initial state")
	}

	bill, err := p.erp.Read(ctx, "account.move", billID,
		[]string{"ref", "narration", "partner_id", "amount_total", "invoice_date"})
	if err != nil {
		return nil, fmt.Errorf("reading bill %d: %w", billID, err)
	}
	vendorID, vendorName := erp.Many2One(bill["partner_id"])

	completion, err := p.llm.Complete(ctx, llm.Request{
		System: "Extract the purchase order reference from the vendor bill using the extract_po_reference tool.",
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("ref: %s\nnarration: %s", erp.Str(bill["ref"]), erp.Str(bill["narration"])),
		}},
		Tools: []llm.ToolDefinition{extractPOReferenceTool},
	})
	if err != nil {
		return nil, fmt.Errorf("extracting po reference: %w", err)
	}

	poRef := ""
	confidence := 0.0
	var decisions []agentgraph.DecisionDraft
	for i := range completion.ToolCalls {
		call := &completion.ToolCalls[i]
		if call.Name != extractPOReferenceTool.Name {
			continue
		}
		if err := llm.ValidateToolInput(extractPOReferenceTool, call.Input); err != nil {
			return nil, err
		}
		poRef = erp.Str(call.Input["po_reference"])
		confidence = erp.Float(call.Input["confidence"])
		break
	}
	decisions = append(decisions, agentgraph.DecisionDraft{
		PromptFingerprint: "procure_to_pay/extract_po_reference",
		ResponsePayload:   map[string]interface{}{"po_reference": poRef},
		Confidence:        confidence,
		TokensIn:          completion.TokensIn,
		TokensOut:         completion.TokensOut,
		ToolsInvoked:      []string{extractPOReferenceTool.Name},
	})

	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"bill_id":     billID,
			"vendor_id":   vendorID,
			"vendor_name": vendorName,
			"bill_amount": erp.Float(bill["amount_total"]),
			"po_ref":      poRef,
		},
		Decisions: decisions,
	}, nil
}

// poMatch looks the extracted reference up among the vendor's open orders.
func (p *ProcureToPay) poMatch(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	poRef := state.Str("po_ref")
	vendorID := int64(state.Int("vendor_id"))
	if poRef == "" {
		return &agentgraph.NodeResult{
			Updates: agentgraph.State{"po_found": false},
		}, nil
	}

	orders, err := p.erp.SearchRead(ctx, "purchase.order",
		erp.NewDomain(
			erp.Condition("name", "=", poRef),
			erp.Condition("partner_id", "=", vendorID),
			erp.Condition("state", "in", []any{"purchase", "done"}),
		),
		erp.SearchOptions{Fields: []string{"id", "amount_total", "receipt_status"}, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("matching po %q: %w", poRef, err)
	}
	if len(orders) == 0 {
		return &agentgraph.NodeResult{
			Updates: agentgraph.State{"po_found": false},
		}, nil
	}

	po := orders[0]
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"po_found":       true,
			"po_id":          erp.Int(po["id"]),
			"po_amount":      erp.Float(po["amount_total"]),
			"receipt_status": erp.Str(po["receipt_status"]),
		},
	}, nil
}

// validateAmounts compares the bill total against the matched order.
func (p *ProcureToPay) validateAmounts(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	if !state.Bool("po_found") {
		return &agentgraph.NodeResult{
			Updates: agentgraph.State{"amount_ok": false, "variance_pct": 0.0},
		}, nil
	}

	billAmount := state.Float("bill_amount")
	poAmount := state.Float("po_amount")
	variance := 0.0
	if poAmount != 0 {
		variance = math.Abs(billAmount-poAmount) / poAmount * 100
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"amount_ok":    variance <= amountTolerancePct,
			"variance_pct": variance,
		},
	}, nil
}

// checkReceipt verifies the goods arrived before the bill is allowed through.
func (p *ProcureToPay) checkReceipt(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	ok := state.Bool("po_found") && state.Str("receipt_status") == "full"
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"receipt_ok": ok},
	}, nil
}

// createDraftBill links the bill to its order and leaves it in draft.
func (p *ProcureToPay) createDraftBill(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	billID := int64(state.Int("bill_id"))
	values := map[string]any{"state": "draft"}
	if state.Bool("po_found") {
		values["purchase_id"] = state.Int("po_id")
	}
	if err := p.erp.Write(ctx, "account.move", []int64{billID}, values); err != nil {
		return nil, fmt.Errorf("preparing draft bill %d: %w", billID, err)
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"draft_ready": true},
	}, nil
}

// requestApproval parks the run until a human decides on the bill.
func (p *ProcureToPay) requestApproval(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"approval_requested": true,
		},
		NeedsSuspension: true,
		ResumeCondition: "awaiting_bill_approval",
	}, nil
}

// escalate hands the bill to a human without posting anything.
func (p *ProcureToPay) escalate(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	reason := "purchase order not found"
	switch {
	case state.Bool("po_found") && !state.Bool("amount_ok"):
		reason = fmt.Sprintf("amount variance %.1f%% exceeds tolerance", state.Float("variance_pct"))
	case state.Bool("po_found") && !state.Bool("receipt_ok"):
		reason = "goods receipt incomplete"
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"outcome":          "escalated",
			"escalation_cause": reason,
		},
	}, nil
}

// rejectBill records a human rejection after resume.
func (p *ProcureToPay) rejectBill(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"outcome": "rejected"},
	}, nil
}

// postBill posts the draft in the ERP.
func (p *ProcureToPay) postBill(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	billID := int64(state.Int("bill_id"))
	if _, err := p.erp.ExecuteMethod(ctx, "account.move", "action_post", []int64{billID}); err != nil {
		return nil, fmt.Errorf("posting bill %d: %w", billID, err)
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"outcome": "posted", "posted": true},
	}, nil
}

// updateVendorScore nudges the vendor's delivery record from how clean this
// bill went through.
func (p *ProcureToPay) updateVendorScore(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	delta := 1.0
	if state.Float("variance_pct") > 0 {
		delta = 0.5
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"vendor_score_delta": delta},
	}, nil
}

// notify reports the terminal outcome on the notification channel.
func (p *ProcureToPay) notify(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	outcome := p.notifier.Send(ctx, notify.Message{
		Title: "Vendor bill workflow finished",
		Text:  fmt.Sprintf("Bill %d for %s: %s", state.Int("bill_id"), state.Str("vendor_name"), state.Str("outcome")),
		Fields: map[string]string{
			"amount": fmt.Sprintf("%.2f", state.Float("bill_amount")),
			"po_ref": state.Str("po_ref"),
		},
	})
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"notified": outcome.Delivered()},
	}, nil
}
