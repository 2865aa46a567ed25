// Package automations contains the concrete domain automations. Each one
// bundles event handlers and scheduled scans for one business area and
// composes the ERP, LLM and matching ports; audit logging and confidence
// gating happen in the automation engine, never here.
package automations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/llm"
)

// classifyExpenseTool is the structured output contract for vendor bill
// coding suggestions.
var classifyExpenseTool = llm.ToolDefinition{
	Name:        "classify_expense",
	Description: "Classify a vendor bill line into an expense account",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"account_code": map[string]interface{}{"type": "string"},
			"confidence":   map[string]interface{}{"type": "number"},
			"reasoning":    map[string]interface{}{"type": "string"},
		},
		"required": []interface{}{"account_code", "confidence"},
	},
}

// Accounting watches journal entries: it suggests expense coding for fresh
// vendor bills and chases overdue customer invoices.
type Accounting struct {
	erp          erp.Client
	llm          llm.Client
	systemPrompt string
}

// NewAccounting creates the accounting automation. systemPrompt is the
// configured coding prompt; empty selects a minimal default.
func NewAccounting(erpClient erp.Client, llmClient llm.Client, systemPrompt string) *Accounting {
	if erpClient == nil {
		panic("NewAccounting: erp client must not be nil")
	}
	if llmClient == nil {
		panic("NewAccounting: llm client must not be nil")
	}
	if systemPrompt == "" {
		systemPrompt = "You are an accountant. Classify vendor bill lines into expense accounts using the classify_expense tool."
	}
	return &Accounting{erp: erpClient, llm: llmClient, systemPrompt: systemPrompt}
}

// Type implements automation.Automation.
func (a *Accounting) Type() string { return "accounting" }

// WatchedModels implements automation.Automation.
func (a *Accounting) WatchedModels() []string { return []string{"account.move"} }

// Handlers implements automation.Automation.
func (a *Accounting) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "account.move"}: a.onMoveCreated,
	}
}

// Scans implements automation.Automation.
func (a *Accounting) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_overdue_invoices": a.scanOverdueInvoices,
	}
}

// Execute implements automation.Automation.
func (a *Accounting) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	switch action.Name {
	case "code_vendor_bill":
		if err := a.erp.Write(ctx, action.Model, []int64{action.RecordID}, action.Changes); err != nil {
			return nil, fmt.Errorf("coding bill %d: %w", action.RecordID, err)
		}
		return map[string]interface{}{"coded": true, "bill_id": action.RecordID}, nil
	case "send_payment_reminder":
		level := erp.Int(action.Changes["reminder_level"])
		_, err := a.erp.ExecuteMethod(ctx, action.Model, "action_send_payment_reminder",
			[]int64{action.RecordID}, level)
		if err != nil {
			return nil, fmt.Errorf("sending reminder for invoice %d: %w", action.RecordID, err)
		}
		return map[string]interface{}{"reminder_sent": true, "level": level}, nil
	default:
		return nil, fmt.Errorf("accounting: unknown action %q", action.Name)
	}
}

// onMoveCreated suggests expense coding for fresh vendor bills. Other move
// types pass through as notes.
func (a *Accounting) onMoveCreated(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	if erp.Str(ev.Values["move_type"]) != "in_invoice" {
		return &automation.Result{
			Success:     true,
			ActionName:  "code_vendor_bill",
			Confidence:  0.10,
			Reasoning:   "not a vendor bill; no coding needed",
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"partner":   ev.Values["partner_id"],
		"reference": ev.Values["ref"],
		"narration": ev.Values["narration"],
		"amount":    ev.Values["amount_total"],
	})

	completion, err := a.llm.Complete(ctx, llm.Request{
		System: a.systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: string(payload)},
		},
		Tools: []llm.ToolDefinition{classifyExpenseTool},
	})
	if err != nil {
		return nil, fmt.Errorf("classifying bill %d: %w", ev.RecordID, err)
	}

	tokens := completion.TokensIn + completion.TokensOut
	call, err := firstToolCall(completion, classifyExpenseTool)
	if err != nil {
		return &automation.Result{
			Success:    false,
			ActionName: "code_vendor_bill",
			RecordID:   ev.RecordID,
			TokensUsed: tokens,
			Error:      err.Error(),
		}, nil
	}

	accountCode := erp.Str(call.Input["account_code"])
	confidence := erp.Float(call.Input["confidence"])
	reasoning := erp.Str(call.Input["reasoning"])

	return &automation.Result{
		Success:    true,
		ActionName: "code_vendor_bill",
		RecordID:   ev.RecordID,
		Confidence: confidence,
		Reasoning:  reasoning,
		ChangesMade: map[string]interface{}{
			"expense_account_code": accountCode,
		},
		TokensUsed: tokens,
	}, nil
}

// scanOverdueInvoices proposes escalating payment reminders for posted
// customer invoices past due.
func (a *Accounting) scanOverdueInvoices(ctx context.Context, day time.Time) ([]*automation.Result, error) {
	overdue, err := a.erp.SearchRead(ctx, "account.move",
		erp.NewDomain(
			erp.Condition("move_type", "=", "out_invoice"),
			erp.Condition("state", "=", "posted"),
			erp.Condition("amount_residual", ">", 0),
			erp.Condition("invoice_date_due", "<", day.Format("2006-01-02")),
		),
		erp.SearchOptions{Fields: []string{"id", "amount_residual", "invoice_date_due", "partner_id"}})
	if err != nil {
		return nil, fmt.Errorf("finding overdue invoices: %w", err)
	}

	results := make([]*automation.Result, 0, len(overdue))
	for _, inv := range overdue {
		id := erp.Int(inv["id"])
		due, _ := parseERPDate(erp.Str(inv["invoice_date_due"]))
		overdueDays := int(day.Sub(due).Hours() / 24)
		level := reminderLevel(overdueDays)
		partnerID, partnerName := erp.Many2One(inv["partner_id"])

		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "send_payment_reminder",
			Model:      "account.move",
			RecordID:   id,
			Confidence: 0.96, // reminder text is templated, safe to auto-send
			Reasoning: fmt.Sprintf("invoice %d for %s (partner %d) is %d days overdue, %.2f outstanding",
				id, partnerName, partnerID, overdueDays, erp.Float(inv["amount_residual"])),
			ChangesMade: map[string]interface{}{
				"reminder_level": level,
				"overdue_days":   overdueDays,
			},
		})
	}
	return results, nil
}

// reminderLevel escalates with how late the invoice is.
func reminderLevel(overdueDays int) int {
	switch {
	case overdueDays <= 7:
		return 1
	case overdueDays <= 30:
		return 2
	default:
		return 3
	}
}

// firstToolCall returns the first call to the expected tool, validated
// against its schema.
func firstToolCall(completion *llm.Completion, tool llm.ToolDefinition) (*llm.ToolCall, error) {
	for i := range completion.ToolCalls {
		call := &completion.ToolCalls[i]
		if call.Name != tool.Name {
			continue
		}
		if err := llm.ValidateToolInput(tool, call.Input); err != nil {
			return nil, err
		}
		return call, nil
	}
	return nil, fmt.Errorf("model did not invoke tool %s", tool.Name)
}
