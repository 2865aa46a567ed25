package agents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/steward-ai/steward/pkg/agentgraph"
	"github.com/steward-ai/steward/pkg/automations"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/notify"
	"github.com/steward-ai/steward/pkg/services"
)

// AgentTypeCollection is the registry key for the receivables workflow.
const AgentTypeCollection = "collection"

// Collection strategies, ordered by severity.
const (
	StrategyGentleReminder = "gentle_reminder"
	StrategyFirmNotice     = "firm_notice"
	StrategyEscalate       = "escalate"
)

// firmNoticeAmountCap is the amount above which even a moderately overdue
// invoice goes straight to a human.
const firmNoticeAmountCap = 50000.0

// SelectStrategy picks the collection approach for one overdue invoice.
func SelectStrategy(overdueDays int, amountDue float64) string {
	switch {
	case overdueDays <= 7:
		return StrategyGentleReminder
	case overdueDays <= 30:
		if amountDue >= firmNoticeAmountCap {
			return StrategyEscalate
		}
		return StrategyFirmNotice
	default:
		return StrategyEscalate
	}
}

// CreditImpact is the score adjustment an overdue invoice costs its
// customer, by how long it has been outstanding.
func CreditImpact(overdueDays int) float64 {
	switch {
	case overdueDays <= 7:
		return -1.0
	case overdueDays <= 30:
		return -3.0
	case overdueDays <= 60:
		return -8.0
	default:
		return -15.0
	}
}

// Collection chases one overdue receivable: assess how late it is, pick a
// strategy, act on it in the ERP, and charge the lateness against the
// customer's credit score.
type Collection struct {
	erp      erp.Client
	credit   *automations.Credit
	notifier *notify.Service
}

// NewCollection creates the collection agent.
func NewCollection(erpClient erp.Client, credit *automations.Credit, notifier *notify.Service) *Collection {
	if erpClient == nil {
		panic("NewCollection: erp client must not be nil")
	}
	if credit == nil {
		panic("NewCollection: credit automation must not be nil")
	}
	return &Collection{erp: erpClient, credit: credit, notifier: notifier}
}

// Graph builds the agent graph.
func (c *Collection) Graph() *agentgraph.Graph {
	return agentgraph.NewGraph(AgentTypeCollection).
		AddNode("assess", c.assess).
		AddNode("select_strategy", c.selectStrategy).
		AddNode("send_reminder", c.sendReminder).
		AddNode("send_notice", c.sendNotice).
		AddNode("escalate_account", c.escalateAccount).
		AddNode("apply_credit_impact", c.applyCreditImpact).
		AddNode("notify", c.notify).
		SetStart("assess").
		AddEdge("assess", "select_strategy").
		AddConditionalEdge("select_strategy", strategyRoute, map[string]string{
			StrategyGentleReminder: "send_reminder",
			StrategyFirmNotice:     "send_notice",
			StrategyEscalate:       "escalate_account",
		}).
		AddEdge("send_reminder", "apply_credit_impact").
		AddEdge("send_notice", "apply_credit_impact").
		AddEdge("escalate_account", "apply_credit_impact").
		AddEdge("apply_credit_impact", "notify").
		AddEdge("notify", agentgraph.END)
}

func strategyRoute(state agentgraph.State) string {
	return state.Str("strategy")
}

// assess reads the overdue invoice and works out how late it is.
func (c *Collection) assess(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	invoiceID := int64(state.Int("record_id"))
	if invoiceID == 0 {
		return nil, fmt.Errorf("no record_id in initial state")
	}

	inv, err := c.erp.Read(ctx, "account.move", invoiceID,
		[]string{"name", "partner_id", "amount_residual", "invoice_date_due"})
	if err != nil {
		return nil, fmt.Errorf("reading invoice %d: %w", invoiceID, err)
	}
	customerID, customerName := erp.Many2One(inv["partner_id"])

	overdueDays := 0
	if due, err := time.Parse("2006-01-02", erp.Str(inv["invoice_date_due"])); err == nil {
		overdueDays = int(time.Since(due).Hours() / 24)
	}
	if overdueDays < 0 {
		overdueDays = 0
	}

	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"invoice_id":    invoiceID,
			"invoice_name":  erp.Str(inv["name"]),
			"customer_id":   customerID,
			"customer_name": customerName,
			"amount_due":    erp.Float(inv["amount_residual"]),
			"overdue_days":  overdueDays,
		},
	}, nil
}

// selectStrategy applies the strategy and impact rules to the assessment.
func (c *Collection) selectStrategy(_ context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	days := state.Int("overdue_days")
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"strategy":      SelectStrategy(days, state.Float("amount_due")),
			"credit_impact": CreditImpact(days),
		},
	}, nil
}

// sendReminder triggers the standard payment reminder on the invoice.
func (c *Collection) sendReminder(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	invoiceID := int64(state.Int("invoice_id"))
	if _, err := c.erp.ExecuteMethod(ctx, "account.move", "action_send_payment_reminder", []int64{invoiceID}); err != nil {
		return nil, fmt.Errorf("sending reminder for invoice %d: %w", invoiceID, err)
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"outcome": "reminder_sent"},
	}, nil
}

// sendNotice posts a firm notice activity on the invoice.
func (c *Collection) sendNotice(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	invoiceID := int64(state.Int("invoice_id"))
	activityID, err := c.erp.Create(ctx, "mail.activity", map[string]any{
		"res_model": "account.move",
		"res_id":    invoiceID,
		"summary": fmt.Sprintf("Firm notice: %s is %d days overdue (%.2f due)",
			state.Str("invoice_name"), state.Int("overdue_days"), state.Float("amount_due")),
		"date_deadline": time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating firm notice for invoice %d: %w", invoiceID, err)
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"outcome": "notice_sent", "activity_id": activityID},
	}, nil
}

// escalateAccount hands the receivable to the account manager.
func (c *Collection) escalateAccount(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	invoiceID := int64(state.Int("invoice_id"))
	activityID, err := c.erp.Create(ctx, "mail.activity", map[string]any{
		"res_model": "account.move",
		"res_id":    invoiceID,
		"summary": fmt.Sprintf("Escalation: %s overdue %d days, %.2f outstanding",
			state.Str("invoice_name"), state.Int("overdue_days"), state.Float("amount_due")),
		"date_deadline": time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	})
	if err != nil {
		return nil, fmt.Errorf("escalating invoice %d: %w", invoiceID, err)
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"outcome": "escalated", "activity_id": activityID},
	}, nil
}

// applyCreditImpact charges the lateness against the customer's score.
// Customers with no score row yet are skipped, not failed.
func (c *Collection) applyCreditImpact(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	customerID := int64(state.Int("customer_id"))
	score, err := c.credit.AdjustScore(ctx, customerID, state.Float("credit_impact"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return &agentgraph.NodeResult{
				Updates: agentgraph.State{"credit_adjusted": false},
			}, nil
		}
		return nil, fmt.Errorf("adjusting credit score for customer %d: %w", customerID, err)
	}
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{
			"credit_adjusted": true,
			"credit_score":    score.Score,
			"risk_tier":       string(score.RiskTier),
		},
	}, nil
}

// notify reports the terminal outcome on the notification channel.
func (c *Collection) notify(ctx context.Context, state agentgraph.State) (*agentgraph.NodeResult, error) {
	outcome := c.notifier.Send(ctx, notify.Message{
		Title: "Collection workflow finished",
		Text: fmt.Sprintf("%s for %s: %s", state.Str("invoice_name"),
			state.Str("customer_name"), state.Str("outcome")),
		Fields: map[string]string{
			"overdue_days": fmt.Sprintf("%d", state.Int("overdue_days")),
			"amount_due":   fmt.Sprintf("%.2f", state.Float("amount_due")),
			"strategy":     state.Str("strategy"),
		},
	})
	return &agentgraph.NodeResult{
		Updates: agentgraph.State{"notified": outcome.Delivered()},
	}, nil
}
