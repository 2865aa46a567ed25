package automations

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/creditscore"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/services"
)

// Credit score component weights. They sum to 1.0.
const (
	creditWeightPaymentHistory = 0.45
	creditWeightOverdueRatio   = 0.35
	creditWeightTenure         = 0.20
)

// Risk tier boundaries on the 0-100 score (higher is safer).
const (
	creditTierLowMin    = 75.0
	creditTierMediumMin = 50.0
	creditTierHighMin   = 25.0
)

// holdScoreThreshold is the score below which a credit hold is placed
// automatically during recalculation.
const holdScoreThreshold = 20.0

// CreditCheck is the verdict for one proposed order.
type CreditCheck struct {
	CustomerID  int64   `json:"customer_id"`
	OrderAmount float64 `json:"order_amount"`
	Allowed     bool    `json:"allowed"`
	OverLimitBy float64 `json:"over_limit_by,omitempty"`
	HoldActive  bool    `json:"hold_active"`
	Reason      string  `json:"reason,omitempty"`
}

// Credit watches sales orders and maintains per-customer credit scores.
// Orders that would push a customer past its credit limit are flagged for
// approval instead of being confirmed automatically.
type Credit struct {
	client *ent.Client
	erp    erp.Client
}

// NewCredit creates the credit automation.
func NewCredit(client *ent.Client, erpClient erp.Client) *Credit {
	if client == nil {
		panic("NewCredit: ent client must not be nil")
	}
	if erpClient == nil {
		panic("NewCredit: erp client must not be nil")
	}
	return &Credit{client: client, erp: erpClient}
}

// Type implements automation.Automation.
func (c *Credit) Type() string { return "credit" }

// WatchedModels implements automation.Automation.
func (c *Credit) WatchedModels() []string { return []string{"sale.order"} }

// Handlers implements automation.Automation.
func (c *Credit) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "sale.order"}: c.onOrderCreated,
	}
}

// Scans implements automation.Automation.
func (c *Credit) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_credit_review": c.scanCreditReview,
	}
}

// Execute implements automation.Automation. The only gated side effect is
// holding an order for credit review.
func (c *Credit) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	switch action.Name {
	case "hold_order_credit":
		if err := c.erp.Write(ctx, action.Model, []int64{action.RecordID}, action.Changes); err != nil {
			return nil, fmt.Errorf("holding order %d: %w", action.RecordID, err)
		}
		return map[string]interface{}{"held": true, "order_id": action.RecordID}, nil
	case "place_credit_hold":
		customerID := erp.Int(action.Changes["customer_id"])
		reason := erp.Str(action.Changes["reason"])
		if err := c.PlaceHold(ctx, customerID, reason); err != nil {
			return nil, err
		}
		return map[string]interface{}{"hold_active": true, "customer_id": customerID}, nil
	default:
		return nil, fmt.Errorf("credit: unknown action %q", action.Name)
	}
}

// onOrderCreated gates a new sales order against the customer's credit
// posture. A blocked order is a high-confidence decision; the gate decides
// whether it executes immediately or waits for approval.
func (c *Credit) onOrderCreated(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	customerID := erp.Int(ev.Values["partner_id"])
	amount := erp.Float(ev.Values["amount_total"])
	if customerID == 0 {
		return &automation.Result{
			Success:    true,
			ActionName: "credit_check",
			Confidence: 0.30,
			Reasoning:  "order has no customer; nothing to check",
		}, nil
	}

	check, err := c.Check(ctx, customerID, amount)
	if err != nil {
		return nil, err
	}

	if check.Allowed {
		return &automation.Result{
			Success:     true,
			ActionName:  "credit_check",
			Confidence:  0.40, // informational note, below the pending band
			Reasoning:   fmt.Sprintf("order %.2f within credit limit for customer %d", amount, customerID),
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	return &automation.Result{
		Success:    true,
		ActionName: "hold_order_credit",
		Confidence: 0.97,
		Reasoning: fmt.Sprintf("order %.2f exceeds credit limit for customer %d by %.2f",
			amount, customerID, check.OverLimitBy),
		ChangesMade: map[string]interface{}{
			"credit_hold":      true,
			"credit_hold_note": check.Reason,
		},
	}, nil
}

// Check evaluates a proposed order against the stored credit posture.
func (c *Credit) Check(ctx context.Context, customerID int64, orderAmount float64) (*CreditCheck, error) {
	if customerID <= 0 {
		return nil, services.NewValidationError("customer_id", "must be positive")
	}
	if orderAmount < 0 {
		return nil, services.NewValidationError("order_amount", "must not be negative")
	}

	score, err := c.client.CreditScore.Query().
		Where(creditscore.CustomerID(customerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// No posture on file: recalculate from the ERP first.
			score, err = c.Recalculate(ctx, customerID)
		}
		if err != nil {
			return nil, err
		}
	}

	check := &CreditCheck{
		CustomerID:  customerID,
		OrderAmount: orderAmount,
		HoldActive:  score.HoldActive,
	}

	if score.HoldActive {
		check.Allowed = false
		check.Reason = "customer is on credit hold"
		if score.HoldReason != nil {
			check.Reason = fmt.Sprintf("customer is on credit hold: %s", *score.HoldReason)
		}
		return check, nil
	}

	exposure := score.OutstandingBalance + orderAmount
	if exposure > score.CreditLimit {
		check.Allowed = false
		check.OverLimitBy = exposure - score.CreditLimit
		check.Reason = fmt.Sprintf("exposure %.2f would exceed credit limit %.2f by %.2f",
			exposure, score.CreditLimit, check.OverLimitBy)
		return check, nil
	}

	check.Allowed = true
	return check, nil
}

// Get returns the stored credit posture for a customer.
func (c *Credit) Get(ctx context.Context, customerID int64) (*ent.CreditScore, error) {
	score, err := c.client.CreditScore.Query().
		Where(creditscore.CustomerID(customerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return score, nil
}

// Recalculate rebuilds one customer's credit score from ERP invoice history
// and upserts the row. A score under the hold threshold places a hold.
func (c *Credit) Recalculate(ctx context.Context, customerID int64) (*ent.CreditScore, error) {
	invoices, err := c.erp.SearchRead(ctx, "account.move",
		erp.NewDomain(
			erp.Condition("partner_id", "=", customerID),
			erp.Condition("move_type", "=", "out_invoice"),
			erp.Condition("state", "=", "posted"),
		),
		erp.SearchOptions{
			Fields: []string{"amount_total", "amount_residual", "invoice_date_due", "payment_state"},
		})
	if err != nil {
		return nil, fmt.Errorf("reading invoices for customer %d: %w", customerID, err)
	}

	partner, err := c.erp.Read(ctx, "res.partner", customerID,
		[]string{"credit_limit", "create_date"})
	if err != nil {
		return nil, fmt.Errorf("reading customer %d: %w", customerID, err)
	}

	now := time.Now()
	var (
		totalBilled float64
		outstanding float64
		overdue     float64
		paidOnTime  int
		paidTotal   int
	)
	for _, inv := range invoices {
		total := erp.Float(inv["amount_total"])
		residual := erp.Float(inv["amount_residual"])
		totalBilled += total
		outstanding += residual

		if residual > 0 {
			if due, ok := parseERPDate(erp.Str(inv["invoice_date_due"])); ok && due.Before(now) {
				overdue += residual
			}
		}
		if erp.Str(inv["payment_state"]) == "paid" {
			paidTotal++
			if due, ok := parseERPDate(erp.Str(inv["invoice_date_due"])); !ok || !due.Before(now) {
				paidOnTime++
			}
		}
	}

	paymentHistory := 100.0
	if paidTotal > 0 {
		paymentHistory = 100.0 * float64(paidOnTime) / float64(paidTotal)
	}
	overdueRatio := 0.0
	if outstanding > 0 {
		overdueRatio = overdue / outstanding
	}
	overdueComponent := 100.0 * (1.0 - overdueRatio)

	tenureComponent := 50.0
	if created, ok := parseERPDate(erp.Str(partner["create_date"])); ok {
		years := now.Sub(created).Hours() / (24 * 365)
		tenureComponent = clamp(years*20.0, 0, 100)
	}

	composite := clamp(
		creditWeightPaymentHistory*paymentHistory+
			creditWeightOverdueRatio*overdueComponent+
			creditWeightTenure*tenureComponent,
		0, 100)

	factors := map[string]interface{}{
		"payment_history": paymentHistory,
		"overdue_ratio":   overdueRatio,
		"tenure":          tenureComponent,
		"total_billed":    totalBilled,
	}

	limit := erp.Float(partner["credit_limit"])
	tier := creditTier(composite)
	holdActive := composite < holdScoreThreshold
	holdReason := ""
	if holdActive {
		holdReason = fmt.Sprintf("score %.1f below hold threshold %.1f", composite, holdScoreThreshold)
	}

	return c.upsert(ctx, customerID, composite, tier, limit, outstanding, holdActive, holdReason, factors)
}

// BatchRecalculate rebuilds scores for every customer with posted invoices.
// Returns the number of customers processed; per-customer failures are
// collected, not fatal.
func (c *Credit) BatchRecalculate(ctx context.Context) (int, []error) {
	ids, err := c.erp.Search(ctx, "res.partner",
		erp.NewDomain(
			erp.Condition("customer_rank", ">", 0),
		), 0)
	if err != nil {
		return 0, []error{fmt.Errorf("listing customers: %w", err)}
	}

	var errs []error
	processed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := c.Recalculate(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("customer %d: %w", id, err))
			continue
		}
		processed++
	}
	return processed, errs
}

// AdjustScore shifts a customer's score by a delta and re-tiers it. Used by
// collection workflows; holds are untouched.
func (c *Credit) AdjustScore(ctx context.Context, customerID int64, delta float64) (*ent.CreditScore, error) {
	existing, err := c.client.CreditScore.Query().
		Where(creditscore.CustomerID(customerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}

	score := clamp(existing.Score+delta, 0, 100)
	return existing.Update().
		SetScore(score).
		SetRiskTier(creditTier(score)).
		Save(ctx)
}

// PlaceHold activates a credit hold for a customer.
func (c *Credit) PlaceHold(ctx context.Context, customerID int64, reason string) error {
	n, err := c.client.CreditScore.Update().
		Where(creditscore.CustomerID(customerID)).
		SetHoldActive(true).
		SetHoldReason(reason).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return services.ErrNotFound
	}
	return nil
}

// ReleaseHold clears a customer's credit hold.
func (c *Credit) ReleaseHold(ctx context.Context, customerID int64) error {
	n, err := c.client.CreditScore.Update().
		Where(creditscore.CustomerID(customerID)).
		SetHoldActive(false).
		ClearHoldReason().
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return services.ErrNotFound
	}
	return nil
}

// scanCreditReview flags customers in the critical tier without a hold.
func (c *Credit) scanCreditReview(ctx context.Context, _ time.Time) ([]*automation.Result, error) {
	atRisk, err := c.client.CreditScore.Query().
		Where(
			creditscore.RiskTierEQ(creditscore.RiskTierCritical),
			creditscore.HoldActive(false),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*automation.Result, 0, len(atRisk))
	for _, score := range atRisk {
		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "place_credit_hold",
			Model:      "res.partner",
			RecordID:   score.CustomerID,
			Confidence: 0.92,
			Reasoning: fmt.Sprintf("customer %d is in the critical tier (score %.1f) without a hold",
				score.CustomerID, score.Score),
			ChangesMade: map[string]interface{}{
				"customer_id": score.CustomerID,
				"reason":      fmt.Sprintf("critical risk tier, score %.1f", score.Score),
			},
		})
	}
	return results, nil
}

func (c *Credit) upsert(ctx context.Context, customerID int64, score float64, tier creditscore.RiskTier,
	limit, outstanding float64, holdActive bool, holdReason string, factors map[string]interface{}) (*ent.CreditScore, error) {

	existing, err := c.client.CreditScore.Query().
		Where(creditscore.CustomerID(customerID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	if existing == nil {
		create := c.client.CreditScore.Create().
			SetID(uuid.NewString()).
			SetCustomerID(customerID).
			SetScore(score).
			SetRiskTier(tier).
			SetCreditLimit(limit).
			SetOutstandingBalance(outstanding).
			SetHoldActive(holdActive).
			SetFactors(factors).
			SetCalculatedAt(time.Now())
		if holdActive {
			create.SetHoldReason(holdReason)
		}
		return create.Save(ctx)
	}

	update := existing.Update().
		SetScore(score).
		SetRiskTier(tier).
		SetCreditLimit(limit).
		SetOutstandingBalance(outstanding).
		SetFactors(factors).
		SetCalculatedAt(time.Now())
	// Recalculation places holds but never releases one: release is an
	// explicit operator action.
	if holdActive && !existing.HoldActive {
		update.SetHoldActive(true).SetHoldReason(holdReason)
	}
	return update.Save(ctx)
}

func creditTier(score float64) creditscore.RiskTier {
	switch {
	case score >= creditTierLowMin:
		return creditscore.RiskTierLow
	case score >= creditTierMediumMin:
		return creditscore.RiskTierMedium
	case score >= creditTierHighMin:
		return creditscore.RiskTierHigh
	default:
		return creditscore.RiskTierCritical
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// parseERPDate parses the two date layouts the ERP emits.
func parseERPDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
