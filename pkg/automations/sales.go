package automations

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
)

// discountReviewThreshold is the line discount (percent) above which a
// confirmed order is flagged for a pricing review.
const discountReviewThreshold = 20.0

// staleQuoteDays is how long a quotation may sit in draft or sent before
// the chase scan proposes a follow-up.
const staleQuoteDays = 10

// Sales watches sale orders: heavily discounted orders are flagged for
// review, and quotations that stopped moving get chased.
type Sales struct {
	erp erp.Client
}

// NewSales creates the sales automation.
func NewSales(erpClient erp.Client) *Sales {
	if erpClient == nil {
		panic("NewSales: erp client must not be nil")
	}
	return &Sales{erp: erpClient}
}

// Type implements automation.Automation.
func (s *Sales) Type() string { return "sales" }

// WatchedModels implements automation.Automation.
func (s *Sales) WatchedModels() []string { return []string{"sale.order"} }

// Handlers implements automation.Automation.
func (s *Sales) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "sale.order"}: s.onOrderChanged,
		{EventType: "write", Model: "sale.order"}:  s.onOrderChanged,
	}
}

// Scans implements automation.Automation.
func (s *Sales) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_stale_quotes": s.scanStaleQuotes,
	}
}

// Execute implements automation.Automation. Both actions materialise as a
// follow-up activity on the order.
func (s *Sales) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	switch action.Name {
	case "flag_discount_review", "chase_quote":
		activityID, err := s.erp.Create(ctx, "mail.activity", map[string]interface{}{
			"res_model":     action.Model,
			"res_id":        action.RecordID,
			"summary":       action.Changes["summary"],
			"date_deadline": action.Changes["date_deadline"],
		})
		if err != nil {
			return nil, fmt.Errorf("creating activity on order %d: %w", action.RecordID, err)
		}
		return map[string]interface{}{"activity_id": activityID, "order_id": action.RecordID}, nil
	default:
		return nil, fmt.Errorf("sales: unknown action %q", action.Name)
	}
}

// onOrderChanged checks the order's lines against the discount policy.
// Writes that touch no pricing field pass through as notes.
func (s *Sales) onOrderChanged(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	if ev.Type == "write" && !touchesPricingFields(ev.Values) {
		return &automation.Result{
			Success:     true,
			ActionName:  "flag_discount_review",
			Confidence:  0.10,
			Reasoning:   "order update does not affect pricing",
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	lines, err := s.erp.SearchRead(ctx, "sale.order.line",
		erp.NewDomain(erp.Condition("order_id", "=", ev.RecordID)),
		erp.SearchOptions{Fields: []string{"id", "discount", "price_subtotal", "name"}})
	if err != nil {
		return nil, fmt.Errorf("reading lines of order %d: %w", ev.RecordID, err)
	}

	var maxDiscount float64
	var flagged string
	for _, line := range lines {
		if d := erp.Float(line["discount"]); d > maxDiscount {
			maxDiscount = d
			flagged = erp.Str(line["name"])
		}
	}

	if maxDiscount < discountReviewThreshold {
		return &automation.Result{
			Success:     true,
			ActionName:  "flag_discount_review",
			Model:       "sale.order",
			RecordID:    ev.RecordID,
			Confidence:  0.10,
			Reasoning:   fmt.Sprintf("order %d discounts within policy (max %.0f%%)", ev.RecordID, maxDiscount),
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	return &automation.Result{
		Success:    true,
		ActionName: "flag_discount_review",
		Model:      "sale.order",
		RecordID:   ev.RecordID,
		Confidence: 0.90,
		Reasoning: fmt.Sprintf("order %d carries a %.0f%% discount on %q, above the %.0f%% review threshold",
			ev.RecordID, maxDiscount, flagged, discountReviewThreshold),
		ChangesMade: map[string]interface{}{
			"summary":       fmt.Sprintf("Pricing review: %.0f%% discount on %s", maxDiscount, flagged),
			"date_deadline": time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
			"max_discount":  maxDiscount,
		},
	}, nil
}

// scanStaleQuotes proposes follow-ups for quotations untouched for
// staleQuoteDays.
func (s *Sales) scanStaleQuotes(ctx context.Context, day time.Time) ([]*automation.Result, error) {
	cutoff := day.AddDate(0, 0, -staleQuoteDays)

	stale, err := s.erp.SearchRead(ctx, "sale.order",
		erp.NewDomain(
			erp.Condition("state", "in", []any{"draft", "sent"}),
			erp.Condition("write_date", "<", cutoff.Format("2006-01-02 15:04:05")),
		),
		erp.SearchOptions{Fields: []string{"id", "name", "write_date", "amount_total"}})
	if err != nil {
		return nil, fmt.Errorf("finding stale quotations: %w", err)
	}

	results := make([]*automation.Result, 0, len(stale))
	for _, order := range stale {
		id := erp.Int(order["id"])
		daysStale := staleQuoteDays
		if lastWrite, ok := parseERPDate(erp.Str(order["write_date"])); ok {
			daysStale = int(day.Sub(lastWrite).Hours() / 24)
		}

		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "chase_quote",
			Model:      "sale.order",
			RecordID:   id,
			Confidence: 0.88,
			Reasoning: fmt.Sprintf("quotation %d (%s) idle for %d days, %.2f at stake",
				id, erp.Str(order["name"]), daysStale, erp.Float(order["amount_total"])),
			ChangesMade: map[string]interface{}{
				"summary":       fmt.Sprintf("Chase quotation: idle for %d days", daysStale),
				"date_deadline": day.AddDate(0, 0, 2).Format("2006-01-02"),
			},
		})
	}
	return results, nil
}

// touchesPricingFields reports whether a write payload includes a field the
// discount check depends on.
func touchesPricingFields(values map[string]interface{}) bool {
	for _, f := range []string{"order_line", "amount_total", "amount_untaxed", "state", "pricelist_id"} {
		if _, ok := values[f]; ok {
			return true
		}
	}
	return false
}
