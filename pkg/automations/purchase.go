package automations

import (
	"context"
	"fmt"
	"time"

	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
)

// priceVarianceThreshold is the relative deviation from the product's
// standard cost above which a purchase line is flagged.
const priceVarianceThreshold = 0.15

// Purchase watches purchase orders: lines priced well above the product's
// standard cost are flagged, and confirmed orders whose receipt is overdue
// get chased.
type Purchase struct {
	erp erp.Client
}

// NewPurchase creates the purchase automation.
func NewPurchase(erpClient erp.Client) *Purchase {
	if erpClient == nil {
		panic("NewPurchase: erp client must not be nil")
	}
	return &Purchase{erp: erpClient}
}

// Type implements automation.Automation.
func (p *Purchase) Type() string { return "purchase" }

// WatchedModels implements automation.Automation.
func (p *Purchase) WatchedModels() []string { return []string{"purchase.order"} }

// Handlers implements automation.Automation.
func (p *Purchase) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "purchase.order"}: p.onOrderChanged,
		{EventType: "write", Model: "purchase.order"}:  p.onOrderChanged,
	}
}

// Scans implements automation.Automation.
func (p *Purchase) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_overdue_receipts": p.scanOverdueReceipts,
	}
}

// Execute implements automation.Automation. Both actions materialise as a
// follow-up activity on the order.
func (p *Purchase) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	switch action.Name {
	case "flag_price_variance", "chase_receipt":
		activityID, err := p.erp.Create(ctx, "mail.activity", map[string]interface{}{
			"res_model":     action.Model,
			"res_id":        action.RecordID,
			"summary":       action.Changes["summary"],
			"date_deadline": action.Changes["date_deadline"],
		})
		if err != nil {
			return nil, fmt.Errorf("creating activity on purchase order %d: %w", action.RecordID, err)
		}
		return map[string]interface{}{"activity_id": activityID, "order_id": action.RecordID}, nil
	default:
		return nil, fmt.Errorf("purchase: unknown action %q", action.Name)
	}
}

// onOrderChanged compares each line's unit price against the product's
// standard cost. Writes that touch no line pass through as notes.
func (p *Purchase) onOrderChanged(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	if ev.Type == "write" {
		if _, ok := ev.Values["order_line"]; !ok {
			return &automation.Result{
				Success:     true,
				ActionName:  "flag_price_variance",
				Confidence:  0.10,
				Reasoning:   "order update does not touch lines",
				ChangesMade: map[string]interface{}{},
			}, nil
		}
	}

	lines, err := p.erp.SearchRead(ctx, "purchase.order.line",
		erp.NewDomain(erp.Condition("order_id", "=", ev.RecordID)),
		erp.SearchOptions{Fields: []string{"id", "product_id", "price_unit", "name"}})
	if err != nil {
		return nil, fmt.Errorf("reading lines of purchase order %d: %w", ev.RecordID, err)
	}

	var worst float64
	var flagged string
	for _, line := range lines {
		productID := erp.Int(line["product_id"])
		if productID == 0 {
			continue
		}
		product, err := p.erp.Read(ctx, "product.product", productID, []string{"standard_price"})
		if err != nil {
			return nil, fmt.Errorf("reading product %d: %w", productID, err)
		}
		standard := erp.Float(product["standard_price"])
		if standard <= 0 {
			continue
		}
		variance := (erp.Float(line["price_unit"]) - standard) / standard
		if variance > worst {
			worst = variance
			flagged = erp.Str(line["name"])
		}
	}

	if worst < priceVarianceThreshold {
		return &automation.Result{
			Success:     true,
			ActionName:  "flag_price_variance",
			Model:       "purchase.order",
			RecordID:    ev.RecordID,
			Confidence:  0.10,
			Reasoning:   fmt.Sprintf("purchase order %d priced within %.0f%% of standard cost", ev.RecordID, priceVarianceThreshold*100),
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	return &automation.Result{
		Success:    true,
		ActionName: "flag_price_variance",
		Model:      "purchase.order",
		RecordID:   ev.RecordID,
		Confidence: 0.88,
		Reasoning: fmt.Sprintf("purchase order %d pays %.0f%% over standard cost on %q",
			ev.RecordID, worst*100, flagged),
		ChangesMade: map[string]interface{}{
			"summary":       fmt.Sprintf("Price check: %.0f%% over standard cost on %s", worst*100, flagged),
			"date_deadline": time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
			"variance":      worst,
		},
	}, nil
}

// scanOverdueReceipts chases confirmed orders whose planned receipt date
// has passed without a full receipt.
func (p *Purchase) scanOverdueReceipts(ctx context.Context, day time.Time) ([]*automation.Result, error) {
	overdue, err := p.erp.SearchRead(ctx, "purchase.order",
		erp.NewDomain(
			erp.Condition("state", "=", "purchase"),
			erp.Condition("receipt_status", "!=", "full"),
			erp.Condition("date_planned", "<", day.Format("2006-01-02 15:04:05")),
		),
		erp.SearchOptions{Fields: []string{"id", "name", "partner_id", "date_planned"}})
	if err != nil {
		return nil, fmt.Errorf("finding overdue receipts: %w", err)
	}

	results := make([]*automation.Result, 0, len(overdue))
	for _, order := range overdue {
		id := erp.Int(order["id"])
		daysLate := 0
		if planned, ok := parseERPDate(erp.Str(order["date_planned"])); ok {
			daysLate = int(day.Sub(planned).Hours() / 24)
		}

		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "chase_receipt",
			Model:      "purchase.order",
			RecordID:   id,
			Confidence: 0.90,
			Reasoning: fmt.Sprintf("receipt for %s (order %d) is %d days late",
				erp.Str(order["name"]), id, daysLate),
			ChangesMade: map[string]interface{}{
				"summary":       fmt.Sprintf("Chase receipt: %d days past planned date", daysLate),
				"date_deadline": day.AddDate(0, 0, 1).Format("2006-01-02"),
			},
		})
	}
	return results, nil
}
