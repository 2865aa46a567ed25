package automations

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/disruptionprediction"
	"github.com/steward-ai/steward/ent/supplierriskfactor"
	"github.com/steward-ai/steward/ent/supplierriskscore"
	"github.com/steward-ai/steward/ent/supplychainalert"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/services"
)

// riskLookbackDays bounds the purchase history a supplier is scored on.
const riskLookbackDays = 180

// Risk factor weights. Late deliveries dominate: a supplier that misses
// promised dates is the disruption that actually hurts operations.
const (
	weightLateDeliveries  = 0.45
	weightPriceVolatility = 0.30
	weightConcentration   = 0.25
)

// riskTier maps a 0-100 score (higher is riskier) to a tier.
func riskTier(score float64) supplierriskscore.RiskTier {
	switch {
	case score >= 75:
		return supplierriskscore.RiskTierCritical
	case score >= 50:
		return supplierriskscore.RiskTierHigh
	case score >= 25:
		return supplierriskscore.RiskTierMedium
	default:
		return supplierriskscore.RiskTierLow
	}
}

// RiskFactorInput is one scored component of a supplier's risk posture.
type RiskFactorInput struct {
	Name     string
	Weight   float64
	Value    float64
	Evidence map[string]interface{}
}

// CompositeRiskScore combines weighted factor values into a 0-100 score.
func CompositeRiskScore(factors []RiskFactorInput) float64 {
	var score float64
	for _, f := range factors {
		score += f.Weight * clamp(f.Value, 0, 100)
	}
	return clamp(score, 0, 100)
}

// SupplyChain scores supplier risk from purchase history, predicts
// disruptions on open orders and raises operator alerts for the worst of
// them.
type SupplyChain struct {
	client *ent.Client
	erp    erp.Client
}

// NewSupplyChain creates the supply-chain automation.
func NewSupplyChain(client *ent.Client, erpClient erp.Client) *SupplyChain {
	if client == nil {
		panic("NewSupplyChain: ent client must not be nil")
	}
	if erpClient == nil {
		panic("NewSupplyChain: erp client must not be nil")
	}
	return &SupplyChain{client: client, erp: erpClient}
}

// Type implements automation.Automation.
func (s *SupplyChain) Type() string { return "supplychain" }

// WatchedModels implements automation.Automation.
func (s *SupplyChain) WatchedModels() []string { return []string{"purchase.order"} }

// Handlers implements automation.Automation.
func (s *SupplyChain) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "purchase.order"}: s.onPurchaseOrderCreated,
	}
}

// Scans implements automation.Automation.
func (s *SupplyChain) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_supplier_risk": s.scanSupplierRisk,
	}
}

// Execute implements automation.Automation.
func (s *SupplyChain) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	switch action.Name {
	case "hold_purchase_order":
		if _, err := s.erp.ExecuteMethod(ctx, action.Model, "button_lock", []int64{action.RecordID}); err != nil {
			return nil, fmt.Errorf("locking purchase order %d: %w", action.RecordID, err)
		}
		return map[string]interface{}{"locked": true, "purchase_order_id": action.RecordID}, nil
	default:
		return nil, fmt.Errorf("supplychain: unknown action %q", action.Name)
	}
}

// onPurchaseOrderCreated checks the supplier's current risk posture. A
// critical-tier supplier turns the order into an approval item; everything
// else passes through as a note.
func (s *SupplyChain) onPurchaseOrderCreated(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	supplierID, supplierName := erp.Many2One(ev.Values["partner_id"])
	if supplierID == 0 {
		return &automation.Result{
			Success:     true,
			ActionName:  "hold_purchase_order",
			Confidence:  0.10,
			Reasoning:   "purchase order has no supplier; nothing to assess",
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	score, err := s.client.SupplierRiskScore.Query().
		Where(supplierriskscore.SupplierID(supplierID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Unscored suppliers get rated on the next rescore cycle.
			return &automation.Result{
				Success:     true,
				ActionName:  "hold_purchase_order",
				Confidence:  0.40,
				Reasoning:   fmt.Sprintf("supplier %d (%s) has no risk score yet", supplierID, supplierName),
				ChangesMade: map[string]interface{}{},
			}, nil
		}
		return nil, err
	}

	if score.RiskTier != supplierriskscore.RiskTierCritical {
		return &automation.Result{
			Success:    true,
			ActionName: "hold_purchase_order",
			Confidence: 0.40,
			Reasoning: fmt.Sprintf("supplier %d (%s) risk tier %s (score %.1f); no action",
				supplierID, supplierName, score.RiskTier, score.Score),
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	return &automation.Result{
		Success:    true,
		ActionName: "hold_purchase_order",
		Model:      "purchase.order",
		RecordID:   ev.RecordID,
		Confidence: 0.90,
		Reasoning: fmt.Sprintf("supplier %d (%s) is critical risk (score %.1f); order should be held for review",
			supplierID, supplierName, score.Score),
		ChangesMade: map[string]interface{}{
			"supplier_id": supplierID,
			"risk_score":  score.Score,
		},
		NeedsApproval: true,
	}, nil
}

// Rescore recomputes one supplier's risk score from trailing purchase
// history and replaces the stored factor rows.
func (s *SupplyChain) Rescore(ctx context.Context, supplierID int64) (*ent.SupplierRiskScore, error) {
	factors, err := s.assessSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	composite := CompositeRiskScore(factors)

	score, err := s.client.SupplierRiskScore.Query().
		Where(supplierriskscore.SupplierID(supplierID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		score, err = s.client.SupplierRiskScore.Create().
			SetID(uuid.NewString()).
			SetSupplierID(supplierID).
			SetScore(composite).
			SetRiskTier(riskTier(composite)).
			SetCalculatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		score, err = score.Update().
			SetScore(composite).
			SetRiskTier(riskTier(composite)).
			SetCalculatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		// Factor rows are replaced wholesale each rescore.
		if _, err := s.client.SupplierRiskFactor.Delete().
			Where(supplierriskfactor.RiskScoreID(score.ID)).
			Exec(ctx); err != nil {
			return nil, err
		}
	}

	for _, f := range factors {
		if _, err := s.client.SupplierRiskFactor.Create().
			SetID(uuid.NewString()).
			SetRiskScoreID(score.ID).
			SetFactorName(f.Name).
			SetWeight(f.Weight).
			SetValue(f.Value).
			SetEvidence(f.Evidence).
			Save(ctx); err != nil {
			return nil, err
		}
	}
	return score, nil
}

// Get returns one supplier's risk score with factors, or ErrNotFound.
func (s *SupplyChain) Get(ctx context.Context, supplierID int64) (*ent.SupplierRiskScore, error) {
	score, err := s.client.SupplierRiskScore.Query().
		Where(supplierriskscore.SupplierID(supplierID)).
		WithFactors().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return score, nil
}

// ListAlerts returns unacknowledged alerts, newest first.
func (s *SupplyChain) ListAlerts(ctx context.Context) ([]*ent.SupplyChainAlert, error) {
	return s.client.SupplyChainAlert.Query().
		Where(supplychainalert.Acknowledged(false)).
		Order(ent.Desc(supplychainalert.FieldCreatedAt)).
		All(ctx)
}

// AcknowledgeAlert marks one alert as handled.
func (s *SupplyChain) AcknowledgeAlert(ctx context.Context, alertID, ackedBy string) error {
	n, err := s.client.SupplyChainAlert.Update().
		Where(
			supplychainalert.ID(alertID),
			supplychainalert.Acknowledged(false),
		).
		SetAcknowledged(true).
		SetAcknowledgedBy(ackedBy).
		SetAcknowledgedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return services.ErrNotFound
	}
	return nil
}

// scanSupplierRisk rescores every active supplier and raises predictions
// and alerts for the ones that land in the critical tier.
func (s *SupplyChain) scanSupplierRisk(ctx context.Context, day time.Time) ([]*automation.Result, error) {
	suppliers, err := s.erp.SearchRead(ctx, "res.partner",
		erp.NewDomain(
			erp.Condition("supplier_rank", ">", 0),
			erp.Condition("active", "=", true),
		),
		erp.SearchOptions{Fields: []string{"id", "name"}})
	if err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}

	results := make([]*automation.Result, 0, len(suppliers))
	for _, sup := range suppliers {
		supplierID := erp.Int(sup["id"])
		score, err := s.Rescore(ctx, supplierID)
		if err != nil {
			results = append(results, automation.Failed("rescore_supplier", "res.partner", supplierID, err))
			continue
		}

		if score.RiskTier == supplierriskscore.RiskTierCritical {
			if err := s.raiseCriticalAlert(ctx, supplierID, erp.Str(sup["name"]), score); err != nil {
				results = append(results, automation.Failed("rescore_supplier", "res.partner", supplierID, err))
				continue
			}
		}

		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "rescore_supplier",
			Model:      "res.partner",
			RecordID:   supplierID,
			Confidence: 0.40,
			Reasoning: fmt.Sprintf("supplier %d rescored to %.1f (%s) as of %s",
				supplierID, score.Score, score.RiskTier, day.Format("2006-01-02")),
			ChangesMade: map[string]interface{}{},
		})
	}
	return results, nil
}

// raiseCriticalAlert predicts late delivery on the supplier's open orders
// and raises one alert per prediction. Suppliers with an open prediction
// are not re-alerted.
func (s *SupplyChain) raiseCriticalAlert(ctx context.Context, supplierID int64, supplierName string, score *ent.SupplierRiskScore) error {
	open, err := s.client.DisruptionPrediction.Query().
		Where(
			disruptionprediction.SupplierID(supplierID),
			disruptionprediction.StatusEQ(disruptionprediction.StatusOpen),
		).
		Exist(ctx)
	if err != nil {
		return err
	}
	if open {
		return nil
	}

	orders, err := s.erp.SearchRead(ctx, "purchase.order",
		erp.NewDomain(
			erp.Condition("partner_id", "=", supplierID),
			erp.Condition("state", "=", "purchase"),
		),
		erp.SearchOptions{Fields: []string{"id", "date_planned", "amount_total"}, Limit: 20})
	if err != nil {
		return fmt.Errorf("listing open orders for supplier %d: %w", supplierID, err)
	}

	probability := clamp(score.Score/100, 0, 1)
	for _, po := range orders {
		poID := erp.Int(po["id"])
		pred := s.client.DisruptionPrediction.Create().
			SetID(uuid.NewString()).
			SetSupplierID(supplierID).
			SetPurchaseOrderID(poID).
			SetDisruptionType(disruptionprediction.DisruptionTypeLateDelivery).
			SetProbability(probability).
			SetRationale(fmt.Sprintf("supplier %s is critical risk (score %.1f)", supplierName, score.Score)).
			SetSuggestedActions([]map[string]interface{}{
				{"action": "contact_supplier", "purchase_order_id": poID},
				{"action": "identify_alternative_supplier", "supplier_id": supplierID},
			})
		if planned, ok := parseERPDate(erp.Str(po["date_planned"])); ok {
			pred.SetPredictedDate(planned)
		}
		saved, err := pred.Save(ctx)
		if err != nil {
			return err
		}

		if _, err := s.client.SupplyChainAlert.Create().
			SetID(uuid.NewString()).
			SetSeverity(supplychainalert.SeverityCritical).
			SetTitle(fmt.Sprintf("Likely late delivery from %s", supplierName)).
			SetBody(fmt.Sprintf("PO %d has a %.0f%% estimated late-delivery probability based on supplier risk score %.1f.",
				poID, probability*100, score.Score)).
			SetSupplierID(supplierID).
			SetPredictionID(saved.ID).
			Save(ctx); err != nil {
			return err
		}
	}
	return nil
}

// assessSupplier derives the three risk factors from trailing purchase
// history.
func (s *SupplyChain) assessSupplier(ctx context.Context, supplierID int64) ([]RiskFactorInput, error) {
	since := time.Now().AddDate(0, 0, -riskLookbackDays).Format("2006-01-02")

	orders, err := s.erp.SearchRead(ctx, "purchase.order",
		erp.NewDomain(
			erp.Condition("partner_id", "=", supplierID),
			erp.Condition("state", "in", []any{"purchase", "done"}),
			erp.Condition("date_order", ">=", since),
		),
		erp.SearchOptions{Fields: []string{"id", "amount_total", "date_planned", "effective_date"}})
	if err != nil {
		return nil, fmt.Errorf("reading purchase history for supplier %d: %w", supplierID, err)
	}

	var (
		received int
		late     int
		amounts  []float64
		spend    float64
	)
	for _, po := range orders {
		amount := erp.Float(po["amount_total"])
		amounts = append(amounts, amount)
		spend += amount

		planned, okP := parseERPDate(erp.Str(po["date_planned"]))
		effective, okE := parseERPDate(erp.Str(po["effective_date"]))
		if !okP || !okE {
			continue
		}
		received++
		if effective.After(planned) {
			late++
		}
	}

	lateRate := 0.0
	if received > 0 {
		lateRate = float64(late) / float64(received)
	}

	totalSpend, err := s.totalPurchaseSpend(ctx, since)
	if err != nil {
		return nil, err
	}
	concentration := 0.0
	if totalSpend > 0 {
		concentration = spend / totalSpend
	}

	return []RiskFactorInput{
		{
			Name:   "late_deliveries",
			Weight: weightLateDeliveries,
			Value:  lateRate * 100,
			Evidence: map[string]interface{}{
				"received_orders": received,
				"late_orders":     late,
			},
		},
		{
			Name:   "price_volatility",
			Weight: weightPriceVolatility,
			Value:  coefficientOfVariation(amounts) * 100,
			Evidence: map[string]interface{}{
				"orders_sampled": len(amounts),
			},
		},
		{
			Name:   "concentration",
			Weight: weightConcentration,
			Value:  concentration * 100,
			Evidence: map[string]interface{}{
				"supplier_spend": spend,
				"total_spend":    totalSpend,
			},
		},
	}, nil
}

// totalPurchaseSpend sums confirmed purchase spend across all suppliers in
// the lookback window.
func (s *SupplyChain) totalPurchaseSpend(ctx context.Context, since string) (float64, error) {
	all, err := s.erp.SearchRead(ctx, "purchase.order",
		erp.NewDomain(
			erp.Condition("state", "in", []any{"purchase", "done"}),
			erp.Condition("date_order", ">=", since),
		),
		erp.SearchOptions{Fields: []string{"amount_total"}})
	if err != nil {
		return 0, fmt.Errorf("reading total purchase spend: %w", err)
	}
	var total float64
	for _, po := range all {
		total += erp.Float(po["amount_total"])
	}
	return total, nil
}

// coefficientOfVariation measures price dispersion relative to the mean.
func coefficientOfVariation(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	if mean == 0 {
		return 0
	}
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq/float64(len(values))) / mean
}
