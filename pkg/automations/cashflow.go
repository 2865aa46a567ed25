package automations

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/cashforecast"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/services"
)

// DefaultForecastHorizonDays is used when no horizon is configured.
const DefaultForecastHorizonDays = 90

// FlowItem is one expected cash movement inside the horizon.
type FlowItem struct {
	RecordID  int64
	PartnerID int64
	Amount    float64
	DueDate   time.Time
}

// ScenarioImpact summarises a what-if variant against the base projection.
type ScenarioImpact struct {
	BaseBalance      float64 `json:"base_balance"`
	ScenarioBalance  float64 `json:"scenario_balance"`
	EndBalanceChange float64 `json:"end_balance_change"`
}

// Cashflow projects the cash position over a rolling horizon from open
// receivables and payables, and evaluates what-if scenarios against it.
type Cashflow struct {
	client  *ent.Client
	erp     erp.Client
	horizon int
}

// NewCashflow creates the cash-flow automation. horizonDays <= 0 selects
// the default horizon.
func NewCashflow(client *ent.Client, erpClient erp.Client, horizonDays int) *Cashflow {
	if client == nil {
		panic("NewCashflow: ent client must not be nil")
	}
	if erpClient == nil {
		panic("NewCashflow: erp client must not be nil")
	}
	if horizonDays <= 0 {
		horizonDays = DefaultForecastHorizonDays
	}
	return &Cashflow{client: client, erp: erpClient, horizon: horizonDays}
}

// Type implements automation.Automation.
func (c *Cashflow) Type() string { return "cashflow" }

// WatchedModels implements automation.Automation.
func (c *Cashflow) WatchedModels() []string { return []string{"account.payment"} }

// Handlers implements automation.Automation. Payments shift the projection,
// so any payment event refreshes today's forecast.
func (c *Cashflow) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "account.payment"}: c.onPaymentChanged,
		{EventType: "write", Model: "account.payment"}:  c.onPaymentChanged,
	}
}

// Scans implements automation.Automation.
func (c *Cashflow) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_cash_forecast":     c.scanForecast,
		"scan_forecast_accuracy": c.scanAccuracy,
	}
}

// Execute implements automation.Automation. Cash-flow decisions are
// read-only projections; there is nothing to replay.
func (c *Cashflow) Execute(_ context.Context, action automation.Action) (map[string]interface{}, error) {
	return nil, fmt.Errorf("cashflow: unknown action %q", action.Name)
}

func (c *Cashflow) onPaymentChanged(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	forecast, err := c.Forecast(ctx, c.horizon)
	if err != nil {
		return nil, err
	}
	return &automation.Result{
		Success:    true,
		ActionName: "refresh_forecast",
		Confidence: 0.40,
		Reasoning: fmt.Sprintf("payment %s on record %d; projected balance %.2f over %d days",
			ev.Type, ev.RecordID, forecast.ProjectedBalance, c.horizon),
		ChangesMade: map[string]interface{}{},
	}, nil
}

// Forecast projects the cash position horizonDays out and persists the
// projection. horizonDays <= 0 selects the configured horizon.
func (c *Cashflow) Forecast(ctx context.Context, horizonDays int) (*ent.CashForecast, error) {
	if horizonDays <= 0 {
		horizonDays = c.horizon
	}
	now := time.Now()
	target := now.AddDate(0, 0, horizonDays)

	opening, err := c.openingBalance(ctx)
	if err != nil {
		return nil, err
	}
	receivables, err := c.openItems(ctx, "out_invoice")
	if err != nil {
		return nil, err
	}
	payables, err := c.openItems(ctx, "in_invoice")
	if err != nil {
		return nil, err
	}

	inflows := expectedInflows(receivables, now, horizonDays)
	outflows := sumWithinHorizon(payables, now, horizonDays)
	projected := opening + inflows - outflows

	return c.client.CashForecast.Create().
		SetID(uuid.NewString()).
		SetForecastDate(now).
		SetTargetDate(target).
		SetOpeningBalance(opening).
		SetExpectedInflows(inflows).
		SetExpectedOutflows(outflows).
		SetProjectedBalance(projected).
		SetBreakdown(map[string]interface{}{
			"receivable_count": len(receivables),
			"payable_count":    len(payables),
			"horizon_days":     horizonDays,
		}).
		Save(ctx)
}

// Latest returns the most recent forecast, or ErrNotFound.
func (c *Cashflow) Latest(ctx context.Context) (*ent.CashForecast, error) {
	forecast, err := c.client.CashForecast.Query().
		Order(ent.Desc(cashforecast.FieldForecastDate)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return forecast, nil
}

// Scenario evaluates a named what-if variant against a fresh base
// projection and persists it. Adjustment keys follow the form
// "delay_customer_<id>" with the delay in days as the value.
func (c *Cashflow) Scenario(ctx context.Context, name string, adjustments map[string]interface{}) (*ent.ForecastScenario, *ScenarioImpact, error) {
	if name == "" {
		return nil, nil, services.NewValidationError("name", "must not be empty")
	}
	delays, err := parseAdjustments(adjustments)
	if err != nil {
		return nil, nil, err
	}

	base, err := c.Forecast(ctx, c.horizon)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	receivables, err := c.openItems(ctx, "out_invoice")
	if err != nil {
		return nil, nil, err
	}

	shifted := make([]FlowItem, len(receivables))
	copy(shifted, receivables)
	for i, item := range shifted {
		if days, ok := delays[item.PartnerID]; ok {
			shifted[i].DueDate = item.DueDate.AddDate(0, 0, days)
		}
	}

	scenarioInflows := expectedInflows(shifted, now, c.horizon)
	scenarioBalance := base.OpeningBalance + scenarioInflows - base.ExpectedOutflows
	impact := &ScenarioImpact{
		BaseBalance:      base.ProjectedBalance,
		ScenarioBalance:  scenarioBalance,
		EndBalanceChange: scenarioBalance - base.ProjectedBalance,
	}

	adjList := make([]map[string]interface{}, 0, len(delays))
	for partnerID, days := range delays {
		adjList = append(adjList, map[string]interface{}{
			"kind":       "delay_customer",
			"partner_id": partnerID,
			"shift_days": days,
		})
	}

	scenario, err := c.client.ForecastScenario.Create().
		SetID(uuid.NewString()).
		SetForecastID(base.ID).
		SetName(name).
		SetAdjustments(adjList).
		SetProjectedBalance(scenarioBalance).
		SetDelta(impact.EndBalanceChange).
		Save(ctx)
	if err != nil {
		return nil, nil, err
	}
	return scenario, impact, nil
}

// Accuracy back-tests matured forecasts against the current balance and
// returns the evaluation rows written.
func (c *Cashflow) Accuracy(ctx context.Context) ([]*ent.ForecastAccuracyLog, error) {
	matured, err := c.client.CashForecast.Query().
		Where(cashforecast.TargetDateLTE(time.Now())).
		Order(ent.Asc(cashforecast.FieldTargetDate)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(matured) == 0 {
		return nil, nil
	}

	actual, err := c.openingBalance(ctx)
	if err != nil {
		return nil, err
	}

	logs := make([]*ent.ForecastAccuracyLog, 0, len(matured))
	for _, f := range matured {
		errPct := 0.0
		if actual != 0 {
			errPct = (f.ProjectedBalance - actual) / actual
		}
		row, err := c.client.ForecastAccuracyLog.Create().
			SetID(uuid.NewString()).
			SetForecastID(f.ID).
			SetTargetDate(f.TargetDate).
			SetProjectedBalance(f.ProjectedBalance).
			SetActualBalance(actual).
			SetErrorPct(errPct).
			Save(ctx)
		if err != nil {
			return logs, err
		}
		logs = append(logs, row)
	}
	return logs, nil
}

func (c *Cashflow) scanForecast(ctx context.Context, _ time.Time) ([]*automation.Result, error) {
	forecast, err := c.Forecast(ctx, c.horizon)
	if err != nil {
		return nil, err
	}
	return []*automation.Result{{
		Success:    true,
		ActionName: "daily_forecast",
		Confidence: 0.40,
		Reasoning: fmt.Sprintf("projected balance %.2f over %d days (inflows %.2f, outflows %.2f)",
			forecast.ProjectedBalance, c.horizon, forecast.ExpectedInflows, forecast.ExpectedOutflows),
		ChangesMade: map[string]interface{}{},
	}}, nil
}

func (c *Cashflow) scanAccuracy(ctx context.Context, _ time.Time) ([]*automation.Result, error) {
	logs, err := c.Accuracy(ctx)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return []*automation.Result{{
		Success:     true,
		ActionName:  "forecast_backtest",
		Confidence:  0.40,
		Reasoning:   fmt.Sprintf("evaluated %d matured forecasts", len(logs)),
		ChangesMade: map[string]interface{}{},
	}}, nil
}

// openingBalance sums the current balance across bank journals.
func (c *Cashflow) openingBalance(ctx context.Context) (float64, error) {
	journals, err := c.erp.SearchRead(ctx, "account.journal",
		erp.NewDomain(erp.Condition("type", "=", "bank")),
		erp.SearchOptions{Fields: []string{"current_statement_balance"}})
	if err != nil {
		return 0, fmt.Errorf("reading bank journals: %w", err)
	}
	total := 0.0
	for _, j := range journals {
		total += erp.Float(j["current_statement_balance"])
	}
	return total, nil
}

// openItems reads open invoices of the given type as flow items.
func (c *Cashflow) openItems(ctx context.Context, moveType string) ([]FlowItem, error) {
	records, err := c.erp.SearchRead(ctx, "account.move",
		erp.NewDomain(
			erp.Condition("move_type", "=", moveType),
			erp.Condition("state", "=", "posted"),
			erp.Condition("amount_residual", ">", 0),
		),
		erp.SearchOptions{Fields: []string{"id", "partner_id", "amount_residual", "invoice_date_due"}})
	if err != nil {
		return nil, fmt.Errorf("reading open %s items: %w", moveType, err)
	}

	items := make([]FlowItem, 0, len(records))
	for _, rec := range records {
		partnerID, _ := erp.Many2One(rec["partner_id"])
		due, ok := parseERPDate(erp.Str(rec["invoice_date_due"]))
		if !ok {
			due = time.Now()
		}
		items = append(items, FlowItem{
			RecordID:  erp.Int(rec["id"]),
			PartnerID: partnerID,
			Amount:    erp.Float(rec["amount_residual"]),
			DueDate:   due,
		})
	}
	return items, nil
}

// collectProbability weights an expected inflow by how far out it is due.
// Collections further out are less certain; beyond the horizon they do not
// count at all.
func collectProbability(daysUntilDue, horizonDays int) float64 {
	switch {
	case daysUntilDue > horizonDays:
		return 0
	case daysUntilDue <= 30:
		return 1.0
	case daysUntilDue <= 60:
		return 0.95
	default:
		return 0.85
	}
}

// expectedInflows sums receivables weighted by collection probability.
func expectedInflows(items []FlowItem, now time.Time, horizonDays int) float64 {
	total := 0.0
	for _, item := range items {
		days := int(item.DueDate.Sub(now).Hours() / 24)
		total += item.Amount * collectProbability(days, horizonDays)
	}
	return total
}

// sumWithinHorizon sums payables falling due inside the horizon. Outflows
// are assumed to be paid on their due date.
func sumWithinHorizon(items []FlowItem, now time.Time, horizonDays int) float64 {
	cutoff := now.AddDate(0, 0, horizonDays)
	total := 0.0
	for _, item := range items {
		if !item.DueDate.After(cutoff) {
			total += item.Amount
		}
	}
	return total
}

// parseAdjustments decodes "delay_customer_<id>": days pairs.
func parseAdjustments(adjustments map[string]interface{}) (map[int64]int, error) {
	delays := make(map[int64]int, len(adjustments))
	for key, raw := range adjustments {
		rest, ok := strings.CutPrefix(key, "delay_customer_")
		if !ok {
			return nil, services.NewValidationError("adjustments", fmt.Sprintf("unknown adjustment %q", key))
		}
		partnerID, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return nil, services.NewValidationError("adjustments", fmt.Sprintf("bad customer id in %q", key))
		}
		days := int(erp.Float(raw))
		if days <= 0 {
			return nil, services.NewValidationError("adjustments", fmt.Sprintf("delay for %q must be positive days", key))
		}
		delays[partnerID] = days
	}
	if len(delays) == 0 {
		return nil, services.NewValidationError("adjustments", "at least one adjustment required")
	}
	return delays, nil
}
