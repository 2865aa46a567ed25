// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"github.com/steward-ai/steward/ent"
)

// The AgentDecisionFunc type is an adapter to allow the use of ordinary
// function as AgentDecision mutator.
type AgentDecisionFunc func(context.Context, *ent.AgentDecisionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AgentDecisionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AgentDecisionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AgentDecisionMutation", m)
}

// The AgentRunFunc type is an adapter to allow the use of ordinary
// function as AgentRun mutator.
type AgentRunFunc func(context.Context, *ent.AgentRunMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AgentRunFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AgentRunMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AgentRunMutation", m)
}

// The AgentStepFunc type is an adapter to allow the use of ordinary
// function as AgentStep mutator.
type AgentStepFunc func(context.Context, *ent.AgentStepMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AgentStepFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AgentStepMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AgentStepMutation", m)
}

// The AgentSuspensionFunc type is an adapter to allow the use of ordinary
// function as AgentSuspension mutator.
type AgentSuspensionFunc func(context.Context, *ent.AgentSuspensionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AgentSuspensionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AgentSuspensionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AgentSuspensionMutation", m)
}

// The AuditLogFunc type is an adapter to allow the use of ordinary
// function as AuditLog mutator.
type AuditLogFunc func(context.Context, *ent.AuditLogMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AuditLogFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AuditLogMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AuditLogMutation", m)
}

// The AutomationRuleFunc type is an adapter to allow the use of ordinary
// function as AutomationRule mutator.
type AutomationRuleFunc func(context.Context, *ent.AutomationRuleMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AutomationRuleFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AutomationRuleMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AutomationRuleMutation", m)
}

// The CashForecastFunc type is an adapter to allow the use of ordinary
// function as CashForecast mutator.
type CashForecastFunc func(context.Context, *ent.CashForecastMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CashForecastFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CashForecastMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CashForecastMutation", m)
}

// The ClosingStepFunc type is an adapter to allow the use of ordinary
// function as ClosingStep mutator.
type ClosingStepFunc func(context.Context, *ent.ClosingStepMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ClosingStepFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ClosingStepMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ClosingStepMutation", m)
}

// The CreditScoreFunc type is an adapter to allow the use of ordinary
// function as CreditScore mutator.
type CreditScoreFunc func(context.Context, *ent.CreditScoreMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CreditScoreFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CreditScoreMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CreditScoreMutation", m)
}

// The DailyDigestFunc type is an adapter to allow the use of ordinary
// function as DailyDigest mutator.
type DailyDigestFunc func(context.Context, *ent.DailyDigestMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DailyDigestFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DailyDigestMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DailyDigestMutation", m)
}

// The DedupScanFunc type is an adapter to allow the use of ordinary
// function as DedupScan mutator.
type DedupScanFunc func(context.Context, *ent.DedupScanMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DedupScanFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DedupScanMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DedupScanMutation", m)
}

// The DisruptionPredictionFunc type is an adapter to allow the use of ordinary
// function as DisruptionPrediction mutator.
type DisruptionPredictionFunc func(context.Context, *ent.DisruptionPredictionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DisruptionPredictionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DisruptionPredictionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DisruptionPredictionMutation", m)
}

// The DocumentJobFunc type is an adapter to allow the use of ordinary
// function as DocumentJob mutator.
type DocumentJobFunc func(context.Context, *ent.DocumentJobMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DocumentJobFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DocumentJobMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DocumentJobMutation", m)
}

// The DuplicateGroupFunc type is an adapter to allow the use of ordinary
// function as DuplicateGroup mutator.
type DuplicateGroupFunc func(context.Context, *ent.DuplicateGroupMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f DuplicateGroupFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.DuplicateGroupMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.DuplicateGroupMutation", m)
}

// The ExtractionCorrectionFunc type is an adapter to allow the use of ordinary
// function as ExtractionCorrection mutator.
type ExtractionCorrectionFunc func(context.Context, *ent.ExtractionCorrectionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ExtractionCorrectionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ExtractionCorrectionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ExtractionCorrectionMutation", m)
}

// The ForecastAccuracyLogFunc type is an adapter to allow the use of ordinary
// function as ForecastAccuracyLog mutator.
type ForecastAccuracyLogFunc func(context.Context, *ent.ForecastAccuracyLogMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ForecastAccuracyLogFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ForecastAccuracyLogMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ForecastAccuracyLogMutation", m)
}

// The ForecastScenarioFunc type is an adapter to allow the use of ordinary
// function as ForecastScenario mutator.
type ForecastScenarioFunc func(context.Context, *ent.ForecastScenarioMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ForecastScenarioFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ForecastScenarioMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ForecastScenarioMutation", m)
}

// The MonthEndClosingFunc type is an adapter to allow the use of ordinary
// function as MonthEndClosing mutator.
type MonthEndClosingFunc func(context.Context, *ent.MonthEndClosingMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f MonthEndClosingFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.MonthEndClosingMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.MonthEndClosingMutation", m)
}

// The ReconciliationSessionFunc type is an adapter to allow the use of ordinary
// function as ReconciliationSession mutator.
type ReconciliationSessionFunc func(context.Context, *ent.ReconciliationSessionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ReconciliationSessionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ReconciliationSessionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ReconciliationSessionMutation", m)
}

// The ReportJobFunc type is an adapter to allow the use of ordinary
// function as ReportJob mutator.
type ReportJobFunc func(context.Context, *ent.ReportJobMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ReportJobFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ReportJobMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ReportJobMutation", m)
}

// The SupplierRiskFactorFunc type is an adapter to allow the use of ordinary
// function as SupplierRiskFactor mutator.
type SupplierRiskFactorFunc func(context.Context, *ent.SupplierRiskFactorMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SupplierRiskFactorFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SupplierRiskFactorMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SupplierRiskFactorMutation", m)
}

// The SupplierRiskScoreFunc type is an adapter to allow the use of ordinary
// function as SupplierRiskScore mutator.
type SupplierRiskScoreFunc func(context.Context, *ent.SupplierRiskScoreMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SupplierRiskScoreFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SupplierRiskScoreMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SupplierRiskScoreMutation", m)
}

// The SupplyChainAlertFunc type is an adapter to allow the use of ordinary
// function as SupplyChainAlert mutator.
type SupplyChainAlertFunc func(context.Context, *ent.SupplyChainAlertMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SupplyChainAlertFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SupplyChainAlertMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SupplyChainAlertMutation", m)
}

// The WebhookEventFunc type is an adapter to allow the use of ordinary
// function as WebhookEvent mutator.
type WebhookEventFunc func(context.Context, *ent.WebhookEventMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f WebhookEventFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.WebhookEventMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.WebhookEventMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, ent.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op ent.Op) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk ent.Hook, cond Condition) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, ent.Delete|ent.Create)
func On(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, ent.Update|ent.UpdateOne)
func Unless(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) ent.Hook {
	return func(ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(context.Context, ent.Mutation) (ent.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []ent.Hook {
//		return []ent.Hook{
//			Reject(ent.Delete|ent.Update),
//		}
//	}
func Reject(op ent.Op) ent.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []ent.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...ent.Hook) Chain {
	return Chain{append([]ent.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() ent.Hook {
	return func(mutator ent.Mutator) ent.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...ent.Hook) Chain {
	newHooks := make([]ent.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}
