// Code generated by ent, DO NOT EDIT.

package forecastaccuracylog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldContainsFold(FieldID, id))
}

// ForecastID applies equality check predicate on the "forecast_id" field. It's identical to ForecastIDEQ.
func ForecastID(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldForecastID, v))
}

// TargetDate applies equality check predicate on the "target_date" field. It's identical to TargetDateEQ.
func TargetDate(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldTargetDate, v))
}

// ProjectedBalance applies equality check predicate on the "projected_balance" field. It's identical to ProjectedBalanceEQ.
func ProjectedBalance(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldProjectedBalance, v))
}

// ActualBalance applies equality check predicate on the "actual_balance" field. It's identical to ActualBalanceEQ.
func ActualBalance(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldActualBalance, v))
}

// ErrorPct applies equality check predicate on the "error_pct" field. It's identical to ErrorPctEQ.
func ErrorPct(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldErrorPct, v))
}

// EvaluatedAt applies equality check predicate on the "evaluated_at" field. It's identical to EvaluatedAtEQ.
func EvaluatedAt(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldEvaluatedAt, v))
}

// ForecastIDEQ applies the EQ predicate on the "forecast_id" field.
func ForecastIDEQ(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldForecastID, v))
}

// ForecastIDNEQ applies the NEQ predicate on the "forecast_id" field.
func ForecastIDNEQ(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNEQ(FieldForecastID, v))
}

// ForecastIDIn applies the In predicate on the "forecast_id" field.
func ForecastIDIn(vs ...string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldIn(FieldForecastID, vs...))
}

// ForecastIDNotIn applies the NotIn predicate on the "forecast_id" field.
func ForecastIDNotIn(vs ...string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNotIn(FieldForecastID, vs...))
}

// ForecastIDGT applies the GT predicate on the "forecast_id" field.
func ForecastIDGT(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGT(FieldForecastID, v))
}

// ForecastIDGTE applies the GTE predicate on the "forecast_id" field.
func ForecastIDGTE(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGTE(FieldForecastID, v))
}

// ForecastIDLT applies the LT predicate on the "forecast_id" field.
func ForecastIDLT(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLT(FieldForecastID, v))
}

// ForecastIDLTE applies the LTE predicate on the "forecast_id" field.
func ForecastIDLTE(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLTE(FieldForecastID, v))
}

// ForecastIDContains applies the Contains predicate on the "forecast_id" field.
func ForecastIDContains(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldContains(FieldForecastID, v))
}

// ForecastIDHasPrefix applies the HasPrefix predicate on the "forecast_id" field.
func ForecastIDHasPrefix(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldHasPrefix(FieldForecastID, v))
}

// ForecastIDHasSuffix applies the HasSuffix predicate on the "forecast_id" field.
func ForecastIDHasSuffix(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldHasSuffix(FieldForecastID, v))
}

// ForecastIDEqualFold applies the EqualFold predicate on the "forecast_id" field.
func ForecastIDEqualFold(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEqualFold(FieldForecastID, v))
}

// ForecastIDContainsFold applies the ContainsFold predicate on the "forecast_id" field.
func ForecastIDContainsFold(v string) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldContainsFold(FieldForecastID, v))
}

// TargetDateEQ applies the EQ predicate on the "target_date" field.
func TargetDateEQ(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldTargetDate, v))
}

// TargetDateNEQ applies the NEQ predicate on the "target_date" field.
func TargetDateNEQ(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNEQ(FieldTargetDate, v))
}

// TargetDateIn applies the In predicate on the "target_date" field.
func TargetDateIn(vs ...time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldIn(FieldTargetDate, vs...))
}

// TargetDateNotIn applies the NotIn predicate on the "target_date" field.
func TargetDateNotIn(vs ...time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNotIn(FieldTargetDate, vs...))
}

// TargetDateGT applies the GT predicate on the "target_date" field.
func TargetDateGT(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGT(FieldTargetDate, v))
}

// TargetDateGTE applies the GTE predicate on the "target_date" field.
func TargetDateGTE(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGTE(FieldTargetDate, v))
}

// TargetDateLT applies the LT predicate on the "target_date" field.
func TargetDateLT(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLT(FieldTargetDate, v))
}

// TargetDateLTE applies the LTE predicate on the "target_date" field.
func TargetDateLTE(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLTE(FieldTargetDate, v))
}

// ProjectedBalanceEQ applies the EQ predicate on the "projected_balance" field.
func ProjectedBalanceEQ(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldProjectedBalance, v))
}

// ProjectedBalanceNEQ applies the NEQ predicate on the "projected_balance" field.
func ProjectedBalanceNEQ(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNEQ(FieldProjectedBalance, v))
}

// ProjectedBalanceIn applies the In predicate on the "projected_balance" field.
func ProjectedBalanceIn(vs ...float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldIn(FieldProjectedBalance, vs...))
}

// ProjectedBalanceNotIn applies the NotIn predicate on the "projected_balance" field.
func ProjectedBalanceNotIn(vs ...float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNotIn(FieldProjectedBalance, vs...))
}

// ProjectedBalanceGT applies the GT predicate on the "projected_balance" field.
func ProjectedBalanceGT(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGT(FieldProjectedBalance, v))
}

// ProjectedBalanceGTE applies the GTE predicate on the "projected_balance" field.
func ProjectedBalanceGTE(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGTE(FieldProjectedBalance, v))
}

// ProjectedBalanceLT applies the LT predicate on the "projected_balance" field.
func ProjectedBalanceLT(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLT(FieldProjectedBalance, v))
}

// ProjectedBalanceLTE applies the LTE predicate on the "projected_balance" field.
func ProjectedBalanceLTE(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLTE(FieldProjectedBalance, v))
}

// ActualBalanceEQ applies the EQ predicate on the "actual_balance" field.
func ActualBalanceEQ(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldActualBalance, v))
}

// ActualBalanceNEQ applies the NEQ predicate on the "actual_balance" field.
func ActualBalanceNEQ(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNEQ(FieldActualBalance, v))
}

// ActualBalanceIn applies the In predicate on the "actual_balance" field.
func ActualBalanceIn(vs ...float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldIn(FieldActualBalance, vs...))
}

// ActualBalanceNotIn applies the NotIn predicate on the "actual_balance" field.
func ActualBalanceNotIn(vs ...float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNotIn(FieldActualBalance, vs...))
}

// ActualBalanceGT applies the GT predicate on the "actual_balance" field.
func ActualBalanceGT(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGT(FieldActualBalance, v))
}

// ActualBalanceGTE applies the GTE predicate on the "actual_balance" field.
func ActualBalanceGTE(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGTE(FieldActualBalance, v))
}

// ActualBalanceLT applies the LT predicate on the "actual_balance" field.
func ActualBalanceLT(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLT(FieldActualBalance, v))
}

// ActualBalanceLTE applies the LTE predicate on the "actual_balance" field.
func ActualBalanceLTE(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLTE(FieldActualBalance, v))
}

// ErrorPctEQ applies the EQ predicate on the "error_pct" field.
func ErrorPctEQ(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldErrorPct, v))
}

// ErrorPctNEQ applies the NEQ predicate on the "error_pct" field.
func ErrorPctNEQ(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNEQ(FieldErrorPct, v))
}

// ErrorPctIn applies the In predicate on the "error_pct" field.
func ErrorPctIn(vs ...float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldIn(FieldErrorPct, vs...))
}

// ErrorPctNotIn applies the NotIn predicate on the "error_pct" field.
func ErrorPctNotIn(vs ...float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNotIn(FieldErrorPct, vs...))
}

// ErrorPctGT applies the GT predicate on the "error_pct" field.
func ErrorPctGT(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGT(FieldErrorPct, v))
}

// ErrorPctGTE applies the GTE predicate on the "error_pct" field.
func ErrorPctGTE(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGTE(FieldErrorPct, v))
}

// ErrorPctLT applies the LT predicate on the "error_pct" field.
func ErrorPctLT(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLT(FieldErrorPct, v))
}

// ErrorPctLTE applies the LTE predicate on the "error_pct" field.
func ErrorPctLTE(v float64) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLTE(FieldErrorPct, v))
}

// EvaluatedAtEQ applies the EQ predicate on the "evaluated_at" field.
func EvaluatedAtEQ(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtNEQ applies the NEQ predicate on the "evaluated_at" field.
func EvaluatedAtNEQ(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtIn applies the In predicate on the "evaluated_at" field.
func EvaluatedAtIn(vs ...time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtNotIn applies the NotIn predicate on the "evaluated_at" field.
func EvaluatedAtNotIn(vs ...time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldNotIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtGT applies the GT predicate on the "evaluated_at" field.
func EvaluatedAtGT(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGT(FieldEvaluatedAt, v))
}

// EvaluatedAtGTE applies the GTE predicate on the "evaluated_at" field.
func EvaluatedAtGTE(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldGTE(FieldEvaluatedAt, v))
}

// EvaluatedAtLT applies the LT predicate on the "evaluated_at" field.
func EvaluatedAtLT(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLT(FieldEvaluatedAt, v))
}

// EvaluatedAtLTE applies the LTE predicate on the "evaluated_at" field.
func EvaluatedAtLTE(v time.Time) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.FieldLTE(FieldEvaluatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ForecastAccuracyLog) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ForecastAccuracyLog) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ForecastAccuracyLog) predicate.ForecastAccuracyLog {
	return predicate.ForecastAccuracyLog(sql.NotPredicates(p))
}
