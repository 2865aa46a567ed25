// Code generated by ent, DO NOT EDIT.

package agentdecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldContainsFold(FieldID, id))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldStepID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldRunID, v))
}

// PromptFingerprint applies equality check predicate on the "prompt_fingerprint" field. It's identical to PromptFingerprintEQ.
func PromptFingerprint(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldPromptFingerprint, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldConfidence, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldTokensOut, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldContainsFold(FieldStepID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldContainsFold(FieldRunID, v))
}

// PromptFingerprintEQ applies the EQ predicate on the "prompt_fingerprint" field.
func PromptFingerprintEQ(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldPromptFingerprint, v))
}

// PromptFingerprintNEQ applies the NEQ predicate on the "prompt_fingerprint" field.
func PromptFingerprintNEQ(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNEQ(FieldPromptFingerprint, v))
}

// PromptFingerprintIn applies the In predicate on the "prompt_fingerprint" field.
func PromptFingerprintIn(vs ...string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldIn(FieldPromptFingerprint, vs...))
}

// PromptFingerprintNotIn applies the NotIn predicate on the "prompt_fingerprint" field.
func PromptFingerprintNotIn(vs ...string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNotIn(FieldPromptFingerprint, vs...))
}

// PromptFingerprintGT applies the GT predicate on the "prompt_fingerprint" field.
func PromptFingerprintGT(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGT(FieldPromptFingerprint, v))
}

// PromptFingerprintGTE applies the GTE predicate on the "prompt_fingerprint" field.
func PromptFingerprintGTE(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGTE(FieldPromptFingerprint, v))
}

// PromptFingerprintLT applies the LT predicate on the "prompt_fingerprint" field.
func PromptFingerprintLT(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLT(FieldPromptFingerprint, v))
}

// PromptFingerprintLTE applies the LTE predicate on the "prompt_fingerprint" field.
func PromptFingerprintLTE(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLTE(FieldPromptFingerprint, v))
}

// PromptFingerprintContains applies the Contains predicate on the "prompt_fingerprint" field.
func PromptFingerprintContains(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldContains(FieldPromptFingerprint, v))
}

// PromptFingerprintHasPrefix applies the HasPrefix predicate on the "prompt_fingerprint" field.
func PromptFingerprintHasPrefix(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldHasPrefix(FieldPromptFingerprint, v))
}

// PromptFingerprintHasSuffix applies the HasSuffix predicate on the "prompt_fingerprint" field.
func PromptFingerprintHasSuffix(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldHasSuffix(FieldPromptFingerprint, v))
}

// PromptFingerprintEqualFold applies the EqualFold predicate on the "prompt_fingerprint" field.
func PromptFingerprintEqualFold(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEqualFold(FieldPromptFingerprint, v))
}

// PromptFingerprintContainsFold applies the ContainsFold predicate on the "prompt_fingerprint" field.
func PromptFingerprintContainsFold(v string) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldContainsFold(FieldPromptFingerprint, v))
}

// ResponsePayloadIsNil applies the IsNil predicate on the "response_payload" field.
func ResponsePayloadIsNil() predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldIsNull(FieldResponsePayload))
}

// ResponsePayloadNotNil applies the NotNil predicate on the "response_payload" field.
func ResponsePayloadNotNil() predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNotNull(FieldResponsePayload))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLTE(FieldConfidence, v))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLTE(FieldTokensIn, v))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLTE(FieldTokensOut, v))
}

// ToolsInvokedIsNil applies the IsNil predicate on the "tools_invoked" field.
func ToolsInvokedIsNil() predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldIsNull(FieldToolsInvoked))
}

// ToolsInvokedNotNil applies the NotNil predicate on the "tools_invoked" field.
func ToolsInvokedNotNil() predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNotNull(FieldToolsInvoked))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentDecision {
	return predicate.AgentDecision(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStep applies the HasEdge predicate on the "step" edge.
func HasStep() predicate.AgentDecision {
	return predicate.AgentDecision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StepTable, StepColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepWith applies the HasEdge predicate on the "step" edge with a given conditions (other predicates).
func HasStepWith(preds ...predicate.AgentStep) predicate.AgentDecision {
	return predicate.AgentDecision(func(s *sql.Selector) {
		step := newStepStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentDecision) predicate.AgentDecision {
	return predicate.AgentDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentDecision) predicate.AgentDecision {
	return predicate.AgentDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentDecision) predicate.AgentDecision {
	return predicate.AgentDecision(sql.NotPredicates(p))
}
