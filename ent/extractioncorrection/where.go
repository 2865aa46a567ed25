// Code generated by ent, DO NOT EDIT.

package extractioncorrection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldJobID, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldFieldName, v))
}

// ExtractedValue applies equality check predicate on the "extracted_value" field. It's identical to ExtractedValueEQ.
func ExtractedValue(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldExtractedValue, v))
}

// CorrectedValue applies equality check predicate on the "corrected_value" field. It's identical to CorrectedValueEQ.
func CorrectedValue(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldCorrectedValue, v))
}

// CorrectedBy applies equality check predicate on the "corrected_by" field. It's identical to CorrectedByEQ.
func CorrectedBy(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldCorrectedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContainsFold(FieldJobID, v))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContainsFold(FieldFieldName, v))
}

// ExtractedValueEQ applies the EQ predicate on the "extracted_value" field.
func ExtractedValueEQ(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldExtractedValue, v))
}

// ExtractedValueNEQ applies the NEQ predicate on the "extracted_value" field.
func ExtractedValueNEQ(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNEQ(FieldExtractedValue, v))
}

// ExtractedValueIn applies the In predicate on the "extracted_value" field.
func ExtractedValueIn(vs ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldIn(FieldExtractedValue, vs...))
}

// ExtractedValueNotIn applies the NotIn predicate on the "extracted_value" field.
func ExtractedValueNotIn(vs ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNotIn(FieldExtractedValue, vs...))
}

// ExtractedValueGT applies the GT predicate on the "extracted_value" field.
func ExtractedValueGT(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGT(FieldExtractedValue, v))
}

// ExtractedValueGTE applies the GTE predicate on the "extracted_value" field.
func ExtractedValueGTE(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGTE(FieldExtractedValue, v))
}

// ExtractedValueLT applies the LT predicate on the "extracted_value" field.
func ExtractedValueLT(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLT(FieldExtractedValue, v))
}

// ExtractedValueLTE applies the LTE predicate on the "extracted_value" field.
func ExtractedValueLTE(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLTE(FieldExtractedValue, v))
}

// ExtractedValueContains applies the Contains predicate on the "extracted_value" field.
func ExtractedValueContains(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContains(FieldExtractedValue, v))
}

// ExtractedValueHasPrefix applies the HasPrefix predicate on the "extracted_value" field.
func ExtractedValueHasPrefix(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldHasPrefix(FieldExtractedValue, v))
}

// ExtractedValueHasSuffix applies the HasSuffix predicate on the "extracted_value" field.
func ExtractedValueHasSuffix(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldHasSuffix(FieldExtractedValue, v))
}

// ExtractedValueIsNil applies the IsNil predicate on the "extracted_value" field.
func ExtractedValueIsNil() predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldIsNull(FieldExtractedValue))
}

// ExtractedValueNotNil applies the NotNil predicate on the "extracted_value" field.
func ExtractedValueNotNil() predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNotNull(FieldExtractedValue))
}

// ExtractedValueEqualFold applies the EqualFold predicate on the "extracted_value" field.
func ExtractedValueEqualFold(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEqualFold(FieldExtractedValue, v))
}

// ExtractedValueContainsFold applies the ContainsFold predicate on the "extracted_value" field.
func ExtractedValueContainsFold(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContainsFold(FieldExtractedValue, v))
}

// CorrectedValueEQ applies the EQ predicate on the "corrected_value" field.
func CorrectedValueEQ(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldCorrectedValue, v))
}

// CorrectedValueNEQ applies the NEQ predicate on the "corrected_value" field.
func CorrectedValueNEQ(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNEQ(FieldCorrectedValue, v))
}

// CorrectedValueIn applies the In predicate on the "corrected_value" field.
func CorrectedValueIn(vs ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldIn(FieldCorrectedValue, vs...))
}

// CorrectedValueNotIn applies the NotIn predicate on the "corrected_value" field.
func CorrectedValueNotIn(vs ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNotIn(FieldCorrectedValue, vs...))
}

// CorrectedValueGT applies the GT predicate on the "corrected_value" field.
func CorrectedValueGT(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGT(FieldCorrectedValue, v))
}

// CorrectedValueGTE applies the GTE predicate on the "corrected_value" field.
func CorrectedValueGTE(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGTE(FieldCorrectedValue, v))
}

// CorrectedValueLT applies the LT predicate on the "corrected_value" field.
func CorrectedValueLT(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLT(FieldCorrectedValue, v))
}

// CorrectedValueLTE applies the LTE predicate on the "corrected_value" field.
func CorrectedValueLTE(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLTE(FieldCorrectedValue, v))
}

// CorrectedValueContains applies the Contains predicate on the "corrected_value" field.
func CorrectedValueContains(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContains(FieldCorrectedValue, v))
}

// CorrectedValueHasPrefix applies the HasPrefix predicate on the "corrected_value" field.
func CorrectedValueHasPrefix(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldHasPrefix(FieldCorrectedValue, v))
}

// CorrectedValueHasSuffix applies the HasSuffix predicate on the "corrected_value" field.
func CorrectedValueHasSuffix(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldHasSuffix(FieldCorrectedValue, v))
}

// CorrectedValueEqualFold applies the EqualFold predicate on the "corrected_value" field.
func CorrectedValueEqualFold(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEqualFold(FieldCorrectedValue, v))
}

// CorrectedValueContainsFold applies the ContainsFold predicate on the "corrected_value" field.
func CorrectedValueContainsFold(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContainsFold(FieldCorrectedValue, v))
}

// CorrectedByEQ applies the EQ predicate on the "corrected_by" field.
func CorrectedByEQ(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldCorrectedBy, v))
}

// CorrectedByNEQ applies the NEQ predicate on the "corrected_by" field.
func CorrectedByNEQ(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNEQ(FieldCorrectedBy, v))
}

// CorrectedByIn applies the In predicate on the "corrected_by" field.
func CorrectedByIn(vs ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldIn(FieldCorrectedBy, vs...))
}

// CorrectedByNotIn applies the NotIn predicate on the "corrected_by" field.
func CorrectedByNotIn(vs ...string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNotIn(FieldCorrectedBy, vs...))
}

// CorrectedByGT applies the GT predicate on the "corrected_by" field.
func CorrectedByGT(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGT(FieldCorrectedBy, v))
}

// CorrectedByGTE applies the GTE predicate on the "corrected_by" field.
func CorrectedByGTE(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGTE(FieldCorrectedBy, v))
}

// CorrectedByLT applies the LT predicate on the "corrected_by" field.
func CorrectedByLT(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLT(FieldCorrectedBy, v))
}

// CorrectedByLTE applies the LTE predicate on the "corrected_by" field.
func CorrectedByLTE(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLTE(FieldCorrectedBy, v))
}

// CorrectedByContains applies the Contains predicate on the "corrected_by" field.
func CorrectedByContains(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContains(FieldCorrectedBy, v))
}

// CorrectedByHasPrefix applies the HasPrefix predicate on the "corrected_by" field.
func CorrectedByHasPrefix(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldHasPrefix(FieldCorrectedBy, v))
}

// CorrectedByHasSuffix applies the HasSuffix predicate on the "corrected_by" field.
func CorrectedByHasSuffix(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldHasSuffix(FieldCorrectedBy, v))
}

// CorrectedByIsNil applies the IsNil predicate on the "corrected_by" field.
func CorrectedByIsNil() predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldIsNull(FieldCorrectedBy))
}

// CorrectedByNotNil applies the NotNil predicate on the "corrected_by" field.
func CorrectedByNotNil() predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNotNull(FieldCorrectedBy))
}

// CorrectedByEqualFold applies the EqualFold predicate on the "corrected_by" field.
func CorrectedByEqualFold(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEqualFold(FieldCorrectedBy, v))
}

// CorrectedByContainsFold applies the ContainsFold predicate on the "corrected_by" field.
func CorrectedByContainsFold(v string) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldContainsFold(FieldCorrectedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.DocumentJob) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionCorrection) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionCorrection) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionCorrection) predicate.ExtractionCorrection {
	return predicate.ExtractionCorrection(sql.NotPredicates(p))
}
