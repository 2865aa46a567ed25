// Code generated by ent, DO NOT EDIT.

package documentjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldContainsFold(FieldID, id))
}

// SourceAttachment applies equality check predicate on the "source_attachment" field. It's identical to SourceAttachmentEQ.
func SourceAttachment(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldSourceAttachment, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldConfidence, v))
}

// CreatedRecordID applies equality check predicate on the "created_record_id" field. It's identical to CreatedRecordIDEQ.
func CreatedRecordID(v int64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldCreatedRecordID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v DocumentType) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v DocumentType) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...DocumentType) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...DocumentType) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotIn(FieldDocumentType, vs...))
}

// SourceAttachmentEQ applies the EQ predicate on the "source_attachment" field.
func SourceAttachmentEQ(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldSourceAttachment, v))
}

// SourceAttachmentNEQ applies the NEQ predicate on the "source_attachment" field.
func SourceAttachmentNEQ(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNEQ(FieldSourceAttachment, v))
}

// SourceAttachmentIn applies the In predicate on the "source_attachment" field.
func SourceAttachmentIn(vs ...string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIn(FieldSourceAttachment, vs...))
}

// SourceAttachmentNotIn applies the NotIn predicate on the "source_attachment" field.
func SourceAttachmentNotIn(vs ...string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotIn(FieldSourceAttachment, vs...))
}

// SourceAttachmentGT applies the GT predicate on the "source_attachment" field.
func SourceAttachmentGT(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGT(FieldSourceAttachment, v))
}

// SourceAttachmentGTE applies the GTE predicate on the "source_attachment" field.
func SourceAttachmentGTE(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGTE(FieldSourceAttachment, v))
}

// SourceAttachmentLT applies the LT predicate on the "source_attachment" field.
func SourceAttachmentLT(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLT(FieldSourceAttachment, v))
}

// SourceAttachmentLTE applies the LTE predicate on the "source_attachment" field.
func SourceAttachmentLTE(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLTE(FieldSourceAttachment, v))
}

// SourceAttachmentContains applies the Contains predicate on the "source_attachment" field.
func SourceAttachmentContains(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldContains(FieldSourceAttachment, v))
}

// SourceAttachmentHasPrefix applies the HasPrefix predicate on the "source_attachment" field.
func SourceAttachmentHasPrefix(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldHasPrefix(FieldSourceAttachment, v))
}

// SourceAttachmentHasSuffix applies the HasSuffix predicate on the "source_attachment" field.
func SourceAttachmentHasSuffix(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldHasSuffix(FieldSourceAttachment, v))
}

// SourceAttachmentEqualFold applies the EqualFold predicate on the "source_attachment" field.
func SourceAttachmentEqualFold(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEqualFold(FieldSourceAttachment, v))
}

// SourceAttachmentContainsFold applies the ContainsFold predicate on the "source_attachment" field.
func SourceAttachmentContainsFold(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldContainsFold(FieldSourceAttachment, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotIn(FieldStatus, vs...))
}

// ExtractedFieldsIsNil applies the IsNil predicate on the "extracted_fields" field.
func ExtractedFieldsIsNil() predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIsNull(FieldExtractedFields))
}

// ExtractedFieldsNotNil applies the NotNil predicate on the "extracted_fields" field.
func ExtractedFieldsNotNil() predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotNull(FieldExtractedFields))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotNull(FieldConfidence))
}

// CreatedRecordIDEQ applies the EQ predicate on the "created_record_id" field.
func CreatedRecordIDEQ(v int64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldCreatedRecordID, v))
}

// CreatedRecordIDNEQ applies the NEQ predicate on the "created_record_id" field.
func CreatedRecordIDNEQ(v int64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNEQ(FieldCreatedRecordID, v))
}

// CreatedRecordIDIn applies the In predicate on the "created_record_id" field.
func CreatedRecordIDIn(vs ...int64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIn(FieldCreatedRecordID, vs...))
}

// CreatedRecordIDNotIn applies the NotIn predicate on the "created_record_id" field.
func CreatedRecordIDNotIn(vs ...int64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotIn(FieldCreatedRecordID, vs...))
}

// CreatedRecordIDGT applies the GT predicate on the "created_record_id" field.
func CreatedRecordIDGT(v int64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGT(FieldCreatedRecordID, v))
}

// CreatedRecordIDGTE applies the GTE predicate on the "created_record_id" field.
func CreatedRecordIDGTE(v int64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGTE(FieldCreatedRecordID, v))
}

// CreatedRecordIDLT applies the LT predicate on the "created_record_id" field.
func CreatedRecordIDLT(v int64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLT(FieldCreatedRecordID, v))
}

// CreatedRecordIDLTE applies the LTE predicate on the "created_record_id" field.
func CreatedRecordIDLTE(v int64) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLTE(FieldCreatedRecordID, v))
}

// CreatedRecordIDIsNil applies the IsNil predicate on the "created_record_id" field.
func CreatedRecordIDIsNil() predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIsNull(FieldCreatedRecordID))
}

// CreatedRecordIDNotNil applies the NotNil predicate on the "created_record_id" field.
func CreatedRecordIDNotNil() predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotNull(FieldCreatedRecordID))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DocumentJob {
	return predicate.DocumentJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCorrections applies the HasEdge predicate on the "corrections" edge.
func HasCorrections() predicate.DocumentJob {
	return predicate.DocumentJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CorrectionsTable, CorrectionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCorrectionsWith applies the HasEdge predicate on the "corrections" edge with a given conditions (other predicates).
func HasCorrectionsWith(preds ...predicate.ExtractionCorrection) predicate.DocumentJob {
	return predicate.DocumentJob(func(s *sql.Selector) {
		step := newCorrectionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentJob) predicate.DocumentJob {
	return predicate.DocumentJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentJob) predicate.DocumentJob {
	return predicate.DocumentJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentJob) predicate.DocumentJob {
	return predicate.DocumentJob(sql.NotPredicates(p))
}
