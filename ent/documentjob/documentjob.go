// Code generated by ent, DO NOT EDIT.

package documentjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the documentjob type in the database.
	Label = "document_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "document_job_id"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldSourceAttachment holds the string denoting the source_attachment field in the database.
	FieldSourceAttachment = "source_attachment"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExtractedFields holds the string denoting the extracted_fields field in the database.
	FieldExtractedFields = "extracted_fields"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCreatedRecordID holds the string denoting the created_record_id field in the database.
	FieldCreatedRecordID = "created_record_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCorrections holds the string denoting the corrections edge name in mutations.
	EdgeCorrections = "corrections"
	// ExtractionCorrectionFieldID holds the string denoting the ID field of the ExtractionCorrection.
	ExtractionCorrectionFieldID = "correction_id"
	// Table holds the table name of the documentjob in the database.
	Table = "document_jobs"
	// CorrectionsTable is the table that holds the corrections relation/edge.
	CorrectionsTable = "extraction_corrections"
	// CorrectionsInverseTable is the table name for the ExtractionCorrection entity.
	// It exists in this package in order to avoid circular dependency with the "extractioncorrection" package.
	CorrectionsInverseTable = "extraction_corrections"
	// CorrectionsColumn is the table column denoting the corrections relation/edge.
	CorrectionsColumn = "job_id"
)

// Columns holds all SQL columns for documentjob fields.
var Columns = []string{
	FieldID,
	FieldDocumentType,
	FieldSourceAttachment,
	FieldStatus,
	FieldExtractedFields,
	FieldConfidence,
	FieldCreatedRecordID,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// DocumentType defines the type for the "document_type" enum field.
type DocumentType string

// DocumentType values.
const (
	DocumentTypeVendorBill     DocumentType = "vendor_bill"
	DocumentTypeExpenseReceipt DocumentType = "expense_receipt"
	DocumentTypeSalesOrder     DocumentType = "sales_order"
)

func (dt DocumentType) String() string {
	return string(dt)
}

// DocumentTypeValidator is a validator for the "document_type" field enum values. It is called by the builders before save.
func DocumentTypeValidator(dt DocumentType) error {
	switch dt {
	case DocumentTypeVendorBill, DocumentTypeExpenseReceipt, DocumentTypeSalesOrder:
		return nil
	default:
		return fmt.Errorf("documentjob: invalid enum value for document_type field: %q", dt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusExtracting Status = "extracting"
	StatusExtracted  Status = "extracted"
	StatusValidated  Status = "validated"
	StatusPosted     Status = "posted"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusExtracting, StatusExtracted, StatusValidated, StatusPosted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("documentjob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DocumentJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// BySourceAttachment orders the results by the source_attachment field.
func BySourceAttachment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceAttachment, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedRecordID orders the results by the created_record_id field.
func ByCreatedRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedRecordID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCorrectionsCount orders the results by corrections count.
func ByCorrectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCorrectionsStep(), opts...)
	}
}

// ByCorrections orders the results by corrections terms.
func ByCorrections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCorrectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCorrectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CorrectionsInverseTable, ExtractionCorrectionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CorrectionsTable, CorrectionsColumn),
	)
}
