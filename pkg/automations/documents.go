package automations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/documentjob"
	"github.com/steward-ai/steward/ent/extractioncorrection"
	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/erp"
	"github.com/steward-ai/steward/pkg/llm"
	"github.com/steward-ai/steward/pkg/services"
)

// extractDocumentTool is the structured output contract for document
// extraction.
var extractDocumentTool = llm.ToolDefinition{
	Name:        "extract_document",
	Description: "Extract structured fields from a business document",
	InputSchema: map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"fields":     map[string]interface{}{"type": "object"},
			"confidence": map[string]interface{}{"type": "number"},
		},
		"required": []interface{}{"fields", "confidence"},
	},
}

// erpModelForDocument maps a document type to the ERP model its validated
// extraction creates.
var erpModelForDocument = map[documentjob.DocumentType]string{
	documentjob.DocumentTypeVendorBill:     "account.move",
	documentjob.DocumentTypeExpenseReceipt: "hr.expense",
	documentjob.DocumentTypeSalesOrder:     "sale.order",
}

// Documents runs document extraction jobs: LLM field extraction from ERP
// attachments, human correction capture, and record creation on validation.
type Documents struct {
	client       *ent.Client
	erp          erp.Client
	llm          llm.Client
	systemPrompt string
}

// NewDocuments creates the document-processing automation.
func NewDocuments(client *ent.Client, erpClient erp.Client, llmClient llm.Client, systemPrompt string) *Documents {
	if client == nil {
		panic("NewDocuments: ent client must not be nil")
	}
	if erpClient == nil {
		panic("NewDocuments: erp client must not be nil")
	}
	if llmClient == nil {
		panic("NewDocuments: llm client must not be nil")
	}
	if systemPrompt == "" {
		systemPrompt = "Extract structured fields from the document text using the extract_document tool."
	}
	return &Documents{client: client, erp: erpClient, llm: llmClient, systemPrompt: systemPrompt}
}

// Type implements automation.Automation.
func (d *Documents) Type() string { return "documents" }

// WatchedModels implements automation.Automation.
func (d *Documents) WatchedModels() []string { return []string{"ir.attachment"} }

// Handlers implements automation.Automation. Fresh attachments on vendor
// bill mailboxes become extraction jobs.
func (d *Documents) Handlers() map[automation.HandlerKey]automation.Handler {
	return map[automation.HandlerKey]automation.Handler{
		{EventType: "create", Model: "ir.attachment"}: d.onAttachment,
	}
}

// Scans implements automation.Automation.
func (d *Documents) Scans() map[string]automation.ScanFunc {
	return map[string]automation.ScanFunc{
		"scan_pending_documents": d.scanPending,
	}
}

// Execute implements automation.Automation: validates a job and creates the
// ERP record from its extraction.
func (d *Documents) Execute(ctx context.Context, action automation.Action) (map[string]interface{}, error) {
	if action.Name != "post_document" {
		return nil, fmt.Errorf("documents: unknown action %q", action.Name)
	}
	jobID := erp.Str(action.Changes["job_id"])
	job, err := d.Validate(ctx, jobID)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{"job_id": job.ID, "status": string(job.Status)}
	if job.CreatedRecordID != nil {
		out["created_record_id"] = *job.CreatedRecordID
	}
	return out, nil
}

func (d *Documents) onAttachment(ctx context.Context, ev automation.Event) (*automation.Result, error) {
	docType, ok := documentTypeFor(erp.Str(ev.Values["res_model"]))
	if !ok {
		return &automation.Result{
			Success:     true,
			ActionName:  "process_document",
			Confidence:  0.10,
			Reasoning:   "attachment is not on a processable model",
			ChangesMade: map[string]interface{}{},
		}, nil
	}

	job, err := d.CreateJob(ctx, docType, fmt.Sprintf("ir.attachment,%d", ev.RecordID))
	if err != nil {
		return nil, err
	}
	job, err = d.Process(ctx, job.ID)
	if err != nil {
		return nil, err
	}

	confidence := 0.0
	if job.Confidence != nil {
		confidence = *job.Confidence
	}
	return &automation.Result{
		Success:    job.Status != documentjob.StatusFailed,
		ActionName: "post_document",
		Model:      erpModelForDocument[docType],
		RecordID:   ev.RecordID,
		Confidence: confidence,
		Reasoning:  fmt.Sprintf("extracted %s job %s with confidence %.2f", docType, job.ID, confidence),
		ChangesMade: map[string]interface{}{
			"job_id": job.ID,
		},
	}, nil
}

// CreateJob opens a pending extraction job.
func (d *Documents) CreateJob(ctx context.Context, docType documentjob.DocumentType, sourceAttachment string) (*ent.DocumentJob, error) {
	if sourceAttachment == "" {
		return nil, services.NewValidationError("source_attachment", "must not be empty")
	}
	return d.client.DocumentJob.Create().
		SetID(uuid.NewString()).
		SetDocumentType(docType).
		SetSourceAttachment(sourceAttachment).
		Save(ctx)
}

// GetJob returns one job with its corrections, or ErrNotFound.
func (d *Documents) GetJob(ctx context.Context, jobID string) (*ent.DocumentJob, error) {
	job, err := d.client.DocumentJob.Query().
		Where(documentjob.ID(jobID)).
		WithCorrections().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

// Process runs extraction for a pending job. Past human corrections for the
// same document type are fed back as few-shot examples.
func (d *Documents) Process(ctx context.Context, jobID string) (*ent.DocumentJob, error) {
	job, err := d.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != documentjob.StatusPending {
		return nil, fmt.Errorf("job %s is %s, not pending: %w", jobID, job.Status, services.ErrInvalidTransition)
	}

	job, err = job.Update().SetStatus(documentjob.StatusExtracting).Save(ctx)
	if err != nil {
		return nil, err
	}

	text, err := d.attachmentText(ctx, job.SourceAttachment)
	if err != nil {
		return d.failJob(ctx, job, err)
	}

	completion, err := d.llm.Complete(ctx, llm.Request{
		System: d.systemPrompt + d.fewShotExamples(ctx, job.DocumentType),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Document type: %s\n\n%s", job.DocumentType, text)},
		},
		Tools: []llm.ToolDefinition{extractDocumentTool},
	})
	if err != nil {
		return d.failJob(ctx, job, err)
	}
	call, err := firstToolCall(completion, extractDocumentTool)
	if err != nil {
		return d.failJob(ctx, job, err)
	}

	fields, _ := call.Input["fields"].(map[string]interface{})
	confidence := erp.Float(call.Input["confidence"])

	return job.Update().
		SetStatus(documentjob.StatusExtracted).
		SetExtractedFields(fields).
		SetConfidence(confidence).
		Save(ctx)
}

// Validate accepts an extraction and creates the target ERP record.
func (d *Documents) Validate(ctx context.Context, jobID string) (*ent.DocumentJob, error) {
	job, err := d.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != documentjob.StatusExtracted {
		return nil, fmt.Errorf("job %s is %s, not extracted: %w", jobID, job.Status, services.ErrInvalidTransition)
	}

	job, err = job.Update().SetStatus(documentjob.StatusValidated).Save(ctx)
	if err != nil {
		return nil, err
	}

	model := erpModelForDocument[job.DocumentType]
	recordID, err := d.erp.Create(ctx, model, job.ExtractedFields)
	if err != nil {
		return d.failJob(ctx, job, fmt.Errorf("creating %s: %w", model, err))
	}

	return job.Update().
		SetStatus(documentjob.StatusPosted).
		SetCreatedRecordID(recordID).
		Save(ctx)
}

// Correct records a human correction and folds it into the extraction.
func (d *Documents) Correct(ctx context.Context, jobID, fieldName, correctedValue, correctedBy string) (*ent.ExtractionCorrection, error) {
	if fieldName == "" {
		return nil, services.NewValidationError("field_name", "must not be empty")
	}
	job, err := d.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	extracted := ""
	if v, ok := job.ExtractedFields[fieldName]; ok {
		extracted = fmt.Sprintf("%v", v)
	}

	correction, err := d.client.ExtractionCorrection.Create().
		SetID(uuid.NewString()).
		SetJobID(job.ID).
		SetFieldName(fieldName).
		SetExtractedValue(extracted).
		SetCorrectedValue(correctedValue).
		SetCorrectedBy(correctedBy).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	fields := job.ExtractedFields
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields[fieldName] = correctedValue
	if _, err := job.Update().SetExtractedFields(fields).Save(ctx); err != nil {
		return nil, err
	}
	return correction, nil
}

func (d *Documents) scanPending(ctx context.Context, _ time.Time) ([]*automation.Result, error) {
	stuck, err := d.client.DocumentJob.Query().
		Where(documentjob.StatusEQ(documentjob.StatusPending)).
		Order(ent.Asc(documentjob.FieldCreatedAt)).
		Limit(20).
		All(ctx)
	if err != nil {
		return nil, err
	}

	var results []*automation.Result
	for _, job := range stuck {
		processed, err := d.Process(ctx, job.ID)
		if err != nil {
			results = append(results, automation.Failed("post_document", "", 0, err))
			continue
		}
		confidence := 0.0
		if processed.Confidence != nil {
			confidence = *processed.Confidence
		}
		results = append(results, &automation.Result{
			Success:    true,
			ActionName: "post_document",
			Confidence: confidence,
			Reasoning:  fmt.Sprintf("extracted backlog job %s with confidence %.2f", job.ID, confidence),
			ChangesMade: map[string]interface{}{
				"job_id": job.ID,
			},
		})
	}
	return results, nil
}

// attachmentText reads the indexed text of the source attachment. The raw
// blob stays in the ERP; only its reference and extracted text travel here.
func (d *Documents) attachmentText(ctx context.Context, sourceAttachment string) (string, error) {
	var attachmentID int64
	if _, err := fmt.Sscanf(sourceAttachment, "ir.attachment,%d", &attachmentID); err != nil {
		return "", services.NewValidationError("source_attachment",
			fmt.Sprintf("unparseable reference %q", sourceAttachment))
	}
	rec, err := d.erp.Read(ctx, "ir.attachment", attachmentID, []string{"index_content", "name"})
	if err != nil {
		return "", fmt.Errorf("reading attachment %d: %w", attachmentID, err)
	}
	text := erp.Str(rec["index_content"])
	if text == "" {
		return "", fmt.Errorf("attachment %d has no indexed text", attachmentID)
	}
	return text, nil
}

// fewShotExamples renders recent corrections for the document type as
// prompt guidance.
func (d *Documents) fewShotExamples(ctx context.Context, docType documentjob.DocumentType) string {
	corrections, err := d.client.ExtractionCorrection.Query().
		Where(extractioncorrection.HasJobWith(documentjob.DocumentTypeEQ(docType))).
		Order(ent.Desc(extractioncorrection.FieldCreatedAt)).
		Limit(5).
		All(ctx)
	if err != nil || len(corrections) == 0 {
		return ""
	}

	examples := make([]map[string]string, 0, len(corrections))
	for _, c := range corrections {
		examples = append(examples, map[string]string{
			"field":     c.FieldName,
			"extracted": c.ExtractedValue,
			"corrected": c.CorrectedValue,
		})
	}
	rendered, _ := json.Marshal(examples)
	return "\n\nPast corrections to learn from:\n" + string(rendered)
}

func (d *Documents) failJob(ctx context.Context, job *ent.DocumentJob, cause error) (*ent.DocumentJob, error) {
	_, uerr := job.Update().
		SetStatus(documentjob.StatusFailed).
		SetErrorMessage(cause.Error()).
		Save(ctx)
	if uerr != nil {
		return nil, fmt.Errorf("job failed (%v); marking failed also failed: %w", cause, uerr)
	}
	return nil, cause
}

func documentTypeFor(resModel string) (documentjob.DocumentType, bool) {
	switch resModel {
	case "account.move":
		return documentjob.DocumentTypeVendorBill, true
	case "hr.expense":
		return documentjob.DocumentTypeExpenseReceipt, true
	case "sale.order":
		return documentjob.DocumentTypeSalesOrder, true
	default:
		return "", false
	}
}
