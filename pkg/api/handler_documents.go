package api

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-ai/steward/ent/documentjob"
)

// CorrectRequest records a human correction on an extraction.
type CorrectRequest struct {
	FieldName      string `json:"field_name"`
	CorrectedValue string `json:"corrected_value"`
}

// documentProcessHandler handles POST /api/documents/process (multipart).
//
// The form carries a document_type field plus either an attachment_ref
// pointing at an existing ERP attachment ("ir.attachment,<id>") or a file
// part that is uploaded to the ERP first. The raw blob stays in the ERP;
// the job only holds the reference. Extraction runs synchronously.
func (s *Server) documentProcessHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	docType := documentjob.DocumentType(c.FormValue("document_type"))
	if err := documentjob.DocumentTypeValidator(docType); err != nil {
		return apiError(c, http.StatusBadRequest, "validation_error",
			fmt.Sprintf("unknown document_type %q", docType))
	}

	ref := c.FormValue("attachment_ref")
	if ref == "" {
		var err error
		ref, err = s.uploadAttachment(c)
		if err != nil {
			return apiError(c, http.StatusBadRequest, "validation_error", err.Error())
		}
	}

	job, err := s.deps.Documents.CreateJob(ctx, docType, ref)
	if err != nil {
		return mapServiceError(c, err)
	}
	job, err = s.deps.Documents.Process(ctx, job.ID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, job)
}

// uploadAttachment stores the multipart file as an ERP attachment and
// returns its reference.
func (s *Server) uploadAttachment(c *echo.Context) (string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("either attachment_ref or a file part is required")
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	id, err := s.deps.ERP.Create(c.Request().Context(), "ir.attachment", map[string]interface{}{
		"name":          fh.Filename,
		"datas":         base64.StdEncoding.EncodeToString(content),
		"index_content": string(content),
	})
	if err != nil {
		return "", fmt.Errorf("uploading attachment: %w", err)
	}
	return fmt.Sprintf("ir.attachment,%d", id), nil
}

// documentGetHandler handles GET /api/documents/:id.
func (s *Server) documentGetHandler(c *echo.Context) error {
	job, err := s.deps.Documents.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, job)
}

// documentCorrectHandler handles POST /api/documents/:id/correct.
func (s *Server) documentCorrectHandler(c *echo.Context) error {
	var req CorrectRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}

	correction, err := s.deps.Documents.Correct(c.Request().Context(),
		c.Param("id"), req.FieldName, req.CorrectedValue, extractAuthor(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, correction)
}

// documentValidateHandler handles POST /api/documents/:id/validate.
// Accepting an extraction creates the target ERP record.
func (s *Server) documentValidateHandler(c *echo.Context) error {
	job, err := s.deps.Documents.Validate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, job)
}
