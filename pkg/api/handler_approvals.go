package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-ai/steward/pkg/services"
)

// DecideApprovalRequest resolves one pending audit row.
type DecideApprovalRequest struct {
	AuditLogID string `json:"audit_log_id"`
	Approved   bool   `json:"approved"`
	ApprovedBy string `json:"approved_by"`
}

// listApprovalsHandler handles GET /api/approvals, oldest first.
func (s *Server) listApprovalsHandler(c *echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 50
	}

	queue, err := s.deps.Approvals.ListPending(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, queue)
}

// decideApprovalHandler handles POST /api/approvals. Approving replays the
// held action against the ERP; rejecting only records the decision.
func (s *Server) decideApprovalHandler(c *echo.Context) error {
	var req DecideApprovalRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}
	if req.AuditLogID == "" {
		return apiError(c, http.StatusBadRequest, "validation_error", "audit_log_id is required")
	}
	if req.ApprovedBy == "" {
		req.ApprovedBy = extractAuthor(c)
	}

	log, err := s.deps.Approvals.Decide(c.Request().Context(), req.AuditLogID, req.Approved, req.ApprovedBy)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, log)
}

// listAuditHandler handles GET /api/audit with optional filters.
func (s *Server) listAuditHandler(c *echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	recordID, _ := strconv.ParseInt(c.QueryParam("record_id"), 10, 64)

	filter := services.AuditFilter{
		AutomationType: c.QueryParam("automation_type"),
		Status:         c.QueryParam("status"),
		Model:          c.QueryParam("model"),
		RecordID:       recordID,
		Limit:          limit,
		Offset:         offset,
	}
	if v := c.QueryParam("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return apiError(c, http.StatusBadRequest, "validation_error", "since must be RFC 3339")
		}
		filter.Since = &since
	}

	logs, err := s.deps.Audit.ListLogs(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}
