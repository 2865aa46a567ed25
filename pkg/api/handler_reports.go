package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// RunReportRequest runs a natural-language report query.
type RunReportRequest struct {
	Query string `json:"query"`
}

// runReportHandler handles POST /api/reports.
func (s *Server) runReportHandler(c *echo.Context) error {
	var req RunReportRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}
	if req.Query == "" {
		return apiError(c, http.StatusBadRequest, "validation_error", "query is required")
	}

	job, err := s.deps.Reports.Run(c.Request().Context(), req.Query, extractAuthor(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, job)
}

// getReportHandler handles GET /api/reports/:id.
func (s *Server) getReportHandler(c *echo.Context) error {
	job, err := s.deps.Reports.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, job)
}
