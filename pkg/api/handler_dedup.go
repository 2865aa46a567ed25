package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// DedupScanRequest starts a duplicate scan over partners or products.
type DedupScanRequest struct {
	ScanType string `json:"scan_type"`
}

// MergeRequest merges a duplicate group into the chosen master record.
type MergeRequest struct {
	MasterRecordID int64 `json:"master_record_id"`
}

// dedupScanHandler handles POST /api/dedup/scan.
func (s *Server) dedupScanHandler(c *echo.Context) error {
	var req DedupScanRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}

	scan, err := s.deps.Dedup.RunScan(c.Request().Context(), req.ScanType)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, scan)
}

// dedupListScansHandler handles GET /api/dedup/scans.
func (s *Server) dedupListScansHandler(c *echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	scans, err := s.deps.Dedup.ListScans(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, scans)
}

// dedupGroupHandler handles GET /api/dedup/groups/:id.
func (s *Server) dedupGroupHandler(c *echo.Context) error {
	group, err := s.deps.Dedup.GetGroup(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, group)
}

// dedupMergeHandler handles POST /api/dedup/groups/:id/merge.
func (s *Server) dedupMergeHandler(c *echo.Context) error {
	var req MergeRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}

	group, err := s.deps.Dedup.Merge(c.Request().Context(), c.Param("id"), req.MasterRecordID, extractAuthor(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, group)
}

// dedupDismissHandler handles POST /api/dedup/groups/:id/dismiss.
func (s *Server) dedupDismissHandler(c *echo.Context) error {
	group, err := s.deps.Dedup.Dismiss(c.Request().Context(), c.Param("id"), extractAuthor(c))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, group)
}
