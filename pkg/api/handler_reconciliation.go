package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// StartReconciliationRequest opens an assisted reconciliation session.
type StartReconciliationRequest struct {
	JournalID int64 `json:"journal_id"`
	UserID    int64 `json:"user_id"`
}

// MatchRequest records a manual bank-line/entry match.
type MatchRequest struct {
	BankLineID int64 `json:"bank_line_id"`
	EntryID    int64 `json:"entry_id"`
}

// startReconciliationHandler handles POST /api/reconciliation/start.
func (s *Server) startReconciliationHandler(c *echo.Context) error {
	var req StartReconciliationRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}
	if req.UserID == 0 {
		// Sessions opened through the API without an explicit ERP user are
		// attributed to the service account.
		req.UserID = 1
	}

	sess, err := s.deps.Reconciliation.StartSession(c.Request().Context(), req.UserID, req.JournalID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, sess)
}

// reconciliationSuggestionsHandler handles GET /api/reconciliation/:id/suggestions.
func (s *Server) reconciliationSuggestionsHandler(c *echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	suggestions, err := s.deps.Reconciliation.Suggestions(c.Request().Context(), c.Param("id"), page, limit)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id":  c.Param("id"),
		"suggestions": suggestions,
	})
}

// reconciliationMatchHandler handles POST /api/reconciliation/:id/match.
func (s *Server) reconciliationMatchHandler(c *echo.Context) error {
	var req MatchRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}

	sess, err := s.deps.Reconciliation.Match(c.Request().Context(), c.Param("id"), req.BankLineID, req.EntryID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// reconciliationSkipHandler handles POST /api/reconciliation/:id/skip.
func (s *Server) reconciliationSkipHandler(c *echo.Context) error {
	sess, err := s.deps.Reconciliation.Skip(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}

// reconciliationCompleteHandler handles POST /api/reconciliation/:id/complete.
func (s *Server) reconciliationCompleteHandler(c *echo.Context) error {
	sess, err := s.deps.Reconciliation.Complete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sess)
}
