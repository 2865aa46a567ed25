package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// CreditCheckRequest asks whether an order fits the customer's exposure.
type CreditCheckRequest struct {
	CustomerID  int64   `json:"customer_id"`
	OrderAmount float64 `json:"order_amount"`
}

// CreditHoldRequest places a manual hold.
type CreditHoldRequest struct {
	Reason string `json:"reason"`
}

func customerIDParam(c *echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("customer_id"), 10, 64)
}

// creditGetHandler handles GET /api/credit/:customer_id.
func (s *Server) creditGetHandler(c *echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "validation_error", "customer_id must be an integer")
	}

	score, err := s.deps.Credit.Get(c.Request().Context(), customerID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, score)
}

// creditCheckHandler handles POST /api/credit/check.
func (s *Server) creditCheckHandler(c *echo.Context) error {
	var req CreditCheckRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}

	check, err := s.deps.Credit.Check(c.Request().Context(), req.CustomerID, req.OrderAmount)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, check)
}

// creditBatchRecalculateHandler handles POST /api/credit/batch-recalculate.
// The recalculation runs synchronously; per-customer failures are reported
// as a count, not as a request failure.
func (s *Server) creditBatchRecalculateHandler(c *echo.Context) error {
	processed, errs := s.deps.Credit.BatchRecalculate(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]interface{}{
		"processed": processed,
		"errors":    len(errs),
	})
}

// creditHoldHandler handles POST /api/credit/:customer_id/hold.
func (s *Server) creditHoldHandler(c *echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "validation_error", "customer_id must be an integer")
	}
	var req CreditHoldRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}
	if req.Reason == "" {
		req.Reason = "manual hold by " + extractAuthor(c)
	}

	if err := s.deps.Credit.PlaceHold(c.Request().Context(), customerID, req.Reason); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"customer_id": customerID, "hold_active": true})
}

// creditReleaseHandler handles POST /api/credit/:customer_id/release.
func (s *Server) creditReleaseHandler(c *echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "validation_error", "customer_id must be an integer")
	}

	if err := s.deps.Credit.ReleaseHold(c.Request().Context(), customerID); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"customer_id": customerID, "hold_active": false})
}
