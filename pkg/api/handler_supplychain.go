package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// supplierRiskHandler handles GET /api/supply-chain/suppliers/:id.
func (s *Server) supplierRiskHandler(c *echo.Context) error {
	supplierID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "validation_error", "supplier id must be an integer")
	}

	score, err := s.deps.SupplyChain.Get(c.Request().Context(), supplierID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, score)
}

// supplyChainAlertsHandler handles GET /api/supply-chain/alerts.
func (s *Server) supplyChainAlertsHandler(c *echo.Context) error {
	alerts, err := s.deps.SupplyChain.ListAlerts(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, alerts)
}

// acknowledgeAlertHandler handles POST /api/supply-chain/alerts/:id/acknowledge.
func (s *Server) acknowledgeAlertHandler(c *echo.Context) error {
	if err := s.deps.SupplyChain.AcknowledgeAlert(c.Request().Context(), c.Param("id"), extractAuthor(c)); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"acknowledged": true})
}
