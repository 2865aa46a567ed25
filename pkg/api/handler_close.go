package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// StartCloseRequest opens a month-end closing checklist.
type StartCloseRequest struct {
	Period string `json:"period"`
}

// startCloseHandler handles POST /api/close/start.
func (s *Server) startCloseHandler(c *echo.Context) error {
	var req StartCloseRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}
	if req.Period == "" {
		return apiError(c, http.StatusBadRequest, "validation_error", "period is required")
	}

	closing, err := s.deps.MonthEnd.StartClose(c.Request().Context(), req.Period)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, closing)
}

// closeStatusHandler handles GET /api/close/:period/status.
func (s *Server) closeStatusHandler(c *echo.Context) error {
	closing, err := s.deps.MonthEnd.Status(c.Request().Context(), c.Param("period"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, closing)
}

// completeCloseStepHandler handles POST /api/close/:id/steps/:step/complete.
func (s *Server) completeCloseStepHandler(c *echo.Context) error {
	closing, err := s.deps.MonthEnd.CompleteStep(c.Request().Context(), c.Param("id"), c.Param("step"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, closing)
}

// completeCloseHandler handles POST /api/close/:id/complete.
func (s *Server) completeCloseHandler(c *echo.Context) error {
	closing, err := s.deps.MonthEnd.CompleteClose(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, closing)
}
