package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// ScenarioRequest evaluates a what-if adjustment against the latest forecast.
type ScenarioRequest struct {
	Name        string                 `json:"name"`
	Adjustments map[string]interface{} `json:"adjustments"`
}

// cashForecastHandler handles GET /api/forecast/cashflow. A horizon query
// parameter recomputes the projection; without one the latest stored
// forecast is returned.
func (s *Server) cashForecastHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	if v := c.QueryParam("horizon"); v != "" {
		horizon, err := strconv.Atoi(v)
		if err != nil || horizon < 1 {
			return apiError(c, http.StatusBadRequest, "validation_error", "horizon must be a positive integer")
		}
		forecast, err := s.deps.Cashflow.Forecast(ctx, horizon)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(http.StatusOK, forecast)
	}

	forecast, err := s.deps.Cashflow.Latest(ctx)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, forecast)
}

// forecastScenarioHandler handles POST /api/forecast/scenario.
func (s *Server) forecastScenarioHandler(c *echo.Context) error {
	var req ScenarioRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}
	if req.Name == "" {
		return apiError(c, http.StatusBadRequest, "validation_error", "name is required")
	}

	scenario, impact, err := s.deps.Cashflow.Scenario(c.Request().Context(), req.Name, req.Adjustments)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"scenario": scenario,
		"impact":   impact,
	})
}

// forecastAccuracyHandler handles GET /api/forecast/accuracy.
func (s *Server) forecastAccuracyHandler(c *echo.Context) error {
	logs, err := s.deps.Cashflow.Accuracy(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}
