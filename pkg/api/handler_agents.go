package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-ai/steward/pkg/services"
)

// StartRunRequest enqueues an agent run.
type StartRunRequest struct {
	AgentType    string                 `json:"agent_type"`
	InitialState map[string]interface{} `json:"initial_state"`
}

// ResumeRunRequest delivers the external event a suspended run waits on.
type ResumeRunRequest struct {
	EventData map[string]interface{} `json:"event_data"`
}

// startAgentRunHandler handles POST /api/agents/run. The run is queued as
// pending; a pool worker picks it up.
func (s *Server) startAgentRunHandler(c *echo.Context) error {
	var req StartRunRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}
	if !s.deps.Agents.Has(req.AgentType) {
		return apiError(c, http.StatusBadRequest, "validation_error",
			fmt.Sprintf("unknown agent_type %q, expected one of: %s",
				req.AgentType, strings.Join(s.deps.Agents.Names(), ", ")))
	}

	run, err := s.deps.Runs.CreateRun(c.Request().Context(), services.CreateRunInput{
		AgentType:    req.AgentType,
		TriggerType:  "api",
		InitialState: req.InitialState,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, run)
}

// listAgentRunsHandler handles GET /api/agents/runs.
func (s *Server) listAgentRunsHandler(c *echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	runs, err := s.deps.Runs.ListRuns(c.Request().Context(), services.RunFilter{
		AgentType: c.QueryParam("agent_type"),
		Status:    c.QueryParam("status"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, runs)
}

// getAgentRunHandler handles GET /api/agents/runs/:id. Steps are included.
func (s *Server) getAgentRunHandler(c *echo.Context) error {
	run, err := s.deps.Runs.GetRunDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, run)
}

// resumeAgentRunHandler handles POST /api/agents/runs/:id/resume. The run
// returns to the queue with the event data merged into its frozen state.
func (s *Server) resumeAgentRunHandler(c *echo.Context) error {
	var req ResumeRunRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", err.Error())
	}

	run, err := s.deps.Runs.Resume(c.Request().Context(), c.Param("id"), req.EventData)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, run)
}

// cancelAgentRunHandler handles POST /api/agents/runs/:id/cancel.
func (s *Server) cancelAgentRunHandler(c *echo.Context) error {
	run, err := s.deps.Runs.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(c, err)
	}
	// Interrupt the in-flight execution if a local worker holds it.
	if s.deps.WorkerPool != nil {
		s.deps.WorkerPool.CancelRun(run.ID)
	}
	return c.JSON(http.StatusOK, run)
}
