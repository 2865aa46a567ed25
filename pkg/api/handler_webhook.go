package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/steward-ai/steward/pkg/automation"
	"github.com/steward-ai/steward/pkg/services"
)

// WebhookRequest is the ERP change notification payload.
type WebhookRequest struct {
	EventType string                 `json:"event_type"`
	Model     string                 `json:"model"`
	RecordID  int64                  `json:"record_id"`
	Values    map[string]interface{} `json:"values"`
	OldValues map[string]interface{} `json:"old_values"`
	Timestamp string                 `json:"timestamp"`
	UserID    int64                  `json:"user_id"`
}

// WebhookResponse acknowledges an accepted event. AuditLogID is set when an
// automation handled the event synchronously; RunID when an agent run was
// enqueued.
type WebhookResponse struct {
	Accepted   bool     `json:"accepted"`
	AuditLogID string   `json:"audit_log_id,omitempty"`
	RunID      string   `json:"run_id,omitempty"`
	RunIDs     []string `json:"run_ids,omitempty"`
}

// webhookHandler handles POST /webhooks/erp.
//
// The X-Webhook-Signature header must carry the hex HMAC-SHA256 of the raw
// request body, keyed with the shared webhook secret. Signature failures are
// 401, replays within the dedup window 409, malformed payloads 422.
func (s *Server) webhookHandler(c *echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apiError(c, http.StatusBadRequest, "bad_request", "unreadable request body")
	}

	if !s.verifySignature(body, c.Request().Header.Get("X-Webhook-Signature")) {
		return apiError(c, http.StatusUnauthorized, "unauthorized", "invalid webhook signature")
	}

	var req WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apiError(c, http.StatusUnprocessableEntity, "malformed_payload", err.Error())
	}
	if req.EventType == "" || req.Model == "" || req.RecordID == 0 {
		return apiError(c, http.StatusUnprocessableEntity, "malformed_payload",
			"event_type, model and record_id are required")
	}

	outcome, err := s.deps.Orchestrator.Ingest(c.Request().Context(), automation.Event{
		Type:      req.EventType,
		Model:     req.Model,
		RecordID:  req.RecordID,
		Values:    req.Values,
		OldValues: req.OldValues,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return apiError(c, http.StatusConflict, "duplicate", "event already received")
		}
		return mapServiceError(c, err)
	}

	resp := &WebhookResponse{Accepted: true}
	for _, auto := range outcome.Automations {
		if auto.AuditLog != nil {
			resp.AuditLogID = auto.AuditLog.ID
			break
		}
	}
	if len(outcome.RunIDs) > 0 {
		resp.RunID = outcome.RunIDs[0]
		resp.RunIDs = outcome.RunIDs
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) verifySignature(body []byte, signature string) bool {
	if s.webhookSecret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(want), []byte(signature))
}
