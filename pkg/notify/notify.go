// Package notify delivers operator notifications over Slack incoming
// webhooks. Delivery outcomes distinguish a disabled channel from a
// delivery failure so callers can tell "nobody listens" from "it broke".
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Status classifies a delivery attempt.
type Status string

const (
	// StatusDelivered: the channel accepted the message.
	StatusDelivered Status = "delivered"
	// StatusChannelDisabled: no webhook is configured; nothing was sent.
	StatusChannelDisabled Status = "channel_disabled"
	// StatusFailed: delivery was attempted and failed.
	StatusFailed Status = "failed"
)

// Outcome is the result of one delivery attempt.
type Outcome struct {
	Status Status
	Err    error
}

// Delivered reports whether the message reached the channel.
func (o Outcome) Delivered() bool { return o.Status == StatusDelivered }

// Message is one notification. Fields render as a Slack attachment-style
// key/value block under the text.
type Message struct {
	Title  string
	Text   string
	Fields map[string]string
}

// Service posts notifications to a Slack incoming webhook. A Service with
// an empty webhook URL is valid and reports every send as channel-disabled;
// callers never need a nil check.
type Service struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewService creates a notification service. webhookURL may be empty
// (channel disabled).
func NewService(webhookURL string) *Service {
	return &Service{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.With("component", "notify"),
	}
}

// Send delivers one message.
func (s *Service) Send(ctx context.Context, msg Message) Outcome {
	if s == nil || s.webhookURL == "" {
		return Outcome{Status: StatusChannelDisabled}
	}

	payload, err := json.Marshal(slackPayload(msg))
	if err != nil {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("encoding notification: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("building notification request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Notification delivery failed", "title", msg.Title, "error", err)
		return Outcome{Status: StatusFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(body))
		s.logger.Warn("Notification delivery failed", "title", msg.Title, "error", err)
		return Outcome{Status: StatusFailed, Err: err}
	}

	return Outcome{Status: StatusDelivered}
}

// slackPayload renders the message in Slack block kit form.
func slackPayload(msg Message) map[string]interface{} {
	blocks := []map[string]interface{}{
		{
			"type": "section",
			"text": map[string]interface{}{
				"type": "mrkdwn",
				"text": fmt.Sprintf("*%s*\n%s", msg.Title, msg.Text),
			},
		},
	}
	if len(msg.Fields) > 0 {
		fields := make([]map[string]interface{}, 0, len(msg.Fields))
		for k, v := range msg.Fields {
			fields = append(fields, map[string]interface{}{
				"type": "mrkdwn",
				"text": fmt.Sprintf("*%s:* %s", k, v),
			})
		}
		blocks = append(blocks, map[string]interface{}{
			"type":   "section",
			"fields": fields,
		})
	}
	return map[string]interface{}{
		"text":   msg.Title,
		"blocks": blocks,
	}
}
