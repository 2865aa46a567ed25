package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/steward-ai/steward/pkg/config"
	pb "github.com/steward-ai/steward/proto"
)

// GRPCClient talks to the model side-car over gRPC.
type GRPCClient struct {
	conn    *grpc.ClientConn
	client  pb.LLMServiceClient
	model   string
	timeout time.Duration
	retries int
}

// NewGRPCClient dials the side-car. The connection is lazy; the first
// Complete call establishes it.
func NewGRPCClient(cfg *config.LLMConfig) (*GRPCClient, error) {
	conn, err := grpc.NewClient(cfg.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service: %w", err)
	}

	slog.Info("LLM client configured", "address", cfg.Address, "model", cfg.Model)

	return &GRPCClient{
		conn:    conn,
		client:  pb.NewLLMServiceClient(conn),
		model:   cfg.Model,
		timeout: cfg.RequestTimeout,
		retries: cfg.MaxRetries,
	}, nil
}

// Close closes the gRPC connection
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Complete sends the request and returns the structured completion.
// Transient transport errors (Unavailable, DeadlineExceeded) are retried up
// to the configured count with a short linear backoff.
func (c *GRPCClient) Complete(ctx context.Context, req Request) (*Completion, error) {
	pbReq, err := c.toProto(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			slog.Warn("Retrying LLM request",
				"request_id", req.RequestID, "attempt", attempt, "error", lastErr)
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.Complete(callCtx, pbReq)
		cancel()
		if err == nil {
			return fromProto(resp)
		}

		lastErr = err
		if !isTransient(err) {
			break
		}
	}

	return nil, fmt.Errorf("LLM request %s failed: %w", req.RequestID, lastErr)
}

func isTransient(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	}
	return false
}

func (c *GRPCClient) toProto(req Request) (*pb.CompletionRequest, error) {
	messages := make([]*pb.Message, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, &pb.Message{
			Role:    pb.Message_ROLE_SYSTEM,
			Content: req.System,
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, &pb.Message{
			Role:       toProtoRole(m.Role),
			Content:    m.Content,
			ToolCallId: m.ToolCallID,
		})
	}

	tools := make([]*pb.ToolDefinition, len(req.Tools))
	for i, t := range req.Tools {
		schema, err := json.Marshal(t.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal schema for tool %s: %w", t.Name, err)
		}
		tools[i] = &pb.ToolDefinition{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: string(schema),
		}
	}

	return &pb.CompletionRequest{
		RequestId:   req.RequestID,
		Model:       c.model,
		Messages:    messages,
		Tools:       tools,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}, nil
}

func toProtoRole(r Role) pb.Message_Role {
	switch r {
	case RoleSystem:
		return pb.Message_ROLE_SYSTEM
	case RoleAssistant:
		return pb.Message_ROLE_ASSISTANT
	case RoleTool:
		return pb.Message_ROLE_TOOL
	default:
		return pb.Message_ROLE_USER
	}
}

func fromProto(resp *pb.CompletionResponse) (*Completion, error) {
	calls := make([]ToolCall, len(resp.ToolCalls))
	for i, tc := range resp.ToolCalls {
		var input map[string]interface{}
		if tc.Input != "" {
			if err := json.Unmarshal([]byte(tc.Input), &input); err != nil {
				return nil, fmt.Errorf("tool call %s has malformed input: %w", tc.Name, err)
			}
		}
		calls[i] = ToolCall{ID: tc.Id, Name: tc.Name, Input: input}
	}

	return &Completion{
		Text:       resp.Text,
		ToolCalls:  calls,
		TokensIn:   int(resp.TokensIn),
		TokensOut:  int(resp.TokensOut),
		StopReason: StopReason(resp.StopReason),
	}, nil
}
