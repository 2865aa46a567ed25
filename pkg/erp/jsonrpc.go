package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultTimeout = 30 * time.Second
	maxRetries     = 3
)

// JSONRPCConfig holds connection settings for the Odoo-style JSON-RPC endpoint.
type JSONRPCConfig struct {
	URL      string // e.g. http://erp:8069
	Database string
	UserID   int64
	APIKey   string
	Timeout  time.Duration
}

// JSONRPCClient implements Client over the ERP's /jsonrpc endpoint.
// All model operations go through execute_kw on the "object" service.
type JSONRPCClient struct {
	cfg    JSONRPCConfig
	http   *http.Client
	nextID atomic.Int64
	logger *slog.Logger

	// newBackoff is swappable so tests run without real backoff delays.
	newBackoff func() backoff.BackOff
}

// NewJSONRPCClient creates a JSON-RPC ERP client.
func NewJSONRPCClient(cfg JSONRPCConfig) *JSONRPCClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &JSONRPCClient{
		cfg:        cfg,
		http:       &http.Client{Timeout: timeout},
		logger:     slog.Default().With("component", "erp-client"),
		newBackoff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int64     `json:"id"`
}

type rpcParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// executeKW performs one execute_kw call with bounded retry on retryable
// failures. The result is unmarshalled into out (may be nil).
func (c *JSONRPCClient) executeKW(ctx context.Context, op, model, method string, args []any, kwargs map[string]any, out any) error {
	call := func() error {
		return c.callOnce(ctx, op, model, method, args, kwargs, out)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(c.newBackoff(), maxRetries), ctx)

	return backoff.Retry(func() error {
		err := call()
		if err == nil {
			return nil
		}
		if IsRetryable(err) {
			c.logger.Warn("Retrying ERP call", "op", op, "model", model, "error", err)
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}

func (c *JSONRPCClient) callOnce(ctx context.Context, op, model, method string, args []any, kwargs map[string]any, out any) error {
	fullArgs := []any{c.cfg.Database, c.cfg.UserID, c.cfg.APIKey, model, method}
	fullArgs = append(fullArgs, args...)
	if kwargs != nil {
		fullArgs = append(fullArgs, kwargs)
	}

	reqBody := rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params:  rpcParams{Service: "object", Method: "execute_kw", Args: fullArgs},
		ID:      c.nextID.Add(1),
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return newPermanent(op, model, "marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL+"/jsonrpc", bytes.NewReader(payload))
	if err != nil {
		return newPermanent(op, model, "build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		// Deadline exceeded and transport failures are retryable per the
		// failure contract.
		return newRetryable(op, model, "transport failure", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newRetryable(op, model, "read response", err)
	}

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return newRetryable(op, model, fmt.Sprintf("status %d", resp.StatusCode), nil)
	case resp.StatusCode >= 400:
		return newPermanent(op, model, fmt.Sprintf("status %d", resp.StatusCode), nil)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return newPermanent(op, model, "malformed JSON-RPC response", err)
	}
	if rpcResp.Error != nil {
		return newPermanent(op, model, rpcResp.Error.Message, nil)
	}

	if out != nil && len(rpcResp.Result) > 0 {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return newPermanent(op, model, "unmarshal result", err)
		}
	}
	return nil
}

// Search implements Client.
func (c *JSONRPCClient) Search(ctx context.Context, model string, domain Domain, limit int) ([]int64, error) {
	kwargs := map[string]any{}
	if limit > 0 {
		kwargs["limit"] = limit
	}
	var ids []int64
	if err := c.executeKW(ctx, "search", model, "search", []any{[]any{domain.wire()}}, kwargs, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Read implements Client.
func (c *JSONRPCClient) Read(ctx context.Context, model string, id int64, fields []string) (Record, error) {
	kwargs := map[string]any{}
	if len(fields) > 0 {
		kwargs["fields"] = fields
	}
	var records []Record
	if err := c.executeKW(ctx, "read", model, "read", []any{[]any{[]int64{id}}}, kwargs, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, newPermanent("read", model, fmt.Sprintf("record %d not found", id), nil)
	}
	return records[0], nil
}

// SearchRead implements Client.
func (c *JSONRPCClient) SearchRead(ctx context.Context, model string, domain Domain, opts SearchOptions) ([]Record, error) {
	kwargs := map[string]any{}
	if len(opts.Fields) > 0 {
		kwargs["fields"] = opts.Fields
	}
	if opts.Limit > 0 {
		kwargs["limit"] = opts.Limit
	}
	if opts.Order != "" {
		kwargs["order"] = opts.Order
	}
	var records []Record
	if err := c.executeKW(ctx, "search_read", model, "search_read", []any{[]any{domain.wire()}}, kwargs, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SearchCount implements Client.
func (c *JSONRPCClient) SearchCount(ctx context.Context, model string, domain Domain) (int, error) {
	var count int
	if err := c.executeKW(ctx, "search_count", model, "search_count", []any{[]any{domain.wire()}}, nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// Create implements Client.
func (c *JSONRPCClient) Create(ctx context.Context, model string, values map[string]any) (int64, error) {
	var id int64
	if err := c.executeKW(ctx, "create", model, "create", []any{[]any{values}}, nil, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// Write implements Client.
func (c *JSONRPCClient) Write(ctx context.Context, model string, ids []int64, values map[string]any) error {
	return c.executeKW(ctx, "write", model, "write", []any{[]any{ids, values}}, nil, nil)
}

// ExecuteMethod implements Client.
func (c *JSONRPCClient) ExecuteMethod(ctx context.Context, model, method string, ids []int64, args ...any) (any, error) {
	callArgs := []any{ids}
	callArgs = append(callArgs, args...)
	var result any
	if err := c.executeKW(ctx, "execute_method", model, method, []any{callArgs}, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
