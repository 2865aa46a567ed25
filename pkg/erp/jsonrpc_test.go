package erp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *JSONRPCClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewJSONRPCClient(JSONRPCConfig{
		URL:      srv.URL,
		Database: "test",
		UserID:   2,
		APIKey:   "key",
	})
	client.newBackoff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return client
}

func rpcResult(t *testing.T, w http.ResponseWriter, result any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"result":  result,
	}))
}

func TestSearchRead(t *testing.T) {
	var captured rpcRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		rpcResult(t, w, []map[string]any{
			{"id": 42, "ref": "INV/2026/0042", "amount_residual": 1500.0},
		})
	})

	domain := NewDomain(Condition("state", "=", "posted")).And("amount_residual", ">", 0)
	records, err := client.SearchRead(context.Background(), "account.move", domain, SearchOptions{
		Fields: []string{"ref", "amount_residual"},
		Limit:  10,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "INV/2026/0042", Str(records[0]["ref"]))
	assert.Equal(t, int64(42), Int(records[0]["id"]))

	// execute_kw envelope: [db, uid, key, model, method, args..., kwargs]
	assert.Equal(t, "object", captured.Params.Service)
	assert.Equal(t, "execute_kw", captured.Params.Method)
	assert.Equal(t, "test", captured.Params.Args[0])
	assert.Equal(t, "account.move", captured.Params.Args[3])
	assert.Equal(t, "search_read", captured.Params.Args[4])
}

func TestRetryableThenSuccess(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		rpcResult(t, w, 7)
	})

	count, err := client.SearchCount(context.Background(), "res.partner", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.Equal(t, int32(2), calls.Load())
}

func TestPermanentErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Search(context.Background(), "res.partner", nil, 0)
	require.Error(t, err)
	assert.False(t, IsRetryable(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestRPCErrorIsPermanent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"error":   map[string]any{"code": 200, "message": "Odoo Server Error"},
		}))
	})

	_, err := client.Create(context.Background(), "res.partner", map[string]any{"name": "Acme"})
	require.Error(t, err)
	assert.False(t, IsRetryable(err))
	assert.Contains(t, err.Error(), "Odoo Server Error")
}

func TestRetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.Write(context.Background(), "account.move", []int64{1}, map[string]any{"state": "posted"})
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	// Initial attempt plus up to 3 retries.
	assert.Equal(t, int32(4), calls.Load())
}

func TestMany2One(t *testing.T) {
	id, name := Many2One([]any{float64(42), "Acme Corp"})
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "Acme Corp", name)

	// Unset many-to-one arrives as false.
	id, name = Many2One(false)
	assert.Zero(t, id)
	assert.Empty(t, name)
}

func TestDomainWire(t *testing.T) {
	d := NewDomain(Condition("partner_id", "=", 7)).
		Or(Condition("state", "=", "draft"), Condition("state", "=", "posted"))
	wire := d.wire()
	require.Len(t, wire, 4)
	assert.Equal(t, "|", wire[1])

	var empty Domain
	assert.Equal(t, []any{}, empty.wire())
}
