package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent"
	"github.com/steward-ai/steward/ent/creditscore"
	"github.com/steward-ai/steward/pkg/automations"
)

func seedScore(t *testing.T, client *ent.Client, customerID int64, score, limit float64) {
	t.Helper()
	_, err := client.CreditScore.Create().
		SetID(uuid.NewString()).
		SetCustomerID(customerID).
		SetScore(score).
		SetRiskTier(creditscore.RiskTierLow).
		SetCreditLimit(limit).
		Save(context.Background())
	require.NoError(t, err)
}

func TestCreditGet(t *testing.T) {
	s, client := newTestServer(t)
	seedScore(t, client, 501, 82, 50_000)

	rec := doJSON(s, http.MethodGet, "/api/credit/501", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var score ent.CreditScore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
	assert.Equal(t, int64(501), score.CustomerID)
	assert.Equal(t, 82.0, score.Score)
}

func TestCreditGet_UnknownCustomer(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(s, http.MethodGet, "/api/credit/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(s, http.MethodGet, "/api/credit/not-a-number", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreditCheck(t *testing.T) {
	s, client := newTestServer(t)
	seedScore(t, client, 502, 70, 10_000)

	rec := doJSON(s, http.MethodPost, "/api/credit/check",
		`{"customer_id":502,"order_amount":2500}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var check automations.CreditCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &check))
	assert.Equal(t, int64(502), check.CustomerID)
	assert.True(t, check.Allowed)
}

func TestCreditHoldAndRelease(t *testing.T) {
	s, client := newTestServer(t)
	seedScore(t, client, 503, 30, 5_000)

	rec := doJSON(s, http.MethodPost, "/api/credit/503/hold", `{"reason":"chronic late payment"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	score, err := client.CreditScore.Query().
		Where(creditscore.CustomerID(503)).
		Only(context.Background())
	require.NoError(t, err)
	assert.True(t, score.HoldActive)

	rec = doJSON(s, http.MethodPost, "/api/credit/503/release", "")
	require.Equal(t, http.StatusOK, rec.Code)

	score, err = client.CreditScore.Query().
		Where(creditscore.CustomerID(503)).
		Only(context.Background())
	require.NoError(t, err)
	assert.False(t, score.HoldActive)
}
