package automations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steward-ai/steward/ent/closingstep"
	"github.com/steward-ai/steward/ent/monthendclosing"
	"github.com/steward-ai/steward/pkg/services"
	"github.com/steward-ai/steward/test/util"
)

func TestReadinessScore(t *testing.T) {
	tests := []struct {
		name string
		in   ReadinessInput
		want float64
	}{
		{
			name: "clean close",
			in:   ReadinessInput{},
			want: 100,
		},
		{
			name: "mixed issues",
			in: ReadinessInput{
				TotalIssues:   10,
				PendingReview: 8,
				Anomalies:     1,
				Critical:      1,
				High:          2,
			},
			want: 39.0,
		},
		{
			name: "floors at zero",
			in: ReadinessInput{
				TotalIssues: 12,
				Critical:    6,
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ReadinessScore(tt.in), 0.001)
		})
	}
}

func TestStepSeverity(t *testing.T) {
	assert.Equal(t, SeverityCritical, StepSeverity("unposted_entries"))
	assert.Equal(t, SeverityHigh, StepSeverity("bank_reconciliation"))
	assert.Equal(t, SeverityLow, StepSeverity("reporting"))
	assert.Equal(t, SeverityMedium, StepSeverity("something_custom"))
}

func TestStartClose_CreatesChecklist(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	monthEnd := NewMonthEnd(client, newFakeERP())
	ctx := context.Background()

	closing, err := monthEnd.StartClose(ctx, "2026-07")
	require.NoError(t, err)
	assert.Equal(t, "2026-07", closing.Period)
	assert.Equal(t, monthendclosing.StatusInProgress, closing.Status)

	status, err := monthEnd.Status(ctx, "2026-07")
	require.NoError(t, err)
	require.Len(t, status.Edges.Steps, len(closeChecklist))
	assert.Equal(t, "unposted_entries", status.Edges.Steps[0].StepName)
	assert.Equal(t, "reporting", status.Edges.Steps[len(closeChecklist)-1].StepName)

	// One cycle per period.
	_, err = monthEnd.StartClose(ctx, "2026-07")
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestStartClose_BadPeriod(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	monthEnd := NewMonthEnd(client, newFakeERP())

	var verr *services.ValidationError
	_, err := monthEnd.StartClose(context.Background(), "July 2026")
	require.ErrorAs(t, err, &verr)
}

func TestCompleteStep_AdvancesReadiness(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	monthEnd := NewMonthEnd(client, newFakeERP())
	ctx := context.Background()

	closing, err := monthEnd.StartClose(ctx, "2026-06")
	require.NoError(t, err)

	first, err := monthEnd.CompleteStep(ctx, closing.ID, "unposted_entries")
	require.NoError(t, err)
	assert.Equal(t, monthendclosing.StatusInProgress, first.Status)

	for _, step := range closeChecklist[1:] {
		_, err := monthEnd.CompleteStep(ctx, closing.ID, step.Name)
		require.NoError(t, err)
	}

	status, err := monthEnd.Status(ctx, "2026-06")
	require.NoError(t, err)
	assert.Equal(t, monthendclosing.StatusReview, status.Status)
	assert.InDelta(t, 100, status.ReadinessScore, 0.001)

	completed, err := monthEnd.CompleteClose(ctx, closing.ID)
	require.NoError(t, err)
	assert.Equal(t, monthendclosing.StatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)
}

func TestCompleteStep_Unknown(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	monthEnd := NewMonthEnd(client, newFakeERP())
	ctx := context.Background()

	closing, err := monthEnd.StartClose(ctx, "2026-05")
	require.NoError(t, err)

	_, err = monthEnd.CompleteStep(ctx, closing.ID, "no_such_step")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestBlockStep_LowersReadiness(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	monthEnd := NewMonthEnd(client, newFakeERP())
	ctx := context.Background()

	closing, err := monthEnd.StartClose(ctx, "2026-04")
	require.NoError(t, err)

	require.NoError(t, monthEnd.BlockStep(ctx, closing.ID, "unposted_entries", "ledger out of balance"))

	status, err := monthEnd.Status(ctx, "2026-04")
	require.NoError(t, err)
	// 7 issues total: 1 blocked critical (-20) plus 6 pending of 7 (-20*6/7).
	assert.InDelta(t, 100-20-20.0*6/7, status.ReadinessScore, 0.001)

	for _, s := range status.Edges.Steps {
		if s.StepName == "unposted_entries" {
			assert.Equal(t, closingstep.StatusBlocked, s.Status)
			require.NotNil(t, s.BlockedReason)
			assert.Equal(t, "ledger out of balance", *s.BlockedReason)
		}
	}
}

func TestCompleteClose_RequiresReview(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	monthEnd := NewMonthEnd(client, newFakeERP())
	ctx := context.Background()

	closing, err := monthEnd.StartClose(ctx, "2026-03")
	require.NoError(t, err)

	_, err = monthEnd.CompleteClose(ctx, closing.ID)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	_, err = monthEnd.CompleteClose(ctx, "missing-id")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
