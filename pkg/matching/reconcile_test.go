package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactMatchScoresFull(t *testing.T) {
	line := BankLine{ID: 1, Ref: "INV/2026/0042", Amount: 1500.00, Partner: "Acme Corp"}
	candidates := []CandidateEntry{
		{ID: 41, Ref: "INV/2026/0041", AmountResidual: 900.00, Partner: "Globex"},
		{ID: 42, Ref: "INV/2026/0042", AmountResidual: 1500.00, Partner: "Acme Corp"},
	}

	suggestions := SuggestMatches([]BankLine{line}, candidates, nil)
	require.Len(t, suggestions, 1)
	assert.Equal(t, int64(42), suggestions[0].MatchedEntryID)
	assert.Equal(t, 1.0, suggestions[0].Confidence)
	assert.Equal(t, MatchExact, suggestions[0].MatchType)
}

func TestClassifyBoundaries(t *testing.T) {
	// 0.899 with fuzzy signals present → fuzzy; 0.900 → exact.
	assert.Equal(t, MatchFuzzy, classify(0.899, false, 0.35, 0.30))
	assert.Equal(t, MatchExact, classify(0.900, false, 0.35, 0.30))

	// Learned classification needs both the rule bonus and >= 0.50.
	assert.Equal(t, MatchLearned, classify(0.50, true, 0, 0))
	assert.Equal(t, MatchPartial, classify(0.49, true, 0, 0))

	// No signal over threshold, total below partial → none.
	assert.Equal(t, MatchNone, classify(0.29, false, 0, 0))
	assert.Equal(t, MatchPartial, classify(0.30, false, 0, 0))
}

func TestAmountTiers(t *testing.T) {
	exact, isExact := scoreAmount(1500.00, 1500.004)
	assert.True(t, isExact)
	assert.Equal(t, 0.35, exact)

	absTol, _ := scoreAmount(1500.00, 1500.40)
	assert.Equal(t, 0.30, absTol)

	relTight, _ := scoreAmount(1000.00, 1015.00) // 1.5% off
	assert.Equal(t, 0.28, relTight)

	relFar, _ := scoreAmount(1000.00, 1060.00) // 6% off: decays linearly
	assert.Greater(t, relFar, 0.0)
	assert.Less(t, relFar, 0.28)

	none, _ := scoreAmount(1000.00, 1200.00) // 16.7% off
	assert.Zero(t, none)
}

func TestPartnerSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"Acme Corp", "ACME Corporation"},
		{"Globex International", "Globex Intl"},
		{"Wayne Enterprises", "Stark Industries"},
	}
	for _, p := range pairs {
		assert.Equal(t, scorePartner(p[0], p[1]), scorePartner(p[1], p[0]),
			"partner scoring must be symmetric for %q / %q", p[0], p[1])
	}
}

func TestReferenceContainment(t *testing.T) {
	// Bank refs often embed the invoice number in a longer memo.
	score, exact := scoreReference("PAYMENT INV/2026/0042 THANK YOU", "INV/2026/0042")
	assert.False(t, exact)
	assert.Greater(t, score, 0.0)
}

func TestLearnedRuleBonus(t *testing.T) {
	line := BankLine{ID: 1, Ref: "WIRE ACME 0042", Amount: 1500.00, Partner: "Acme Corp"}
	entry := CandidateEntry{ID: 9, Ref: "WIRE ACME 0042", AmountResidual: 1900.00, Partner: "Acme Corp"}

	rule := NewLearnedRule(line, entry, "2026-08-01T00:00:00Z")
	assert.Equal(t, "wire acme 0042", rule.BankRefPattern)

	with := Score(line, entry, []LearnedRule{rule})
	without := Score(line, entry, nil)
	assert.True(t, with.RuleApplied)
	assert.InDelta(t, weightRule, with.Confidence-without.Confidence, 1e-9)
}

func TestGreedyConsumption(t *testing.T) {
	lines := []BankLine{
		{ID: 1, Ref: "INV/2026/0100", Amount: 100.00, Partner: "Acme Corp"},
		{ID: 2, Ref: "INV/2026/0100", Amount: 100.00, Partner: "Acme Corp"},
	}
	candidates := []CandidateEntry{
		{ID: 10, Ref: "INV/2026/0100", AmountResidual: 100.00, Partner: "Acme Corp"},
	}

	suggestions := SuggestMatches(lines, candidates, nil)
	// The single candidate is consumed by the first line.
	require.Len(t, suggestions, 1)
	assert.Equal(t, int64(1), suggestions[0].BankLineID)
	assert.Equal(t, int64(10), suggestions[0].MatchedEntryID)
}

func TestCommutativeUpToGreedyConsumption(t *testing.T) {
	line := BankLine{ID: 1, Ref: "INV/2026/0042", Amount: 1500.00, Partner: "Acme Corp"}
	a := CandidateEntry{ID: 5, Ref: "INV/2026/0042", AmountResidual: 1500.00, Partner: "Acme Corp"}
	b := CandidateEntry{ID: 6, Ref: "REF/XYZ", AmountResidual: 20.00, Partner: "Globex"}

	fwd := SuggestMatches([]BankLine{line}, []CandidateEntry{a, b}, nil)
	rev := SuggestMatches([]BankLine{line}, []CandidateEntry{b, a}, nil)
	require.Len(t, fwd, 1)
	require.Len(t, rev, 1)
	assert.Equal(t, fwd[0].MatchedEntryID, rev[0].MatchedEntryID)
	assert.Equal(t, fwd[0].Confidence, rev[0].Confidence)
}
