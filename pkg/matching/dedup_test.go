package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partnerConfig() DedupConfig {
	return DedupConfig{
		EntityType: "res.partner",
		Fields: []MatchField{
			{Name: "name", Kind: FieldName, Weight: 0.4},
			{Name: "email", Kind: FieldEmail, Weight: 0.3},
			{Name: "phone", Kind: FieldPhone, Weight: 0.2},
			{Name: "vat", Kind: FieldIdentifier, Weight: 0.1},
		},
	}
}

func TestStrongSignalOverride(t *testing.T) {
	a := DedupRecord{ID: 1, Fields: map[string]string{"name": "Acme Corp", "email": "info@acme.com"}}
	b := DedupRecord{ID: 2, Fields: map[string]string{"name": "ACME Corporation Ltd", "email": "info@acme.com"}}

	ps := ComparePair(partnerConfig(), a, b)
	assert.Equal(t, 1.0, ps.Score)
	assert.True(t, ps.StrongSignal)
	assert.Contains(t, ps.MatchedFields, "email")

	clusters := Cluster(partnerConfig(), []DedupRecord{a, b})
	require.Len(t, clusters, 1)
	assert.Equal(t, []int64{1, 2}, clusters[0].RecordIDs)
	assert.Equal(t, 1.0, clusters[0].Score)
	assert.Contains(t, clusters[0].MatchedFields, "email")
}

func TestWeightNormalisedComposite(t *testing.T) {
	// Only the name field clears its threshold; composite is normalised to
	// that field's weight, so the score equals the name similarity.
	a := DedupRecord{ID: 1, Fields: map[string]string{"name": "Acme Corporation", "email": "sales@acme.com"}}
	b := DedupRecord{ID: 2, Fields: map[string]string{"name": "Acme Corporation", "email": "billing@globex.com"}}

	ps := ComparePair(partnerConfig(), a, b)
	assert.False(t, ps.StrongSignal)
	assert.InDelta(t, 1.0, ps.Score, 1e-9)
	assert.Equal(t, []string{"name"}, ps.MatchedFields)
}

func TestBelowThresholdFieldsExcluded(t *testing.T) {
	a := DedupRecord{ID: 1, Fields: map[string]string{"name": "Acme Corp", "vat": "BE0123456789"}}
	b := DedupRecord{ID: 2, Fields: map[string]string{"name": "Umbrella Holdings", "vat": "BE0999999999"}}

	ps := ComparePair(partnerConfig(), a, b)
	assert.Zero(t, ps.Score)
	assert.Empty(t, ps.MatchedFields)
}

func TestClusterIdempotent(t *testing.T) {
	records := []DedupRecord{
		{ID: 3, Fields: map[string]string{"name": "Acme Corp", "email": "info@acme.com", "phone": "+32 2 555 0101"}},
		{ID: 1, Fields: map[string]string{"name": "ACME Corporation", "email": "info@acme.com"}},
		{ID: 7, Fields: map[string]string{"name": "Globex", "email": "hello@globex.com"}},
		{ID: 5, Fields: map[string]string{"name": "Initech LLC", "phone": "02 555 0199"}},
	}

	first := Cluster(partnerConfig(), records)
	second := Cluster(partnerConfig(), records)
	assert.Equal(t, first, second)

	require.Len(t, first, 1)
	assert.Equal(t, []int64{1, 3}, first[0].RecordIDs)
	// Record 3 has more filled fields and wins the master nomination.
	assert.Equal(t, int64(3), first[0].MasterID)
}

func TestMasterTieBreaksToLowestID(t *testing.T) {
	records := []DedupRecord{
		{ID: 9, Fields: map[string]string{"name": "Acme", "email": "info@acme.com"}},
		{ID: 4, Fields: map[string]string{"name": "Acme", "email": "info@acme.com"}},
	}
	clusters := Cluster(partnerConfig(), records)
	require.Len(t, clusters, 1)
	assert.Equal(t, int64(4), clusters[0].MasterID)
}

func TestTransitiveClustering(t *testing.T) {
	// A~B by email, B~C by phone: all three land in one group.
	records := []DedupRecord{
		{ID: 1, Fields: map[string]string{"name": "Acme", "email": "info@acme.com"}},
		{ID: 2, Fields: map[string]string{"name": "Acme Corp", "email": "info@acme.com", "phone": "+32 2 555 0101"}},
		{ID: 3, Fields: map[string]string{"name": "Totally Different", "phone": "0032 2 555 0101"}},
	}
	clusters := Cluster(partnerConfig(), records)
	require.Len(t, clusters, 1)
	assert.Equal(t, []int64{1, 2, 3}, clusters[0].RecordIDs)
}

func TestEmailSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, emailSimilarity("info@acme.com", "info@acme.com"))

	// Same domain, different local part: 0.5 + scaled local similarity.
	s := emailSimilarity("info@acme.com", "sales@acme.com")
	assert.GreaterOrEqual(t, s, 0.5)
	assert.Less(t, s, 1.0)

	// Different domains fall back to plain ratio.
	assert.Less(t, emailSimilarity("info@acme.com", "info@globex.com"), 0.9)
}

func TestPhoneSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, phoneSimilarity("025550101", "02 555 0101"))
	assert.Equal(t, 0.95, phoneSimilarity("+3225550101", "25550101"))
	assert.Equal(t, 0.90, phoneSimilarity("991234567", "881234567"))
	assert.Zero(t, phoneSimilarity("123", "456"))
	assert.Zero(t, phoneSimilarity("no digits", "123"))
}
