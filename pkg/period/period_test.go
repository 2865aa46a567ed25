package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("2026-02")
	require.NoError(t, err)
	assert.Equal(t, 2026, p.Year)
	assert.Equal(t, time.February, p.Month)
	assert.Equal(t, "2026-02", p.String())

	_, err = Parse("2026-13")
	assert.Error(t, err)
	_, err = Parse("202602")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
}

func TestBoundaries(t *testing.T) {
	p, err := Parse("2026-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), p.Next().Start())
	assert.True(t, p.End().Before(p.Next().Start()))
	assert.Equal(t, 31, p.Days())
}

func TestLeapYear(t *testing.T) {
	leap, err := Parse("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 29, leap.Days())
	assert.Equal(t, 29, leap.End().Day())

	nonLeap, err := Parse("2026-02")
	require.NoError(t, err)
	assert.Equal(t, 28, nonLeap.Days())

	// Century rule: 2000 is a leap year, 2100 is not.
	y2000, _ := Parse("2000-02")
	assert.Equal(t, 29, y2000.Days())
	y2100, _ := Parse("2100-02")
	assert.Equal(t, 28, y2100.Days())
}

func TestNextPrevious(t *testing.T) {
	dec, _ := Parse("2025-12")
	assert.Equal(t, "2026-01", dec.Next().String())

	jan, _ := Parse("2026-01")
	assert.Equal(t, "2025-12", jan.Previous().String())
}

func TestContains(t *testing.T) {
	p, _ := Parse("2026-08")
	assert.True(t, p.Contains(time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDayBucket(t *testing.T) {
	ts := time.Date(2026, 8, 24, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), DayBucket(ts))
	// Two timestamps on the same day share a bucket.
	assert.Equal(t, DayBucket(ts), DayBucket(ts.Add(-23*time.Hour)))
}
