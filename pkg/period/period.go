// Package period is the single source of truth for accounting-period
// (YYYY-MM) arithmetic.
package period

import (
	"fmt"
	"time"
)

// Period is a calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// Parse parses a "YYYY-MM" string.
func Parse(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: expected YYYY-MM", s)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Of returns the period containing t.
func Of(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Current returns the period containing now.
func Current() Period {
	return Of(time.Now().UTC())
}

// String formats the period as "YYYY-MM".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start returns midnight UTC on the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last instant before the next month starts.
// Leap years fall out of time.Date normalisation.
func (p Period) End() time.Time {
	return p.Next().Start().Add(-time.Nanosecond)
}

// Days returns the number of days in the month.
func (p Period) Days() int {
	return p.Next().Start().AddDate(0, 0, -1).Day()
}

// Next returns the following month.
func (p Period) Next() Period {
	return Of(time.Date(p.Year, p.Month+1, 1, 0, 0, 0, 0, time.UTC))
}

// Previous returns the preceding month.
func (p Period) Previous() Period {
	return Of(time.Date(p.Year, p.Month-1, 1, 0, 0, 0, 0, time.UTC))
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	u := t.UTC()
	return u.Year() == p.Year && u.Month() == p.Month
}

// DayBucket truncates t to its UTC calendar day. Scheduled scans use it as
// the idempotency key component for "once per day" semantics.
func DayBucket(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
