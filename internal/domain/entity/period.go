package entity

import (
	"fmt"
	"time"
)

// Period identifies one calendar month. It is the scoping unit of every
// aggregation: each derived figure is computed over exactly one period.
type Period struct {
	Year  int
	Month time.Month
}

// Key returns the canonical period key, "YYYY-MM" with a 1-based,
// zero-padded month. All per-period maps are keyed by this format.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// IsValid reports whether the period denotes a real calendar month.
func (p Period) IsValid() bool {
	return p.Year > 0 && p.Month >= time.January && p.Month <= time.December
}

// Start returns the first instant of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last instant of the period's final day in UTC.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Contains reports whether the instant falls inside the period. The
// comparison uses the instant's own calendar date, so a transaction dated
// January 31 belongs to January regardless of its clock time.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// Next returns the following calendar month, rolling over the year.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Previous returns the preceding calendar month, rolling over the year.
func (p Period) Previous() Period {
	if p.Month == time.January {
		return Period{Year: p.Year - 1, Month: time.December}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// ParsePeriodKey parses a "YYYY-MM" key into a Period. Legacy keys with an
// unpadded month ("2024-3") are accepted; re-serializing through Key yields
// the canonical form.
func ParsePeriodKey(key string) (Period, error) {
	var year, month int
	if _, err := fmt.Sscanf(key, "%d-%d", &year, &month); err != nil {
		return Period{}, fmt.Errorf("parse period key %q: %w", key, err)
	}

	period := Period{Year: year, Month: time.Month(month)}
	if !period.IsValid() {
		return Period{}, fmt.Errorf("period key %q out of range", key)
	}
	return period, nil
}
