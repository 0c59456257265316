package domain

import (
	"fmt"
	"strings"
	"time"
)

// Period is a submission period: one calendar month in MMM-yyyy form,
// e.g. "APR-2025". Claims are batched and paid against periods, so the
// duplicate-detection cutoff arithmetic works in period space.
type Period struct {
	Year  int
	Month time.Month
}

var monthAbbrevs = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// ParsePeriod parses a MMM-yyyy submission period, case-insensitively.
func ParsePeriod(s string) (Period, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid submission period %q", s)
	}
	month, ok := monthAbbrevs[strings.ToUpper(parts[0])]
	if !ok {
		return Period{}, fmt.Errorf("invalid submission period month %q", s)
	}
	var year int
	if _, err := fmt.Sscanf(parts[1], "%d", &year); err != nil || year < 1000 || year > 9999 {
		return Period{}, fmt.Errorf("invalid submission period year %q", s)
	}
	return Period{Year: year, Month: month}, nil
}

// String renders the period back to MMM-yyyy form.
func (p Period) String() string {
	return fmt.Sprintf("%s-%04d", strings.ToUpper(p.Month.String()[:3]), p.Year)
}

// IsZero reports whether the period is unset.
func (p Period) IsZero() bool { return p.Year == 0 && p.Month == 0 }

// Before reports whether p is chronologically before other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// Equal reports whether two periods name the same month.
func (p Period) Equal(other Period) bool {
	return p.Year == other.Year && p.Month == other.Month
}

// AddMonths returns the period n months later (negative n goes back).
func (p Period) AddMonths(n int) Period {
	t := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return Period{Year: t.Year(), Month: t.Month()}
}

// Day returns the given calendar day within the period's month.
func (p Period) Day(day int) time.Time {
	return time.Date(p.Year, p.Month, day, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last calendar day of the period's month.
func (p Period) EndOfMonth() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1)
}

// LaterPeriod returns the chronologically later of two periods.
func LaterPeriod(a, b Period) Period {
	if a.Before(b) {
		return b
	}
	return a
}
