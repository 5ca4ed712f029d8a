package domain

import (
	"fmt"
	"time"
)

// Date represents a calendar date (year, month, day) in the proleptic
// Gregorian calendar, without time of day or timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date from components, rejecting combinations that do not
// name a real calendar date (e.g. February 30).
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 1/2), so a changed
	// component means the input was not a real date.
	y, m, d := t.Date()
	if y != year || m != month || d != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses a date in strict YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// FromTime extracts the calendar date from a time.Time.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders the date in YYYY-MM-DD form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is later than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// Equal reports whether d and other name the same calendar date.
func (d Date) Equal(other Date) bool {
	return d == other
}

// AddDays returns the date n days after d (before, for negative n).
// Carry across month, year, and leap-day boundaries is handled by the
// standard library's calendar arithmetic.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// AddMonths returns the date n months after d. A day-of-month past the end
// of the target month normalizes forward per time.AddDate (Jan 31 + 1 month
// is Mar 2 or 3).
func (d Date) AddMonths(n int) Date {
	return FromTime(d.Time().AddDate(0, n, 0))
}
