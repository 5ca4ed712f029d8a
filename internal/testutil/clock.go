package testutil

import "time"

// FixedClock returns a clock function pinned to midnight UTC on the given
// date, for services that take a now func.
func FixedClock(year int, month time.Month, day int) func() time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

// FixedClockAt returns a clock function pinned to an arbitrary instant.
func FixedClockAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
