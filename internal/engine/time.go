package engine

import "time"

// ElapsedMinutes returns whole minutes between from and to, never negative.
func ElapsedMinutes(from, to time.Time) int {
	minutes := int(to.Sub(from) / time.Minute)
	if minutes < 0 {
		return 0
	}
	return minutes
}

// DateOnly truncates a timestamp to its calendar day in the timestamp's
// location. Log entries are keyed by this value.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dayKeyFormat orders lexically the way dates order chronologically.
const dayKeyFormat = "2006-01-02"

// SameDay compares calendar dates without regard to location, so a DATE
// column scanned in UTC still matches a locally parsed day.
func SameDay(a, b time.Time) bool {
	return a.Format(dayKeyFormat) == b.Format(dayKeyFormat)
}
