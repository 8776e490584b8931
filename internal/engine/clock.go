package engine

import "time"

// Clock supplies the current local time. The engine never reads the wall
// clock directly so tests can simulate day boundaries.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// DayKey formats t's local calendar date as the canonical YYYY-MM-DD
// day identifier.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// YesterdayKey returns the day identifier of the calendar day before t.
func YesterdayKey(t time.Time) string {
	return DayKey(t.AddDate(0, 0, -1))
}

// LastNDayKeys returns the day identifiers of the n calendar days ending at
// t's day, oldest first.
func LastNDayKeys(t time.Time, n int) []string {
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, DayKey(t.AddDate(0, 0, -i)))
	}
	return keys
}

// logTimestamp formats t for audit log entries.
func logTimestamp(t time.Time) string {
	return t.Format("02.01.2006 15:04:05")
}
