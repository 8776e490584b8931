package engine

import "time"

// rollover normalizes the state when the stored day differs from now's day:
// it stamps the new day, ensures its record exists, resets quest completion
// and appends an audit entry. Detection is purely day-key comparison, so the
// transition fires at most once per distinct day. Reports whether it fired.
func rollover(st *State, now time.Time) bool {
	today := DayKey(now)
	if st.LastDayKey == today {
		return false
	}
	st.LastDayKey = today
	st.day(today)
	for i := range st.Quests {
		st.Quests[i].Done = false
	}
	st.prependLog(now, "new day started", 0)
	return true
}
