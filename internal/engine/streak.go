package engine

import (
	"fmt"
	"time"
)

// maybeUpdateStreak advances the consecutive-day streak after work has been
// recorded for today. Rules:
//
//   - no-op while today has no minutes, and at most one update per day;
//   - the streak extends only when yesterday was active AND the previous
//     update landed on yesterday (lastActiveDayKey == yesterday) — a day
//     that was active but never evaluated breaks continuity;
//   - otherwise the streak restarts at 1.
//
// Reports whether the counter was updated.
func maybeUpdateStreak(st *State, now time.Time) bool {
	today := DayKey(now)
	if st.day(today).MinutesTotal <= 0 {
		return false
	}
	if st.LastActiveDayKey == today {
		return false
	}

	yKey := YesterdayKey(now)
	yDay, ok := st.Days[yKey]
	yesterdayActive := ok && yDay.MinutesTotal > 0

	if yesterdayActive && st.LastActiveDayKey == yKey {
		st.Streak++
	} else {
		st.Streak = 1
	}

	st.LastActiveDayKey = today
	st.prependLog(now, fmt.Sprintf("streak updated: %d 🔥", st.Streak), 0)
	return true
}
