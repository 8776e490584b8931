package engine

import (
	"sort"
	"time"
)

// LevelInfo is the derived level-bar view of a total XP balance.
type LevelInfo struct {
	Level   int
	InBar   int
	ToNext  int
	Percent float64
}

// LevelFor derives level and progress-within-level from total XP. Each
// level bar is BarSize XP wide; a fresh balance is level 1.
func LevelFor(totalXP int) LevelInfo {
	inBar := totalXP % BarSize
	return LevelInfo{
		Level:   totalXP/BarSize + 1,
		InBar:   inBar,
		ToNext:  BarSize - inBar,
		Percent: float64(inBar) / float64(BarSize) * 100,
	}
}

// DayStat is one day of the weekly series.
type DayStat struct {
	Key     string
	Minutes int
}

// WeekStats aggregates the last-N-day window ending today.
type WeekStats struct {
	Days    []DayStat
	Minutes int
	XP      int
}

// WeeklyStats produces per-day minutes (0 for untouched days) and window
// totals for the n calendar days ending at now, oldest first.
func WeeklyStats(st *State, now time.Time, n int) WeekStats {
	var w WeekStats
	for _, key := range LastNDayKeys(now, n) {
		var minutes int
		if d, ok := st.Days[key]; ok {
			minutes = d.MinutesTotal
			w.XP += d.XPTotal
		}
		w.Days = append(w.Days, DayStat{Key: key, Minutes: minutes})
		w.Minutes += minutes
	}
	return w
}

// SubjectMinutes is one row of the today-by-subject breakdown.
type SubjectMinutes struct {
	Subject string
	Minutes int
}

// TodayBySubject returns today's per-subject minutes sorted descending,
// ties broken by subject name for a stable order.
func TodayBySubject(st *State, now time.Time) []SubjectMinutes {
	d, ok := st.Days[DayKey(now)]
	if !ok {
		return nil
	}
	out := make([]SubjectMinutes, 0, len(d.Subjects))
	for sub, min := range d.Subjects {
		out = append(out, SubjectMinutes{Subject: sub, Minutes: min})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}

// RewardStatus pairs a catalog item with its affordability.
type RewardStatus struct {
	Reward
	Affordable bool
}

// Snapshot is everything the view layer needs to redraw the dashboard.
type Snapshot struct {
	TotalXP        int
	Level          LevelInfo
	Streak         int
	Subjects       []string
	TodayKey       string
	Today          DayRecord
	TodayBySubject []SubjectMinutes
	Quests         []Quest
	Rewards        []RewardStatus
	History        []LogEntry
	Week           WeekStats
}

// Snapshot derives a render snapshot from the current state. The snapshot
// shares nothing mutable with the state.
func (s *Service) Snapshot() *Snapshot {
	st := s.state
	now := s.clock.Now()
	today := DayKey(now)

	day := DayRecord{Subjects: map[string]int{}}
	if d, ok := st.Days[today]; ok {
		day.MinutesTotal = d.MinutesTotal
		day.XPTotal = d.XPTotal
		for k, v := range d.Subjects {
			day.Subjects[k] = v
		}
	}

	rewards := make([]RewardStatus, 0, len(Catalog))
	for _, r := range Catalog {
		rewards = append(rewards, RewardStatus{Reward: r, Affordable: st.TotalXP >= r.Cost})
	}

	history := st.History
	if len(history) > HistoryRenderLimit {
		history = history[:HistoryRenderLimit]
	}

	return &Snapshot{
		TotalXP:        st.TotalXP,
		Level:          LevelFor(st.TotalXP),
		Streak:         st.Streak,
		Subjects:       append([]string(nil), st.Subjects...),
		TodayKey:       today,
		Today:          day,
		TodayBySubject: TodayBySubject(st, now),
		Quests:         append([]Quest(nil), st.Quests...),
		Rewards:        rewards,
		History:        append([]LogEntry(nil), history...),
		Week:           WeeklyStats(st, now, WeekWindow),
	}
}
