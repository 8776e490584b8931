package engine

import (
	"context"
	"testing"
	"time"
)

func TestLevelForBoundaries(t *testing.T) {
	cases := []struct {
		xp     int
		level  int
		inBar  int
		toNext int
	}{
		{0, 1, 0, BarSize},
		{1, 1, 1, BarSize - 1},
		{BarSize - 1, 1, BarSize - 1, 1},
		{BarSize, 2, 0, BarSize},
		{2*BarSize + 250, 3, 250, 250},
	}
	for _, c := range cases {
		got := LevelFor(c.xp)
		if got.Level != c.level || got.InBar != c.inBar || got.ToNext != c.toNext {
			t.Fatalf("LevelFor(%d)=%+v, want level=%d inBar=%d toNext=%d", c.xp, got, c.level, c.inBar, c.toNext)
		}
	}
	if p := LevelFor(250).Percent; p != 50.0 {
		t.Fatalf("Percent=%v, want 50", p)
	}
}

func TestWeeklyStatsZeroFillsUntouchedDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	st := defaultState(now)

	d1 := st.day("2026-03-08")
	d1.MinutesTotal = 40
	d1.XPTotal = 40
	d2 := st.day("2026-03-10")
	d2.MinutesTotal = 25
	d2.XPTotal = 25
	// Outside the 7-day window; must not count.
	old := st.day("2026-03-01")
	old.MinutesTotal = 999
	old.XPTotal = 999

	w := WeeklyStats(st, now, WeekWindow)
	if len(w.Days) != WeekWindow {
		t.Fatalf("days len=%d, want %d", len(w.Days), WeekWindow)
	}
	if w.Days[0].Key != "2026-03-04" || w.Days[6].Key != "2026-03-10" {
		t.Fatalf("window keys wrong: %q .. %q", w.Days[0].Key, w.Days[6].Key)
	}
	if w.Minutes != 65 || w.XP != 65 {
		t.Fatalf("totals minutes=%d xp=%d, want 65/65", w.Minutes, w.XP)
	}
	for _, ds := range w.Days {
		switch ds.Key {
		case "2026-03-08":
			if ds.Minutes != 40 {
				t.Fatalf("%s minutes=%d, want 40", ds.Key, ds.Minutes)
			}
		case "2026-03-10":
			if ds.Minutes != 25 {
				t.Fatalf("%s minutes=%d, want 25", ds.Key, ds.Minutes)
			}
		default:
			if ds.Minutes != 0 {
				t.Fatalf("%s minutes=%d, want 0", ds.Key, ds.Minutes)
			}
		}
	}
}

func TestTodayBySubjectSortsDescending(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	st := defaultState(now)
	d := st.day(DayKey(now))
	d.Subjects["Fizik"] = 20
	d.Subjects["Matematik"] = 60
	d.Subjects["Kimya"] = 20

	rows := TodayBySubject(st, now)
	if len(rows) != 3 {
		t.Fatalf("rows=%d, want 3", len(rows))
	}
	if rows[0].Subject != "Matematik" || rows[0].Minutes != 60 {
		t.Fatalf("rows[0]=%+v", rows[0])
	}
	// Equal minutes tie-break by name.
	if rows[1].Subject != "Fizik" || rows[2].Subject != "Kimya" {
		t.Fatalf("tie order=%q,%q", rows[1].Subject, rows[2].Subject)
	}
}

func TestSnapshotAffordabilityAndWindow(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.RecordWork(ctx, 60, "Fizik"); err != nil {
		t.Fatalf("RecordWork: %v", err)
	}

	snap := svc.Snapshot()
	if snap.TotalXP != 60 || snap.Streak != 1 {
		t.Fatalf("snapshot xp=%d streak=%d", snap.TotalXP, snap.Streak)
	}
	for _, r := range snap.Rewards {
		want := 60 >= r.Cost
		if r.Affordable != want {
			t.Fatalf("reward %s affordable=%v, want %v", r.ID, r.Affordable, want)
		}
	}
	if len(snap.Week.Days) != WeekWindow || snap.Week.Minutes != 60 {
		t.Fatalf("week=%+v", snap.Week)
	}
	if snap.Today.MinutesTotal != 60 {
		t.Fatalf("today=%+v", snap.Today)
	}

	// Snapshot mutation must not leak into the state.
	snap.Today.Subjects["Fizik"] = 999
	snap.Quests[0].Done = true
	if svc.state.day(snap.TodayKey).Subjects["Fizik"] != 60 || svc.state.Quests[0].Done {
		t.Fatalf("snapshot shares mutable state")
	}
}

func TestSnapshotHistoryWindow(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < HistoryRenderLimit+10; i++ {
		if err := svc.AwardXP(ctx, 1, "tick"); err != nil {
			t.Fatalf("AwardXP: %v", err)
		}
	}
	snap := svc.Snapshot()
	if len(snap.History) != HistoryRenderLimit {
		t.Fatalf("snapshot history=%d, want %d", len(snap.History), HistoryRenderLimit)
	}
}

func TestOnChangeFiresAfterMutation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	var got *Snapshot
	calls := 0
	svc.OnChange(func(s *Snapshot) {
		got = s
		calls++
	})

	if _, err := svc.RecordWork(ctx, 30, "Fizik"); err != nil {
		t.Fatalf("RecordWork: %v", err)
	}
	if calls != 1 || got == nil || got.TotalXP != 30 {
		t.Fatalf("calls=%d snapshot=%+v", calls, got)
	}

	// Failed mutations do not notify.
	if err := svc.SpendXP(ctx, 10_000, "x"); err == nil {
		t.Fatalf("expected spend failure")
	}
	if calls != 1 {
		t.Fatalf("failed mutation notified (calls=%d)", calls)
	}
}
