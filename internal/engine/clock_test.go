package engine

import (
	"testing"
	"time"
)

func TestDayKeyZeroPads(t *testing.T) {
	d := time.Date(2026, 1, 5, 23, 59, 0, 0, time.Local)
	if got := DayKey(d); got != "2026-01-05" {
		t.Fatalf("DayKey=%q, want 2026-01-05", got)
	}
}

func TestYesterdayKeyCrossesMonthBoundary(t *testing.T) {
	d := time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local)
	if got := YesterdayKey(d); got != "2026-02-28" {
		t.Fatalf("YesterdayKey=%q, want 2026-02-28", got)
	}
}

func TestLastNDayKeys(t *testing.T) {
	d := time.Date(2026, 3, 3, 12, 0, 0, 0, time.Local)
	got := LastNDayKeys(d, 7)
	want := []string{
		"2026-02-25", "2026-02-26", "2026-02-27", "2026-02-28",
		"2026-03-01", "2026-03-02", "2026-03-03",
	}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}
