package ui

import (
	"fmt"
	"strings"
)

// chartBaseline keeps short weeks readable: bars are scaled against at
// least this many minutes.
const chartBaseline = 30

// ProgressBar renders value/total as a fixed-width bar.
func ProgressBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// WeekBar is one labeled row of the weekly chart.
type WeekBar struct {
	Label   string // day of month, e.g. "08"
	Minutes int
}

// WeekChart renders a horizontal bar chart of daily minutes, one row per
// day, most recent last.
func WeekChart(bars []WeekBar, width int) string {
	if width < 10 {
		width = 10
	}
	max := chartBaseline
	for _, b := range bars {
		if b.Minutes > max {
			max = b.Minutes
		}
	}

	var sb strings.Builder
	for i, b := range bars {
		if i > 0 {
			sb.WriteString("\n")
		}
		n := b.Minutes * width / max
		bar := strings.Repeat("█", n)
		if n == 0 {
			bar = Muted.Render("·")
		}
		sb.WriteString(fmt.Sprintf("%s %s %s", Muted.Render(b.Label), bar, Muted.Render(fmt.Sprintf("%d", b.Minutes))))
	}
	return sb.String()
}

// DayLabel extracts the day-of-month label from a YYYY-MM-DD key.
func DayLabel(dayKey string) string {
	if len(dayKey) < 2 {
		return dayKey
	}
	return dayKey[len(dayKey)-2:]
}
