package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/engine"
	"studyquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the dashboard (level, streak, today, week, quests, store)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := svc.Snapshot()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Studyquest"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d %s %d/%d XP",
				snap.Level.Level, ui.ProgressBar(snap.Level.InBar, engine.BarSize, 30), snap.Level.InBar, engine.BarSize)))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (%d to level %d)",
				snap.TotalXP, snap.Level.ToNext, snap.Level.Level+1)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d %s", snap.Streak, ui.IconFire)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconSun+" Today "+snap.TodayKey))
			fmt.Fprintf(out, "- %d min, %d XP\n", snap.Today.MinutesTotal, snap.Today.XPTotal)
			if len(snap.TodayBySubject) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  (no per-subject entries yet — log with -s)"))
			}
			for _, row := range snap.TodayBySubject {
				fmt.Fprintf(out, "  %s %s\n", ui.Key.Render(row.Subject+":"), fmt.Sprintf("%d min", row.Minutes))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconChart+" Last 7 days"))
			bars := make([]ui.WeekBar, 0, len(snap.Week.Days))
			for _, d := range snap.Week.Days {
				bars = append(bars, ui.WeekBar{Label: ui.DayLabel(d.Key), Minutes: d.Minutes})
			}
			fmt.Fprintln(out, ui.WeekChart(bars, 24))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("week total: %d min, %d XP", snap.Week.Minutes, snap.Week.XP)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconDone+" Daily quests"))
			for _, q := range snap.Quests {
				fmt.Fprintf(out, "- %s %s %s\n", ui.QuestMark(q.Done), q.Title, ui.Muted.Render("("+q.ID+")"))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconGift+" Reward store"))
			for _, r := range snap.Rewards {
				price := fmt.Sprintf("%d XP", r.Cost)
				if r.Affordable {
					price = ui.Gold.Render(price)
				} else {
					price = ui.Muted.Render(price + " (locked)")
				}
				fmt.Fprintf(out, "- %s — %s %s\n", r.Title, price, ui.Muted.Render(r.Desc))
			}

			return nil
		},
	}

	return cmd
}
