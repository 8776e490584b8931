package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newLogCmd() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "log <minutes>",
		Short: "Log study minutes (earns XP, feeds the streak)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("minutes is required")
			}
			m, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New("minutes must be an integer")
			}
			if m <= 0 {
				return errors.New("minutes must be positive (e.g. 30)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			minutes, _ := strconv.Atoi(args[0])
			res, err := svc.RecordWork(ctx, minutes, subject)
			if err != nil {
				return err
			}

			label := subject
			if label == "" {
				label = "general"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d min (%s) %s\n",
				ui.Good.Render(ui.IconBook+" Logged"), res.Minutes, label,
				ui.Muted.Render(fmt.Sprintf("(+%d XP)", res.XPAwarded)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Today", fmt.Sprintf("%d min", res.TodayMinutes)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%d %s", res.Streak, ui.IconFire)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject to attribute the minutes to")

	return cmd
}
