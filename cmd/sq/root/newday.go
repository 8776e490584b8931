package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newNewDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newday",
		Short: "Force a fresh day: empty today's record, reset quests and the bonus claim",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.NewDay(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSun+" Fresh day — quests and today's minutes reset"))
			return nil
		},
	}

	return cmd
}
