package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newBonusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bonus",
		Short: "Claim the daily quest bonus (all quests done, once per day)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			xp, err := svc.ClaimDailyBonus(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Gold.Render(ui.IconSparkle+" Daily bonus claimed"),
				ui.Muted.Render(fmt.Sprintf("(+%d XP)", xp)))
			return nil
		},
	}

	return cmd
}
