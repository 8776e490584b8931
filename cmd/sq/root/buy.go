package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/engine"
	"studyquest/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <reward-id>",
		Short: "Spend XP on a reward (see `sq status` for the catalog)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reward id is required (coffee, yt30, game30)")
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

			r, err := svc.BuyReward(ctx, args[0])
			var insufficient engine.InsufficientXPError
			if errors.As(err, &insufficient) {
				return fmt.Errorf("not enough XP for that: need %d, have %d", insufficient.Cost, insufficient.Balance)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Gold.Render(ui.IconGift+" Enjoy:"), r.Title,
				ui.Muted.Render(fmt.Sprintf("(-%d XP)", r.Cost)))
			return nil
		},
	}

	return cmd
}
