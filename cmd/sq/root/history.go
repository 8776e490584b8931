package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show (or clear) the XP audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if clear {
				if err := svc.ClearHistory(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconScroll+" History cleared"))
				return nil
			}

			snap := svc.Snapshot()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "History"))
			if len(snap.History) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no entries yet)"))
				return nil
			}
			for _, e := range snap.History {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Delta(e.Delta), e.Text, ui.Muted.Render(e.Time))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Empty the audit log")

	return cmd
}
