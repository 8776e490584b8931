package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "List or toggle daily quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listQuests(cmd)
		},
	}

	cmd.AddCommand(newQuestDoneCmd(true), newQuestDoneCmd(false))

	return cmd
}

func listQuests(cmd *cobra.Command) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	snap := svc.Snapshot()
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconDone, "Daily quests"))
	for _, q := range snap.Quests {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", ui.QuestMark(q.Done), q.Title, ui.Muted.Render("("+q.ID+")"))
	}
	return nil
}

func newQuestDoneCmd(done bool) *cobra.Command {
	use, short := "done <id>", "Mark a quest as done"
	if !done {
		use, short = "undo <id>", "Mark a quest as not done"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest id is required (e.g. q1)")
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

			if err := svc.ToggleQuest(ctx, args[0], done); err != nil {
				return err
			}
			return listQuests(cmd)
		},
	}

	return cmd
}
