package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

func newSubjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "List or add subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := svc.Snapshot()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, "Subjects"))
			for _, s := range snap.Subjects {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", s)
			}
			return nil
		},
	}

	cmd.AddCommand(newSubjectAddCmd())

	return cmd
}

func newSubjectAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("subject name is required")
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

			name, err := svc.AddSubject(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconBook+" Added"), name)
			return nil
		},
	}

	return cmd
}
