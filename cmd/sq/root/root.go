package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studyquest/internal/ui"
)

const Version = "0.1.0"

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "sq",
	Short:         "Studyquest — gamified study tracker",
	Long:          "Studyquest is a local-first study tracker: log minutes per subject, earn XP, keep the streak alive and spend XP on rewards.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default ~/.studyquest.db)")

	rootCmd.AddCommand(
		newLogCmd(),
		newStatusCmd(),
		newQuestCmd(),
		newBonusCmd(),
		newSubjectCmd(),
		newBuyCmd(),
		newHistoryCmd(),
		newNewDayCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
