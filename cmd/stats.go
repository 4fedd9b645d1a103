package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		s := a.Gamify.Stats()
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n\n", theme.Title.Render("Your Progress"))
		fmt.Fprintf(&b, "%s %s\n", theme.Points.Render(fmt.Sprintf("%d", s.TotalPoints)), theme.Dim.Render("points"))
		fmt.Fprintf(&b, "Streak      %d day(s), longest %d\n", s.CurrentStreak, s.LongestStreak)
		fmt.Fprintf(&b, "Modules     %d completed (%d%%)\n", s.ModulesCompleted, a.Progress.Percent())
		fmt.Fprintf(&b, "Exercises   %d completed, %d perfect\n", s.ExercisesCompleted, s.PerfectExercises)
		if s.ExercisesCompleted > 0 {
			fmt.Fprintf(&b, "Attempts    %.1f average\n", s.AverageAttempts)
		}
		fmt.Fprintf(&b, "Time spent  %s\n", formatDuration(s.TotalTimeSpent))
		fmt.Fprintf(&b, "Badges      %d unlocked", len(a.Gamify.UnlockedBadges()))

		fmt.Println(theme.Card.Render(b.String()))

		for _, n := range a.Gamify.Notifications() {
			if !n.Seen {
				printNewBadges([]string{n.BadgeID})
			}
		}
		return nil
	},
}

func formatDuration(secs int64) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	if secs < 3600 {
		return fmt.Sprintf("%dm", secs/60)
	}
	return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
}
