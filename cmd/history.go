package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/store"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		events, err := a.Store.EventRepo().QueryActivityEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println(theme.Dim.Render("No activity yet."))
			return nil
		}

		for _, e := range events {
			line := e.Kind
			if e.ModuleID != nil {
				line += fmt.Sprintf(" module %d", *e.ModuleID)
			}
			if e.ExerciseID != nil {
				line += " " + *e.ExerciseID
			}
			if e.QuizID != nil {
				line += " " + *e.QuizID
			}
			if e.Points > 0 {
				line += theme.Points.Render(fmt.Sprintf("  +%d", e.Points))
			}
			fmt.Printf("%s  %s\n", theme.Dim.Render(e.Timestamp.Format("2006-01-02 15:04")), line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show")
}
