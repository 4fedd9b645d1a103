package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/course"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise <module-id> <exercise-id>",
	Short: "Record a completed exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		moduleID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid module id %q", args[0])
		}
		if _, ok := course.GetModule(moduleID); !ok {
			return fmt.Errorf("no module with id %d", moduleID)
		}
		exerciseID := args[1]

		attempts, _ := cmd.Flags().GetInt("attempts")
		hints, _ := cmd.Flags().GetInt("hints")
		secs, _ := cmd.Flags().GetInt64("time")
		if attempts < 1 {
			return fmt.Errorf("attempts must be at least 1")
		}
		if hints < 0 {
			return fmt.Errorf("hints cannot be negative")
		}

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		out, err := a.Gamify.RecordExerciseResult(ctx, moduleID, exerciseID, attempts, hints, secs, time.Now())
		if err != nil {
			return err
		}

		if out.Replaced {
			fmt.Println(theme.Dim.Render(fmt.Sprintf("Replaced earlier result for %s.", exerciseID)))
		}
		fmt.Println(theme.Good.Render(fmt.Sprintf("Recorded %s", exerciseID)))
		fmt.Println(theme.Points.Render(fmt.Sprintf("+%d points", out.Points)))
		printNewBadges(out.NewBadges)
		return nil
	},
}

func init() {
	exerciseCmd.Flags().Int("attempts", 1, "Number of attempts taken")
	exerciseCmd.Flags().Int("hints", 0, "Number of hints used")
	exerciseCmd.Flags().Int64("time", 0, "Time to complete, in seconds")
}
