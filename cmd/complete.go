package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/badges"
	"github.com/rnnlab/rnncourse/internal/course"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var completeCmd = &cobra.Command{
	Use:   "complete <module-id>",
	Short: "Mark a module as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid module id %q", args[0])
		}
		m, ok := course.GetModule(id)
		if !ok {
			return fmt.Errorf("no module with id %d", id)
		}

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		now := time.Now()
		changed, err := a.Progress.CompleteModule(ctx, id, now)
		if err != nil {
			return err
		}
		res, err := a.Gamify.CompleteModule(ctx, id, now)
		if err != nil {
			return err
		}
		if res.AlreadyCompleted && !changed {
			fmt.Println(theme.Dim.Render(fmt.Sprintf("Module %d is already completed.", id)))
			return nil
		}

		pathBadges, err := a.Gamify.CheckPathCompletion(ctx, a.Progress.CompletedSet(), now)
		if err != nil {
			return err
		}

		fmt.Println(theme.Good.Render(fmt.Sprintf("Completed module %d: %s", m.ID, m.Title)))
		fmt.Println(theme.Points.Render(fmt.Sprintf("+%d points", res.Points)))
		printNewBadges(append(res.NewBadges, pathBadges...))
		fmt.Println(theme.Dim.Render(fmt.Sprintf("Course progress: %d%%", a.Progress.Percent())))
		return nil
	},
}

func printNewBadges(ids []string) {
	for _, id := range ids {
		b, ok := badges.Get(id)
		if !ok {
			continue
		}
		fmt.Printf("%s %s %s\n",
			b.Rarity.Icon(),
			theme.Badge.Render("Badge unlocked:"),
			theme.Heading.Render(b.Name))
	}
}
