package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/course"
	"github.com/rnnlab/rnncourse/internal/progress"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var startCmd = &cobra.Command{
	Use:   "start <module-id>",
	Short: "Start working on a module",
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

		if a.Progress.Status(id) == progress.StatusLocked {
			return fmt.Errorf("module %d is locked: complete module %d first", id, id-1)
		}

		now := time.Now()
		if err := a.Progress.SetCurrentModule(ctx, id, now); err != nil {
			return err
		}
		if err := a.Gamify.StartModule(ctx, id, now); err != nil {
			return err
		}

		fmt.Println(theme.Heading.Render(fmt.Sprintf("Module %d: %s", m.ID, m.Title)))
		fmt.Println(theme.Dim.Render(m.Description))
		return nil
	},
}
