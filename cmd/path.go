package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/course"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Learning paths",
}

var pathListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learning paths and completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		current, _ := a.Progress.CurrentPath()
		for _, p := range course.AllPaths() {
			marker := "  "
			if p.ID == current {
				marker = theme.Badge.Render("> ")
			}
			fmt.Printf("%s%-14s %-28s %s\n", marker, p.ID,
				theme.Heading.Render(p.Name),
				theme.Dim.Render(fmt.Sprintf("%d%% of %d modules", a.Progress.PathPercent(p.ID), len(p.ModuleIDs))))
		}
		return nil
	},
}

var pathSetCmd = &cobra.Command{
	Use:   "set <path-id>",
	Short: "Choose the active learning path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := course.GetPath(args[0])
		if !ok {
			return fmt.Errorf("no path with id %q", args[0])
		}

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		if err := a.Progress.SetCurrentPath(ctx, p.ID, time.Now()); err != nil {
			return err
		}
		fmt.Println(theme.Good.Render("Now following: " + p.Name))
		return nil
	},
}

func init() {
	pathCmd.AddCommand(pathListCmd)
	pathCmd.AddCommand(pathSetCmd)
}
