package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/course"
	"github.com/rnnlab/rnncourse/internal/progress"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List course modules and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		fmt.Println(theme.Title.Render("The Unreasonable Effectiveness of RNNs"))
		fmt.Println(theme.Dim.Render(fmt.Sprintf("Course progress: %d%%", a.Progress.Percent())))
		fmt.Println()

		for _, m := range course.AllModules() {
			status := a.Progress.Status(m.ID)
			fmt.Printf("%s %2d  %s\n", statusMarker(status), m.ID, theme.Heading.Render(m.Title))
			fmt.Printf("        %s\n", theme.Dim.Render(m.Subtitle+" · "+m.Duration))
		}
		return nil
	},
}

func statusMarker(s progress.ModuleStatus) string {
	switch s {
	case progress.StatusCompleted:
		return theme.Good.Render("[x]")
	case progress.StatusInProgress:
		return theme.Badge.Render("[>]")
	case progress.StatusAvailable:
		return theme.Body.Render("[ ]")
	default:
		return theme.Dim.Render("[-]")
	}
}
