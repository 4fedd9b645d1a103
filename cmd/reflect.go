package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var reflectCmd = &cobra.Command{
	Use:   "reflect",
	Short: "Self-assessment reflections",
}

var reflectSaveCmd = &cobra.Command{
	Use:   "save <prompt-id> <text>...",
	Short: "Save a reflection for a prompt",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		text := strings.Join(args[1:], " ")
		if err := a.Reflections.Save(ctx, args[0], text, time.Now()); err != nil {
			return err
		}
		fmt.Println(theme.Good.Render("Saved."))
		return nil
	},
}

var reflectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reflections",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		all := a.Reflections.All()
		if len(all) == 0 {
			fmt.Println(theme.Dim.Render("No reflections saved."))
			return nil
		}
		for _, r := range all {
			fmt.Printf("%s  %s\n", theme.Heading.Render(r.PromptID), theme.Dim.Render(r.SavedAt.Format("2006-01-02")))
			fmt.Printf("  %s\n", r.Text)
		}
		return nil
	},
}

func init() {
	reflectCmd.AddCommand(reflectSaveCmd)
	reflectCmd.AddCommand(reflectListCmd)
}
