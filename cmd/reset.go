package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress, badges and quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This erases all progress. Type 'reset' to confirm: ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "reset" {
				fmt.Println(theme.Dim.Render("Aborted."))
				return nil
			}
		}

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		if err := a.Progress.Reset(ctx, time.Now()); err != nil {
			return err
		}
		if err := a.Gamify.Reset(ctx); err != nil {
			return err
		}
		if err := a.Quiz.Reset(ctx); err != nil {
			return err
		}
		if err := a.Reflections.Reset(ctx); err != nil {
			return err
		}

		fmt.Println(theme.Good.Render("All learner data erased."))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
