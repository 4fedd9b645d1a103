package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/badges"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show unlocked and remaining badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		showAll, _ := cmd.Flags().GetBool("all")

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		unlocked := make(map[string]bool)
		for _, ub := range a.Gamify.UnlockedBadges() {
			unlocked[ub.BadgeID] = true
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("Badges %d/%d", len(unlocked), len(badges.All()))))
		fmt.Println()

		for _, b := range badges.All() {
			if unlocked[b.ID] {
				fmt.Printf("%s %s %s\n", b.Rarity.Icon(),
					theme.Heading.Render(b.Name),
					theme.Dim.Render("("+b.Rarity.DisplayName()+")"))
			} else if showAll {
				fmt.Printf("%s %s %s\n", theme.Dim.Render("·"),
					theme.Dim.Render(b.Name),
					theme.Dim.Render("— "+b.Requirement))
			}
		}

		// Mark fresh unlocks as seen once the learner has looked.
		return a.Gamify.MarkNotificationsSeen(ctx)
	},
}

func init() {
	badgesCmd.Flags().Bool("all", false, "Include badges not yet unlocked")
}
