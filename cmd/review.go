package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/quiz"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Spaced repetition reviews",
}

var reviewDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List reviews that are due now",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		due := a.Quiz.DueReviews(time.Now())
		if len(due) == 0 {
			fmt.Println(theme.Dim.Render("Nothing due. Come back later."))
			return nil
		}
		for _, p := range due {
			fmt.Printf("%-10s %s\n", p.QuizID, theme.Dim.Render(strings.Join(p.QuestionIDs, ", ")))
		}
		return nil
	},
}

var reviewScheduleCmd = &cobra.Command{
	Use:   "schedule <quiz-id> <question-id>...",
	Short: "Put questions on the review schedule",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		if err := a.Quiz.ScheduleReview(ctx, args[0], args[1:], time.Now()); err != nil {
			return err
		}
		fmt.Println(theme.Good.Render(fmt.Sprintf("Scheduled %d question(s) for review.", len(args)-1)))
		return nil
	},
}

var reviewDoneCmd = &cobra.Command{
	Use:   "done <quiz-id>",
	Short: "Complete a due review and rate its difficulty",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ratingStr, _ := cmd.Flags().GetString("rating")
		var rating quiz.ReviewRating
		switch ratingStr {
		case "easy":
			rating = quiz.RatingEasy
		case "medium":
			rating = quiz.RatingMedium
		case "hard":
			rating = quiz.RatingHard
		default:
			return fmt.Errorf("rating must be easy, medium or hard")
		}

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		p, err := a.Quiz.CompleteReview(ctx, args[0], rating, time.Now())
		if err != nil {
			return err
		}
		fmt.Println(theme.Good.Render(fmt.Sprintf("Next review in %.1f day(s).", p.IntervalDays)))
		return nil
	},
}

func init() {
	reviewDoneCmd.Flags().String("rating", "medium", "How the review felt: easy, medium or hard")

	reviewCmd.AddCommand(reviewDueCmd)
	reviewCmd.AddCommand(reviewScheduleCmd)
	reviewCmd.AddCommand(reviewDoneCmd)
}
