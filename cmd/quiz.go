package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/course"
	"github.com/rnnlab/rnncourse/internal/quiz"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take module quizzes",
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quizzes and best scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		for _, q := range course.AllQuizzes() {
			best := a.Quiz.BestScore(q.ID)
			score := theme.Dim.Render("not taken")
			if best > 0 {
				score = theme.Points.Render(fmt.Sprintf("best %d%%", best))
			}
			fmt.Printf("%-10s %-45s %s\n", q.ID, q.Title, score)
		}
		return nil
	},
}

var quizStartCmd = &cobra.Command{
	Use:   "start <quiz-id>",
	Short: "Open a fresh quiz attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		attempt, err := a.Quiz.StartQuiz(ctx, args[0], time.Now())
		if err != nil {
			return err
		}
		q, _ := course.GetQuiz(args[0])
		fmt.Println(theme.Heading.Render(q.Title))
		fmt.Println(theme.Dim.Render(fmt.Sprintf("Attempt %s — %d questions, answer with 'rnncourse quiz answer'", attempt.ID[:8], len(q.QuestionIDs))))
		return nil
	},
}

var quizAnswerCmd = &cobra.Command{
	Use:   "answer <quiz-id> <question-id> <answer>",
	Short: "Submit a graded answer into the current attempt",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		correct, _ := cmd.Flags().GetBool("correct")
		score, _ := cmd.Flags().GetFloat64("score")
		secs, _ := cmd.Flags().GetInt64("time")

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		err = a.Quiz.SubmitAnswer(ctx, args[0], quiz.QuestionResult{
			QuestionID: args[1],
			Answer:     args[2],
			Correct:    correct,
			Score:      score,
			TimeSpent:  secs,
		})
		if err != nil {
			return err
		}
		if correct {
			fmt.Println(theme.Good.Render("Correct."))
		} else {
			fmt.Println(theme.Bad.Render("Recorded."))
		}
		return nil
	},
}

var quizCompleteCmd = &cobra.Command{
	Use:   "finish <quiz-id>",
	Short: "Finalize the current attempt and score it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		attempt, err := a.Quiz.CompleteQuiz(ctx, args[0], time.Now())
		if err != nil {
			return err
		}
		fmt.Println(theme.Heading.Render(fmt.Sprintf("Scored %d%%", attempt.Percentage)))
		fmt.Println(theme.Dim.Render(fmt.Sprintf("Best for this quiz: %d%%", a.Quiz.BestScore(args[0]))))
		return nil
	},
}

func init() {
	quizAnswerCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	quizAnswerCmd.Flags().Float64("score", 0, "Points awarded for the answer")
	quizAnswerCmd.Flags().Int64("time", 0, "Time spent on the question, in seconds")

	quizCmd.AddCommand(quizListCmd)
	quizCmd.AddCommand(quizStartCmd)
	quizCmd.AddCommand(quizAnswerCmd)
	quizCmd.AddCommand(quizCompleteCmd)
}
