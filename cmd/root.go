package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/app"
)

var rootCmd = &cobra.Command{
	Use:           "rnncourse",
	Short:         "Progress tracker for the RNN course",
	Long:          "rnncourse — terminal companion for \"The Unreasonable Effectiveness of RNNs\": track module progress, exercises, quizzes, streaks and badges.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RNNCOURSE_DB env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(certCmd)
	rootCmd.AddCommand(reflectCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
}

// openApp builds the service container using the --db flag when set.
func openApp(cmd *cobra.Command) (*app.App, context.Context, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	dbPath, _ := cmd.Flags().GetString("db")
	a, err := app.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}
	return a, ctx, nil
}
