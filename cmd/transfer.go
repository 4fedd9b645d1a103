package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/export"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all progress to a JSON archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		data, err := export.Export(ctx, a.Store.StateRepo(), time.Now())
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], data, 0600); err != nil {
			return err
		}
		fmt.Println(theme.Good.Render("Exported to " + args[0]))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import progress from a JSON archive",
	Long:  "Import progress from a JSON archive, overwriting current state for the sections the archive carries. The archive is validated before anything is written.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		a, ctx, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		if err := export.Import(ctx, a.Store.StateRepo(), data); err != nil {
			return err
		}
		fmt.Println(theme.Good.Render("Imported " + args[0]))
		return nil
	},
}
