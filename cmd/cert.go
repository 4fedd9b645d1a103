package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rnnlab/rnncourse/internal/course"
	"github.com/rnnlab/rnncourse/internal/ui/theme"
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Certificates of completion",
}

var certGenerateCmd = &cobra.Command{
	Use:   "generate <path-id>",
	Short: "Generate a certificate for a completed path",
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

		completed := a.Progress.CompletedSet()
		for _, id := range p.ModuleIDs {
			if !completed[id] {
				return fmt.Errorf("path %q is not finished: module %d is incomplete", p.ID, id)
			}
		}

		cert, err := a.Gamify.GenerateCertificate(ctx, p.ID, p.Name, time.Now())
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s\n\n", theme.Title.Render("Certificate of Completion"))
		fmt.Fprintf(&b, "%s\n", theme.Heading.Render(cert.Username))
		fmt.Fprintf(&b, "has completed %s\n\n", theme.Heading.Render(cert.PathName))
		fmt.Fprintf(&b, "%s · %d badges · %s\n",
			theme.Points.Render(fmt.Sprintf("%d points", cert.TotalPoints)),
			len(cert.BadgesEarned),
			formatDuration(cert.TotalTimeSpent))
		fmt.Fprintf(&b, "%s", theme.Dim.Render(cert.CompletedAt.Format("January 2, 2006")+" · "+cert.ID))
		fmt.Println(theme.Card.Render(b.String()))
		return nil
	},
}

var certListCmd = &cobra.Command{
	Use:   "list",
	Short: "List earned certificates",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		certs := a.Gamify.Certificates()
		if len(certs) == 0 {
			fmt.Println(theme.Dim.Render("No certificates yet. Finish a path first."))
			return nil
		}
		for _, c := range certs {
			fmt.Printf("%s  %s %s\n",
				theme.Dim.Render(c.CompletedAt.Format("2006-01-02")),
				theme.Heading.Render(c.PathName),
				theme.Dim.Render(c.ID))
		}
		return nil
	},
}

func init() {
	certCmd.AddCommand(certGenerateCmd)
	certCmd.AddCommand(certListCmd)
}
