package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"classfeed/internal/ics"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Parse a generated feed and summarize its events",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rep, err := ics.Verify(body)
		if err != nil {
			return fmt.Errorf("feed does not parse: %w", err)
		}

		allDay := 0
		for _, ev := range rep.Events {
			if ev.AllDay {
				allDay++
			}
		}
		fmt.Printf("%s: %d events (%d all-day, %d timed), PRODID %s\n",
			path, len(rep.Events), allDay, len(rep.Events)-allDay, rep.ProdID)

		if verbose {
			for _, ev := range rep.Events {
				fmt.Printf("  %s  %s  %s\n", ev.UID, ev.Start, ev.Summary)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringP("file", "f", "calendar.ics", "feed file to verify")
}
