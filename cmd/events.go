package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/speakup/internal/store"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect recorded attempts",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List attempts for a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, _ := cmd.Flags().GetString("session")
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		events, err := e.store.EventRepo().QueryAttempts(cmd.Context(), sessionID, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No attempts found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-4s  %-16s  %-20s  %-5s  %s\n",
			"Seq", "Timestamp", "Word", "Target", "Heard", "Sim", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 84))

		for _, ev := range events {
			ok := "✓"
			if !ev.Correct {
				ok = "✗"
			}
			heard := ev.Transcript
			if len(heard) > 20 {
				heard = heard[:17] + "..."
			}
			fmt.Fprintf(out, "%-5d  %-19s  %4d  %-16s  %-20s  %5.2f  %s\n",
				ev.Sequence, ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
				ev.WordIndex+1, ev.Word, heard, ev.Similarity, ok)
		}
		return nil
	},
}

func init() {
	eventsListCmd.Flags().String("session", "", "Practice session ID (required)")
	eventsListCmd.Flags().Int("limit", 50, "Maximum number of attempts to show")
	_ = eventsListCmd.MarkFlagRequired("session")

	eventsCmd.AddCommand(eventsListCmd)
}
