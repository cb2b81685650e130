package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/speakup/internal/screens/report"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show per-student progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		sums, err := e.store.ProgressRepo().Summaries(cmd.Context())
		if err != nil {
			return fmt.Errorf("load summaries: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(sums) == 0 {
			fmt.Fprintln(out, "No students have practised yet.")
			return nil
		}
		for _, s := range sums {
			fmt.Fprintln(out, report.FormatRow(s))
		}
		fmt.Fprintln(out, strings.Repeat("─", 70))
		fmt.Fprintf(out, "%d students\n", len(sums))
		return nil
	},
}
