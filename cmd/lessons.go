package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/speakup/internal/lessons"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Browse and import lessons",
}

var lessonsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lessons (active only unless --all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		repo := e.store.LessonRepo()
		var list []lessons.Lesson
		if all {
			list, err = repo.List(cmd.Context())
		} else {
			list, err = repo.ListActive(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-20s  %-28s  %-13s  %-10s  %5s  %s\n",
			"ID", "Title", "Type", "Difficulty", "Words", "Active")
		fmt.Fprintln(out, strings.Repeat("─", 92))

		for _, l := range list {
			title := l.Title
			if len(title) > 28 {
				title = title[:25] + "..."
			}
			active := "✓"
			if !l.Active {
				active = "✗"
			}
			fmt.Fprintf(out, "%-20s  %-28s  %-13s  %-10s  %5d  %s\n",
				l.ID, title, l.Type, l.Difficulty, l.WordCount(), active)
		}

		fmt.Fprintf(out, "\n%d lessons\n", len(list))
		return nil
	},
}

var lessonsImportCmd = &cobra.Command{
	Use:   "import <pack.yaml>",
	Short: "Validate a lesson pack and add its lessons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pack, err := lessons.LoadPack(args[0])
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		repo := e.store.LessonRepo()
		for _, l := range pack {
			if err := repo.Upsert(cmd.Context(), &l); err != nil {
				return fmt.Errorf("import lesson %s: %w", l.ID, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%d words)\n", l.ID, l.WordCount())
		}
		return nil
	},
}

func init() {
	lessonsListCmd.Flags().Bool("all", false, "Include inactive lessons")

	lessonsCmd.AddCommand(lessonsListCmd)
	lessonsCmd.AddCommand(lessonsImportCmd)
}
