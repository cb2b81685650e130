package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/speakup/internal/store"
	"github.com/spf13/cobra"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage local profiles",
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		students, err := e.store.StudentRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list students: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-3s  %-24s  %-8s  %s\n", "", "Name", "Role", "Since")
		fmt.Fprintln(out, strings.Repeat("─", 52))
		for _, s := range students {
			fmt.Fprintf(out, "%-3s  %-24s  %-8s  %s\n",
				s.AvatarURL, s.FullName, s.Role, s.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var studentAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		s, err := e.store.StudentRepo().Ensure(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", s.AvatarURL, s.FullName, s.Role)
		return nil
	},
}

var studentRoleCmd = &cobra.Command{
	Use:   "role <name> <student|teacher>",
	Short: "Change a profile's role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := strings.ToLower(args[1])
		if role != store.RoleStudent && role != store.RoleTeacher {
			return fmt.Errorf("invalid role %q: must be %s or %s", args[1], store.RoleStudent, store.RoleTeacher)
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		repo := e.store.StudentRepo()
		s, err := repo.Ensure(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := repo.SetRole(cmd.Context(), s.ID, role); err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now a %s\n", s.FullName, role)
		return nil
	},
}

var studentAvatarCmd = &cobra.Command{
	Use:   "avatar <name> <glyph>",
	Short: "Change a profile's avatar",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(store.Avatars, args[1]) {
			return fmt.Errorf("unknown avatar %q: choose one of %s", args[1], strings.Join(store.Avatars, " "))
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		repo := e.store.StudentRepo()
		s, err := repo.Ensure(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := repo.SetAvatar(cmd.Context(), s.ID, args[1]); err != nil {
			return fmt.Errorf("set avatar: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[1], s.FullName)
		return nil
	},
}

func init() {
	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentRoleCmd)
	studentCmd.AddCommand(studentAvatarCmd)
}
