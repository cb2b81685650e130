package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"

	"github.com/abhisek/speakup/internal/config"
	"github.com/abhisek/speakup/internal/lessons"
	"github.com/abhisek/speakup/internal/logging"
	"github.com/abhisek/speakup/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "speakup",
	Short: "Pronunciation practice for kids",
	Long:  "SpeakUp: a terminal app where children listen to a word, say it out loud and get instant feedback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides SPEAKUP_DB env var)")
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/speakup/config.yaml)")
	pf.String("student", "", "Student profile to use (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(arenaCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SPEAKUP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig reads --config, or the default config path.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return config.Load(path)
}

// studentName picks the profile name: --student, then config, then the OS
// user, then a fixed fallback.
func studentName(cmd *cobra.Command, cfg *config.Config) string {
	if n, _ := cmd.Flags().GetString("student"); n != "" {
		return n
	}
	if cfg.Student != "" {
		return cfg.Student
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "Learner"
}

// env is everything a command needs after startup.
type env struct {
	cfg     *config.Config
	store   *store.Store
	student *store.Student
	closers []io.Closer
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i].Close()
	}
}

// openEnv loads config, routes logs to the data directory, opens the store,
// seeds the built-in lessons into an empty database and ensures the active
// student exists.
func openEnv(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg}

	dataDir, err := store.DataDir()
	if err != nil {
		return nil, err
	}
	logCloser, err := logging.Setup(dataDir, cfg.LogLevel.Level())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
	} else {
		e.closers = append(e.closers, logCloser)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.store = st
	e.closers = append(e.closers, st)

	if err := seedLessons(ctx, st.LessonRepo()); err != nil {
		e.Close()
		return nil, err
	}

	student, err := st.StudentRepo().Ensure(ctx, studentName(cmd, cfg))
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("load student: %w", err)
	}
	e.student = student

	slog.Info("speakup started", "db", dbPath, "student", student.FullName, "capture", cfg.Speech.Capture, "synth", cfg.Speech.Synth)
	return e, nil
}

// seedLessons writes the built-in lessons when the database has none.
func seedLessons(ctx context.Context, repo store.LessonRepo) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list lessons: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, l := range lessons.Builtin() {
		if err := repo.Upsert(ctx, &l); err != nil {
			return fmt.Errorf("seed lesson %s: %w", l.ID, err)
		}
	}
	slog.Info("seeded built-in lessons", "count", len(lessons.Builtin()))
	return nil
}
