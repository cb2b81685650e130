package cmd

import (
	"github.com/abhisek/speakup/internal/app"
	"github.com/abhisek/speakup/internal/config"
	"github.com/abhisek/speakup/internal/screens/home"
	"github.com/abhisek/speakup/internal/screens/practice"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [lesson-id]",
	Short: "Start practising, optionally jumping straight into a lesson",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID := ""
		if len(args) == 1 {
			lessonID = args[0]
		}
		return runApp(cmd, lessonID)
	},
}

// runApp opens the environment, builds the speech backends and launches the
// TUI.
func runApp(cmd *cobra.Command, lessonID string) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	recognizer, err := buildRecognizer(e.cfg.Speech)
	if err != nil {
		return err
	}
	synth, err := buildSynthesizer(e.cfg.Speech)
	if err != nil {
		return err
	}

	opts := app.Options{
		Home: home.Deps{
			Practice: practice.Deps{
				Lessons:       e.store.LessonRepo(),
				Progress:      e.store.ProgressRepo(),
				Events:        e.store.EventRepo(),
				Recognizer:    recognizer,
				Synth:         synth,
				Keyboard:      e.cfg.Speech.Capture == config.CaptureKeyboard,
				StudentID:     e.student.ID,
				FeedbackDelay: e.cfg.Practice.FeedbackDelay,
				ExitDelay:     e.cfg.Practice.ExitDelay,
			},
			Students: e.store.StudentRepo(),
			Student:  e.student,
		},
		Splash:      lessonID == "",
		StartLesson: lessonID,
	}
	return app.Run(opts)
}
