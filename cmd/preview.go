package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abhisek/speakup/internal/lessons"
	"github.com/abhisek/speakup/internal/session"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <lesson-id>",
	Short: "Walk through a lesson by typing answers (no database)",
	Long: `Run a lesson in the terminal, typing each word instead of saying it.

This is a stateless tool for checking lesson content: no database, no
progress, no events. Use --pack to preview a lesson from a pack file
before importing it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packPath, _ := cmd.Flags().GetString("pack")

		lesson, err := findLesson(packPath, args[0])
		if err != nil {
			return err
		}
		return previewLesson(cmd.InOrStdin(), cmd.OutOrStdout(), lesson)
	},
}

func init() {
	previewCmd.Flags().String("pack", "", "Lesson pack file to read instead of the built-in lessons")
}

// findLesson looks id up in the pack at packPath, or in the built-in lessons.
func findLesson(packPath, id string) (*lessons.Lesson, error) {
	list := lessons.Builtin()
	if packPath != "" {
		pack, err := lessons.LoadPack(packPath)
		if err != nil {
			return nil, err
		}
		list = pack
	}

	var ids []string
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
		ids = append(ids, list[i].ID)
	}
	return nil, fmt.Errorf("no lesson %q; available: %s", id, strings.Join(ids, ", "))
}

// previewLesson drives the practice loop with typed transcripts read from in.
// An empty line counts as a capture with no speech and the word is asked
// again.
func previewLesson(in io.Reader, out io.Writer, lesson *lessons.Lesson) error {
	state, err := session.NewSessionState(lesson, "preview", uuid.NewString())
	if err != nil {
		return err
	}
	session.Open(state)
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Lesson: %s (%d words)\n\n", lesson.Title, state.Total())

	for state.Phase != session.PhaseCompleted {
		w := state.CurrentWord()
		fmt.Fprintf(out, "── Word %d/%d ──\n", state.CurrentIndex+1, state.Total())
		fmt.Fprintf(out, "%s %s", w.Image, strings.ToUpper(w.Word))
		if w.Translation != "" {
			fmt.Fprintf(out, "  (%s)", w.Translation)
		}
		fmt.Fprint(out, "\n\nSay it: ")

		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			return scanner.Err()
		}
		answer := strings.TrimSpace(scanner.Text())

		session.BeginCapture(state)
		if answer == "" {
			session.HandleCaptureError(state)
			fmt.Fprintln(out, "(no speech detected)")
			fmt.Fprintln(out)
			continue
		}
		outcome := session.HandleTranscript(state, answer)
		session.HandleCaptureEnd(state)

		switch {
		case outcome.Correct:
			fmt.Fprintln(out, "\033[32m✓ Great job!\033[0m")
		case session.SoundsAlike(answer, outcome.Target):
			fmt.Fprintf(out, "\033[31m✗ So close!\033[0m Heard %q (%.0f%% similar)\n", answer, outcome.Similarity*100)
		default:
			fmt.Fprintf(out, "\033[31m✗ Not quite.\033[0m Heard %q\n", answer)
		}
		fmt.Fprintln(out)
		session.FeedbackDone(state, time.Now())
	}

	sum := session.BuildSummary(state)
	fmt.Fprintf(out, "── Summary: %d/%d words, %d tries, score %d%% ──\n",
		sum.Score, sum.Words, sum.Attempts, sum.FinalScore)
	return nil
}
