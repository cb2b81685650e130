package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/speakup/internal/session"
	"github.com/abhisek/speakup/internal/ui/components"
	"github.com/abhisek/speakup/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width)
	}
	if s.state.Phase == sess.PhaseCompleted {
		return s.renderCompleted(width)
	}
	return s.renderWord(width)
}

// renderWord renders the current word card, feedback and controls.
func (s *PracticeScreen) renderWord(width int) string {
	state := s.state
	cw := components.ContentWidth(width)

	var b strings.Builder

	bar := components.NewStepBar("Word", state.CurrentIndex+1, state.Total(), cw-10)
	score := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("★ %d", state.Score))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()+"  "+score))
	b.WriteString("\n\n")

	w := state.CurrentWord()
	var card strings.Builder
	if w.Image != "" {
		card.WriteString(w.Image + "\n\n")
	}
	card.WriteString(theme.Word.Render(strings.ToUpper(w.Word)))
	if w.Translation != "" {
		card.WriteString("\n" + theme.Hint.Render(w.Translation))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ArcadeCard(card.String(), cw)))
	b.WriteString("\n\n")

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	switch state.LastFeedback {
	case sess.FeedbackCorrect:
		b.WriteString(center(theme.Correct, "✓ Great job!"))
	case sess.FeedbackIncorrect:
		heard := state.LastTranscript
		if sess.SoundsAlike(heard, w.Word) {
			b.WriteString(center(theme.Incorrect, fmt.Sprintf("✗ So close! I heard %q. Try again!", heard)))
		} else {
			b.WriteString(center(theme.Incorrect, fmt.Sprintf("✗ Not quite, I heard %q. Try again!", heard)))
		}
	default:
		b.WriteString(center(theme.Hint, s.prompt()))
	}
	b.WriteString("\n")
	if s.notice != "" {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent), s.notice))
	}
	b.WriteString("\n\n")

	if s.typing {
		b.WriteString(center(lipgloss.NewStyle(), "Answer: "+s.input.View()))
		return b.String()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderControls()))
	return b.String()
}

func (s *PracticeScreen) prompt() string {
	switch {
	case s.state.RecordingActive:
		return "Listening..."
	case !s.captureAvailable():
		return "Listen to the word and say it out loud."
	case s.deps.Keyboard:
		return "Press Space and type the word."
	}
	return "Press Space and say the word."
}

// renderControls draws the listen and speak buttons. A missing capability
// leaves its button visible but disabled.
func (s *PracticeScreen) renderControls() string {
	listen := components.NewButton("🔊 Listen", components.ButtonIdle, nil)
	if !s.playbackAvailable() {
		listen.State = components.ButtonDisabled
	}

	label := "🎤 Speak"
	if s.deps.Keyboard {
		label = "⌨ Type"
	}
	speak := components.NewButton(label, components.ButtonFocused, nil)
	switch {
	case !s.captureAvailable():
		speak.State = components.ButtonDisabled
	case s.state.RecordingActive:
		speak.State = components.ButtonBusy
	case s.state.Phase != sess.PhaseAwaitingInput:
		speak.State = components.ButtonIdle
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, listen.View(), "   ", speak.View())
}

func (s *PracticeScreen) renderCompleted(width int) string {
	state := s.state
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true), "🎉 Lesson complete!"))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Body, fmt.Sprintf("Score: %d%%", sess.FinalScore(state))))
	b.WriteString("\n\n")

	switch state.Save {
	case sess.SavePending:
		b.WriteString(center(theme.Hint, "Saving your progress..."))
	case sess.SaveDone:
		b.WriteString(center(theme.Correct, "Progress saved!"))
	case sess.SaveFailed:
		b.WriteString(center(theme.Incorrect, "Couldn't save your progress."))
		b.WriteString("\n")
		b.WriteString(center(theme.Hint, "Press R to try again."))
	}
	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Getting your words ready...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}
