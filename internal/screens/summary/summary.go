package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/router"
	"github.com/abhisek/speakup/internal/screen"
	"github.com/abhisek/speakup/internal/session"
	"github.com/abhisek/speakup/internal/ui/layout"
	"github.com/abhisek/speakup/internal/ui/theme"
)

// SummaryScreen displays the result of a finished lesson.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Lessons"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// Stars grades a final score: three at 90 and above, two at 70, else one.
func Stars(finalScore int) int {
	switch {
	case finalScore >= 90:
		return 3
	case finalScore >= 70:
		return 2
	default:
		return 1
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Lesson complete!"))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), sum.LessonTitle))
	b.WriteString("\n\n")

	stars := Stars(sum.FinalScore)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true),
		strings.Repeat("★ ", stars)+strings.Repeat("☆ ", 3-stars)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Words: %d        Tries: %d        Score: %d%%",
		sum.Words, sum.Attempts, sum.FinalScore)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), statsLine))
	b.WriteString("\n\n")

	if extra := sum.Attempts - sum.Words; extra > 0 {
		b.WriteString(center(theme.Hint, fmt.Sprintf("%d extra tries this time. Practice makes perfect!", extra)))
	} else {
		b.WriteString(center(theme.Correct, "Every word on the first try!"))
	}

	return b.String()
}
