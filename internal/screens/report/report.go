// Package report implements the teacher's class progress report.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/screen"
	"github.com/abhisek/speakup/internal/store"
	"github.com/abhisek/speakup/internal/ui/layout"
	"github.com/abhisek/speakup/internal/ui/theme"
)

type reportLoadedMsg struct {
	Summaries []store.ProgressSummary
	Err       error
}

type detailLoadedMsg struct {
	StudentID string
	Records   []store.ProgressRecord
	Err       error
}

// ReportScreen lists every student's progress. Enter expands a student
// into per-lesson scores.
type ReportScreen struct {
	progress  store.ProgressRepo
	summaries []store.ProgressSummary
	details   map[string][]store.ProgressRecord
	expanded  map[string]bool
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a report screen.
func New(progress store.ProgressRepo) *ReportScreen {
	return &ReportScreen{
		progress: progress,
		details:  make(map[string][]store.ProgressRecord),
		expanded: make(map[string]bool),
	}
}

func (s *ReportScreen) Init() tea.Cmd {
	repo := s.progress
	return func() tea.Msg {
		sums, err := repo.Summaries(context.Background())
		return reportLoadedMsg{Summaries: sums, Err: err}
	}
}

func (s *ReportScreen) Title() string {
	return "Class Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Lessons"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.summaries = msg.Summaries
		return s, nil

	case detailLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.details[msg.StudentID] = msg.Records
		s.expanded[msg.StudentID] = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.summaries)-1 {
				s.selected++
			}
		case "enter":
			return s, s.toggle()
		}
	}
	return s, nil
}

func (s *ReportScreen) toggle() tea.Cmd {
	if s.selected >= len(s.summaries) {
		return nil
	}
	id := s.summaries[s.selected].Student.ID
	if s.expanded[id] {
		s.expanded[id] = false
		return nil
	}
	if _, ok := s.details[id]; ok {
		s.expanded[id] = true
		return nil
	}
	repo := s.progress
	return func() tea.Msg {
		recs, err := repo.ListForStudent(context.Background(), id)
		return detailLoadedMsg{StudentID: id, Records: recs, Err: err}
	}
}

// FormatRow renders one summary line.
func FormatRow(sum store.ProgressSummary) string {
	last := "never"
	if !sum.LastActivity.IsZero() {
		last = sum.LastActivity.Local().Format("Jan 2 15:04")
	}
	return fmt.Sprintf("%s %-18s %3d lessons   avg %5.1f%%   %s",
		sum.Student.AvatarURL, sum.Student.FullName, sum.LessonsCompleted, sum.AverageScore, last)
}

func (s *ReportScreen) View(width, height int) string {
	if !s.loaded {
		return theme.Hint.Render("\n  Loading report...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().Foreground(theme.Error).Render("\n  Error: " + s.errMsg)
	}
	if len(s.summaries) == 0 {
		return theme.Hint.Render("\n  No students have practised yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, sum := range s.summaries {
		style := theme.Unselected
		prefix := "    "
		if i == s.selected {
			style = theme.Selected
			prefix = "  ▸ "
		}
		b.WriteString(style.Render(prefix + FormatRow(sum)))
		b.WriteString("\n")

		if s.expanded[sum.Student.ID] {
			for _, r := range s.details[sum.Student.ID] {
				b.WriteString(renderDetail(r))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func renderDetail(r store.ProgressRecord) string {
	status := theme.Hint.Render("in progress")
	if r.Completed {
		status = theme.Correct.Render(fmt.Sprintf("%d%%", r.Score))
	}
	when := ""
	if !r.CompletedAt.IsZero() {
		when = r.CompletedAt.Local().Format(time.DateOnly)
	}
	return fmt.Sprintf("        %-16s %s  %s", r.LessonID, status, theme.Hint.Render(when))
}
