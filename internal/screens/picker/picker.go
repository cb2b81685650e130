// Package picker implements the lesson picker.
package picker

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/lessons"
	"github.com/abhisek/speakup/internal/router"
	"github.com/abhisek/speakup/internal/screen"
	"github.com/abhisek/speakup/internal/screens/practice"
	"github.com/abhisek/speakup/internal/store"
	"github.com/abhisek/speakup/internal/ui/components"
	"github.com/abhisek/speakup/internal/ui/layout"
	"github.com/abhisek/speakup/internal/ui/theme"
)

type lessonsLoadedMsg struct {
	Lessons  []lessons.Lesson
	Progress map[string]store.ProgressRecord // lesson id -> record
	Err      error
}

// LessonsScreen lists active lessons with the learner's progress badges.
type LessonsScreen struct {
	deps     practice.Deps
	lessons  []lessons.Lesson
	progress map[string]store.ProgressRecord
	menu     components.Menu
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)
var _ screen.Resumer = (*LessonsScreen)(nil)

// New creates a lesson picker. Selected lessons open a practice screen
// built from deps.
func New(deps practice.Deps) *LessonsScreen {
	return &LessonsScreen{deps: deps}
}

func (s *LessonsScreen) Init() tea.Cmd {
	return s.load()
}

// Resume reloads progress when returning from a lesson.
func (s *LessonsScreen) Resume() tea.Cmd {
	return s.load()
}

func (s *LessonsScreen) Title() string {
	return "Lessons"
}

func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Practice"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LessonsScreen) load() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		ctx := context.Background()
		list, err := deps.Lessons.ListActive(ctx)
		if err != nil {
			return lessonsLoadedMsg{Err: err}
		}
		progress := make(map[string]store.ProgressRecord)
		if deps.Progress != nil && deps.StudentID != "" {
			records, err := deps.Progress.ListForStudent(ctx, deps.StudentID)
			if err != nil {
				return lessonsLoadedMsg{Err: err}
			}
			for _, r := range records {
				progress[r.LessonID] = r
			}
		}
		return lessonsLoadedMsg{Lessons: list, Progress: progress}
	}
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.lessons = msg.Lessons
		s.progress = msg.Progress
		selected := s.menu.Selected
		s.menu = components.NewMenu(s.menuItems())
		if selected < len(s.menu.Items) {
			s.menu.Selected = selected
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LessonsScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(s.lessons))
	for _, l := range s.lessons {
		id := l.ID
		items = append(items, components.MenuItem{
			Label:    fmt.Sprintf("%-22s %s", l.Title, difficultyDots(l.Difficulty)),
			Badge:    Badge(s.progress[id]),
			Disabled: l.WordCount() == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: practice.New(s.deps, id)}
				}
			},
		})
	}
	return items
}

// Badge summarises a progress record for the picker.
func Badge(rec store.ProgressRecord) string {
	if !rec.Completed {
		return "new"
	}
	return fmt.Sprintf("✓ %d%%", rec.Score)
}

func difficultyDots(d string) string {
	switch d {
	case "hard":
		return "●●●"
	case "medium":
		return "●●○"
	default:
		return "●○○"
	}
}

func (s *LessonsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if !s.loaded {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading lessons..."))
	}
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}
	if len(s.lessons) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No lessons yet. Ask your teacher to import some!"))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Choose a lesson"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if sel := s.menu.Selected; sel >= 0 && sel < len(s.lessons) {
		l := s.lessons[sel]
		desc := fmt.Sprintf("%s\n%d words", l.Description, l.WordCount())
		b.WriteString("\n")
		b.WriteString(components.ArcadeCard(theme.Body.Render(desc), cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
