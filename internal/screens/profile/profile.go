// Package profile implements the avatar picker for the active student.
package profile

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/screen"
	"github.com/abhisek/speakup/internal/store"
	"github.com/abhisek/speakup/internal/ui/components"
	"github.com/abhisek/speakup/internal/ui/layout"
	"github.com/abhisek/speakup/internal/ui/theme"
)

type avatarSavedMsg struct {
	Avatar string
	Err    error
}

// ProfileScreen shows the student and lets them change their avatar.
type ProfileScreen struct {
	students store.StudentRepo
	student  *store.Student
	selected int
	status   string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a profile screen for student. The student value is updated
// in place when a new avatar is saved, so the header follows along.
func New(students store.StudentRepo, student *store.Student) *ProfileScreen {
	selected := max(slices.Index(store.Avatars, student.AvatarURL), 0)
	return &ProfileScreen{students: students, student: student, selected: selected}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "My Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Avatar"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case avatarSavedMsg:
		if msg.Err != nil {
			slog.Error("save avatar failed", "student", s.student.ID, "error", msg.Err)
			s.status = "Couldn't save your avatar."
			return s, nil
		}
		s.student.AvatarURL = msg.Avatar
		s.status = "Saved!"
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			s.selected = (s.selected + len(store.Avatars) - 1) % len(store.Avatars)
			s.status = ""
		case "right", "l":
			s.selected = (s.selected + 1) % len(store.Avatars)
			s.status = ""
		case "enter":
			return s, s.save(store.Avatars[s.selected])
		}
	}
	return s, nil
}

func (s *ProfileScreen) save(avatar string) tea.Cmd {
	repo, id := s.students, s.student.ID
	return func() tea.Msg {
		return avatarSavedMsg{Avatar: avatar, Err: repo.SetAvatar(context.Background(), id, avatar)}
	}
}

func (s *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	name := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(s.student.FullName)
	role := theme.Hint.Render(s.student.Role)

	cells := make([]string, len(store.Avatars))
	for i, a := range store.Avatars {
		if i == s.selected {
			cells[i] = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.ArcadeYellow).
				Render(a)
		} else {
			cells[i] = lipgloss.NewStyle().Padding(1, 1).Render(a)
		}
	}
	picker := lipgloss.JoinHorizontal(lipgloss.Center, cells...)

	parts := []string{
		name + "  " + role,
		picker,
	}
	if s.status != "" {
		parts = append(parts, theme.Hint.Render(s.status))
	}

	return components.CabinetFrame(components.ArcadeCard(strings.Join(parts, "\n\n"), cw), width, height)
}
