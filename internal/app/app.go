package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/router"
	"github.com/abhisek/speakup/internal/screen"
	"github.com/abhisek/speakup/internal/screens/home"
	"github.com/abhisek/speakup/internal/screens/practice"
	"github.com/abhisek/speakup/internal/screens/welcome"
	"github.com/abhisek/speakup/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Home home.Deps

	// Splash shows the welcome animation before the home screen.
	Splash bool

	// StartLesson, when set, opens that lesson on top of the home screen.
	StartLesson string
}

type starsMsg struct {
	Stars int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	stars  int
	width  int
	height int
}

// newAppModel creates a new AppModel with the home (or welcome) screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Home)

	var initial screen.Screen = homeScreen
	if opts.Splash && opts.StartLesson == "" {
		initial = welcome.New(func() screen.Screen { return home.New(opts.Home) })
	}
	return AppModel{
		opts:   opts,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init(), m.loadStars()}
	if m.opts.StartLesson != "" {
		cmds = append(cmds, func() tea.Msg {
			return router.PushScreenMsg{Screen: practice.New(m.opts.Home.Practice, m.opts.StartLesson)}
		})
	}
	return tea.Batch(cmds...)
}

// loadStars counts the active student's completed lessons for the header.
func (m AppModel) loadStars() tea.Cmd {
	deps := m.opts.Home.Practice
	if deps.Progress == nil || deps.StudentID == "" {
		return nil
	}
	return func() tea.Msg {
		records, err := deps.Progress.ListForStudent(context.Background(), deps.StudentID)
		if err != nil {
			slog.Warn("load header stars failed", "error", err)
			return nil
		}
		n := 0
		for _, r := range records {
			if r.Completed {
				n++
			}
		}
		return starsMsg{Stars: n}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case starsMsg:
		m.stars = msg.Stars
		return m, nil

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// Navigation usually follows a finished lesson; refresh the header.
		return m, tea.Batch(m.router.Update(msg), m.loadStars())

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) profile() string {
	s := m.opts.Home.Student
	if s == nil {
		return ""
	}
	return s.AvatarURL + " " + s.FullName
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	h := layout.Header{Profile: m.profile(), Stars: m.stars}
	if active := m.router.Active(); active != nil {
		h.Title = active.Title()
		if l, ok := active.(screen.Listener); ok {
			h.Listening = l.Listening()
		}
	}

	header := layout.RenderHeader(h, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
