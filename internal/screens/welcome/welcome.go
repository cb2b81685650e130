package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/router"
	"github.com/abhisek/speakup/internal/screen"
	"github.com/abhisek/speakup/internal/ui/theme"
)

const (
	frameInterval = 120 * time.Millisecond

	// Frame counts at which each part of the splash appears.
	greetFrame  = 4
	bannerFrame = 4 + len(greeting) + 2
)

// greeting is typed out one letter per frame in the mascot's speech bubble.
const greeting = "Hello, friend!"

const mascotArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ ◉ ◉ │  │
  │  │  %s  │  │
  │  ├─────┤  │
  │  │ abc │  │
  │  └─────┘  │
  ╰───────────╯`

// mouthFrames alternate while the mascot talks.
var mouthFrames = []string{"◡", "○"}

// waveFrames animate the sound bars under the mascot.
var waveFrames = []string{
	"▁▂▃▅▃▂▁",
	"▂▃▅▇▅▃▂",
	"▃▅▇█▇▅▃",
	"▂▃▅▇▅▃▂",
}

type frameMsg time.Time

// WelcomeScreen shows a short splash where the mascot says hello, then
// hands over to the next screen when a key is pressed.
type WelcomeScreen struct {
	next         func() screen.Screen
	frame        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with next() on a key press.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.transitioned {
			return w, nil
		}
		w.frame++
		return w, nextFrame()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	s := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: s}
	}
}

// talking reports whether the greeting is still being typed.
func (w *WelcomeScreen) talking() bool {
	return w.frame >= greetFrame && w.frame < greetFrame+len(greeting)
}

// bubbleText is the part of the greeting typed so far.
func (w *WelcomeScreen) bubbleText() string {
	n := min(max(w.frame-greetFrame, 0), len(greeting))
	return greeting[:n]
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	mouth := mouthFrames[0]
	if w.talking() {
		mouth = mouthFrames[w.frame%len(mouthFrames)]
	}
	mascot := lipgloss.NewStyle().Foreground(theme.Primary).
		Render(strings.Replace(mascotArt, "%s", mouth, 1))

	if text := w.bubbleText(); text != "" {
		bubble := lipgloss.NewStyle().
			Foreground(theme.Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 1).
			Width(len(greeting) + 4).
			Render(text)
		mascot = lipgloss.JoinHorizontal(lipgloss.Center, mascot, "  ", bubble)
	}
	sections = append(sections, mascot)

	wave := waveFrames[0]
	if w.talking() {
		wave = waveFrames[w.frame%len(waveFrames)]
	}
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(wave))

	if w.frame >= bannerFrame {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Listen. Say it. Shine!")
		hint := theme.Hint.Render("press any key to start")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
