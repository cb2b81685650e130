package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/speakup/internal/router"
	"github.com/abhisek/speakup/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newCounting() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func advance(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(frameMsg(time.Now()))
	}
	return cmd
}

func TestGreetingIsTypedOut(t *testing.T) {
	w, _ := newCounting()

	if got := w.bubbleText(); got != "" {
		t.Errorf("bubble before greeting = %q", got)
	}

	advance(w, greetFrame+5)
	if got := w.bubbleText(); got != "Hello" {
		t.Errorf("bubble after 5 letters = %q, want Hello", got)
	}
	if !w.talking() {
		t.Error("expected mascot to be talking mid-greeting")
	}

	advance(w, len(greeting))
	if got := w.bubbleText(); got != greeting {
		t.Errorf("bubble = %q, want full greeting", got)
	}
	if w.talking() {
		t.Error("mascot should stop talking after the greeting")
	}
}

func TestBannerAppearsAfterGreeting(t *testing.T) {
	w, _ := newCounting()

	advance(w, bannerFrame-1)
	if strings.Contains(w.View(80, 30), "Say it. Shine!") {
		t.Error("tagline shown too early")
	}

	advance(w, 1)
	if !strings.Contains(w.View(80, 30), "Say it. Shine!") {
		t.Error("tagline missing once the greeting is done")
	}
}

func TestKeyPressReplacesWithNextScreen(t *testing.T) {
	w, calls := newCounting()
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen == nil {
		t.Error("replacement screen is nil")
	}
	if *calls != 1 {
		t.Errorf("factory calls = %d, want 1", *calls)
	}
}

func TestTransitionHappensOnce(t *testing.T) {
	w, calls := newCounting()

	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	if cmd != nil {
		t.Error("second key press should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("factory calls = %d, want 1", *calls)
	}
}

func TestFramesStopAfterTransition(t *testing.T) {
	w, calls := newCounting()

	if cmd := advance(w, 40); cmd == nil {
		t.Fatal("frames should keep ticking while waiting for a key")
	}
	if *calls != 0 {
		t.Errorf("factory called without a key press")
	}

	w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd := advance(w, 1); cmd != nil {
		t.Error("frames should stop once the splash hands over")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newCounting()
	if w.Title() != "" {
		t.Errorf("Title = %q, want empty", w.Title())
	}
}
