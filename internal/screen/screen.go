package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/speakup/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is implemented by screens that refresh when they become active
// again after the screen above them was popped.
type Resumer interface {
	Resume() tea.Cmd
}

// EscapeHandler is implemented by screens that sometimes consume Esc
// themselves (closing an input, cancelling a dialog) instead of letting
// the app navigate back.
type EscapeHandler interface {
	HandlesEscape() bool
}

// Listener is implemented by screens that capture from the microphone, so
// the header can show when it is live.
type Listener interface {
	Listening() bool
}

// Closer is implemented by screens that hold work open (a live capture, a
// playing clip) and must release it when they leave the stack.
type Closer interface {
	Close() tea.Cmd
}
