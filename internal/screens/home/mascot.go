package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default indigo
	MascotCelebrating                      // Gold, star eyes: a lesson finished today
	MascotAlert                            // Amber, question mark: no microphone
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ◡  │ )))
│ abc │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │ )))
│ abc │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ ?
│  ─  │
│ abc │
└─────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// pickMascot chooses the variant for the home screen.
func pickMascot(s stats, micReady bool) MascotVariant {
	switch {
	case !micReady:
		return MascotAlert
	case s.completedToday:
		return MascotCelebrating
	}
	return MascotIdle
}
