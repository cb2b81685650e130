package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/speakup/internal/ui/theme"
)

// ButtonState selects how a Button is drawn and whether it reacts to Enter.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonFocused
	ButtonBusy     // e.g. recording; drawn in the alert colour, ignores Enter
	ButtonDisabled // capability missing; drawn struck through, ignores Enter
)

// Button is a styled button component.
type Button struct {
	Label   string
	State   ButtonState
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, state ButtonState, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		State:   state,
		OnPress: onPress,
	}
}

// Enabled reports whether the button reacts to presses.
func (b Button) Enabled() bool {
	return b.State == ButtonIdle || b.State == ButtonFocused
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Enabled() {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	switch b.State {
	case ButtonFocused:
		return theme.ButtonActive.Render("▸ " + b.Label)
	case ButtonBusy:
		return theme.ButtonRecording.Render("● " + b.Label)
	case ButtonDisabled:
		return theme.ButtonInactive.Render(theme.Disabled.Render(b.Label))
	}
	return theme.ButtonInactive.Render(b.Label)
}
