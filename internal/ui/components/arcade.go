package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all arcade sections,
// so that stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	return max(20, min(frameWidth-6, 60))
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded-border card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a bordered, fixed-width button in the home menu style.
func ArcadeButton(label string, state ButtonState, width int) string {
	base := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonFocused:
		return base.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonBusy:
		return base.
			Bold(true).
			Foreground(theme.Text).
			Background(theme.Recording).
			BorderForeground(theme.Recording).
			Render(label)
	case ButtonDisabled:
		return base.
			Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Render(label)
	}
	return base.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}

// FocusState returns ButtonFocused when focused and ButtonIdle otherwise.
func FocusState(focused bool) ButtonState {
	if focused {
		return ButtonFocused
	}
	return ButtonIdle
}
