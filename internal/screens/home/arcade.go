package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/screens/welcome"
	"github.com/abhisek/speakup/internal/ui/components"
	"github.com/abhisek/speakup/internal/ui/theme"
)

// renderTitle returns the banner, or its compact form.
func renderTitle(cw int, compact bool) string {
	width := cw
	if compact {
		width = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(width))
}

// renderStatsBar renders the learner's stats in a bordered box matching
// content width.
func renderStatsBar(st stats, avatar string, cw int, compact bool) string {
	lessonStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			avatar,
			lessonStyle.Render(fmt.Sprintf("★%d", st.completed)),
			scoreStyle.Render(fmt.Sprintf("%d%%", st.average)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			avatar,
			lessonStyle.Render(fmt.Sprintf("★ %d/%d LESSONS", st.completed, st.total)),
			scoreStyle.Render(fmt.Sprintf("◆ %d%% AVERAGE", st.average)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []components.MenuItem, selected int, cw int) string {
	var buttons []string
	for i, item := range items {
		state := components.FocusState(i == selected)
		if item.Disabled {
			state = components.ButtonDisabled
		}
		buttons = append(buttons, components.ArcadeButton(item.Label, state, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for short
// terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []components.MenuItem, selected int, cw int) string {
	var lines []string
	for i, item := range items {
		var line string
		switch {
		case item.Disabled:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + item.Label)
		case i == selected:
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + item.Label + " ")
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("   " + item.Label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMicBanner warns when no capture backend is available.
func renderMicBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ No microphone found. Run speakup doctor, or set speech.capture: keyboard")
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
