package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/ui/theme"
)

const (
	MinWidth  = 64
	MinHeight = 20

	CompactWidthThreshold  = 90
	CompactHeightThreshold = 28
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Header is what the top bar shows.
type Header struct {
	Title string

	// Profile is the active student's avatar and name.
	Profile string

	// Stars counts completed lessons.
	Stars int

	// Listening shows the live microphone badge.
	Listening bool
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a bigger window.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Make the window a little bigger!\n\nNeeds %d x %d, now %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader renders the top bar: app name, screen title centered, then
// the live mic badge, profile and stars on the right.
func RenderHeader(h Header, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  SpeakUp")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(h.Title)

	var right []string
	if h.Listening {
		right = append(right, lipgloss.NewStyle().Foreground(theme.Recording).Bold(true).Render("● listening"))
	}
	if h.Profile != "" {
		right = append(right, lipgloss.NewStyle().Foreground(theme.Text).Render(h.Profile))
	}
	right = append(right, lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d", h.Stars)))
	rightStr := strings.Join(right, "   ")

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(rightStr), 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + rightStr
	return bar(width).Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return bar(width).Render("  " + strings.Join(parts, descStyle.Render("  ·  ")))
}

// RenderFrame stacks header, content and footer, giving content whatever
// height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
