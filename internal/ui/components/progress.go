package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar. When Total is set the
// trailing label reads "n/Total" instead of a percentage.
type ProgressBar struct {
	Label   string
	Percent float64
	Current int
	Total   int
	Width   int
}

// NewProgressBar creates a percentage bar.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Width:   width,
	}
}

// NewStepBar creates a bar for position current (1-based) out of total.
func NewStepBar(label string, current, total, width int) ProgressBar {
	p := ProgressBar{Label: label, Current: current, Total: total, Width: width}
	if total > 0 {
		p.Percent = float64(current) / float64(total)
	}
	return p
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d%%", int(p.Percent*100))
	if p.Total > 0 {
		suffix = fmt.Sprintf("  %d/%d", p.Current, p.Total)
	}

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = max(0, min(filled, barWidth))

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	return result + lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}
