package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/speakup/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗ ███████╗ █████╗ ██╗  ██╗██╗   ██╗██████╗
 ██╔════╝██╔══██╗██╔════╝██╔══██╗██║ ██╔╝██║   ██║██╔══██╗
 ███████╗██████╔╝█████╗  ███████║█████╔╝ ██║   ██║██████╔╝
 ╚════██║██╔═══╝ ██╔══╝  ██╔══██║██╔═██╗ ██║   ██║██╔═══╝
 ███████║██║     ███████╗██║  ██║██║  ██╗╚██████╔╝██║
 ╚══════╝╚═╝     ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝ ╚═╝`

const bannerCompact = "S P E A K U P"

// BannerWidth is the narrowest width that fits the full banner.
const BannerWidth = 59

// RenderBanner returns the SPEAKUP banner styled in the primary color.
// Uses a compact fallback for terminals narrower than BannerWidth.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < BannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
