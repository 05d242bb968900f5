package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rhr/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗  ██╗██████╗
 ██╔══██╗██║  ██║██╔══██╗
 ██████╔╝███████║██████╔╝
 ██╔══██╗██╔══██║██╔══██╗
 ██║  ██║██║  ██║██║  ██║
 ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "R · H · R"

// Tagline is shown under the banner.
const Tagline = "Right-hand rule practice"

// RenderBanner returns the banner styled in the primary color, or a compact
// fallback for terminals narrower than 28 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 28 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
